package world

// Entity carries the fields common to every entity kind: a display
// name (not required unique at this layer — uniqueness is a derived
// property some callers enforce) and an optional layer index. Layer is
// -1 for entity kinds that are not layered.
type Entity struct {
	Name  string
	Layer int32
}

// Object is a placed instance of an object class. ClassHandle caches an
// acquisition from ObjectClassLibrary; the invariant "ClassHandle
// refers to an acquisition of ClassName" must hold whenever the object
// is live in the World (§3).
type Object struct {
	Entity
	ID          EntityID[ObjectKindTag]
	ClassName   string
	ClassHandle uint32 // objectclass.Handle, stored as its raw form to avoid an import cycle
	Position    Vector3
	Rotation    Quaternion
}

// Light is a placed light source.
type Light struct {
	Entity
	ID        EntityID[LightKindTag]
	Position  Vector3
	Color     Vector3
	Range     float32
	Intensity float32
}

// PathNode is one positional element of a Path. Node indices are
// positional and shift on insert/erase (§3).
type PathNode struct {
	Position Vector3
	Knot     float32
}

// Path holds an ordered sequence of nodes.
type Path struct {
	Entity
	ID    EntityID[PathKindTag]
	Nodes []PathNode
}

// RegionMetrics describes a region's placement and extent.
type RegionMetrics struct {
	Position Vector3
	Rotation Quaternion
	Size     Vector3
}

// Region is a named volume used for triggers, sound zones, etc.
type Region struct {
	Entity
	ID      EntityID[RegionKindTag]
	Metrics RegionMetrics
}

// Sector is a convex polygon used for portal-based visibility (PVS).
type Sector struct {
	Entity
	ID      EntityID[SectorKindTag]
	Points  []Vector2
	Ceiling float32
	Floor   float32
}

// Portal connects two sectors through a rectangular opening.
type Portal struct {
	Entity
	ID       EntityID[PortalKindTag]
	Position Vector3
	Rotation Quaternion
	Size     Vector2
	SectorA  string
	SectorB  string
}

// Hintnode guides AI visibility/cover heuristics.
type Hintnode struct {
	Entity
	ID       EntityID[HintnodeKindTag]
	Position Vector3
	Rotation Quaternion
	HintType int32
}

// BarrierMetrics describes an oriented obstruction volume.
type BarrierMetrics struct {
	Position Vector3
	Rotation Quaternion
	Size     Vector3
}

// Barrier is an AI-avoidance obstruction.
type Barrier struct {
	Entity
	ID      EntityID[BarrierKindTag]
	Metrics BarrierMetrics
}

// PlanningHub is a node of the AI path-planning graph.
type PlanningHub struct {
	Entity
	ID       EntityID[PlanningHubKindTag]
	Position Vector3
	Sector   string
}

// PlanningConnection is an edge of the AI path-planning graph,
// referencing two hubs by id. When a referenced hub is removed,
// connections referencing it must also be removed (§3).
type PlanningConnection struct {
	Entity
	ID   EntityID[PlanningConnectionKindTag]
	HubA EntityID[PlanningHubKindTag]
	HubB EntityID[PlanningHubKindTag]
}

// Boundary marks the outer edge of the playable world.
type Boundary struct {
	Entity
	ID     EntityID[BoundaryKindTag]
	Points []Vector2
}

// Measurement is an editor-only annotation recording a distance between
// points, never written back to the runtime world file.
type Measurement struct {
	Entity
	ID     EntityID[MeasurementKindTag]
	Points []Vector3
}

// LayerDescription names one layer of the World.
type LayerDescription struct {
	Index int32
	Name  string
}

// GameMode names a selection of layers plus its own asset requirements.
type GameMode struct {
	Name   string
	Layers []int32
}

// AnimationGroup names a set of objects whose animations are kept in
// sync during playback (e.g. a bank of synchronized doors). Stored by
// plain index in World.AnimationGroups, matching
// delete_animation_group_tests.cpp's make_delete_animation_group(index).
type AnimationGroup struct {
	Name string
}

// RequirementEntry is one entry of a requirements list (world,
// game-mode, or animation-group scoped); Value commonly holds a
// "test_<layer>" marker string rewritten by RenameLayer.
type RequirementEntry struct {
	Category string
	Value    string
}

// GlobalLightSettings holds the world's ambient/sun lighting.
type GlobalLightSettings struct {
	SunColor      Vector3
	AmbientColor  Vector3
	SunDirection  Vector3
}
