package world

// World is the aggregate scene graph edited by the transaction engine
// (§3). Entities of each kind live in an ordered slice; ids are stable
// across edits but slice position is not — lookups always go through
// the Find* methods rather than caching a slice index.
type World struct {
	Objects             []Object
	Lights              []Light
	Paths               []Path
	Regions             []Region
	Sectors             []Sector
	Portals             []Portal
	Hintnodes           []Hintnode
	Barriers            []Barrier
	PlanningHubs        []PlanningHub
	PlanningConnections []PlanningConnection
	Boundaries          []Boundary
	Measurements        []Measurement

	LayerDescriptions []LayerDescription
	GameModes         []GameMode
	AnimationGroups   []AnimationGroup
	Requirements      []RequirementEntry
	DeletedLayers     []string
	GlobalLights      GlobalLightSettings
	Terrain           Terrain
	Blocks            BlockCubes

	gen generators
}

// generators bundles one IDGenerator per entity kind so the per-kind
// New*ID methods can allocate typed ids without World itself needing
// type parameters.
type generators struct {
	object             IDGenerator[ObjectKindTag]
	light              IDGenerator[LightKindTag]
	path               IDGenerator[PathKindTag]
	region             IDGenerator[RegionKindTag]
	sector             IDGenerator[SectorKindTag]
	portal             IDGenerator[PortalKindTag]
	hintnode           IDGenerator[HintnodeKindTag]
	barrier            IDGenerator[BarrierKindTag]
	planningHub        IDGenerator[PlanningHubKindTag]
	planningConnection IDGenerator[PlanningConnectionKindTag]
	boundary           IDGenerator[BoundaryKindTag]
	measurement        IDGenerator[MeasurementKindTag]
}

// New returns an empty World with a flat terrain of the given size.
func New(terrainWidth, terrainHeight int) *World {
	return &World{Terrain: NewTerrain(terrainWidth, terrainHeight)}
}

// NewObjectID pre-allocates the id an Insert[ObjectKindTag] edit will
// use; the pattern is identical for every kind below.
func (w *World) NewObjectID() EntityID[ObjectKindTag] { return w.gen.object.Allocate() }
func (w *World) NewLightID() EntityID[LightKindTag]   { return w.gen.light.Allocate() }
func (w *World) NewPathID() EntityID[PathKindTag]     { return w.gen.path.Allocate() }
func (w *World) NewRegionID() EntityID[RegionKindTag] { return w.gen.region.Allocate() }
func (w *World) NewSectorID() EntityID[SectorKindTag] { return w.gen.sector.Allocate() }
func (w *World) NewPortalID() EntityID[PortalKindTag] { return w.gen.portal.Allocate() }
func (w *World) NewHintnodeID() EntityID[HintnodeKindTag] {
	return w.gen.hintnode.Allocate()
}
func (w *World) NewBarrierID() EntityID[BarrierKindTag] { return w.gen.barrier.Allocate() }
func (w *World) NewPlanningHubID() EntityID[PlanningHubKindTag] {
	return w.gen.planningHub.Allocate()
}
func (w *World) NewPlanningConnectionID() EntityID[PlanningConnectionKindTag] {
	return w.gen.planningConnection.Allocate()
}
func (w *World) NewBoundaryID() EntityID[BoundaryKindTag] { return w.gen.boundary.Allocate() }
func (w *World) NewMeasurementID() EntityID[MeasurementKindTag] {
	return w.gen.measurement.Allocate()
}

// FindObject returns a pointer to the object with the given id, found
// by linear scan (§4.2: Insert/Delete "finds the entity by id (linear
// scan)"). The returned pointer is valid only until the next mutation
// of w.Objects.
func (w *World) FindObject(id EntityID[ObjectKindTag]) (*Object, bool) {
	for i := range w.Objects {
		if w.Objects[i].ID == id {
			return &w.Objects[i], true
		}
	}
	return nil, false
}

func (w *World) FindLight(id EntityID[LightKindTag]) (*Light, bool) {
	for i := range w.Lights {
		if w.Lights[i].ID == id {
			return &w.Lights[i], true
		}
	}
	return nil, false
}

func (w *World) FindPath(id EntityID[PathKindTag]) (*Path, bool) {
	for i := range w.Paths {
		if w.Paths[i].ID == id {
			return &w.Paths[i], true
		}
	}
	return nil, false
}

func (w *World) FindRegion(id EntityID[RegionKindTag]) (*Region, bool) {
	for i := range w.Regions {
		if w.Regions[i].ID == id {
			return &w.Regions[i], true
		}
	}
	return nil, false
}

func (w *World) FindSector(id EntityID[SectorKindTag]) (*Sector, bool) {
	for i := range w.Sectors {
		if w.Sectors[i].ID == id {
			return &w.Sectors[i], true
		}
	}
	return nil, false
}

func (w *World) FindPortal(id EntityID[PortalKindTag]) (*Portal, bool) {
	for i := range w.Portals {
		if w.Portals[i].ID == id {
			return &w.Portals[i], true
		}
	}
	return nil, false
}

func (w *World) FindHintnode(id EntityID[HintnodeKindTag]) (*Hintnode, bool) {
	for i := range w.Hintnodes {
		if w.Hintnodes[i].ID == id {
			return &w.Hintnodes[i], true
		}
	}
	return nil, false
}

func (w *World) FindBarrier(id EntityID[BarrierKindTag]) (*Barrier, bool) {
	for i := range w.Barriers {
		if w.Barriers[i].ID == id {
			return &w.Barriers[i], true
		}
	}
	return nil, false
}

func (w *World) FindPlanningHub(id EntityID[PlanningHubKindTag]) (*PlanningHub, bool) {
	for i := range w.PlanningHubs {
		if w.PlanningHubs[i].ID == id {
			return &w.PlanningHubs[i], true
		}
	}
	return nil, false
}

func (w *World) FindPlanningConnection(id EntityID[PlanningConnectionKindTag]) (*PlanningConnection, bool) {
	for i := range w.PlanningConnections {
		if w.PlanningConnections[i].ID == id {
			return &w.PlanningConnections[i], true
		}
	}
	return nil, false
}

func (w *World) FindBoundary(id EntityID[BoundaryKindTag]) (*Boundary, bool) {
	for i := range w.Boundaries {
		if w.Boundaries[i].ID == id {
			return &w.Boundaries[i], true
		}
	}
	return nil, false
}

func (w *World) FindMeasurement(id EntityID[MeasurementKindTag]) (*Measurement, bool) {
	for i := range w.Measurements {
		if w.Measurements[i].ID == id {
			return &w.Measurements[i], true
		}
	}
	return nil, false
}

// RemovePlanningConnectionsReferencing deletes every planning connection
// that references hub, enforcing the invariant in §3 ("when the
// referenced hub is removed, connections referencing it must also be
// removed"). It returns the removed connections in their original
// order so a Delete edit can stash them for undo.
func (w *World) RemovePlanningConnectionsReferencing(hub EntityID[PlanningHubKindTag]) []PlanningConnection {
	var removed []PlanningConnection
	kept := w.PlanningConnections[:0]
	for _, conn := range w.PlanningConnections {
		if conn.HubA == hub || conn.HubB == hub {
			removed = append(removed, conn)
			continue
		}
		kept = append(kept, conn)
	}
	w.PlanningConnections = kept
	return removed
}
