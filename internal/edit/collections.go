package edit

import (
	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/world"
)

// The Collection value for each entity kind. These are the only place
// that knows which World slice backs which kind; every Insert/Delete
// edit for that kind is built by passing the matching Collection
// below, so adding a new call site never needs to touch World itself.

var Objects = Collection[world.ObjectKindTag, world.Object]{
	Add: func(ctx *editctx.Context, v world.Object) {
		ctx.World.Objects = append(ctx.World.Objects, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.ObjectKindTag]) (world.Object, bool) {
		for i, o := range ctx.World.Objects {
			if o.ID == id {
				ctx.World.Objects = append(ctx.World.Objects[:i], ctx.World.Objects[i+1:]...)
				return o, true
			}
		}
		return world.Object{}, false
	},
	ID: func(v world.Object) world.EntityID[world.ObjectKindTag] { return v.ID },
}

var Lights = Collection[world.LightKindTag, world.Light]{
	Add: func(ctx *editctx.Context, v world.Light) {
		ctx.World.Lights = append(ctx.World.Lights, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.LightKindTag]) (world.Light, bool) {
		for i, l := range ctx.World.Lights {
			if l.ID == id {
				ctx.World.Lights = append(ctx.World.Lights[:i], ctx.World.Lights[i+1:]...)
				return l, true
			}
		}
		return world.Light{}, false
	},
	ID: func(v world.Light) world.EntityID[world.LightKindTag] { return v.ID },
}

var Paths = Collection[world.PathKindTag, world.Path]{
	Add: func(ctx *editctx.Context, v world.Path) {
		ctx.World.Paths = append(ctx.World.Paths, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.PathKindTag]) (world.Path, bool) {
		for i, p := range ctx.World.Paths {
			if p.ID == id {
				ctx.World.Paths = append(ctx.World.Paths[:i], ctx.World.Paths[i+1:]...)
				return p, true
			}
		}
		return world.Path{}, false
	},
	ID: func(v world.Path) world.EntityID[world.PathKindTag] { return v.ID },
}

var Regions = Collection[world.RegionKindTag, world.Region]{
	Add: func(ctx *editctx.Context, v world.Region) {
		ctx.World.Regions = append(ctx.World.Regions, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.RegionKindTag]) (world.Region, bool) {
		for i, r := range ctx.World.Regions {
			if r.ID == id {
				ctx.World.Regions = append(ctx.World.Regions[:i], ctx.World.Regions[i+1:]...)
				return r, true
			}
		}
		return world.Region{}, false
	},
	ID: func(v world.Region) world.EntityID[world.RegionKindTag] { return v.ID },
}

var Sectors = Collection[world.SectorKindTag, world.Sector]{
	Add: func(ctx *editctx.Context, v world.Sector) {
		ctx.World.Sectors = append(ctx.World.Sectors, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.SectorKindTag]) (world.Sector, bool) {
		for i, s := range ctx.World.Sectors {
			if s.ID == id {
				ctx.World.Sectors = append(ctx.World.Sectors[:i], ctx.World.Sectors[i+1:]...)
				return s, true
			}
		}
		return world.Sector{}, false
	},
	ID: func(v world.Sector) world.EntityID[world.SectorKindTag] { return v.ID },
}

var Portals = Collection[world.PortalKindTag, world.Portal]{
	Add: func(ctx *editctx.Context, v world.Portal) {
		ctx.World.Portals = append(ctx.World.Portals, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.PortalKindTag]) (world.Portal, bool) {
		for i, p := range ctx.World.Portals {
			if p.ID == id {
				ctx.World.Portals = append(ctx.World.Portals[:i], ctx.World.Portals[i+1:]...)
				return p, true
			}
		}
		return world.Portal{}, false
	},
	ID: func(v world.Portal) world.EntityID[world.PortalKindTag] { return v.ID },
}

var Hintnodes = Collection[world.HintnodeKindTag, world.Hintnode]{
	Add: func(ctx *editctx.Context, v world.Hintnode) {
		ctx.World.Hintnodes = append(ctx.World.Hintnodes, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.HintnodeKindTag]) (world.Hintnode, bool) {
		for i, h := range ctx.World.Hintnodes {
			if h.ID == id {
				ctx.World.Hintnodes = append(ctx.World.Hintnodes[:i], ctx.World.Hintnodes[i+1:]...)
				return h, true
			}
		}
		return world.Hintnode{}, false
	},
	ID: func(v world.Hintnode) world.EntityID[world.HintnodeKindTag] { return v.ID },
}

var Barriers = Collection[world.BarrierKindTag, world.Barrier]{
	Add: func(ctx *editctx.Context, v world.Barrier) {
		ctx.World.Barriers = append(ctx.World.Barriers, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.BarrierKindTag]) (world.Barrier, bool) {
		for i, b := range ctx.World.Barriers {
			if b.ID == id {
				ctx.World.Barriers = append(ctx.World.Barriers[:i], ctx.World.Barriers[i+1:]...)
				return b, true
			}
		}
		return world.Barrier{}, false
	},
	ID: func(v world.Barrier) world.EntityID[world.BarrierKindTag] { return v.ID },
}

var PlanningHubs = Collection[world.PlanningHubKindTag, world.PlanningHub]{
	Add: func(ctx *editctx.Context, v world.PlanningHub) {
		ctx.World.PlanningHubs = append(ctx.World.PlanningHubs, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.PlanningHubKindTag]) (world.PlanningHub, bool) {
		for i, h := range ctx.World.PlanningHubs {
			if h.ID == id {
				ctx.World.PlanningHubs = append(ctx.World.PlanningHubs[:i], ctx.World.PlanningHubs[i+1:]...)
				return h, true
			}
		}
		return world.PlanningHub{}, false
	},
	ID: func(v world.PlanningHub) world.EntityID[world.PlanningHubKindTag] { return v.ID },
}

var PlanningConnections = Collection[world.PlanningConnectionKindTag, world.PlanningConnection]{
	Add: func(ctx *editctx.Context, v world.PlanningConnection) {
		ctx.World.PlanningConnections = append(ctx.World.PlanningConnections, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.PlanningConnectionKindTag]) (world.PlanningConnection, bool) {
		for i, c := range ctx.World.PlanningConnections {
			if c.ID == id {
				ctx.World.PlanningConnections = append(ctx.World.PlanningConnections[:i], ctx.World.PlanningConnections[i+1:]...)
				return c, true
			}
		}
		return world.PlanningConnection{}, false
	},
	ID: func(v world.PlanningConnection) world.EntityID[world.PlanningConnectionKindTag] { return v.ID },
}

var Boundaries = Collection[world.BoundaryKindTag, world.Boundary]{
	Add: func(ctx *editctx.Context, v world.Boundary) {
		ctx.World.Boundaries = append(ctx.World.Boundaries, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.BoundaryKindTag]) (world.Boundary, bool) {
		for i, b := range ctx.World.Boundaries {
			if b.ID == id {
				ctx.World.Boundaries = append(ctx.World.Boundaries[:i], ctx.World.Boundaries[i+1:]...)
				return b, true
			}
		}
		return world.Boundary{}, false
	},
	ID: func(v world.Boundary) world.EntityID[world.BoundaryKindTag] { return v.ID },
}

var Measurements = Collection[world.MeasurementKindTag, world.Measurement]{
	Add: func(ctx *editctx.Context, v world.Measurement) {
		ctx.World.Measurements = append(ctx.World.Measurements, v)
	},
	Remove: func(ctx *editctx.Context, id world.EntityID[world.MeasurementKindTag]) (world.Measurement, bool) {
		for i, m := range ctx.World.Measurements {
			if m.ID == id {
				ctx.World.Measurements = append(ctx.World.Measurements[:i], ctx.World.Measurements[i+1:]...)
				return m, true
			}
		}
		return world.Measurement{}, false
	},
	ID: func(v world.Measurement) world.EntityID[world.MeasurementKindTag] { return v.ID },
}
