package rigid

type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyStatic
	BodyKinematic
)

// RigidBody marks an entity as a rigid body whose aggregate mass properties
// are maintained by MassAggregationSystem. Static and kinematic bodies keep
// their summed mass and inertia but get zero inverses: they do not respond
// to forces or impulses.
type RigidBody struct {
	Kind BodyKind
}

// Parent links a collider entity to the rigid body it contributes to. A
// collider without a Parent contributes to its own entity.
type Parent struct {
	Entity EntityId
}

// MassModule maintains rigid-body mass properties: every pass it re-derives
// each collider's ColliderMassProperties from its shape and density, then
// combines the snapshots per body into the body's Mass, InverseMass, Inertia,
// InverseInertia and CenterOfMass. Derivation runs in PreUpdate and
// aggregation in Update, so anything scheduled later in the frame reads
// up-to-date values.
type MassModule struct {
	Debug bool
}

func (m MassModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewShapeServer())
	if m.Debug {
		app.Logger().SetDebug(true)
	}

	app.UseSystem(
		System(ColliderMassSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(MassAggregationSystem).
			InStage(Update),
	)
}

// ColliderMassSystem re-derives the mass-property snapshot of every collider
// entity. The derivation is unconditional: snapshots are cheap to compute and
// overwriting every pass is what keeps them authoritative against outside
// writes.
func ColliderMassSystem(cmd *Commands, shapes *ShapeServer) {
	log := cmd.Logger()
	MakeQuery3[ColliderComponent, ColliderDensity, ColliderMassProperties](cmd).Map(
		func(eid EntityId, col *ColliderComponent, density *ColliderDensity, props *ColliderMassProperties) bool {
			shape, ok := shapes.Shape(col.Shape)
			if !ok {
				log.Warnf("collider entity %v references unknown shape %v", eid, col.Shape)
				return true
			}

			rho := DefaultColliderDensity().Value
			if density != nil {
				rho = density.Value
			}

			next := NewColliderMassProperties(shape, rho)
			if props == nil {
				cmd.AddComponents(eid, &next)
				return true
			}
			if *props != next {
				log.Debugf("collider entity %v mass properties changed: mass %v -> %v", eid, props.mass.Value, next.mass.Value)
				*props = next
			}
			return true
		},
		ColliderDensity{}, ColliderMassProperties{},
	)
}

// CombineColliderMassProperties combines per-collider snapshots into one
// rigid-body mass-property set: total mass, mass-weighted center, and the
// inertia of every part shifted to the combined center. The combination is
// commutative, and the zero snapshot is its neutral element.
func CombineColliderMassProperties(parts ...ColliderMassProperties) MassPropertiesBundle {
	var total Scalar
	var weighted Vector
	for _, p := range parts {
		total += p.mass.Value
		weighted = weighted.Add(p.centerOfMass.Offset.Mul(p.mass.Value))
	}

	var com Vector
	if total > 0 {
		com = weighted.Mul(1.0 / total)
	}

	var moment InertiaValue
	for _, p := range parts {
		moment = addInertia(moment, p.inertia.Shifted(p.mass.Value, p.centerOfMass.Offset.Sub(com)))
	}

	mass := Mass{Value: total}
	inertia := Inertia{Value: moment}

	return MassPropertiesBundle{
		Mass:           mass,
		InverseMass:    mass.Inverse(),
		Inertia:        inertia,
		InverseInertia: inertia.Inverse(),
		CenterOfMass:   CenterOfMass{Offset: com},
	}
}

// MassAggregationSystem rebuilds every rigid body's aggregate mass properties
// from the collider snapshots attached to it, either on the body entity
// itself or on collider entities linked with Parent.
func MassAggregationSystem(cmd *Commands) {
	contributions := make(map[EntityId][]ColliderMassProperties)
	MakeQuery2[ColliderMassProperties, Parent](cmd).Map(
		func(eid EntityId, props *ColliderMassProperties, parent *Parent) bool {
			owner := eid
			if parent != nil {
				owner = parent.Entity
			}
			contributions[owner] = append(contributions[owner], *props)
			return true
		},
		Parent{},
	)

	aggregates := make(map[EntityId]MassPropertiesBundle)
	MakeQuery1[RigidBody](cmd).Map(func(eid EntityId, body *RigidBody) bool {
		bundle := CombineColliderMassProperties(contributions[eid]...)
		if body.Kind != BodyDynamic {
			bundle.InverseMass = InverseMass{}
			bundle.InverseInertia = InverseInertia{}
		}
		aggregates[eid] = bundle
		return true
	})

	// Update bodies that already carry the aggregate components in place;
	// first-timers get them added through the command buffer.
	written := make(set[EntityId])
	MakeQuery5[Mass, InverseMass, Inertia, InverseInertia, CenterOfMass](cmd).Map(
		func(eid EntityId, mass *Mass, inverseMass *InverseMass, inertia *Inertia, inverseInertia *InverseInertia, com *CenterOfMass) bool {
			bundle, ok := aggregates[eid]
			if !ok {
				return true
			}
			*mass = bundle.Mass
			*inverseMass = bundle.InverseMass
			*inertia = bundle.Inertia
			*inverseInertia = bundle.InverseInertia
			*com = bundle.CenterOfMass
			written[eid] = struct{}{}
			return true
		},
	)

	for eid, bundle := range aggregates {
		if _, ok := written[eid]; !ok {
			cmd.AddComponents(eid, bundle.Components()...)
		}
	}
}
