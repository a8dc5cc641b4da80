package rigid

import (
	"reflect"
)

// Queries iterate every archetype that holds the required component set and
// hand out row pointers, so systems mutate component data in place. Optional
// component types are passed as zero values after the map function; when an
// archetype lacks an optional component its pointer is nil.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }
type Query4[A, B, C, D any] struct{ ecs *Ecs }
type Query5[A, B, C, D, E any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]             { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B]       { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] { return Query3[A, B, C]{ecs: cmd.app.ecs} }
func MakeQuery4[A, B, C, D any](cmd *Commands) Query4[A, B, C, D] {
	return Query4[A, B, C, D]{ecs: cmd.app.ecs}
}
func MakeQuery5[A, B, C, D, E any](cmd *Commands) Query5[A, B, C, D, E] {
	return Query5[A, B, C, D, E]{ecs: cmd.app.ecs}
}

func (q Query1[A]) Map(m func(EntityId, *A) bool, optionals ...any) {
	id1 := identifyComponents1[A](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		comps1, ok1 := archSlice[A](arch, id1, opt)
		if !ok1 {
			continue
		}

		for entityId, row := range arch.entities {
			if !m(entityId, rowPtr(comps1, row)) {
				return
			}
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool, optionals ...any) {
	id1, id2 := identifyComponents2[A, B](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		comps1, ok1 := archSlice[A](arch, id1, opt)
		if !ok1 {
			continue
		}
		comps2, ok2 := archSlice[B](arch, id2, opt)
		if !ok2 {
			continue
		}

		for entityId, row := range arch.entities {
			if !m(entityId, rowPtr(comps1, row), rowPtr(comps2, row)) {
				return
			}
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool, optionals ...any) {
	id1, id2, id3 := identifyComponents3[A, B, C](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		comps1, ok1 := archSlice[A](arch, id1, opt)
		if !ok1 {
			continue
		}
		comps2, ok2 := archSlice[B](arch, id2, opt)
		if !ok2 {
			continue
		}
		comps3, ok3 := archSlice[C](arch, id3, opt)
		if !ok3 {
			continue
		}

		for entityId, row := range arch.entities {
			if !m(entityId, rowPtr(comps1, row), rowPtr(comps2, row), rowPtr(comps3, row)) {
				return
			}
		}
	}
}

func (q Query4[A, B, C, D]) Map(m func(EntityId, *A, *B, *C, *D) bool, optionals ...any) {
	id1, id2, id3, id4 := identifyComponents4[A, B, C, D](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		comps1, ok1 := archSlice[A](arch, id1, opt)
		if !ok1 {
			continue
		}
		comps2, ok2 := archSlice[B](arch, id2, opt)
		if !ok2 {
			continue
		}
		comps3, ok3 := archSlice[C](arch, id3, opt)
		if !ok3 {
			continue
		}
		comps4, ok4 := archSlice[D](arch, id4, opt)
		if !ok4 {
			continue
		}

		for entityId, row := range arch.entities {
			if !m(entityId, rowPtr(comps1, row), rowPtr(comps2, row), rowPtr(comps3, row), rowPtr(comps4, row)) {
				return
			}
		}
	}
}

func (q Query5[A, B, C, D, E]) Map(m func(EntityId, *A, *B, *C, *D, *E) bool, optionals ...any) {
	id1, id2, id3, id4, id5 := identifyComponents5[A, B, C, D, E](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		comps1, ok1 := archSlice[A](arch, id1, opt)
		if !ok1 {
			continue
		}
		comps2, ok2 := archSlice[B](arch, id2, opt)
		if !ok2 {
			continue
		}
		comps3, ok3 := archSlice[C](arch, id3, opt)
		if !ok3 {
			continue
		}
		comps4, ok4 := archSlice[D](arch, id4, opt)
		if !ok4 {
			continue
		}
		comps5, ok5 := archSlice[E](arch, id5, opt)
		if !ok5 {
			continue
		}

		for entityId, row := range arch.entities {
			if !m(entityId, rowPtr(comps1, row), rowPtr(comps2, row), rowPtr(comps3, row), rowPtr(comps4, row), rowPtr(comps5, row)) {
				return
			}
		}
	}
}

// archSlice resolves one required-or-optional component slice for an
// archetype. A nil slice with ok=true means "optional and absent here".
func archSlice[T any](arch *archetype, id componentId, opt set[componentId]) ([]T, bool) {
	if compData, ok := arch.componentData[id]; ok {
		return compData.([]T), true
	}
	if _, ok := opt[id]; ok {
		return nil, true
	}
	return nil, false
}

func rowPtr[T any](comps []T, r row) *T {
	if comps == nil {
		return nil
	}
	return &comps[r]
}

func identifyOptionals(ecs *Ecs, components ...any) set[componentId] {
	res := make(set[componentId])
	for _, c := range components {
		res[ecs.getComponentId(reflect.TypeOf(c))] = struct{}{}
	}
	return res
}

func identifyComponents1[A any](ecs *Ecs) componentId {
	var a A
	return ecs.getComponentId(reflect.TypeOf(a))
}

func identifyComponents2[A, B any](ecs *Ecs) (componentId, componentId) {
	var a A
	var b B
	return ecs.getComponentId(reflect.TypeOf(a)), ecs.getComponentId(reflect.TypeOf(b))
}

func identifyComponents3[A, B, C any](ecs *Ecs) (componentId, componentId, componentId) {
	var a A
	var b B
	var c C
	return ecs.getComponentId(reflect.TypeOf(a)), ecs.getComponentId(reflect.TypeOf(b)), ecs.getComponentId(reflect.TypeOf(c))
}

func identifyComponents4[A, B, C, D any](ecs *Ecs) (componentId, componentId, componentId, componentId) {
	var a A
	var b B
	var c C
	var d D
	return ecs.getComponentId(reflect.TypeOf(a)), ecs.getComponentId(reflect.TypeOf(b)), ecs.getComponentId(reflect.TypeOf(c)), ecs.getComponentId(reflect.TypeOf(d))
}

func identifyComponents5[A, B, C, D, E any](ecs *Ecs) (componentId, componentId, componentId, componentId, componentId) {
	var a A
	var b B
	var c C
	var d D
	var e E
	return ecs.getComponentId(reflect.TypeOf(a)), ecs.getComponentId(reflect.TypeOf(b)), ecs.getComponentId(reflect.TypeOf(c)), ecs.getComponentId(reflect.TypeOf(d)), ecs.getComponentId(reflect.TypeOf(e))
}
