package ecs

import (
	"errors"
	"testing"

	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestRecycledSlotRejectsStaleHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %s after %s", fresh, old)
	}
	if fresh == old {
		t.Fatalf("recycled handle must differ in generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if _, ok := Get(w, old, h.Kind()); ok {
		t.Fatalf("stale handle resolved a component")
	}
	if _, ok := Get(w, fresh, h.Kind()); ok {
		t.Fatalf("fresh entity inherited a component from the destroyed one")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponent[int]().Kind()
	kb := component.NewComponent[string]().Kind()
	kc := component.NewComponent[float64]().Kind()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	steps := []func() error{
		func() error { return Add(w, e1, ka, intPtr(1)) },
		func() error { return Add(w, e2, ka, intPtr(2)) },
		func() error { return Add(w, e2, kb, stringPtr("b")) },
		func() error { return Add(w, e3, kb, stringPtr("c")) },
		func() error { return Add(w, e2, kc, float64Ptr(1.5)) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	t.Run("foreach_single", func(t *testing.T) {
		got := map[Entity]int{}
		ForEach(w, ka, func(e Entity, v *int) { got[e] = *v })
		if len(got) != 2 || got[e1] != 1 || got[e2] != 2 {
			t.Fatalf("unexpected ForEach result %v", got)
		}
	})

	t.Run("foreach2_intersection", func(t *testing.T) {
		var ents []Entity
		ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { ents = append(ents, e) })
		if len(ents) != 1 || ents[0] != e2 {
			t.Fatalf("expected only e2, got %v", ents)
		}
	})

	t.Run("foreach3_intersection", func(t *testing.T) {
		calls := 0
		ForEach3(w, ka, kb, kc, func(e Entity, a *int, b *string, c *float64) {
			calls++
			if e != e2 || *a != 2 || *b != "b" || *c != 1.5 {
				t.Fatalf("unexpected values for %s", e)
			}
		})
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("mutation_through_pointer", func(t *testing.T) {
		v, ok := Get(w, e1, ka)
		if !ok {
			t.Fatalf("expected component on e1")
		}
		*v = 42
		again, _ := Get(w, e1, ka)
		if *again != 42 {
			t.Fatalf("expected pointer semantics, got %d", *again)
		}
	})

	t.Run("remove_during_foreach", func(t *testing.T) {
		ForEach(w, kb, func(e Entity, _ *string) { Remove(w, e, kb) })
		if Count(w, kb) != 0 {
			t.Fatalf("expected all strings removed, %d left", Count(w, kb))
		}
	})

	t.Run("destroy_clears_components", func(t *testing.T) {
		DestroyEntity(w, e2)
		if Has(w, e2, ka) || Has(w, e2, kc) {
			t.Fatalf("destroyed entity kept components")
		}
		first, ok := First(w, ka)
		if !ok || first != e1 {
			t.Fatalf("expected e1 as first int holder, got %v %v", first, ok)
		}
	})
}

func TestAddRejectsNilAndInvalidKind(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if err := Add(w, e, component.NewComponent[int]().Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

type countingSystem struct {
	order *[]string
	name  string
}

func (s countingSystem) Update(w *World) {
	*s.order = append(*s.order, s.name)
	w.Events().Push(Event{Kind: EventExplosion})
}

func TestWorldUpdateRunsSystemsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(countingSystem{order: &order, name: "a"})
	w.AddSystem(nil)
	w.AddSystem(countingSystem{order: &order, name: "b"})

	w.Update()

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected system order %v", order)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected events flushed after update, got %d", w.Events().Len())
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}
