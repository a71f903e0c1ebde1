package system

import (
	"testing"

	"github.com/g-brrzzn/IsoSurvivor/ecs"
	"github.com/jakecoffman/cp"
)

func TestApplyKnockbackResistance(t *testing.T) {
	tests := []struct {
		name       string
		resistance float64
		force      cp.Vector
		want       cp.Vector
	}{
		{name: "no resistance", resistance: 0, force: cp.Vector{X: 3, Y: -1}, want: cp.Vector{X: 3, Y: -1}},
		{name: "half resistance", resistance: 0.5, force: cp.Vector{X: 3, Y: -1}, want: cp.Vector{X: 1.5, Y: -0.5}},
		{name: "golem", resistance: 0.75, force: cp.Vector{X: 4}, want: cp.Vector{X: 1}},
		{name: "immune", resistance: 1, force: cp.Vector{X: 4}, want: cp.Vector{}},
		{name: "clamped above one", resistance: 2, force: cp.Vector{X: 4}, want: cp.Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			env := newTestEnv()
			e := mustAgent(t, w, env, "walker", 0, 0)
			agentOf(t, w, e).Resistance = tt.resistance

			if !ApplyKnockback(w, e, tt.force) {
				t.Fatalf("ApplyKnockback returned false")
			}
			if got := knockbackOf(t, w, e); !near(got, tt.want) {
				t.Fatalf("knockback = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyKnockbackAccumulates(t *testing.T) {
	w := ecs.NewWorld()
	env := newTestEnv()
	e := mustAgent(t, w, env, "walker", 0, 0)
	ApplyKnockback(w, e, cp.Vector{X: 1})
	ApplyKnockback(w, e, cp.Vector{Y: 2})
	if got := knockbackOf(t, w, e); !near(got, cp.Vector{X: 1, Y: 2}) {
		t.Fatalf("knockback = %v", got)
	}
}

func TestKnockbackDecaysMonotonically(t *testing.T) {
	w := ecs.NewWorld()
	env := newTestEnv()
	e := mustAgent(t, w, env, "walker", 0, 0)
	ApplyKnockback(w, e, cp.Vector{X: 10, Y: 5})
	move := NewMovementSystem(env)

	prev := knockbackOf(t, w, e).Length()
	initial := prev
	for i := 0; i < 120; i++ {
		step(w, env, move)
		cur := knockbackOf(t, w, e).Length()
		if cur >= prev {
			t.Fatalf("tick %d: knockback %v did not decrease from %v", i, cur, prev)
		}
		prev = cur
	}
	if prev <= 0 || prev > initial*0.01 {
		t.Fatalf("knockback after 120 ticks = %v, want small but non-zero", prev)
	}
}

func TestDecayKnockbackClampsLongFrames(t *testing.T) {
	got := decayKnockback(cp.Vector{X: 2}, 5, 1)
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("decay with friction*dt > 1 = %v, want zero", got)
	}
}

func TestApplyAreaImpulse(t *testing.T) {
	w := ecs.NewWorld()
	env := newTestEnv()
	right := mustAgent(t, w, env, "walker", 1, 0)
	center := mustAgent(t, w, env, "walker", 0, 0)
	far := mustAgent(t, w, env, "walker", 3, 0)
	heavy := mustAgent(t, w, env, "heavy", 0, -1)
	NewSpatialIndexSystem(env).Update(w)

	n := ApplyAreaImpulse(w, env.Grid, cp.Vector{}, 2, 4)
	if n != 3 {
		t.Fatalf("affected = %d, want 3", n)
	}
	if got := knockbackOf(t, w, right); !near(got, cp.Vector{X: 2}) {
		t.Fatalf("right knockback = %v, want (2,0)", got)
	}
	if got := knockbackOf(t, w, center); !near(got, cp.Vector{Y: -4}) {
		t.Fatalf("centre knockback = %v, want (0,-4)", got)
	}
	if got := knockbackOf(t, w, far); !near(got, cp.Vector{}) {
		t.Fatalf("far knockback = %v, want zero", got)
	}
	if got := knockbackOf(t, w, heavy); !near(got, cp.Vector{Y: -1}) {
		t.Fatalf("heavy knockback = %v, want (0,-1)", got)
	}
}

func TestDamageMarksRemoved(t *testing.T) {
	w := ecs.NewWorld()
	env := newTestEnv()
	e := mustAgent(t, w, env, "walker", 0, 0)

	if Damage(w, e, 1) {
		t.Fatalf("first hit should not kill a 2-life agent")
	}
	if !Damage(w, e, 1) {
		t.Fatalf("second hit should kill")
	}
	if !agentOf(t, w, e).Removed {
		t.Fatalf("agent not marked removed")
	}
	if Damage(w, e, 1) {
		t.Fatalf("removed agent should not die twice")
	}
	if ApplyKnockback(w, e, cp.Vector{X: 1}) {
		t.Fatalf("removed agent should not take knockback")
	}
}
