package prefabs

import "testing"

func TestLoadSpecsEmbedded(t *testing.T) {
	specs, err := LoadSpecs()
	if err != nil {
		t.Fatalf("LoadSpecs: %v", err)
	}
	if specs.Sim.GridCellSize < 8 {
		t.Fatalf("grid cell size %v smaller than weapon range", specs.Sim.GridCellSize)
	}

	tests := []struct {
		kind       string
		life       int
		weight     int
		speed      float64
		resistance float64
	}{
		{kind: "enemy1", life: 1, weight: 1, speed: 3, resistance: 0},
		{kind: "bat", life: 1, weight: 1, speed: 4, resistance: 0},
		{kind: "golem", life: 15, weight: 25, speed: 1.5, resistance: 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			a, ok := specs.Agents[tt.kind]
			if !ok {
				t.Fatalf("missing agent %q", tt.kind)
			}
			if a.Life != tt.life || a.Weight != tt.weight || a.Speed != tt.speed || a.Resistance != tt.resistance {
				t.Fatalf("agent %q = %+v", tt.kind, a)
			}
			if a.Script != "" {
				if _, err := LoadScript(a.Script); err != nil {
					t.Fatalf("script %s: %v", a.Script, err)
				}
			}
		})
	}
}

func TestWavesAt(t *testing.T) {
	waves, err := LoadSpec[WavesSpec]("waves.yaml")
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	tests := []struct {
		t     float64
		index int
	}{
		{t: 0, index: 0},
		{t: 29.9, index: 0},
		{t: 30, index: 1},
		{t: 90, index: 2},
		{t: 150, index: 3},
		{t: 500, index: 4},
		{t: 10000, index: -1},
	}
	for _, tt := range tests {
		_, idx, ok := waves.At(tt.t)
		if idx != tt.index || ok != (tt.index >= 0) {
			t.Fatalf("At(%v) = %d,%v want %d", tt.t, idx, ok, tt.index)
		}
	}
}

func TestValidateUnknownReferences(t *testing.T) {
	specs := &Specs{
		Agents:  map[string]AgentSpec{"enemy1": {Kind: "enemy1"}},
		Weapons: map[string]WeaponSpec{},
		Waves:   WavesSpec{Waves: []WaveSpec{{Kinds: []string{"dragon"}}}},
	}
	if err := specs.Validate(); err == nil {
		t.Fatalf("expected unknown agent error")
	}
	specs.Waves.Waves = nil
	specs.Sim.Player.Weapons = []string{"laser"}
	if err := specs.Validate(); err == nil {
		t.Fatalf("expected unknown weapon error")
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "grunt.tengo", want: "scripts/grunt.tengo"},
		{in: "scripts/grunt.tengo", want: "scripts/grunt.tengo"},
		{in: "prefabs/scripts/grunt.tengo", want: "scripts/grunt.tengo"},
	}
	for _, tt := range tests {
		if got := cleanScriptPath(tt.in); got != tt.want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateQueryRadii(t *testing.T) {
	base := func() *Specs {
		sim := DefaultSimSpec()
		sim.GridCellSize = 8
		return &Specs{
			Sim:     sim,
			Agents:  map[string]AgentSpec{"enemy1": {Kind: "enemy1"}},
			Weapons: map[string]WeaponSpec{"wand": {Name: "wand", Range: 8, ExplosionRadius: 2}},
		}
	}
	tests := []struct {
		name    string
		mutate  func(s *Specs)
		wantErr bool
	}{
		{name: "within one cell", mutate: func(s *Specs) {}},
		{name: "weapon range", mutate: func(s *Specs) { s.Weapons["wand"] = WeaponSpec{Name: "wand", Range: 12} }, wantErr: true},
		{name: "explosion radius", mutate: func(s *Specs) { s.Weapons["wand"] = WeaponSpec{Name: "wand", Range: 4, ExplosionRadius: 9} }, wantErr: true},
		{name: "separation radius", mutate: func(s *Specs) { s.Sim.Resolver.SeparationRadius = 8.5 }, wantErr: true},
		{name: "agent radius", mutate: func(s *Specs) { s.Agents["enemy1"] = AgentSpec{Kind: "enemy1", Radius: 7.8} }, wantErr: true},
		{name: "default cell size", mutate: func(s *Specs) {
			s.Sim.GridCellSize = 0
			s.Weapons["wand"] = WeaponSpec{Name: "wand", Range: 60}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
