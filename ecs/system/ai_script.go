package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/g-brrzzn/IsoSurvivor/ecs/component"
	"github.com/g-brrzzn/IsoSurvivor/prefabs"
)

// steeringScript is a compiled tengo policy. The script reads dist,
// life_ratio and has_path and may assign mode, path_weight and
// separation_weight.
type steeringScript struct {
	path     string
	compiled *tengo.Compiled
}

type steeringInput struct {
	Dist      float64
	LifeRatio float64
	HasPath   bool
}

type steeringOutput struct {
	Mode             component.SteerMode
	PathWeight       float64
	SeparationWeight float64
}

func compileSteeringScript(path string) (*steeringScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("ai: load script %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("dist", 0.0)
	_ = script.Add("life_ratio", 1.0)
	_ = script.Add("has_path", false)
	_ = script.Add("mode", "")
	_ = script.Add("path_weight", 0.0)
	_ = script.Add("separation_weight", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile script %s: %w", path, err)
	}
	return &steeringScript{path: path, compiled: compiled}, nil
}

// run evaluates the policy. Globals the script leaves alone keep the values
// from def.
func (s *steeringScript) run(in steeringInput, def steeringOutput) (steeringOutput, error) {
	if s == nil || s.compiled == nil {
		return def, fmt.Errorf("nil steering script")
	}
	c := s.compiled
	for name, value := range map[string]any{
		"dist":              in.Dist,
		"life_ratio":        in.LifeRatio,
		"has_path":          in.HasPath,
		"mode":              string(def.Mode),
		"path_weight":       def.PathWeight,
		"separation_weight": def.SeparationWeight,
	} {
		if err := c.Set(name, value); err != nil {
			return def, err
		}
	}
	if err := c.Run(); err != nil {
		return def, err
	}

	out := def
	if mode, ok := parseSteerMode(c.Get("mode").String()); ok {
		out.Mode = mode
	}
	if v := c.Get("path_weight").Float(); v >= 0 {
		out.PathWeight = v
	}
	if v := c.Get("separation_weight").Float(); v >= 0 {
		out.SeparationWeight = v
	}
	return out, nil
}

func parseSteerMode(s string) (component.SteerMode, bool) {
	switch component.SteerMode(strings.ToLower(strings.TrimSpace(s))) {
	case component.SteerPath:
		return component.SteerPath, true
	case component.SteerDirect:
		return component.SteerDirect, true
	case component.SteerHold:
		return component.SteerHold, true
	}
	return "", false
}
