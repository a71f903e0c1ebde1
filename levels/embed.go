package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is the on-disk map format. Layer data is row-major: index i maps to
// x = i % Width, y = i / Width. Tile id 0 is empty.
type Level struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	TileMapping []TileMapping `json:"tileMapping"`
	Layers      []Layer       `json:"layers"`
	Spawn       *Point        `json:"spawn,omitempty"`
	Triggers    []Trigger     `json:"triggers,omitempty"`
}

type TileMapping struct {
	ID        int    `json:"id"`
	AssetName string `json:"assetName"`
	Solid     bool   `json:"solid"`
}

type Layer struct {
	Name   string `json:"name"`
	ZLevel int    `json:"zLevel"`
	Data   []int  `json:"data"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Trigger moves the player to another map when entered.
type Trigger struct {
	ID             string  `json:"id"`
	Position       Point   `json:"position"`
	TargetMap      string  `json:"targetMap"`
	TargetPosition Point   `json:"targetPosition"`
	Radius         float64 `json:"radius,omitempty"`
}

// DefaultTriggerRadius applies when a trigger leaves radius unset.
const DefaultTriggerRadius = 0.5

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level: invalid size %dx%d", lvl.Width, lvl.Height)
	}
	for i := range lvl.Triggers {
		if lvl.Triggers[i].Radius <= 0 {
			lvl.Triggers[i].Radius = DefaultTriggerRadius
		}
	}
	return &lvl, nil
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}
