// Package levels holds the built-in level catalog and a name registry.
package levels

import (
	"math"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

const (
	DefaultWidth  = 1920.0
	DefaultHeight = 1080.0
)

// All returns the built-in levels laid out on a width x height playfield.
func All(width, height float64) []dynamo.Level {
	cx, cy := width/2, height/2
	return []dynamo.Level{
		{
			Name: "Level 1",
			Bodies: []dynamo.BodyDef{
				{CenterX: cx, CenterY: cy, Radius: 30},
				{CenterX: cx, CenterY: cy, Radius: 15, Orbit: &dynamo.Orbit{Radius: 150, Speed: 0.5}},
			},
			InitialCraft: dynamo.Craft{X: 100, Y: height - 100, VX: 120, Orientation: 90, Fuel: 20},
			Win:          dynamo.CircleAnySpeed{X: width - 150, Y: 150, Radius: 50},
		},
		{
			Name:         "Level 2",
			InitialCraft: dynamo.Craft{X: cx, Y: cy, Fuel: 20},
			Win:          dynamo.CircleUnderSpeed{X: width - 150, Y: 150, Radius: 50, MaxSpeed: 2},
		},
		// two large bodies guard a narrow gap
		{
			Name: "The Gauntlet",
			Bodies: []dynamo.BodyDef{
				{CenterX: cx, CenterY: cy - 120, Radius: 45},
				{CenterX: cx, CenterY: cy + 120, Radius: 45},
				{CenterX: width * 0.8, CenterY: cy, Radius: 20},
			},
			InitialCraft: dynamo.Craft{X: 100, Y: cy, VX: 150, Orientation: 90, Fuel: 8},
			Win:          dynamo.CircleAnySpeed{X: width - 100, Y: cy, Radius: 60},
		},
		{
			Name: "Binary Stars",
			Bodies: []dynamo.BodyDef{
				{CenterX: cx, CenterY: cy, Radius: 35, Orbit: &dynamo.Orbit{Radius: 120, Speed: 0.8}},
				{CenterX: cx, CenterY: cy, Radius: 35, Orbit: &dynamo.Orbit{Radius: 120, Speed: 0.8, Phase: math.Pi}},
			},
			InitialCraft: dynamo.Craft{X: cx, Y: 80, Orientation: 180, Fuel: 15},
			Win:          dynamo.CircleUnderSpeed{X: cx, Y: height - 80, Radius: 60, MaxSpeed: 50},
		},
		// one massive body with a fast retrograde moon
		{
			Name: "Slingshot",
			Bodies: []dynamo.BodyDef{
				{CenterX: width * 0.35, CenterY: cy, Radius: 50},
				{CenterX: width * 0.35, CenterY: cy, Radius: 12, Orbit: &dynamo.Orbit{Radius: 180, Speed: -1.2}},
			},
			InitialCraft: dynamo.Craft{X: width - 120, Y: 100, VX: -80, VY: 30, Orientation: 270, Fuel: 4},
			Win:          dynamo.CircleAnySpeed{X: 120, Y: height - 120, Radius: 70},
		},
	}
}
