package physics

import "github.com/san-kum/orbitlander/internal/dynamo"

// Point is one predicted craft position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project predicts where the craft drifts if the engine stopped now.
//
// The craft is copied and its engine forced off. Each of the steps advances
// horizon/steps seconds; bodies are resolved at the absolute time
// start+(i+1)·dt so orbiting bodies are taken at their future positions.
// The path is not truncated on collision. The result has exactly steps
// points (none when steps <= 0).
func Project(c dynamo.Craft, defs []dynamo.BodyDef, horizon float64, steps int, start float64) []Point {
	if steps <= 0 {
		return []Point{}
	}
	dt := horizon / float64(steps)
	sim := c.Clone()
	sim.EngineOn = false

	path := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		t := start + float64(i+1)*dt
		for _, d := range defs {
			ApplyGravity(&sim, d.PositionAt(t), dt)
		}
		Move(&sim, dt)
		path = append(path, Point{X: sim.X, Y: sim.Y})
	}
	return path
}

// Sample keeps every stride-th point, starting with the first.
func Sample(path []Point, stride int) []Point {
	if stride <= 1 {
		return path
	}
	out := make([]Point, 0, (len(path)+stride-1)/stride)
	for i := 0; i < len(path); i += stride {
		out = append(out, path[i])
	}
	return out
}
