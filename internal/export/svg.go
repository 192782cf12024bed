package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/physics"
)

// Scene is a snapshot of the playfield in screen coordinates.
type Scene struct {
	Width, Height float64
	Bodies        []dynamo.Body
	Craft         dynamo.Craft
	Win           dynamo.WinCondition
	Path          []physics.Point
}

// SceneSVG draws the scene with y pointing down, matching the playfield.
func SceneSVG(s Scene) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, s.Width, s.Height, s.Width, s.Height))

	if s.Win != nil {
		x, y, r := s.Win.Target()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#00ff66" stroke-width="2"/>
`, x, y, r))
	}

	for _, b := range s.Bodies {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#8a8aff"/>
`, b.X, b.Y, b.Radius))
	}

	if len(s.Path) >= 2 {
		sb.WriteString(`<path fill="none" stroke="#cccccc" stroke-width="1.5" stroke-dasharray="4 4" d="M`)
		for i, p := range s.Path {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// nose points along orientation, 0 = up
	rad := s.Craft.Orientation * math.Pi / 180
	nx := s.Craft.X + 12*math.Sin(rad)
	ny := s.Craft.Y - 12*math.Cos(rad)
	color := "#ffffff"
	if s.Craft.EngineOn {
		color = "#ff8800"
	}
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, s.Craft.X, s.Craft.Y, color, s.Craft.X, s.Craft.Y, nx, ny, color))

	sb.WriteString("</svg>\n")
	return sb.String()
}

func WriteSceneSVG(w io.Writer, s Scene) error {
	_, err := io.WriteString(w, SceneSVG(s))
	return err
}

func ExportSceneSVG(path string, s Scene) error {
	return writeFile(path, func(w io.Writer) error { return WriteSceneSVG(w, s) })
}
