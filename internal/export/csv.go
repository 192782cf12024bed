package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/physics"
	"github.com/san-kum/orbitlander/internal/round"
	"github.com/san-kum/orbitlander/internal/sim"
)

var runHeader = []string{"time", "x", "y", "vx", "vy", "speed", "orientation", "fuel", "engine_on", "outcome"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func WriteRunCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(runHeader); err != nil {
		return err
	}

	for _, s := range result.Samples {
		c := s.Craft
		row := []string{
			formatFloat(s.T),
			formatFloat(c.X),
			formatFloat(c.Y),
			formatFloat(c.VX),
			formatFloat(c.VY),
			formatFloat(c.Speed()),
			formatFloat(c.Orientation),
			formatFloat(c.Fuel),
			strconv.FormatBool(c.EngineOn),
			s.Outcome.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ExportRunCSV(path string, result *sim.Result) error {
	return writeFile(path, func(w io.Writer) error { return WriteRunCSV(w, result) })
}

// ReadRunCSV parses the output of WriteRunCSV back into samples. Body
// positions are not stored and come back empty.
func ReadRunCSV(r io.Reader) ([]sim.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(runHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		vals := make([]float64, 8)
		for j := range vals {
			if j == 5 {
				continue
			}
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i+1, runHeader[j], err)
			}
			vals[j] = v
		}
		engine, err := strconv.ParseBool(record[8])
		if err != nil {
			return nil, fmt.Errorf("row %d column engine_on: %w", i+1, err)
		}
		var outcome round.Outcome
		if err := outcome.UnmarshalText([]byte(record[9])); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		samples = append(samples, sim.Sample{
			T: vals[0],
			Craft: dynamo.Craft{
				X: vals[1], Y: vals[2], VX: vals[3], VY: vals[4],
				Orientation: vals[6], Fuel: vals[7], EngineOn: engine,
			},
			Outcome: outcome,
		})
	}

	return samples, nil
}

// WritePathCSV writes one row per projected point. Point i sits at
// start + (i+1)*dt.
func WritePathCSV(w io.Writer, points []physics.Point, start, dt float64) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "time", "x", "y"}); err != nil {
		return err
	}
	for i, p := range points {
		row := []string{
			strconv.Itoa(i),
			formatFloat(start + float64(i+1)*dt),
			formatFloat(p.X),
			formatFloat(p.Y),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ExportPathCSV(path string, points []physics.Point, start, dt float64) error {
	return writeFile(path, func(w io.Writer) error { return WritePathCSV(w, points, start, dt) })
}
