package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/physics"
	"github.com/san-kum/orbitlander/internal/sim"
)

type RunData struct {
	Level      string             `json:"level"`
	RoundID    string             `json:"round_id"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Outcome    string             `json:"outcome"`
	WinTime    float64            `json:"win_time,omitempty"`
	Collisions int                `json:"collisions"`
	Final      dynamo.Craft       `json:"final"`
	Events     []sim.Event        `json:"events"`
	Samples    []sim.Sample       `json:"samples"`
	Metrics    map[string]float64 `json:"metrics"`
}

func NewRunData(cfg sim.Config, result *sim.Result) RunData {
	return RunData{
		Level:      result.Level,
		RoundID:    result.RoundID,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Steps:      result.StepsTaken,
		Outcome:    result.Outcome().String(),
		WinTime:    result.WinTime,
		Collisions: result.Collisions,
		Final:      result.Final,
		Events:     result.Events,
		Samples:    result.Samples,
		Metrics:    result.Metrics,
	}
}

func WriteRunJSON(w io.Writer, cfg sim.Config, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewRunData(cfg, result))
}

func ExportRunJSON(path string, cfg sim.Config, result *sim.Result) error {
	return writeFile(path, func(w io.Writer) error { return WriteRunJSON(w, cfg, result) })
}

// PathData is a projected trajectory together with what produced it.
type PathData struct {
	Level   string          `json:"level"`
	Start   float64         `json:"start"`
	Horizon float64         `json:"horizon"`
	Steps   int             `json:"steps"`
	Craft   dynamo.Craft    `json:"craft"`
	Points  []physics.Point `json:"points"`
}

func WritePathJSON(w io.Writer, data PathData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportPathJSON(path string, data PathData) error {
	return writeFile(path, func(w io.Writer) error { return WritePathJSON(w, data) })
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
