package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment overrides, e.g. ORBITLANDER_DT or
// ORBITLANDER_PROJECTION_STEPS.
const EnvPrefix = "ORBITLANDER"

// ApplyEnv overrides cfg with any ORBITLANDER_* variables that are set and
// re-validates the result.
func ApplyEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{
		"width", "height", "dt", "duration", "level", "levels_file",
		"log_level", "log_file", "theme",
		"projection.horizon", "projection.steps", "projection.stride",
	}
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return err
		}
	}

	floats := map[string]*float64{
		"width":              &cfg.Width,
		"height":             &cfg.Height,
		"dt":                 &cfg.Dt,
		"duration":           &cfg.Duration,
		"projection.horizon": &cfg.Projection.Horizon,
	}
	for k, dst := range floats {
		if v.IsSet(k) {
			*dst = v.GetFloat64(k)
		}
	}

	ints := map[string]*int{
		"projection.steps":  &cfg.Projection.Steps,
		"projection.stride": &cfg.Projection.Stride,
	}
	for k, dst := range ints {
		if v.IsSet(k) {
			*dst = v.GetInt(k)
		}
	}

	strs := map[string]*string{
		"level":       &cfg.Level,
		"levels_file": &cfg.LevelsFile,
		"log_level":   &cfg.LogLevel,
		"log_file":    &cfg.LogFile,
		"theme":       &cfg.Theme,
	}
	for k, dst := range strs {
		if v.IsSet(k) {
			*dst = v.GetString(k)
		}
	}

	return cfg.Validate()
}
