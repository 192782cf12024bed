package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlander/internal/config"
	"github.com/san-kum/orbitlander/internal/control"
	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/export"
	"github.com/san-kum/orbitlander/internal/logging"
	"github.com/san-kum/orbitlander/internal/metrics"
	"github.com/san-kum/orbitlander/internal/optim"
	"github.com/san-kum/orbitlander/internal/physics"
	"github.com/san-kum/orbitlander/internal/sim"
	"github.com/san-kum/orbitlander/internal/viz"
)

var (
	configFile string
	levelsFile string
	logLevel   string
	logFile    string
	// run
	dt          float64
	duration    float64
	preset      string
	stopOnWin   bool
	recordEvery int
	plot        bool
	csvOut      string
	jsonOut     string
	// project
	projectAt float64
	horizon   float64
	steps     int
	svgOut    string
	// play
	theme string
	// bench
	parallel int
	// solve
	headings  int
	burnMin   float64
	burnMax   float64
	burnSteps int
	startMax  float64
	starts    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlander",
		Short: "gravity lander in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return playLevel(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&levelsFile, "levels", "", "extra level pack (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	playCmd := &cobra.Command{
		Use:   "play [level]",
		Short: "play interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playLevel,
	}
	playCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "list levels",
		RunE:  listLevels,
	}

	runCmd := &cobra.Command{
		Use:   "run [level]",
		Short: "run a level headless",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLevel,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&stopOnWin, "stop-on-win", true, "stop at the first win")
	runCmd.Flags().IntVar(&recordEvery, "record-every", 1, "keep every nth sample")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot speed after the run")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "also write samples to this CSV file")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "also write the run to this JSON file")

	projectCmd := &cobra.Command{
		Use:   "project [level]",
		Short: "predict the coasting path of the initial craft",
		Args:  cobra.MaximumNArgs(1),
		RunE:  projectLevel,
	}
	projectCmd.Flags().Float64Var(&projectAt, "at", 0, "elapsed time to project from")
	projectCmd.Flags().Float64Var(&horizon, "horizon", physics.ProjectHorizon, "seconds to look ahead")
	projectCmd.Flags().IntVar(&steps, "steps", physics.ProjectSteps, "integration steps")
	projectCmd.Flags().StringVar(&svgOut, "svg", "", "write the scene to this SVG file")
	projectCmd.Flags().StringVar(&csvOut, "csv", "", "write the path to this CSV file")
	projectCmd.Flags().StringVar(&jsonOut, "json", "", "write the path to this JSON file")

	plotCmd := &cobra.Command{
		Use:   "plot [file.csv]",
		Short: "plot a run exported with run --csv",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run every level headless in parallel",
		RunE:  benchLevels,
	}
	benchCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	benchCmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	benchCmd.Flags().IntVar(&parallel, "parallel", 0, "max concurrent runs (0 = unlimited)")

	solveCmd := &cobra.Command{
		Use:   "solve [level]",
		Short: "search for a single-burn plan that reaches the target",
		Args:  cobra.MaximumNArgs(1),
		RunE:  solveLevel,
	}
	solveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	solveCmd.Flags().Float64Var(&duration, "time", 30.0, "duration of each trial")
	solveCmd.Flags().IntVar(&headings, "headings", 24, "burn headings to try")
	solveCmd.Flags().Float64Var(&burnMin, "burn-min", 0.5, "shortest burn")
	solveCmd.Flags().Float64Var(&burnMax, "burn-max", 3.0, "longest burn")
	solveCmd.Flags().IntVar(&burnSteps, "burns", 6, "burn lengths to try")
	solveCmd.Flags().Float64Var(&startMax, "start-max", 0, "latest burn start")
	solveCmd.Flags().IntVar(&starts, "starts", 1, "burn starts to try")

	presetsCmd := &cobra.Command{
		Use:   "presets [level]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.PresetLevels()
			if len(args) > 0 {
				names = args
			}
			for _, level := range names {
				presets := config.ListPresets(level)
				if len(presets) == 0 {
					fmt.Printf("no presets for level: %s\n", level)
					continue
				}
				fmt.Printf("presets for %s:\n", level)
				for _, p := range presets {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, levelsCmd, runCmd, projectCmd, plotCmd, benchCmd, solveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, then a preset, then the config file, then
// ORBITLANDER_* environment variables, then any flag the user set
// explicitly.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		level := cfg.Level
		if len(args) > 0 {
			level = args[0]
		}
		p := config.GetPreset(level, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(level))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Level = args[0]
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("levels") {
		cfg.LevelsFile = levelsFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger writes to the configured log file, or to stderr for
// headless commands. The interactive screen owns the terminal, so play
// stays silent without a log file.
func openLogger(cfg *config.Config, interactive bool) (zerolog.Logger, io.Closer, error) {
	if cfg.LogFile != "" || interactive {
		return logging.Open(cfg.LogFile, cfg.LogLevel)
	}
	return logging.New(os.Stderr, cfg.LogLevel), io.NopCloser(nil), nil
}

func playLevel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	logger, closer, err := openLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := viz.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Projection: cfg.Projection,
		Theme:      cfg.Theme,
		Logger:     logger,
	}

	all := reg.All()
	if len(args) == 0 {
		return viz.Run(viz.NewApp(all, opts))
	}

	level, err := reg.Get(args[0])
	if err != nil {
		return err
	}
	for i, l := range all {
		if l.Name == level.Name {
			return viz.Run(viz.NewAppAt(all, i, opts))
		}
	}
	return fmt.Errorf("%w: %s", dynamo.ErrUnknownLevel, args[0])
}

func listLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBODIES\tFUEL\tGOAL")
	for _, l := range reg.All() {
		goal := ""
		if l.Win != nil {
			goal = l.Win.Description()
		}
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%s\n", l.Name, len(l.Bodies), l.InitialCraft.Fuel, goal)
	}
	return w.Flush()
}

func runLevel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	level, err := reg.Get(cfg.Level)
	if err != nil {
		return err
	}
	logger, closer, err := openLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	var ctrl control.Controller = control.NewNone()
	ctrlName := "none"
	if len(cfg.Plan) > 0 {
		ctrl = control.NewFlightPlan(cfg.Plan)
		ctrlName = "plan"
	}

	runner := sim.New(ctrl)
	runner.SetLogger(logger)
	for _, m := range metrics.Default() {
		runner.AddMetric(m)
	}

	simCfg := sim.Config{
		Dt:          cfg.Dt,
		Duration:    cfg.Duration,
		StopOnWin:   stopOnWin,
		RecordEvery: recordEvery,
	}

	fmt.Printf("running %s...\n", level.Name)
	start := time.Now()

	result, err := runner.Run(context.Background(), level, simCfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("controller: %s\n", ctrlName)
	printSummary(result)

	if csvOut != "" {
		if err := export.ExportRunCSV(csvOut, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvOut)
	}
	if jsonOut != "" {
		if err := export.ExportRunJSON(jsonOut, simCfg, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonOut)
	}
	if plot {
		fmt.Println()
		fmt.Println(plotSeries(result.Samples, "speed", func(c dynamo.Craft) float64 { return c.Speed() }))
	}
	return nil
}

func printSummary(result *sim.Result) {
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("outcome: %s\n", result.Outcome())
	if result.Won {
		fmt.Printf("win time: %.3fs\n", result.WinTime)
	}
	fmt.Printf("collisions: %d\n", result.Collisions)
	fmt.Printf("final: x=%.2f y=%.2f speed=%.2f fuel=%.2f\n",
		result.Final.X, result.Final.Y, result.Final.Speed(), result.Final.Fuel)

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}
}

func plotSeries(samples []sim.Sample, caption string, value func(dynamo.Craft) float64) string {
	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = value(s.Craft)
	}
	if len(data) == 0 {
		data = []float64{0}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

func projectLevel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	level, err := reg.Get(cfg.Level)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("horizon") {
		horizon = cfg.Projection.Horizon
	}
	if !cmd.Flags().Changed("steps") {
		steps = cfg.Projection.Steps
	}

	craft := level.InitialCraft.Clone()
	path := physics.Project(craft, level.Bodies, horizon, steps, projectAt)

	fmt.Printf("level: %s\n", level.Name)
	fmt.Printf("points: %d over %.2fs\n", len(path), horizon)
	if len(path) > 0 {
		end := path[len(path)-1]
		fmt.Printf("end: x=%.2f y=%.2f\n", end.X, end.Y)
	}

	if svgOut != "" {
		scene := export.Scene{
			Width:  cfg.Width,
			Height: cfg.Height,
			Bodies: dynamo.BodiesAt(level.Bodies, projectAt),
			Craft:  craft,
			Win:    level.Win,
			Path:   path,
		}
		if err := export.ExportSceneSVG(svgOut, scene); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	if csvOut != "" {
		stepDt := 0.0
		if steps > 0 {
			stepDt = horizon / float64(steps)
		}
		if err := export.ExportPathCSV(csvOut, path, projectAt, stepDt); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvOut)
	}
	if jsonOut != "" {
		data := export.PathData{
			Level:   level.Name,
			Start:   projectAt,
			Horizon: horizon,
			Steps:   steps,
			Craft:   craft,
			Points:  path,
		}
		if err := export.ExportPathJSON(jsonOut, data); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonOut)
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	samples, err := export.ReadRunCSV(file)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	last := samples[len(samples)-1]
	fmt.Printf("file: %s\n", args[0])
	fmt.Printf("samples: %d over %.2fs\n", len(samples), last.T)
	fmt.Printf("final outcome: %s\n\n", last.Outcome)

	series := []struct {
		caption string
		value   func(dynamo.Craft) float64
	}{
		{"x position", func(c dynamo.Craft) float64 { return c.X }},
		{"y position", func(c dynamo.Craft) float64 { return c.Y }},
		{"speed", func(c dynamo.Craft) float64 { return c.Speed() }},
		{"fuel", func(c dynamo.Craft) float64 { return c.Fuel }},
	}
	for _, s := range series {
		fmt.Println(plotSeries(samples, s.caption, s.value))
		fmt.Println()
	}

	return nil
}

func benchLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	logger, closer, err := openLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	batch := sim.NewBatch(func() *sim.Runner {
		r := sim.New(control.NewNone())
		r.SetLogger(logger)
		for _, m := range metrics.Default() {
			r.AddMetric(m)
		}
		return r
	}, parallel)

	simCfg := sim.Config{Dt: cfg.Dt, Duration: cfg.Duration, RecordEvery: 0}
	all := reg.All()

	start := time.Now()
	results, err := batch.Run(context.Background(), all, simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("benchmarking %d levels, %.1fs at dt=%.4fs\n\n", len(all), cfg.Duration, cfg.Dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tSTEPS\tOUTCOME\tCRASHES\tMAX SPEED\tCLOSEST")
	total := 0
	for i, r := range results {
		total += r.StepsTaken
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%.2f\t%.2f\n",
			all[i].Name, r.StepsTaken, r.Outcome(), r.Collisions,
			r.Metrics["max_speed"], r.Metrics["closest_approach"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d steps in %v (%.0f steps/sec)\n", total, elapsed, float64(total)/elapsed.Seconds())
	return nil
}

func solveLevel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	level, err := reg.Get(cfg.Level)
	if err != nil {
		return err
	}
	if headings <= 0 || burnSteps <= 0 || starts <= 0 {
		return fmt.Errorf("%w: headings, burns and starts must be positive", dynamo.ErrInvalidConfig)
	}

	orientations := make([]float64, headings)
	for i := range orientations {
		orientations[i] = 360 * float64(i) / float64(headings)
	}

	fmt.Printf("searching %d plans on %s...\n", headings*burnSteps*starts, level.Name)
	start := time.Now()

	simCfg := sim.Config{Dt: cfg.Dt, Duration: cfg.Duration}
	sol, err := optim.SolveSingleBurn(context.Background(), level, simCfg,
		optim.Linspace(0, startMax, starts),
		optim.Linspace(burnMin, burnMax, burnSteps),
		orientations,
	)
	if err != nil {
		return err
	}

	fmt.Printf("completed %d trials in %v\n", sol.Evaluations, time.Since(start))
	if sol.Won {
		fmt.Printf("wins after %.2fs\n\n", sol.Score+cfg.Duration+1)
	} else {
		fmt.Printf("no winning plan, closest miss %.1f px\n\n", sol.Score)
	}

	out, err := yaml.Marshal(map[string][]control.Burn{"plan": {sol.Burn}})
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
