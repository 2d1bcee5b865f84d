package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/thermolab/internal/batch"
	"github.com/san-kum/thermolab/internal/config"
	"github.com/san-kum/thermolab/internal/export"
	"github.com/san-kum/thermolab/internal/lab"
	"github.com/san-kum/thermolab/internal/storage"
	"github.com/san-kum/thermolab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	temp       float64
	massU      float64
	particles  float64
	emissivity float64
	area       float64
	tempLow    float64
	tempHigh   float64
	cutoffKT   float64
	points     int
	quadRule   string
	configFile string
	preset     string
	// export-svg
	svgOut   string
	svgScale float64
	svgCurve bool
	jsonOut  string
	// sweep
	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
	sweepMetric string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "thermolab",
		Short: "statistical thermodynamics teaching lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given
			registry := lab.NewRegistry()
			rule, err := registry.GetRule(config.DefaultRule)
			if err != nil {
				return err
			}
			return viz.RunInteractive(registry, config.DefaultConfig().StudyConfig(), rule)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".thermolab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [study]",
		Short: "run a study and persist the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runStudy,
	}
	addParamFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&jsonOut, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a saved run to an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 4.0, "pixels per braille dot")
	exportSVGCmd.Flags().BoolVar(&svgCurve, "curve", false, "render a smooth polyline instead of the braille canvas")

	compareCmd := &cobra.Command{
		Use:   "compare [study] [rule1] [rule2] ...",
		Short: "compare quadrature rules on the same study",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareRules,
	}
	addParamFlags(compareCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [study]",
		Short: "list available presets for a study",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for study: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [study]",
		Short: "run a study with live parameter tuning",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addParamFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	walkthroughCmd := &cobra.Command{
		Use:   "walkthrough",
		Short: "guided derivation of the Boltzmann distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunWalkthrough()
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [study]",
		Short: "sweep one parameter and track a metric",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "temperature", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 100, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1000, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of sweep points")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "mean_kt", "metric to collect")
	sweepCmd.Flags().StringVar(&quadRule, "quad", config.DefaultRule, "quadrature rule")
	sweepCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd,
		exportJSONCmd, exportSVGCmd, compareCmd, presetsCmd, liveCmd,
		walkthroughCmd, batchCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&temp, "temp", config.DefaultTemperature, "temperature in kelvin")
	cmd.Flags().Float64Var(&massU, "mass", config.DefaultMassU, "particle mass in atomic mass units")
	cmd.Flags().Float64Var(&particles, "particles", config.DefaultParticles, "particle count for the entropy model")
	cmd.Flags().Float64Var(&emissivity, "emissivity", config.DefaultEmissivity, "surface emissivity")
	cmd.Flags().Float64Var(&area, "area", config.DefaultArea, "surface area in m^2")
	cmd.Flags().Float64Var(&tempLow, "t1", config.DefaultTempLow, "radiation band lower temperature")
	cmd.Flags().Float64Var(&tempHigh, "t2", config.DefaultTempHigh, "radiation band upper temperature")
	cmd.Flags().Float64Var(&cutoffKT, "e0", config.DefaultCutoffKT, "fraction cutoff energy in units of kT")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	cmd.Flags().StringVar(&quadRule, "quad", config.DefaultRule, "quadrature rule")
}

// buildConfig resolves the effective configuration for a study run.
// Precedence, lowest first: defaults, preset, config file, CLI flags.
func buildConfig(cmd *cobra.Command, study string) (lab.Config, string, error) {
	base := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(study, preset)
		if p == nil {
			return lab.Config{}, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(study))
		}
		base = p.Applied()
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return lab.Config{}, "", fmt.Errorf("failed to load config: %w", err)
		}
		base = fileCfg
	}

	cfg := base.StudyConfig()
	rule := base.Rule

	flagBind := []struct {
		flag string
		dst  *float64
		src  float64
	}{
		{"temp", &cfg.Temperature, temp},
		{"mass", &cfg.MassU, massU},
		{"particles", &cfg.Particles, particles},
		{"emissivity", &cfg.Emissivity, emissivity},
		{"area", &cfg.Area, area},
		{"t1", &cfg.TempLow, tempLow},
		{"t2", &cfg.TempHigh, tempHigh},
		{"e0", &cfg.CutoffKT, cutoffKT},
	}
	for _, b := range flagBind {
		if cmd.Flags().Changed(b.flag) {
			*b.dst = b.src
		}
	}
	if cmd.Flags().Changed("points") {
		cfg.Points = points
	}
	if cmd.Flags().Changed("quad") {
		rule = quadRule
	}

	return cfg, rule, nil
}

func runStudy(cmd *cobra.Command, args []string) error {
	studyName := args[0]

	cfg, ruleName, err := buildConfig(cmd, studyName)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := lab.NewRegistry()
	study, err := registry.GetStudy(studyName)
	if err != nil {
		return err
	}
	rule, err := registry.GetRule(ruleName)
	if err != nil {
		return err
	}

	fmt.Printf("running %s study...\n", studyName)
	start := time.Now()

	result, err := study.Run(context.Background(), cfg, rule)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(ruleName, cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.X))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTUDY\tTIME\tRULE\tPOINTS\tTEMP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.0fK\n",
			run.ID,
			run.Study,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rule,
			run.Points,
			run.Params["temperature"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	xLabel, xs, series, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(xs) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("study: %s\n", meta.Study)
	fmt.Printf("samples: %d\n\n", len(xs))

	for _, s := range series {
		graph := asciigraph.Plot(s.Y,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vs %s", s.Label, xLabel)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	xLabel, xs, series, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	if len(xs) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{xLabel}
	for _, s := range series {
		header = append(header, s.Label)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range xs {
		row := []string{strconv.FormatFloat(xs[i], 'g', 10, 64)}
		for _, s := range series {
			val := 0.0
			if i < len(s.Y) {
				val = s.Y[i]
			}
			row = append(row, strconv.FormatFloat(val, 'g', 10, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	xLabel, xs, series, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	result := &lab.Result{
		Study:   meta.Study,
		XLabel:  xLabel,
		X:       xs,
		Series:  series,
		Metrics: meta.Metrics,
	}

	cfg := lab.Config{Points: meta.Points}
	for _, spec := range paramSpecsFromMeta(meta) {
		cfg.SetParam(spec, meta.Params[spec.Name])
	}

	if jsonOut != "" {
		if err := export.ExportJSON(jsonOut, meta.Rule, cfg, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonOut)
		return nil
	}
	return export.ExportJSONStdout(meta.Rule, cfg, result)
}

// paramSpecsFromMeta rebuilds unbounded specs so stored values pass
// through SetParam unchanged.
func paramSpecsFromMeta(meta *storage.RunMetadata) []lab.ParamSpec {
	specs := make([]lab.ParamSpec, 0, len(meta.Params))
	for name, v := range meta.Params {
		specs = append(specs, lab.ParamSpec{Name: name, Min: v, Max: v})
	}
	return specs
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	xLabel, xs, series, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(xs) == 0 {
		return fmt.Errorf("no data to render")
	}

	result := &lab.Result{
		Study:   meta.Study,
		XLabel:  xLabel,
		X:       xs,
		Series:  series,
		Metrics: meta.Metrics,
	}

	var svg string
	if svgCurve {
		if len(result.Series) == 0 {
			return fmt.Errorf("no data to render")
		}
		svg = export.CurveToSVG(result.X, result.Series[0].Y,
			int(100*svgScale*2), int(30*svgScale*4), "#00ff00")
	} else {
		// Radiation runs shade the integrated band.
		bandLo := meta.Metrics["band_low"]
		bandHi := meta.Metrics["band_high"]

		canvas := viz.RenderResult(result, 100, 30, bandLo, bandHi)
		svg = export.CanvasToSVG(canvas, svgScale)
	}

	out := svgOut
	if out == "" {
		out = runID + ".svg"
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}

func compareRules(cmd *cobra.Command, args []string) error {
	studyName := args[0]
	ruleNames := args[1:]

	cfg, _, err := buildConfig(cmd, studyName)
	if err != nil {
		return err
	}

	registry := lab.NewRegistry()
	study, err := registry.GetStudy(studyName)
	if err != nil {
		return err
	}

	fmt.Printf("comparing quadrature rules for %s (points=%d)\n\n", studyName, cfg.Points)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tNORMALIZATION\tMEAN\tTIME")

	for _, name := range ruleNames {
		rule, err := registry.GetRule(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		start := time.Now()
		result, err := study.Run(context.Background(), cfg, rule)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		norm := result.Metrics["normalization"]
		mean := firstMetric(result.Metrics, "mean_kt", "mean_speed", "radiated_energy", "fraction_at_e0")
		fmt.Fprintf(w, "%s\t%.8f\t%.6g\t%v\n", name, norm, mean, elapsed)
	}

	return w.Flush()
}

func firstMetric(metrics map[string]float64, names ...string) float64 {
	for _, n := range names {
		if v, ok := metrics[n]; ok {
			return v
		}
	}
	return 0
}

func runLive(cmd *cobra.Command, args []string) error {
	studyName := args[0]

	cfg, ruleName, err := buildConfig(cmd, studyName)
	if err != nil {
		return err
	}

	registry := lab.NewRegistry()
	study, err := registry.GetStudy(studyName)
	if err != nil {
		return err
	}
	rule, err := registry.GetRule(ruleName)
	if err != nil {
		return err
	}

	return viz.RunLive(study, cfg, rule)
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := batch.LoadScenario(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Println(scenario.Description)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	results, err := batch.RunScenario(context.Background(), scenario, lab.NewRegistry(), st)
	if err != nil {
		return err
	}

	fmt.Printf("\n%d steps complete\n", len(results))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweep := &batch.ParameterSweep{
		Study:     args[0],
		Rule:      quadRule,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
		Points:    points,
		Metric:    sweepMetric,
	}

	results, err := batch.RunSweep(context.Background(), sweep, lab.NewRegistry())
	if err != nil {
		return err
	}

	if len(results) < 2 {
		return nil
	}

	data := make([]float64, len(results))
	for i, r := range results {
		data[i] = r.MetricValue
	}

	fmt.Println()
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", sweepMetric, sweepParam)),
	)
	fmt.Println(graph)

	return nil
}
