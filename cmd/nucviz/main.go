package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/nucviz/internal/automation"
	"github.com/san-kum/nucviz/internal/config"
	"github.com/san-kum/nucviz/internal/export"
	"github.com/san-kum/nucviz/internal/figure"
	"github.com/san-kum/nucviz/internal/logging"
	"github.com/san-kum/nucviz/internal/physics"
	"github.com/san-kum/nucviz/internal/storage"
	"github.com/san-kum/nucviz/internal/viz"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	saveFigure bool
	themeName  string
	// Deformation
	multipoleL int
	multipoleM int
	beta       float64
	r0         float64
	points     int
	preset     string
	show       bool
	// Fission
	mass   float64
	ratios []float64
	// Separation
	tablePath  string
	shellN     int
	staggering bool
	xlsxPath   string
	// Sweep
	sweepFigure string
	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
	// Output file
	outPath string
	outDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "nucviz",
		Short:         "nuclear structure figures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(logLevel, os.Stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nucviz", "data directory for saved figures")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or ini)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&saveFigure, "save", false, "archive the figure data under --data")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "surface colormap (coolwarm, viridis, gray)")

	deformCmd := &cobra.Command{
		Use:   "deform",
		Short: "surface deformation R = R0 (1 + beta Re Y_lm)",
		Args:  cobra.NoArgs,
		RunE:  runDeform,
	}
	addShapeFlags(deformCmd)
	deformCmd.Flags().IntVar(&points, "points", physics.DefaultPoints, "grid points per angle")
	deformCmd.Flags().StringVar(&outPath, "out", "", "svg output path (default <output dir>/<stem>.svg)")
	deformCmd.Flags().BoolVar(&show, "show", false, "also draw the surface in the terminal")

	fissionCmd := &cobra.Command{
		Use:   "fission",
		Short: "SEMF deformation energy vs alpha20^2",
		Args:  cobra.NoArgs,
		RunE:  runFission,
	}
	fissionCmd.Flags().Float64Var(&mass, "mass", physics.DefaultFixedMass, "fixed mass number A")
	fissionCmd.Flags().Float64SliceVar(&ratios, "ratios", physics.DefaultRatios, "Z^2/A ratios to plot")
	fissionCmd.Flags().StringVar(&outPath, "out", "", "write svg instead of the terminal chart")

	separationCmd := &cobra.Command{
		Use:   "separation",
		Short: "neutron separation energies S_n and S_2n",
		Args:  cobra.NoArgs,
		RunE:  runSeparation,
	}
	separationCmd.Flags().StringVar(&tablePath, "table", "", "binding energy table (yaml); default embedded Sn chain")
	separationCmd.Flags().IntVar(&shellN, "shell-n", physics.MagicN82, "neutron shell closure to mark (0 disables)")
	separationCmd.Flags().BoolVar(&staggering, "staggering", false, "add the three-point odd-even indicator")
	separationCmd.Flags().StringVar(&outPath, "out", "", "write svg instead of the terminal chart")
	separationCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the series to an xlsx workbook")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive surface viewer",
		Args:  cobra.NoArgs,
		RunE:  runView,
	}
	addShapeFlags(viewCmd)

	figuresCmd := &cobra.Command{
		Use:   "figures",
		Short: "list available figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := figure.NewRegistry()
			for _, name := range reg.List() {
				fmt.Printf("  %-12s %s\n", name, reg.Describe(name))
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list deformation presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tL\tM\tBETA\tSTEM")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				stem := physics.ShapeParams{L: p.L, M: p.M}.FileStem()
				fmt.Fprintf(w, "%s\t%d\t%d\t%+.2f\t%s\n", name, p.L, p.M, p.Beta, stem)
			}
			return w.Flush()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved figures",
		RunE:  listFigures,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [id]",
		Short: "plot a saved chart in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSaved,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [id]",
		Short: "export saved figure data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [id]",
		Short: "export saved figure data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportXLSXCmd := &cobra.Command{
		Use:   "export-xlsx [id]",
		Short: "export a saved chart to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  exportXLSX,
	}
	exportXLSXCmd.Flags().StringVar(&outPath, "out", "", "output path (default <id>.xlsx)")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "build the figures listed in a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "rebuild a figure across a range of one setting",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepFigure, "figure", "deformation", "figure to rebuild")
	sweepCmd.Flags().StringVar(&sweepParam, "param", "deformation.beta", "dotted config key to vary")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.5, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 6, "number of values")
	sweepCmd.Flags().StringVar(&outDir, "out-dir", "sweep", "directory for the svg frames")

	rootCmd.AddCommand(deformCmd, fissionCmd, separationCmd, viewCmd, figuresCmd, presetsCmd,
		listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportXLSXCmd, batchCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&multipoleL, "l", physics.DefaultL, "multipole order l")
	cmd.Flags().IntVar(&multipoleM, "m", physics.DefaultM, "projection m (|m| <= l)")
	cmd.Flags().Float64Var(&beta, "beta", physics.DefaultBeta, "deformation amplitude")
	cmd.Flags().Float64Var(&r0, "r0", physics.DefaultR0, "undeformed radius")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named deformation preset")
}

// loadConfig reads --config over the defaults, then applies a preset and
// any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Lookup("preset") != nil && preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}
	if changed("l") {
		cfg.Deformation.L = multipoleL
	}
	if changed("m") {
		cfg.Deformation.M = multipoleM
	}
	if changed("beta") {
		cfg.Deformation.Beta = beta
	}
	if changed("r0") {
		cfg.Deformation.R0 = r0
	}
	if changed("points") {
		cfg.Deformation.Points = points
	}
	if changed("mass") {
		cfg.Fission.Mass = mass
	}
	if changed("ratios") {
		cfg.Fission.Ratios = ratios
	}
	if changed("table") {
		cfg.Separation.Table = tablePath
	}
	if changed("shell-n") {
		cfg.Separation.ShellN = shellN
	}
	if changed("staggering") {
		cfg.Separation.Staggering = staggering
	}
	if cmd.Flags().Changed("theme") || cfg.Output.Theme == "" {
		cfg.Output.Theme = themeName
	}

	log.WithFields(log.Fields{
		"config": configFile,
		"preset": preset,
	}).Debug("configuration resolved")
	return cfg, nil
}

func build(name string, cfg *config.Config) (*figure.Figure, error) {
	return figure.NewRegistry().Build(name, cfg)
}

// printChart draws a chart figure on stdout, coloured only on a terminal.
func printChart(fig *figure.Figure, cfg *config.Config) error {
	opts := viz.DefaultChartOptions()
	if cfg.Output.Width > 0 {
		opts.Width = cfg.Output.Width
	}
	if cfg.Output.Height > 0 {
		opts.Height = cfg.Output.Height
	}
	opts.Color = viz.IsTerminal(os.Stdout)

	chart, err := viz.RenderChart(fig, opts)
	if err != nil {
		return err
	}
	fmt.Println(chart)
	fmt.Print(viz.RenderFacts(fig, opts.Color))
	return nil
}

func writeSVG(fig *figure.Figure, cfg *config.Config, path string) error {
	if err := export.WriteSVG(path, fig, viz.GetTheme(cfg.Output.Theme).Colormap); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func maybeSave(fig *figure.Figure, params map[string]string) error {
	if !saveFigure {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(fig, params)
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", id)
	return nil
}

func runDeform(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fig, err := build("deformation", cfg)
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = filepath.Join(cfg.Output.Dir, fig.Stem+".svg")
	}
	if err := writeSVG(fig, cfg, path); err != nil {
		return err
	}

	color := viz.IsTerminal(os.Stdout)
	if show {
		art, err := viz.RenderSurface(fig, nil, cfg.Output.Width, cfg.Output.Height*2, viz.GetTheme(cfg.Output.Theme), color)
		if err != nil {
			return err
		}
		fmt.Print(art)
	}
	fmt.Print(viz.RenderFacts(fig, color))

	d := cfg.Deformation
	return maybeSave(fig, map[string]string{
		"l":      strconv.Itoa(d.L),
		"m":      strconv.Itoa(d.M),
		"beta":   strconv.FormatFloat(d.Beta, 'g', -1, 64),
		"r0":     strconv.FormatFloat(d.R0, 'g', -1, 64),
		"points": strconv.Itoa(d.Points),
	})
}

func runFission(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fig, err := build("fission", cfg)
	if err != nil {
		return err
	}

	if outPath != "" {
		err = writeSVG(fig, cfg, outPath)
	} else {
		err = printChart(fig, cfg)
	}
	if err != nil {
		return err
	}

	fc := cfg.Fission
	return maybeSave(fig, map[string]string{
		"mass":    strconv.FormatFloat(fc.Mass, 'g', -1, 64),
		"ratios":  fmt.Sprint(fc.Ratios),
		"surface": strconv.FormatFloat(fc.Surface, 'g', -1, 64),
		"coulomb": strconv.FormatFloat(fc.Coulomb, 'g', -1, 64),
	})
}

func runSeparation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	table, err := cfg.BindingTable()
	if err != nil {
		return err
	}
	fig, err := figure.SeparationFromTable(table, cfg.Separation)
	if err != nil {
		return err
	}

	switch {
	case outPath != "":
		if err := writeSVG(fig, cfg, outPath); err != nil {
			return err
		}
		if err := printSeparationTable(os.Stdout, table); err != nil {
			return err
		}
	case viz.GuardDisplay(os.Stdout, os.Stdout, "use `nucviz separation --out <file>.svg` to write the figure instead."):
		if err := printChart(fig, cfg); err != nil {
			return err
		}
		if err := printSeparationTable(os.Stdout, table); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		if err := export.WriteXLSX(xlsxPath, fig); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", xlsxPath)
	}

	source := cfg.Separation.Table
	if source == "" {
		source = "embedded"
	}
	return maybeSave(fig, map[string]string{
		"table":   source,
		"shell_n": strconv.Itoa(cfg.Separation.ShellN),
	})
}

// printSeparationTable lists B, S_n and S_2n per mass number.
func printSeparationTable(out io.Writer, t *physics.Table) error {
	sn := make(map[int]float64)
	for _, p := range t.OneNeutron() {
		sn[p.A] = p.Value
	}
	s2n := make(map[int]float64)
	for _, p := range t.TwoNeutron() {
		s2n[p.A] = p.Value
	}
	cell := func(m map[int]float64, a int) string {
		if v, ok := m[a]; ok {
			return fmt.Sprintf("%.3f", v)
		}
		return "-"
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "A\tN\tB (MeV)\tS_n (MeV)\tS_2n (MeV)\t")
	for _, a := range t.MassNumbers() {
		fmt.Fprintf(w, "%d\t%d\t%.3f\t%s\t%s\t\n", a, a-t.Z, t.Binding[a], cell(sn, a), cell(s2n, a))
	}
	return w.Flush()
}

func runView(cmd *cobra.Command, args []string) error {
	if !viz.GuardDisplay(os.Stdout, os.Stdout, "use `nucviz deform --out <file>.svg` to write the figure instead.") {
		return nil
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunViewer(cfg.ShapeParams(), viz.GetTheme(cfg.Output.Theme), true)
}

func listFigures(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	figs, err := st.List()
	if err != nil {
		return err
	}
	if len(figs) == 0 {
		fmt.Println("no saved figures")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIGURE\tTIME\tKIND")
	for _, f := range figs {
		kind := "chart"
		if f.Surface {
			kind = "surface"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, f.Figure, f.Timestamp.Format("2006-01-02 15:04:05"), kind)
	}
	return w.Flush()
}

func loadSaved(id string) (*storage.FigureMetadata, *storage.Columns, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return nil, nil, err
	}
	cols, err := st.LoadSeries(id)
	if err != nil {
		return nil, nil, err
	}
	return meta, cols, nil
}

func plotSaved(cmd *cobra.Command, args []string) error {
	meta, cols, err := loadSaved(args[0])
	if err != nil {
		return err
	}
	if meta.Surface {
		return fmt.Errorf("%s is a surface; re-run deform with its parameters to draw it", meta.ID)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("figure: %s (%s)\n\n", meta.Figure, meta.ID)
	return printChart(storage.Chart(meta, cols), cfg)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, cols, err := loadSaved(args[0])
	if err != nil {
		return err
	}
	if outPath == "" {
		return storage.WriteCSV(os.Stdout, cols)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return storage.WriteCSV(f, cols)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, cols, err := loadSaved(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, cols)
}

func exportXLSX(cmd *cobra.Command, args []string) error {
	meta, cols, err := loadSaved(args[0])
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = meta.ID + ".xlsx"
	}
	if err := export.WriteXLSX(path, storage.Chart(meta, cols)); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}
	results, err := automation.RunScenario(context.Background(), scenario, figure.NewRegistry(), cfg,
		viz.GetTheme(cfg.Output.Theme).Colormap)
	for i, r := range results {
		fmt.Printf("  %d. %-12s %s\n", i+1, r.Figure.Name, r.Figure.Stem)
		for _, f := range r.Files {
			fmt.Printf("       wrote %s\n", f)
		}
		if err := maybeSave(r.Figure, r.Params()); err != nil {
			return err
		}
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sweep := &automation.ParameterSweep{
		Figure:   sweepFigure,
		Param:    sweepParam,
		Min:      sweepMin,
		Max:      sweepMax,
		NumSteps: sweepSteps,
		OutDir:   outDir,
	}
	results, err := automation.RunSweep(context.Background(), sweep, figure.NewRegistry(), cfg,
		viz.GetTheme(cfg.Output.Theme).Colormap)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tFILE\n", sweepParam)
	for _, r := range results {
		fmt.Fprintf(w, "%g\t%s\n", r.Value, r.Path)
	}
	return w.Flush()
}
