package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/podforge/podmodel/internal/catalog"
	"github.com/podforge/podmodel/internal/component"
	"github.com/podforge/podmodel/internal/config"
	"github.com/podforge/podmodel/internal/curve"
	"github.com/podforge/podmodel/internal/drivetrain"
	"github.com/podforge/podmodel/internal/export"
	"github.com/podforge/podmodel/internal/storage"
	"github.com/podforge/podmodel/internal/sweep"
	"github.com/podforge/podmodel/internal/tui"
)

var (
	dataDir    string
	inFlags    []string
	optFlags   []string
	configFile string
	preset     string
	curvePath  string
	svgPath    string
	// Sweep parameters
	sweepInput  string
	sweepOutput string
	sweepFrom   float64
	sweepTo     float64
	sweepSteps  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "podmodel",
		Short: "pod design analysis components",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".podmodel", "data directory")

	evalCmd := &cobra.Command{
		Use:   "eval [component]",
		Short: "evaluate a component",
		Args:  cobra.ExactArgs(1),
		RunE:  evalComponent,
	}
	evalCmd.Flags().StringArrayVar(&inFlags, "in", nil, "input binding name=value (repeatable)")
	evalCmd.Flags().StringArrayVar(&optFlags, "opt", nil, "option binding name=value (repeatable)")
	evalCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	evalCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	evalCmd.Flags().StringVar(&curvePath, "curve", "", "discharge curve csv (battery)")

	componentsCmd := &cobra.Command{
		Use:   "components [name]",
		Short: "list components or show one component's ports",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listComponents,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [component]",
		Short: "sweep one input and plot one output",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepComponent,
	}
	sweepCmd.Flags().StringVar(&sweepInput, "input", "", "input to vary")
	sweepCmd.Flags().StringVar(&sweepOutput, "output", "", "output to collect")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "range start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "range end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 50, "number of evaluations")
	sweepCmd.Flags().StringArrayVar(&inFlags, "in", nil, "fixed input binding name=value (repeatable)")
	sweepCmd.Flags().StringArrayVar(&optFlags, "opt", nil, "option binding name=value (repeatable)")
	sweepCmd.Flags().StringVar(&curvePath, "curve", "", "discharge curve csv (battery)")
	sweepCmd.Flags().StringVar(&svgPath, "svg", "", "also write the series as an svg plot")
	_ = sweepCmd.MarkFlagRequired("input")
	_ = sweepCmd.MarkFlagRequired("output")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot a discharge curve",
		RunE:  plotCurve,
	}
	curveCmd.Flags().StringVar(&curvePath, "csv", "", "curve csv path (default: bundled 18650 table)")
	curveCmd.Flags().StringVar(&svgPath, "svg", "", "also write the curve as an svg plot")

	presetsCmd := &cobra.Command{
		Use:   "presets [component]",
		Short: "list preset scenarios for a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for component: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive component explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(evalCmd, componentsCmd, listCmd, showCmd, sweepCmd, curveCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseBindings turns repeated name=value flags into a value map.
func parseBindings(flags []string) (map[string]float64, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(flags))
	for _, f := range flags {
		name, valStr, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("binding %q is not name=value", f)
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %v", f, err)
		}
		out[name] = val
	}
	return out, nil
}

// resolve builds the component, inputs and options for a command
// invocation. Precedence over declared defaults: preset, then config
// file, then --in/--opt flags.
func resolve(name string) (component.Component, component.Values, map[string]float64, error) {
	registry := catalog.NewRegistry()
	comp, err := registry.Get(name)
	if err != nil {
		return nil, nil, nil, err
	}

	inputs := catalog.DefaultInputs(comp)
	options := make(map[string]float64)

	apply := func(cfg *config.Config) {
		for k, v := range cfg.Inputs {
			inputs[k] = v
		}
		for k, v := range cfg.Options {
			options[k] = v
		}
		if cfg.Curve != "" && curvePath == "" {
			curvePath = cfg.Curve
		}
	}

	if preset != "" {
		cfg := config.GetPreset(name, preset)
		if cfg == nil {
			return nil, nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		apply(cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Component != "" && cfg.Component != name {
			return nil, nil, nil, fmt.Errorf("config is for component %s, not %s", cfg.Component, name)
		}
		apply(cfg)
	}

	flagInputs, err := parseBindings(inFlags)
	if err != nil {
		return nil, nil, nil, err
	}
	for k, v := range flagInputs {
		inputs[k] = v
	}

	flagOptions, err := parseBindings(optFlags)
	if err != nil {
		return nil, nil, nil, err
	}
	for k, v := range flagOptions {
		options[k] = v
	}

	if err := catalog.Configure(comp, options); err != nil {
		return nil, nil, nil, err
	}

	if b, ok := comp.(*drivetrain.Battery); ok && curvePath != "" {
		b.CurvePath = curvePath
	}

	return comp, inputs, options, nil
}

func evalComponent(cmd *cobra.Command, args []string) error {
	comp, inputs, options, err := resolve(args[0])
	if err != nil {
		return err
	}

	outputs, err := comp.Evaluate(inputs)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(comp.Name(), inputs, options, outputs)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n\n", runID)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range comp.Outputs() {
		fmt.Fprintf(w, "%s\t%.6g\t%s\n", p.Name, outputs[p.Name], p.Units)
	}
	return w.Flush()
}

func listComponents(cmd *cobra.Command, args []string) error {
	registry := catalog.NewRegistry()

	if len(args) == 1 {
		comp, err := registry.Get(args[0])
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "KIND\tNAME\tUNITS\tDEFAULT\tDESC\n")
		for _, p := range comp.Inputs() {
			fmt.Fprintf(w, "input\t%s\t%s\t%g\t%s\n", p.Name, p.Units, p.Default, p.Desc)
		}
		for _, p := range comp.Outputs() {
			fmt.Fprintf(w, "output\t%s\t%s\t\t%s\n", p.Name, p.Units, p.Desc)
		}
		if cfg, ok := comp.(component.Configurable); ok {
			defaults := cfg.GetOptions()
			for _, p := range cfg.Options() {
				fmt.Fprintf(w, "option\t%s\t%s\t%g\t%s\n", p.Name, p.Units, defaults[p.Name], p.Desc)
			}
		}
		return w.Flush()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINPUTS\tOUTPUTS")
	for _, name := range registry.List() {
		comp, err := registry.Get(name)
		if err != nil {
			return err
		}
		in := make([]string, 0, len(comp.Inputs()))
		for _, p := range comp.Inputs() {
			in = append(in, p.Name)
		}
		out := make([]string, 0, len(comp.Outputs()))
		for _, p := range comp.Outputs() {
			out = append(out, p.Name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(in, ","), strings.Join(out, ","))
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tCOMPONENT\tTIME\tOUTPUTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.ID,
			run.Component,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Outputs),
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func sweepComponent(cmd *cobra.Command, args []string) error {
	comp, inputs, options, err := resolve(args[0])
	if err != nil {
		return err
	}

	s := &sweep.Sweep{
		Component: comp,
		Input:     sweepInput,
		Output:    sweepOutput,
		From:      sweepFrom,
		To:        sweepTo,
		Steps:     sweepSteps,
		Fixed:     inputs,
	}

	res, err := s.Run()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(comp.Name(), inputs, options, map[string]float64{})
	if err != nil {
		return err
	}
	if err := st.SaveSeries(runID, sweepInput, sweepOutput, res.Xs, res.Ys); err != nil {
		return err
	}

	fmt.Printf("run id: %s\n\n", runID)
	graph := asciigraph.Plot(res.Ys,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s vs %s [%g, %g]", sweepOutput, sweepInput, sweepFrom, sweepTo)),
	)
	fmt.Println(graph)

	if svgPath != "" {
		if err := export.WriteSeriesSVG(svgPath, res.Xs, res.Ys, sweepInput, sweepOutput); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgPath)
	}
	return nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	var dis *curve.Discharge
	var err error
	if curvePath != "" {
		dis, err = curve.Load(curvePath)
	} else {
		dis, err = drivetrain.ReferenceCurve()
	}
	if err != nil {
		return err
	}

	// Sample the fitted spline rather than the raw rows so the plot
	// shows what battery sizing actually integrates.
	const samples = 120
	depths := make([]float64, samples)
	data := make([]float64, samples)
	for i := range data {
		depths[i] = dis.MaxDepth() * float64(i) / float64(samples-1)
		data[i] = dis.Voltage(depths[i])
	}

	energy, err := dis.Energy(dis.MaxDepth())
	if err != nil {
		return err
	}

	fmt.Printf("rows: %d  depth: 0..%.0f mAh  full-discharge energy: %.2f Wh\n\n",
		len(dis.Depths), dis.MaxDepth(), energy)
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("cell voltage vs depth of discharge"),
	)
	fmt.Println(graph)

	if svgPath != "" {
		if err := export.WriteSeriesSVG(svgPath, depths, data, "depth of discharge (mAh)", "cell voltage (V)"); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgPath)
	}
	return nil
}
