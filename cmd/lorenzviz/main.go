package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lorenzviz/internal/analysis"
	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/gui"
	"github.com/san-kum/lorenzviz/internal/lorenz"
	"github.com/san-kum/lorenzviz/internal/session"
	"github.com/san-kum/lorenzviz/internal/storage"
	"github.com/san-kum/lorenzviz/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	withAudio  bool

	dt        float64
	duration  float64
	sigma     float64
	rho       float64
	beta      float64
	seedX     float64
	seedY     float64
	seedZ     float64
	maxPoints int

	svgPlane  string
	svgWidth  int
	svgHeight int

	rhoMin     float64
	rhoMax     float64
	sweepSteps int
)

func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.DefaultConfig(), nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "lorenzviz",
		Short: "interactive Lorenz attractor visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg, withAudio)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lorenzviz", "data directory")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().BoolVar(&withAudio, "audio", false, "sonify the trajectory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run, saved to the data directory",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", 60.0, "simulated duration")
	runCmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "sigma")
	runCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "rho")
	runCmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "beta")
	runCmd.Flags().Float64Var(&seedX, "x", 0.0, "initial x")
	runCmd.Flags().Float64Var(&seedY, "y", 1.0, "initial y")
	runCmd.Flags().Float64Var(&seedZ, "z", 0.0, "initial z")
	runCmd.Flags().IntVar(&maxPoints, "max-points", config.DefaultMaxPoints, "retained point cap")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "terminal visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's coordinates over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a saved run's trajectory as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a saved run as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "write a saved run as an SVG projection to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgPlane, "plane", "xz", "projection plane (xz, xy, yz)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width in pixels")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height in pixels")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "chaos diagnostics for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("%-10s sigma=%.1f rho=%.2f beta=%.3f\n", name, p.Sigma, p.Rho, p.Beta)
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "map the Lyapunov exponent across a rho range",
		RunE:  sweepRho,
	}
	sweepCmd.Flags().Float64Var(&rhoMin, "rho-min", 0.5, "lower rho bound")
	sweepCmd.Flags().Float64Var(&rhoMax, "rho-max", 60.0, "upper rho bound")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 60, "number of samples")
	sweepCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	sweepCmd.Flags().Float64Var(&duration, "time", 40.0, "simulated duration per sample")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure integrator throughput",
		RunE:  benchKernel,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, analyzeCmd, presetsCmd, sweepCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	sess, err := session.New(session.Config{
		Params:        lorenz.Params{Sigma: sigma, Rho: rho, Beta: beta},
		Seed:          lorenz.State{X: seedX, Y: seedY, Z: seedZ},
		Dt:            dt,
		StepsPerFrame: 1,
		MaxPoints:     maxPoints,
	})
	if err != nil {
		return err
	}
	sess.Resume()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	steps := int(duration / dt)
	times := make([]float64, 0, min(steps+1, maxPoints))
	times = append(times, 0)

	fmt.Printf("integrating %d steps...\n", steps)
	start := time.Now()
	for i := 0; i < steps; i++ {
		if err := sess.Step(); err != nil {
			if errors.Is(err, session.ErrDiverged) {
				fmt.Printf("stopped early: %v\n", err)
				break
			}
			return err
		}
		times = append(times, sess.Time())
		if len(times) > maxPoints {
			times = times[1:]
		}
	}
	elapsed := time.Since(start)

	states := sess.Snapshot(nil)
	runID, err := st.Save(sess.Params(), dt, lorenz.State{X: seedX, Y: seedY, Z: seedZ}, states, times)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("retained points: %d\n", len(states))
	final := sess.State()
	fmt.Printf("final state: (%.6f, %.6f, %.6f)\n", final.X, final.Y, final.Z)
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
	fmt.Fprintln(w, "ID\tTIME\tSIGMA\tRHO\tBETA\tDT\tPOINTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2f\t%.3f\t%.4f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Sigma, run.Rho, run.Beta, run.Dt, run.Points,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))

	coords := []struct {
		name string
		get  func(lorenz.State) float64
	}{
		{"x", func(s lorenz.State) float64 { return s.X }},
		{"y", func(s lorenz.State) float64 { return s.Y }},
		{"z", func(s lorenz.State) float64 { return s.Z }},
	}
	for _, c := range coords {
		data := make([]float64, len(states))
		for i, s := range states {
			data[i] = c.get(s)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(c.name+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, times, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}
	for i, s := range states {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Y, 'f', 6, 64),
			strconv.FormatFloat(s.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, states, times)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	plane, err := storage.ParsePlane(svgPlane)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	states, _, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportSVG(os.Stdout, states, plane, svgWidth, svgHeight)
}

func sweepRho(cmd *cobra.Command, args []string) error {
	base := lorenz.DefaultParams()
	seed := lorenz.State{X: 0, Y: 1, Z: 0}

	fmt.Printf("sweeping rho over [%.2f, %.2f] in %d samples...\n", rhoMin, rhoMax, sweepSteps)
	start := time.Now()
	points := analysis.SweepRho(base, seed, rhoMin, rhoMax, sweepSteps, dt, duration)
	if points == nil {
		return fmt.Errorf("invalid sweep range")
	}
	fmt.Printf("done in %v\n\n", time.Since(start))

	data := make([]float64, len(points))
	for i, pt := range points {
		data[i] = pt.Lyapunov
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("largest Lyapunov exponent, rho %.1f..%.1f", rhoMin, rhoMax)),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RHO\tLYAPUNOV\tREGIME")
	for _, pt := range points {
		regime := "marginal"
		if pt.Lyapunov > 0.01 {
			regime = "chaotic"
		} else if pt.Lyapunov < -0.01 {
			regime = "stable"
		}
		fmt.Fprintf(w, "%.2f\t%.4f\t%s\n", pt.Rho, pt.Lyapunov, regime)
	}
	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	p := lorenz.Params{Sigma: meta.Sigma, Rho: meta.Rho, Beta: meta.Beta}
	seed := lorenz.State{X: meta.SeedX, Y: meta.SeedY, Z: meta.SeedZ}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("parameters: sigma=%.2f rho=%.2f beta=%.3f\n\n", p.Sigma, p.Rho, p.Beta)

	lambda := analysis.LyapunovExponent(p, seed, meta.Dt, 50.0, 1e-8)
	fmt.Printf("largest Lyapunov exponent: %.4f", lambda)
	if lambda > 0.01 {
		fmt.Print("  (chaotic)")
	} else if lambda < -0.01 {
		fmt.Print("  (stable)")
	}
	fmt.Println()

	if len(states) >= 16 {
		series := make([]float64, len(states))
		for i, s := range states {
			series[i] = s.X
		}
		freq := analysis.DominantFrequency(series, meta.Dt)
		fmt.Printf("dominant x frequency: %.4f\n", freq)
	}
	return nil
}

func benchKernel(cmd *cobra.Command, args []string) error {
	p := lorenz.DefaultParams()
	s := lorenz.State{X: 0, Y: 1, Z: 0}

	const steps = 5_000_000
	start := time.Now()
	for i := 0; i < steps; i++ {
		s = lorenz.Step(s, p, 0.01)
	}
	elapsed := time.Since(start)

	fmt.Printf("%d steps in %v (%.0f steps/sec)\n", steps, elapsed, steps/elapsed.Seconds())
	// keep the result observable so the loop is not optimized away
	fmt.Printf("final state: (%.4f, %.4f, %.4f)\n", s.X, s.Y, s.Z)
	return nil
}
