package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/25Neil25/pulsegrid/internal/config"
	"github.com/25Neil25/pulsegrid/internal/gui"
	"github.com/25Neil25/pulsegrid/internal/tui"
)

var (
	configFile string
	preset     string

	rows         int
	cols         int
	holdMs       float64
	halfMs       float64
	waveSpeed    float64
	band         float64
	maxEmitters  int
	longPressMs  float64
	emitInterval float64

	traceDuration float64
	traceDrag     float64
	traceScript   string
	traceSave     string
	traceJSON     string
	traceSVG      string
)

// main registers commands and flags; the bare command launches the GUI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pulsegrid",
		Short: "gesture-driven generative tile instrument",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}
	addConfigFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the terminal frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addConfigFlags(tuiCmd)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run a scripted headless session and plot activity",
		RunE:  runTrace,
	}
	addConfigFlags(traceCmd)
	traceCmd.Flags().Float64Var(&traceDuration, "time", 12.0, "session length (s)")
	traceCmd.Flags().Float64Var(&traceDrag, "drag", 2.0, "drag gesture length (s)")
	traceCmd.Flags().StringVar(&traceScript, "script", "", "scenario YAML, overrides the builtin sweep")
	traceCmd.Flags().StringVar(&traceSave, "save", "", "record the run under this directory")
	traceCmd.Flags().StringVar(&traceJSON, "json", "", "export the full recording as JSON")
	traceCmd.Flags().StringVar(&traceSVG, "svg", "", "write an SVG snapshot of the final frame")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, traceCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named preset configuration")
	cmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "grid columns")
	cmd.Flags().Float64Var(&holdMs, "hold", config.DefaultHoldMs, "initial dwell (ms)")
	cmd.Flags().Float64Var(&halfMs, "half", config.DefaultHalfMs, "transition half (ms)")
	cmd.Flags().Float64Var(&waveSpeed, "wave-speed", config.DefaultWaveSpeed, "ring speed (px/ms)")
	cmd.Flags().Float64Var(&band, "band", config.DefaultActivationBand, "activation band (px)")
	cmd.Flags().IntVar(&maxEmitters, "emitters", config.DefaultMaxEmitters, "emitter cap")
	cmd.Flags().Float64Var(&longPressMs, "longpress", config.DefaultLongPressMs, "long-press threshold (ms)")
	cmd.Flags().Float64Var(&emitInterval, "emit-interval", config.DefaultEmitIntervalMs, "emission cadence (ms)")
}

// loadConfig layers preset, then config file, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
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

	if cmd.Flags().Changed("rows") {
		cfg.Rows = rows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Cols = cols
	}
	if cmd.Flags().Changed("hold") {
		cfg.HoldMs = holdMs
	}
	if cmd.Flags().Changed("half") {
		cfg.HalfMs = halfMs
	}
	if cmd.Flags().Changed("wave-speed") {
		cfg.WaveSpeed = waveSpeed
	}
	if cmd.Flags().Changed("band") {
		cfg.ActivationBand = band
	}
	if cmd.Flags().Changed("emitters") {
		cfg.MaxEmitters = maxEmitters
	}
	if cmd.Flags().Changed("longpress") {
		cfg.LongPressMs = longPressMs
	}
	if cmd.Flags().Changed("emit-interval") {
		cfg.EmitIntervalMs = emitInterval
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
