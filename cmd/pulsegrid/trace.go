package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/25Neil25/pulsegrid/internal/engine"
	"github.com/25Neil25/pulsegrid/internal/export"
	"github.com/25Neil25/pulsegrid/internal/geom"
	"github.com/25Neil25/pulsegrid/internal/metrics"
	"github.com/25Neil25/pulsegrid/internal/script"
	"github.com/25Neil25/pulsegrid/internal/session"
	"github.com/25Neil25/pulsegrid/internal/shapes"
)

// runTrace plays a gesture scenario against a headless engine and reports
// how the activation wave moved through the grid. Useful for eyeballing a
// preset or a scripted session before playing it live.
func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sc := script.DefaultScenario(traceDrag, traceDuration)
	if traceScript != "" {
		if sc, err = script.Load(traceScript); err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
	}

	bounds := geom.R(0, 0, float64(cfg.WindowW), float64(cfg.WindowH))
	eng := engine.New(cfg, bounds)

	set := metrics.DefaultSet()
	rec := &session.Recording{
		Scenario:  sc.Name,
		Preset:    preset,
		Timestamp: time.Now(),
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
	}

	const frameMs = 16.0
	frame := 0
	player := script.NewPlayer(eng, bounds, frameMs, func(nowMs float64, e *engine.Engine) {
		set.Observe(nowMs, e)
		rec.Samples = append(rec.Samples, session.Sample{
			TimeMs:    nowMs,
			Animating: e.AnimatingCount(),
			Emitters:  len(e.Emitters()),
			HoldMs:    e.Knob().HoldMs,
		})
		frame++
	})

	if err := player.Play(sc); err != nil {
		return err
	}

	// ~50ms resolution keeps the plot readable for long sessions.
	plot := make([]float64, 0, len(rec.Samples)/3+1)
	for i, sm := range rec.Samples {
		if i%3 == 0 {
			plot = append(plot, float64(sm.Animating))
		}
	}

	fmt.Printf("scenario %q: %d frames (%.1fs logical)\n\n", sc.Name, frame, eng.NowMs()/1000)
	if len(plot) > 1 {
		fmt.Println(asciigraph.Plot(plot,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("animating tiles vs time"),
		))
		fmt.Println()
	}

	vals := set.Values()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TILES\tCOVERAGE\tPEAK ACTIVE\tMEAN ACTIVE\tPEAK EMITTERS\tSTILL ANIMATING")
	fmt.Fprintf(w, "%d\t%.0f%%\t%.0f\t%.1f\t%.0f\t%d\n",
		cfg.Rows*cfg.Cols,
		vals["coverage"]*100,
		vals["peak_activity"],
		vals["mean_activity"],
		vals["peak_emitters"],
		eng.AnimatingCount(),
	)
	if err := w.Flush(); err != nil {
		return err
	}

	if traceSave != "" {
		store := session.New(traceSave)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(rec)
		if err != nil {
			return fmt.Errorf("failed to save recording: %w", err)
		}
		fmt.Printf("\nsaved recording %s\n", runID)
	}

	if traceJSON != "" {
		if err := session.ExportJSON(traceJSON, rec); err != nil {
			return fmt.Errorf("failed to export JSON: %w", err)
		}
		fmt.Printf("exported %s\n", traceJSON)
	}

	if traceSVG != "" {
		cache := shapes.NewCache(cfg.ShapePoints)
		if err := export.WriteSnapshot(traceSVG, eng, cache, cfg.WindowW, cfg.WindowH); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		fmt.Printf("wrote %s\n", traceSVG)
	}

	return nil
}
