// fractalview serves an interactive escape-time fractal explorer in the
// browser. Sliders stage a new iteration depth and zoom; the Update button
// commits both, and the re-rendered image is pushed back over a websocket.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}

func mainCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "fractalview",
		Short: "Interactive Mandelbrot/Julia explorer served over HTTP",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "HTTP listen address")
	cmd.Flags().StringVar(&opts.preset, "preset", "full", "view preset, one of: "+strings.Join(presetNames(), ", "))
	cmd.Flags().IntVar(&opts.resolution, "resolution", 600, "grid edge; the image is resolution×resolution")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 100, "initial iteration cap")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", 0, "initial zoom exponent (scale factor is e^zoom)")
	cmd.Flags().StringVar(&opts.scale, "scale", "viridis", "color scale name")
	cmd.Flags().IntVar(&opts.threshold, "threshold", 0, "display clamp for iteration counts; 0 disables")

	return cmd
}
