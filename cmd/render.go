package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/output"
	"github.com/df07/go-tile-pathtracer/pkg/postprocess"
	"github.com/df07/go-tile-pathtracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := parseRenderOptions(ctx)
	sc, err := opts.buildScene()
	if err != nil {
		return err
	}
	config, err := opts.rendererConfig()
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(sc, config)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q at %dx%d (%d iterations, %s, %d workers)",
		sc.Name, sc.Width, sc.Height, sc.Iterations, config.Mode, opts.workerCount())
	img, stats, err := r.Render(runCtx)
	if err != nil {
		return err
	}
	displayFrameStats(stats)

	start := time.Now()
	final := finishFrame(img, opts.bloomConfig())
	logger.Infof("post-processed frame in %v", time.Since(start))

	out := ctx.String("out")
	if err := output.WritePNG(out, final); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)

	if mask := ctx.String("mask"); mask != "" {
		if err := output.WritePNG(mask, r.Frame().Mask()); err != nil {
			return err
		}
		logger.Noticef("wrote sampling mask to %s", mask)
	}

	if thumb := ctx.String("thumb"); thumb != "" {
		width := ctx.Int("thumb-width")
		if width < 1 {
			return fmt.Errorf("thumbnail width must be positive, got %d", width)
		}
		height := max(1, width*final.Height/final.Width)
		if err := output.WritePNG(thumb, output.Scale(final, width, height)); err != nil {
			return err
		}
		logger.Noticef("wrote %dx%d thumbnail to %s", width, height, thumb)
	}

	return nil
}

// finishFrame adds bloom when cfg is not nil and converts the averaged
// frame to display values
func finishFrame(img *core.Image, cfg *postprocess.BloomConfig) *core.Image {
	if cfg == nil {
		return postprocess.Compose(img, nil)
	}
	return postprocess.Compose(img, postprocess.Bloom(img, *cfg))
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Iterations", "Samples", "Samples/pixel", "Range", "Active", "Bounces/sample"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.Iterations),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f", stats.AverageSamples),
		fmt.Sprintf("%d - %d", stats.MinSamples, stats.MaxSamplesUsed),
		fmt.Sprintf("%d", stats.ActivePixels),
		fmt.Sprintf("%.2f", stats.AverageBounces),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", stats.Duration.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
