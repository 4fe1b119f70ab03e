package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-tile-pathtracer/pkg/animation"
	"github.com/df07/go-tile-pathtracer/pkg/output"
	"github.com/df07/go-tile-pathtracer/pkg/renderer"
	"github.com/urfave/cli"
)

// Render an orbiting camera animation and mux it into a video.
func RenderAnimation(ctx *cli.Context) error {
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
	timeline := animation.Timeline{Duration: ctx.Float64("duration"), FrameRate: ctx.Int("fps")}
	if err := timeline.Validate(); err != nil {
		return err
	}

	r, err := renderer.NewRenderer(sc, config)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir := ctx.String("frames")
	keyframes := timeline.Keyframes(animation.DefaultOrbit())
	bloom := opts.bloomConfig()
	logger.Noticef("rendering %d frames of scene %q at %dx%d", len(keyframes), sc.Name, sc.Width, sc.Height)

	for _, kf := range keyframes {
		start := time.Now()
		sc.Camera.LookAt(kf.Position, kf.Target)
		r.Reset()

		img, stats, err := r.Render(runCtx)
		if err != nil {
			return err
		}
		path := output.FrameName(dir, kf.Frame)
		if err := output.WritePNG(path, finishFrame(img, bloom)); err != nil {
			return err
		}
		logger.Noticef("frame %d/%d (%.1f samples/pixel) - %v",
			kf.Frame, len(keyframes), stats.AverageSamples, time.Since(start))
	}

	if ctx.Bool("no-video") {
		return nil
	}
	err = output.EncodeVideo(runCtx, output.VideoConfig{
		FramesDir: dir,
		Output:    ctx.String("video"),
		FrameRate: timeline.FrameRate,
		Width:     sc.Width,
		Height:    sc.Height,
	})
	if err != nil {
		return err
	}
	if ctx.Bool("clean") {
		return output.CleanFrames(dir)
	}
	return nil
}
