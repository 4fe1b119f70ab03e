package cmd

import (
	"fmt"
	"math"
	"runtime"

	"github.com/df07/go-tile-pathtracer/pkg/geometry"
	"github.com/df07/go-tile-pathtracer/pkg/postprocess"
	"github.com/df07/go-tile-pathtracer/pkg/renderer"
	"github.com/df07/go-tile-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// RenderFlags are shared by the render and animate commands. Zero values
// keep the scene's own settings.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene to render (see the scenes command)",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width; derived from the scene aspect ratio when only height is set",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "iterations, i",
		Usage: "number of progressive passes over the frame",
	},
	cli.IntFlag{
		Name:  "aa",
		Usage: "sub-pixel grid size per axis",
	},
	cli.IntFlag{
		Name:  "bounces",
		Usage: "maximum surface interactions per path",
	},
	cli.IntFlag{
		Name:  "tile",
		Usage: "tile edge length in pixels",
	},
	cli.IntFlag{
		Name:  "workers, w",
		Usage: "number of render workers (0 = one per CPU)",
	},
	cli.IntFlag{
		Name:  "seed",
		Value: 1,
		Usage: "base random seed",
	},
	cli.StringFlag{
		Name:  "policy",
		Usage: `floor intersection policy: "nearest" or "bodies-first"`,
	},
	cli.BoolFlag{
		Name:  "sequential",
		Usage: "render tiles on a single goroutine",
	},
	cli.BoolFlag{
		Name:  "preview",
		Usage: "use fast sun-lit preview shading",
	},
	cli.BoolFlag{
		Name:  "exhaustive",
		Usage: "keep sampling pixels that can no longer change",
	},
	cli.BoolFlag{
		Name:  "no-bloom",
		Usage: "skip the bloom pass",
	},
	cli.BoolFlag{
		Name:  "sky",
		Usage: "turn on the sky light",
	},
}

// renderOptions holds the parsed values of RenderFlags
type renderOptions struct {
	Scene        string
	Width        int
	Height       int
	Iterations   int
	Antialiasing int
	Bounces      int
	TileSize     int
	Workers      int
	Seed         int
	Policy       string
	Sequential   bool
	Preview      bool
	Exhaustive   bool
	NoBloom      bool
	Sky          bool
}

func parseRenderOptions(ctx *cli.Context) renderOptions {
	return renderOptions{
		Scene:        ctx.String("scene"),
		Width:        ctx.Int("width"),
		Height:       ctx.Int("height"),
		Iterations:   ctx.Int("iterations"),
		Antialiasing: ctx.Int("aa"),
		Bounces:      ctx.Int("bounces"),
		TileSize:     ctx.Int("tile"),
		Workers:      ctx.Int("workers"),
		Seed:         ctx.Int("seed"),
		Policy:       ctx.String("policy"),
		Sequential:   ctx.Bool("sequential"),
		Preview:      ctx.Bool("preview"),
		Exhaustive:   ctx.Bool("exhaustive"),
		NoBloom:      ctx.Bool("no-bloom"),
		Sky:          ctx.Bool("sky"),
	}
}

// buildScene looks up the scene and applies the overrides
func (o renderOptions) buildScene() (*scene.Scene, error) {
	sc, err := scene.Lookup(o.Scene)
	if err != nil {
		return nil, err
	}

	switch {
	case o.Width > 0 && o.Height > 0:
		sc.Width, sc.Height = o.Width, o.Height
	case o.Height > 0:
		sc.SetResolution(o.Height, sc.AspectRatio())
	case o.Width > 0:
		sc.Height = max(1, int(math.Round(float64(o.Width)/sc.AspectRatio())))
		sc.Width = o.Width
	}

	if o.Iterations > 0 {
		sc.Iterations = o.Iterations
	}
	if o.Antialiasing > 0 {
		sc.Antialiasing = o.Antialiasing
	}
	if o.Bounces > 0 {
		sc.BounceLimit = o.Bounces
	}
	if o.TileSize > 0 {
		sc.TileSize = o.TileSize
	}
	if o.Policy != "" {
		policy, err := geometry.ParsePolicy(o.Policy)
		if err != nil {
			return nil, err
		}
		sc.Policy = policy
	}
	if o.Sky && sc.Sky != nil {
		sc.Sky.Active = true
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// rendererConfig maps the options onto a renderer configuration
func (o renderOptions) rendererConfig() (renderer.Config, error) {
	if o.Seed < 0 {
		return renderer.Config{}, fmt.Errorf("seed must not be negative, got %d", o.Seed)
	}
	config := renderer.DefaultConfig()
	config.NumWorkers = o.Workers
	config.Seed = uint32(o.Seed)
	config.Adaptive = !o.Exhaustive
	config.Preview = o.Preview
	if o.Sequential {
		config.Mode = renderer.Sequential
	}
	if err := config.Validate(); err != nil {
		return renderer.Config{}, err
	}
	return config, nil
}

// bloomConfig returns nil when bloom is disabled
func (o renderOptions) bloomConfig() *postprocess.BloomConfig {
	if o.NoBloom {
		return nil
	}
	cfg := postprocess.DefaultBloomConfig()
	return &cfg
}

// workerCount resolves the worker count for display
func (o renderOptions) workerCount() int {
	if o.Sequential {
		return 1
	}
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}
