package main

import (
	"os"

	"github.com/df07/go-tile-pathtracer/cmd"
	"github.com/df07/go-tile-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("tracer")

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-tile-pathtracer"
	app.Usage = "render scenes with a progressive tile-based path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene progressively. Every iteration adds one stratified
sample to each pixel that can still change; the averaged frame is then
bloomed, gamma corrected and written as a PNG.`,
			Flags: append(cmd.RenderFlags,
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "mask",
					Usage: "also write the adaptive sampling mask to this file",
				},
				cli.StringFlag{
					Name:  "thumb",
					Usage: "also write a downscaled copy to this file",
				},
				cli.IntFlag{
					Name:  "thumb-width",
					Value: 320,
					Usage: "thumbnail width",
				},
			),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "animate",
			Usage: "render an orbiting camera animation",
			Description: `
Render one frame per timeline step while the camera circles the scene, write
them as numbered PNGs and mux them into an H.264 video with ffmpeg.`,
			Flags: append(cmd.RenderFlags,
				cli.Float64Flag{
					Name:  "duration, d",
					Value: 2,
					Usage: "animation length in seconds",
				},
				cli.IntFlag{
					Name:  "fps",
					Value: 30,
					Usage: "frames per second",
				},
				cli.StringFlag{
					Name:  "frames",
					Value: "animation",
					Usage: "directory for the numbered frames",
				},
				cli.StringFlag{
					Name:  "video",
					Value: "output.mp4",
					Usage: "video filename",
				},
				cli.BoolFlag{
					Name:  "no-video",
					Usage: "only write the frames",
				},
				cli.BoolFlag{
					Name:  "clean",
					Usage: "delete the frames once the video is written",
				},
			),
			Action: cmd.RenderAnimation,
		},
		{
			Name:  "serve",
			Usage: "stream progressive renders over HTTP",
			Description: `
Serve a small JSON API. /api/render streams one PNG per iteration as
server-sent events; /api/inspect reports the surface seen through a pixel.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "addr",
					Value: "localhost:8080",
					Usage: "address to listen on",
				},
			},
			Action: cmd.Serve,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
