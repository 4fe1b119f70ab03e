package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-tile-pathtracer/pkg/core"
	"github.com/df07/go-tile-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Bodies", "Extent", "Description"})
	for _, info := range scene.List() {
		sc, err := scene.Lookup(info.ID)
		if err != nil {
			return err
		}
		world := sc.World()
		table.Append([]string{
			info.ID,
			info.DisplayName,
			fmt.Sprintf("%d", len(sc.Bodies)),
			formatExtent(world.Bounds().Size()),
			info.Description,
		})
	}

	table.Render()
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}

// formatExtent renders a bounding box size as WxHxD
func formatExtent(size core.Vec3) string {
	return fmt.Sprintf("%.0fx%.0fx%.0f", size.X, size.Y, size.Z)
}
