package renderer

import (
	"github.com/df07/go-tile-pathtracer/pkg/integrator"
	"github.com/df07/go-tile-pathtracer/pkg/scene"
)

// TileRenderer traces one stratified sample per active pixel of a tile
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	adaptive   bool
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(sc *scene.Scene, integratorInst integrator.Integrator, adaptive bool) *TileRenderer {
	return &TileRenderer{
		scene:      sc,
		integrator: integratorInst,
		adaptive:   adaptive,
	}
}

// SubpixelOffset returns the offset from the pixel corner's center for the
// given iteration. Iterations walk an aa x aa grid row by row.
func SubpixelOffset(iteration, aa int) (float64, float64) {
	step := iteration % (aa * aa)
	col := step % aa
	row := step / aa
	ox := (float64(col)+0.5)/float64(aa) - 0.5
	oy := (float64(row)+0.5)/float64(aa) - 0.5
	return ox, oy
}

// RenderTile adds one sample to every active pixel in tile. Pixels whose
// path only saw sky or perfect mirrors are deactivated once the full
// sub-pixel grid has been sampled.
func (tr *TileRenderer) RenderTile(tile *Tile, frame *Frame, walk *integrator.Walk) TileStats {
	var stats TileStats
	sc := tr.scene
	aa := sc.Antialiasing
	ox, oy := SubpixelOffset(frame.Iteration, aa)
	gridDone := frame.Iteration+1 >= aa*aa

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			index := frame.Index(x, y)
			if frame.Active[index] == 0 {
				continue
			}

			ray := sc.Camera.Ray(float64(x)+ox, float64(y)+oy, sc.Width, sc.Height)
			result := tr.integrator.Trace(ray, sc, walk)

			frame.Color.Add(x, y, result.Color.Sanitize().Multiply(255))
			frame.SampleCount[index]++
			stats.Samples++
			stats.Bounces += result.Bounces

			if tr.adaptive && result.Background && gridDone {
				frame.Active[index] = 0
				stats.Converged++
			}
		}
	}

	return stats
}
