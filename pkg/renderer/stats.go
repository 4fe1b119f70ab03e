package renderer

import (
	"time"

	"github.com/df07/go-tile-pathtracer/pkg/core"
)

// TileStats counts the work done for one tile in one iteration
type TileStats struct {
	Samples   int // Camera rays traced
	Bounces   int // Surface interactions over all rays
	Converged int // Pixels deactivated in this pass
}

// Add accumulates other into s
func (s *TileStats) Add(other TileStats) {
	s.Samples += other.Samples
	s.Bounces += other.Bounces
	s.Converged += other.Converged
}

// IterationResult is emitted after every full pass over the image
type IterationResult struct {
	Iteration    int // 1-based
	Stats        TileStats
	ActivePixels int
	Duration     time.Duration
	IsLast       bool
	Image        *core.Image // Resolved frame, only set when Config.Snapshots is on
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MinSamples     int     // Minimum samples taken per pixel
	MaxSamplesUsed int     // Maximum samples actually used by any pixel
	ActivePixels   int     // Pixels still sampling at the end
	Iterations     int
	TotalBounces   int
	AverageBounces float64 // Average surface interactions per sample
	Duration       time.Duration
}

// computeStats derives pixel statistics from a frame
func computeStats(frame *Frame) RenderStats {
	stats := RenderStats{
		TotalPixels: frame.Width * frame.Height,
		Iterations:  frame.Iteration,
	}
	if stats.TotalPixels == 0 {
		return stats
	}

	stats.MinSamples = frame.SampleCount[0]
	for _, n := range frame.SampleCount {
		stats.TotalSamples += n
		stats.MinSamples = min(stats.MinSamples, n)
		stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, n)
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.ActivePixels = frame.ActivePixels()
	return stats
}
