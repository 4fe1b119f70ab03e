package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/df07/go-tile-pathtracer/pkg/log"
)

var logger = log.New("output")

// FramePattern is the printf pattern for numbered animation frames
const FramePattern = "frame%03d.png"

// ErrNoEncoder is returned when the ffmpeg binary cannot be found
var ErrNoEncoder = errors.New("output: ffmpeg not found in PATH")

// FrameName returns the path of frame n inside dir
func FrameName(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf(FramePattern, n))
}

// VideoConfig describes how numbered frames are muxed into a video
type VideoConfig struct {
	FramesDir string
	Output    string
	FrameRate int
	Width     int // Output size; zero keeps the frame size
	Height    int
	Binary    string // Defaults to "ffmpeg"
}

// args returns the ffmpeg command line for cfg
func (cfg VideoConfig) args() []string {
	args := []string{
		"-loglevel", "error", "-y",
		"-framerate", strconv.Itoa(cfg.FrameRate),
		"-i", filepath.Join(cfg.FramesDir, FramePattern),
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		args = append(args, "-vf", fmt.Sprintf("scale=%d:%d", cfg.Width, cfg.Height))
	}
	return append(args, "-c:v", "libx264", "-pix_fmt", "yuv420p", cfg.Output)
}

// EncodeVideo runs ffmpeg over the frames in cfg.FramesDir
func EncodeVideo(ctx context.Context, cfg VideoConfig) error {
	if cfg.FrameRate < 1 {
		return fmt.Errorf("output: frame rate must be positive, got %d", cfg.FrameRate)
	}
	binary := cfg.Binary
	if binary == "" {
		binary = "ffmpeg"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoEncoder, err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, cfg.args()...)
	cmd.Stderr = &stderr

	logger.Debugf("running %s %v", path, cmd.Args[1:])
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	logger.Noticef("video written to %s", cfg.Output)
	return nil
}

// CleanFrames removes numbered frames from dir
func CleanFrames(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "frame[0-9][0-9][0-9]*.png"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return err
		}
	}
	return nil
}
