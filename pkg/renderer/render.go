package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/geometry"
	"github.com/df07/go-preview-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for render passes
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Pass is one render pass captured at launch. Later camera depth changes
// do not affect it.
type Pass struct {
	Scene      *scene.Scene
	Frame      *Frame
	Projection geometry.Projection
	Depth      int
}

// NewPass snapshots the scene camera for rendering into frame
func NewPass(s *scene.Scene, frame *Frame) Pass {
	return Pass{
		Scene:      s,
		Frame:      frame,
		Projection: s.Camera.Projection(frame.Width, frame.Height),
		Depth:      s.Camera.ReflectionDepth(),
	}
}

// Render renders one full pass into its frame using a pool of workers
func Render(pass Pass, config RenderConfig) RenderStats {
	start := time.Now()

	s, frame := pass.Scene, pass.Frame
	depth, projection := pass.Depth, pass.Projection
	tiles := NewTileGrid(frame.Width, frame.Height, config.TileSize)

	pool := NewWorkerPool(s, config.NumWorkers, len(tiles))
	pool.Start()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:       tile,
			TaskID:     i,
			Frame:      frame,
			Projection: projection,
			Depth:      depth,
		})
	}

	stats := RenderStats{
		Scene:   s.Name,
		Width:   frame.Width,
		Height:  frame.Height,
		Depth:   depth,
		Workers: pool.GetNumWorkers(),
	}

	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Add(result.Stats)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	return stats
}
