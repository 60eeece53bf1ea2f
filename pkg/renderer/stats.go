package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about one render pass
type RenderStats struct {
	ID       string        // Render identifier, empty for partial stats
	Scene    string        // Scene name
	Width    int           // Image width
	Height   int           // Image height
	Depth    int           // Reflection depth used for the pass
	Workers  int           // Number of parallel workers
	Tiles    int           // Number of tiles rendered
	Pixels   int64         // Number of pixels written
	Rays     int64         // Primary, secondary and shadow rays cast
	Duration time.Duration // Wall time of the pass
}

// Add accumulates the counters of other into s
func (s *RenderStats) Add(other RenderStats) {
	s.Tiles += other.Tiles
	s.Pixels += other.Pixels
	s.Rays += other.Rays
}

// RaysPerPixel returns the average number of rays cast per pixel
func (s RenderStats) RaysPerPixel() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Rays) / float64(s.Pixels)
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%s %dx%d depth=%d: %d tiles, %d rays (%.2f/px) in %v",
		s.Scene, s.Width, s.Height, s.Depth, s.Tiles, s.Rays, s.RaysPerPixel(), s.Duration)
}
