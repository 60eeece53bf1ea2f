package renderer

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/scene"
)

// ErrNoScene is returned when a render is requested before a scene is set
var ErrNoScene = errors.New("no scene")

// Controller runs render passes in the background, one at a time.
// Every launching call first waits for the previous pass to finish;
// passes are never cancelled.
type Controller struct {
	config RenderConfig
	logger core.Logger

	mu   sync.Mutex    // Serializes launches
	done chan struct{} // Closed when the in-flight pass finishes

	buffer  atomic.Pointer[RenderBuffer]
	scene   atomic.Pointer[scene.Scene]
	stats   atomic.Pointer[RenderStats]
	running atomic.Bool
	renders atomic.Int64
}

// NewController creates a controller. A nil logger discards output.
func NewController(config RenderConfig, logger core.Logger) *Controller {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Controller{config: config, logger: logger}
}

// Start sets the scene and frame size and launches the first pass
func (c *Controller) Start(s *scene.Scene, width, height int) error {
	if s == nil {
		return ErrNoScene
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.waitLocked()

	if buffer := c.buffer.Load(); buffer != nil {
		if err := buffer.Resize(width, height); err != nil {
			return err
		}
	} else {
		buffer, err := NewRenderBuffer(width, height)
		if err != nil {
			return err
		}
		c.buffer.Store(buffer)
	}

	c.scene.Store(s)
	c.launchLocked(s)
	return nil
}

// Refresh re-renders the current scene, picking up reflection depth changes
func (c *Controller) Refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waitLocked()

	s := c.scene.Load()
	if s == nil || c.buffer.Load() == nil {
		return ErrNoScene
	}
	c.launchLocked(s)
	return nil
}

// SetScene replaces the scene and renders it at the current size
func (c *Controller) SetScene(s *scene.Scene) error {
	if s == nil {
		return ErrNoScene
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.waitLocked()

	if c.buffer.Load() == nil {
		return ErrNoScene
	}
	c.scene.Store(s)
	c.launchLocked(s)
	return nil
}

// Resize reallocates the buffer and renders the current scene at the new size.
// On error the previous buffer and image are kept.
func (c *Controller) Resize(width, height int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waitLocked()

	s := c.scene.Load()
	buffer := c.buffer.Load()
	if s == nil || buffer == nil {
		return ErrNoScene
	}
	if err := buffer.Resize(width, height); err != nil {
		return err
	}
	c.launchLocked(s)
	return nil
}

// Wait blocks until no pass is in flight
func (c *Controller) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waitLocked()
}

func (c *Controller) waitLocked() {
	if c.done != nil {
		<-c.done
	}
}

func (c *Controller) launchLocked(s *scene.Scene) {
	done := make(chan struct{})
	c.done = done

	id := uuid.NewString()
	pass := NewPass(s, c.buffer.Load().View())
	c.running.Store(true)

	c.logger.Printf("Render %s: scene %q at %dx%d, depth %d\n",
		id, s.Name, pass.Frame.Width, pass.Frame.Height, pass.Depth)

	go func() {
		defer close(done)

		stats := Render(pass, c.config)
		stats.ID = id

		c.stats.Store(&stats)
		c.renders.Add(1)
		c.running.Store(false)
		c.logger.Printf("Render %s: done in %v, %d rays using %d workers\n",
			id, stats.Duration, stats.Rays, stats.Workers)
	}()
}

// Buffer returns the render buffer, or nil before Start
func (c *Controller) Buffer() *RenderBuffer {
	return c.buffer.Load()
}

// Scene returns the current scene, or nil before Start
func (c *Controller) Scene() *scene.Scene {
	return c.scene.Load()
}

// Running reports whether a pass is in flight
func (c *Controller) Running() bool {
	return c.running.Load()
}

// Renders returns the number of completed passes
func (c *Controller) Renders() int64 {
	return c.renders.Load()
}

// LastStats returns the stats of the most recently completed pass
func (c *Controller) LastStats() (RenderStats, bool) {
	stats := c.stats.Load()
	if stats == nil {
		return RenderStats{}, false
	}
	return *stats, true
}

// ReflectionDepth returns the current scene's reflection depth
func (c *Controller) ReflectionDepth() int {
	if s := c.scene.Load(); s != nil {
		return s.Camera.ReflectionDepth()
	}
	return 0
}

// SetReflectionDepth changes the depth used by the next pass. It does not
// start a render.
func (c *Controller) SetReflectionDepth(depth int) int {
	if s := c.scene.Load(); s != nil {
		s.Camera.SetReflectionDepth(depth)
		return s.Camera.ReflectionDepth()
	}
	return 0
}

// IncreaseReflectionDepth raises the depth used by the next pass by one
func (c *Controller) IncreaseReflectionDepth() int {
	if s := c.scene.Load(); s != nil {
		return s.Camera.IncreaseReflectionDepth()
	}
	return 0
}

// DecreaseReflectionDepth lowers the depth used by the next pass by one, stopping at 0
func (c *Controller) DecreaseReflectionDepth() int {
	if s := c.scene.Load(); s != nil {
		return s.Camera.DecreaseReflectionDepth()
	}
	return 0
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}
