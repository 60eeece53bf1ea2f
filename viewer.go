package main

import (
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/renderer"
	"github.com/df07/go-preview-raytracer/pkg/scene"
)

// sceneKeys select presets by position
var sceneKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// viewer displays the render buffer in a window and forwards keys to the controller.
// Controller calls block until the running pass finishes, so they run on a
// separate goroutine fed by requests. Window resizes are coalesced into a
// single pending size so the latest one always wins.
type viewer struct {
	controller *renderer.Controller
	registry   *scene.Registry
	opts       scene.Options
	logger     core.Logger

	sceneIndex int
	requests   chan func() error
	done       chan struct{}
	wantWidth  int
	wantHeight int

	resizeMu   sync.Mutex
	pending    image.Point   // Latest requested size, valid when hasPending
	hasPending bool
	resized    chan struct{} // Signals serve that pending is set

	img *ebiten.Image
	pix []byte
}

func newViewer(controller *renderer.Controller, registry *scene.Registry, initial *scene.Scene, opts scene.Options, config Config, logger core.Logger) *viewer {
	return &viewer{
		controller: controller,
		registry:   registry,
		opts:       opts,
		logger:     logger,
		sceneIndex: max(registry.Index(initial.Name), 0),
		requests:   make(chan func() error, 16),
		done:       make(chan struct{}),
		resized:    make(chan struct{}, 1),
		wantWidth:  config.Width,
		wantHeight: config.Height,
	}
}

func runViewer(registry *scene.Registry, initial *scene.Scene, opts scene.Options, config Config, logger core.Logger) error {
	controller := renderer.NewController(config.Render, logger)
	if err := controller.Start(initial, config.Width, config.Height); err != nil {
		return err
	}

	v := newViewer(controller, registry, initial, opts, config, logger)
	go v.serve()
	defer close(v.done)

	ebiten.SetWindowTitle("Preview Raytracer")
	ebiten.SetWindowSize(config.Width, config.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(v)
}

// serve runs controller requests in order until done is closed
func (v *viewer) serve() {
	for {
		select {
		case <-v.done:
			return
		case request := <-v.requests:
			v.run(request)
		case <-v.resized:
			if size, ok := v.takeResize(); ok {
				v.run(func() error { return v.controller.Resize(size.X, size.Y) })
			}
		}
	}
}

func (v *viewer) run(request func() error) {
	if err := request(); err != nil {
		v.logger.Printf("Request failed: %v\n", err)
	}
}

func (v *viewer) submit(request func() error) {
	select {
	case v.requests <- request:
	default:
		v.logger.Printf("Renderer busy, request dropped\n")
	}
}

// requestResize records the latest window size. It never blocks or drops:
// a size not yet applied is replaced.
func (v *viewer) requestResize(width, height int) {
	v.resizeMu.Lock()
	v.pending = image.Pt(width, height)
	v.hasPending = true
	v.resizeMu.Unlock()

	select {
	case v.resized <- struct{}{}:
	default:
	}
}

func (v *viewer) takeResize() (image.Point, bool) {
	v.resizeMu.Lock()
	defer v.resizeMu.Unlock()

	size, ok := v.pending, v.hasPending
	v.hasPending = false
	return size, ok
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination

	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		// Depth changes take effect on the next refresh
		v.controller.IncreaseReflectionDepth()

	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		v.controller.DecreaseReflectionDepth()

	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeyF5):
		v.submit(v.controller.Refresh)

	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.selectScene(v.sceneIndex + 1)
	}

	for i, key := range sceneKeys {
		if i < v.registry.Len() && inpututil.IsKeyJustPressed(key) {
			v.selectScene(i)
		}
	}

	return nil
}

func (v *viewer) selectScene(index int) {
	next := v.registry.ByIndex(index, v.opts)
	v.sceneIndex = v.registry.Index(next.Name)
	v.submit(func() error { return v.controller.SetScene(next) })
}

func (v *viewer) Draw(screen *ebiten.Image) {
	frame := v.controller.Buffer().View()

	if v.img == nil || v.img.Bounds().Dx() != frame.Width || v.img.Bounds().Dy() != frame.Height {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(frame.Width, frame.Height)
		v.pix = make([]byte, frame.Len()*4)
	}

	// The pass may still be writing; partially updated frames are expected
	frame.CopyRGBA(v.pix)
	v.img.WritePixels(v.pix)

	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Scale(float64(sw)/float64(frame.Width), float64(sh)/float64(frame.Height))
	screen.DrawImage(v.img, op)

	ebitenutil.DebugPrintAt(screen, v.label(), 4, 4)
}

func (v *viewer) label() string {
	name := ""
	if s := v.controller.Scene(); s != nil {
		name = s.Name
	}
	status := ""
	if v.controller.Running() {
		status = "  rendering..."
	}
	return fmt.Sprintf("%s  reflection depth %d%s", name, v.controller.ReflectionDepth(), status)
}

// Layout keeps the screen at window resolution and renders at that size
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != v.wantWidth || outsideHeight != v.wantHeight) {
		v.wantWidth, v.wantHeight = outsideWidth, outsideHeight
		v.requestResize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
