package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/df07/go-preview-raytracer/pkg/core"
	"github.com/df07/go-preview-raytracer/pkg/loaders"
	"github.com/df07/go-preview-raytracer/pkg/output"
	"github.com/df07/go-preview-raytracer/pkg/renderer"
	"github.com/df07/go-preview-raytracer/pkg/scene"
)

// Config holds the command line settings
type Config struct {
	Scene   string
	Width   int
	Height  int
	Depth   int // Reflection depth override, negative keeps the scene's own
	Output  string
	Texture string
	Render  renderer.RenderConfig
}

func main() {
	config := Config{Render: renderer.DefaultRenderConfig()}

	// Parse command line flags
	flag.StringVar(&config.Scene, "scene", "default", "Initial scene name")
	flag.IntVar(&config.Width, "width", 800, "Image width")
	flag.IntVar(&config.Height, "height", 600, "Image height")
	flag.IntVar(&config.Depth, "depth", -1, "Reflection depth (-1 = scene default)")
	flag.IntVar(&config.Render.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&config.Render.TileSize, "tile", config.Render.TileSize, "Tile size in pixels")
	flag.StringVar(&config.Output, "out", "", "Render once and write a PNG to this file instead of opening a window")
	flag.StringVar(&config.Texture, "texture", "", "Image file used as the floor texture")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	registry := scene.DefaultRegistry()

	if *help {
		fmt.Println("Preview Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range registry.Info() {
			fmt.Printf("  %-12s %s\n", info.Name, info.Description)
		}
		fmt.Println()
		fmt.Println("Keys: +/- reflection depth, R or F5 refresh, Tab or 1-9 switch scene, Esc quit")
		return
	}

	if config.Render.NumWorkers <= 0 {
		config.Render.NumWorkers = renderer.DefaultWorkerCount()
	}

	opts, err := sceneOptions(config.Texture)
	if err != nil {
		log.Fatalf("Failed to load texture: %v", err)
	}

	selected, err := createScene(registry, config.Scene, opts, config.Depth)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	logger := renderer.NewDefaultLogger()

	if config.Output != "" {
		if err := renderToFile(selected, config, logger); err != nil {
			log.Fatalf("Render failed: %v", err)
		}
		fmt.Printf("Render saved as %s\n", config.Output)
		return
	}

	if err := runViewer(registry, selected, opts, config, logger); err != nil {
		log.Fatalf("Viewer failed: %v", err)
	}
}

// sceneOptions loads the optional floor texture
func sceneOptions(texture string) (scene.Options, error) {
	if texture == "" {
		return scene.Options{}, nil
	}
	floor, err := loaders.LoadTexture(texture)
	if err != nil {
		return scene.Options{}, err
	}
	return scene.Options{FloorTexture: floor}, nil
}

// createScene builds the named scene and applies the depth override
func createScene(registry *scene.Registry, name string, opts scene.Options, depth int) (*scene.Scene, error) {
	s, err := registry.ByName(name, opts)
	if err != nil {
		return nil, err
	}
	if depth >= 0 {
		s.Camera.SetReflectionDepth(depth)
	}
	return s, nil
}

// renderToFile renders one pass and writes it as a labeled PNG
func renderToFile(s *scene.Scene, config Config, logger core.Logger) error {
	controller := renderer.NewController(config.Render, logger)
	if err := controller.Start(s, config.Width, config.Height); err != nil {
		return err
	}
	controller.Wait()

	stats, _ := controller.LastStats()
	logger.Printf("%s\n", stats)

	return output.WritePNG(config.Output, controller.Buffer().Image(), depthLabel(s.Name, stats.Depth))
}

func depthLabel(name string, depth int) string {
	return fmt.Sprintf("%s  reflection depth %d", name, depth)
}
