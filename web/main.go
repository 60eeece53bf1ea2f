package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-preview-raytracer/pkg/loaders"
	"github.com/df07/go-preview-raytracer/pkg/renderer"
	"github.com/df07/go-preview-raytracer/pkg/scene"
	"github.com/df07/go-preview-raytracer/web/server"
)

func main() {
	config := server.DefaultConfig()

	// Parse command line flags
	flag.IntVar(&config.Port, "port", config.Port, "Port to serve on")
	flag.StringVar(&config.Scene, "scene", config.Scene, "Initial scene")
	flag.IntVar(&config.Width, "width", config.Width, "Initial image width")
	flag.IntVar(&config.Height, "height", config.Height, "Initial image height")
	flag.IntVar(&config.Render.TileSize, "tile", config.Render.TileSize, "Tile size in pixels")
	flag.IntVar(&config.Render.NumWorkers, "workers", config.Render.NumWorkers, "Number of parallel workers (0 = auto-detect CPU count)")
	texture := flag.String("texture", "", "Image file used as the floor texture")
	flag.Parse()

	if *texture != "" {
		floor, err := loaders.LoadTexture(*texture)
		if err != nil {
			log.Fatalf("Failed to load texture: %v", err)
		}
		config.Options = scene.Options{FloorTexture: floor}
	}
	if config.Render.NumWorkers <= 0 {
		config.Render.NumWorkers = renderer.DefaultWorkerCount()
	}

	webServer, err := server.NewServer(config, scene.DefaultRegistry())
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Printf("Preview Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/frame.png to see the current frame", config.Port)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := webServer.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
