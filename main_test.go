package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-preview-raytracer/pkg/renderer"
	"github.com/df07/go-preview-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	registry := scene.DefaultRegistry()

	tests := []struct {
		name          string
		sceneType     string
		depth         int
		expectedDepth int
		expectError   bool
	}{
		{"default scene", "default", -1, 3, false},
		{"default with depth override", "default", 0, 0, false},
		{"two-planes scene", "two-planes", 5, 5, false},
		{"discs scene", "discs", -1, 2, false},
		{"mesh scene", "mesh", -1, 3, false},
		{"unknown scene", "nonexistent", -1, 0, true},
		{"empty scene name", "", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(registry, tt.sceneType, scene.Options{}, tt.depth)

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for '%s', got %v", tt.sceneType, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.Camera.ReflectionDepth() != tt.expectedDepth {
				t.Errorf("Expected depth %d, got %d", tt.expectedDepth, s.Camera.ReflectionDepth())
			}
		})
	}
}

func TestSceneOptions(t *testing.T) {
	opts, err := sceneOptions("")
	if err != nil || opts.FloorTexture != nil {
		t.Errorf("Expected empty options, got %+v, %v", opts, err)
	}

	if _, err := sceneOptions(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for a missing texture")
	}
}

func TestRenderToFile(t *testing.T) {
	registry := scene.DefaultRegistry()
	s, err := createScene(registry, "two-planes", scene.Options{}, 1)
	if err != nil {
		t.Fatalf("createScene: %v", err)
	}

	config := Config{
		Width:  40,
		Height: 30,
		Output: filepath.Join(t.TempDir(), "render.png"),
		Render: renderer.RenderConfig{TileSize: 16, NumWorkers: 2},
	}
	if err := renderToFile(s, config, renderer.NewDefaultLogger()); err != nil {
		t.Fatalf("renderToFile: %v", err)
	}

	f, err := os.Open(config.Output)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("Expected 40x30, got %v", img.Bounds())
	}
}

func TestRenderToFile_InvalidSize(t *testing.T) {
	s, _ := createScene(scene.DefaultRegistry(), "default", scene.Options{}, -1)
	config := Config{Width: 0, Height: 10, Output: filepath.Join(t.TempDir(), "x.png"), Render: renderer.DefaultRenderConfig()}

	if err := renderToFile(s, config, renderer.NewDefaultLogger()); !errors.Is(err, renderer.ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}
