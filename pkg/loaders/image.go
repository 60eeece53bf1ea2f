package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/df07/go-preview-raytracer/pkg/material"
)

// LoadImage loads a PNG or JPEG image as RGBA pixel data in [0, 1]
func LoadImage(filename string) (material.PixelData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return material.PixelData{}, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return DecodeImage(file)
}

// DecodeImage decodes a PNG or JPEG stream, auto-detected from its header
func DecodeImage(r io.Reader) (material.PixelData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return material.PixelData{}, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts any image to non-premultiplied RGBA pixel data
func FromImage(img image.Image) material.PixelData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pix := make([]float32, 0, width*height*4)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			pix = append(pix,
				float32(c.R)/255,
				float32(c.G)/255,
				float32(c.B)/255,
				float32(c.A)/255,
			)
		}
	}

	return material.PixelData{Width: width, Height: height, Pix: pix}
}

// LoadTexture loads an image file into a texture
func LoadTexture(filename string) (*material.Texture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	texture, err := material.NewTexture(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create texture from %s: %w", filename, err)
	}
	return texture, nil
}
