// Package output writes rendered frames to image files.
package output

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
)

// labelPadding is the margin around the label text in pixels
const labelPadding = 4

// Snapshot draws an optional label in the top-left corner of a copy of img
func Snapshot(img image.Image, label string) image.Image {
	dc := gg.NewContextForImage(img)
	if label == "" {
		return dc.Image()
	}

	w, h := dc.MeasureString(label)
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, 0, w+2*labelPadding, h+2*labelPadding)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(label, labelPadding, labelPadding, 0, 1)
	return dc.Image()
}

// EncodePNG writes img as PNG to w with an optional label
func EncodePNG(w io.Writer, img image.Image, label string) error {
	dc := gg.NewContextForImage(Snapshot(img, label))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WritePNG saves img as a PNG file with an optional label
func WritePNG(filename string, img image.Image, label string) error {
	dc := gg.NewContextForImage(Snapshot(img, label))
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}
