// Package raster loads single-frame grayscale images with 16-bit samples.
package raster

import (
	"errors"
	"image"
	"image/color"
)

var (
	// ErrSize is returned when the pixel data does not match the dimensions.
	ErrSize = errors.New("raster: data size does not match dimensions")
	// ErrFormat is returned for sources whose format cannot be decoded.
	ErrFormat = errors.New("raster: unsupported image format")
)

// Image is a grayscale raster with one uint16 sample per pixel.
type Image struct {
	Width  int
	Height int
	Pix    []uint16 // Row-major, top row first
}

// New allocates a zeroed image.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint16, width*height),
	}
}

// At returns the sample at column x, row y (row 0 is the top row).
func (m *Image) At(x, y int) (uint16, bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0, false
	}
	return m.Pix[y*m.Width+x], true
}

// Set stores a sample; out of range coordinates are ignored.
func (m *Image) Set(x, y int, v uint16) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Pix[y*m.Width+x] = v
}

// Bounds returns the image rectangle.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// FromImage converts any decoded image to 16-bit gray samples.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	m := New(b.Dx(), b.Dy())

	if g, ok := src.(*image.Gray16); ok {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				m.Pix[y*m.Width+x] = g.Gray16At(b.Min.X+x, b.Min.Y+y).Y
			}
		}
		return m
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := color.Gray16Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			m.Pix[y*m.Width+x] = c.Y
		}
	}
	return m
}
