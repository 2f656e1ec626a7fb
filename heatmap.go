package posemap

import (
	"fmt"
)

// Heatmaps is a stack of per pixel joint confidence maps stored row major
// in HWC layout, so the value for pixel (y,x) on channel c is at
// Data[(y*Width+x)*Channels+c]
type Heatmaps struct {
	Height   int
	Width    int
	Channels int
	Data     []float32
}

// NewHeatmaps returns a zeroed heatmap stack of the given dimensions
func NewHeatmaps(height, width, channels int) *Heatmaps {
	return &Heatmaps{
		Height:   height,
		Width:    width,
		Channels: channels,
		Data:     make([]float32, height*width*channels),
	}
}

// Validate checks the dimensions of the stack agree with its backing data
func (h *Heatmaps) Validate() error {

	if h.Height <= 0 || h.Width <= 0 || h.Channels <= 0 {
		return fmt.Errorf("invalid heatmap dimensions %dx%dx%d",
			h.Height, h.Width, h.Channels)
	}

	if len(h.Data) != h.Height*h.Width*h.Channels {
		return fmt.Errorf("heatmap data length %d does not match dimensions %dx%dx%d",
			len(h.Data), h.Height, h.Width, h.Channels)
	}

	return nil
}

// At returns the value of channel c at pixel (y,x)
func (h *Heatmaps) At(y, x, c int) float32 {
	return h.Data[(y*h.Width+x)*h.Channels+c]
}

// Set the value of channel c at pixel (y,x)
func (h *Heatmaps) Set(y, x, c int, v float32) {
	h.Data[(y*h.Width+x)*h.Channels+c] = v
}

// Plane returns a copy of channel c as a row major Height*Width slice
func (h *Heatmaps) Plane(c int) []float32 {

	out := make([]float32, h.Height*h.Width)

	for i := range out {
		out[i] = h.Data[i*h.Channels+c]
	}

	return out
}

// SetPlane writes a row major Height*Width slice into channel c
func (h *Heatmaps) SetPlane(c int, plane []float32) error {

	if len(plane) != h.Height*h.Width {
		return fmt.Errorf("plane length %d does not match %dx%d heatmap",
			len(plane), h.Height, h.Width)
	}

	for i, v := range plane {
		h.Data[i*h.Channels+c] = v
	}

	return nil
}

// ChannelMajor returns the stack with its first and last axes swapped, so
// the result has shape Channels x Width x Height
func (h *Heatmaps) ChannelMajor() []float32 {
	return SwapFirstLastAxes(h.Data, h.Height, h.Width, h.Channels)
}

// SwapFirstLastAxes takes a row major array of shape (d0, d1, d2) and returns
// a new array of shape (d2, d1, d0) with out[k][j][i] = in[i][j][k]
func SwapFirstLastAxes[T any](in []T, d0, d1, d2 int) []T {

	out := make([]T, len(in))

	for i := 0; i < d0; i++ {
		for j := 0; j < d1; j++ {
			base := (i*d1 + j) * d2

			for k := 0; k < d2; k++ {
				out[(k*d1+j)*d0+i] = in[base+k]
			}
		}
	}

	return out
}
