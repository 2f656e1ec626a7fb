package preprocess

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Resizer defines the struct used for scaling an image by a scale factor
// before it is passed to the estimator, and for mapping the estimator's
// output back to the source image resolution
type Resizer struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// scale is the factor applied to the source image
	scale float64
	// resize dimensions
	resizeW int
	resizeH int
}

// NewResizer returns a resizer used for scaling an image of the given size by
// the scale factor
func NewResizer(srcWidth, srcHeight int, scale float64) (*Resizer, error) {

	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale factor %v", scale)
	}

	r := &Resizer{
		srcWidth:  srcWidth,
		srcHeight: srcHeight,
		scale:     scale,
	}

	// precalculate scaling dimensions
	r.preCalc()

	if r.resizeW < 1 || r.resizeH < 1 {
		return nil, fmt.Errorf("scale factor %v reduces %dx%d image to nothing",
			scale, srcWidth, srcHeight)
	}

	return r, nil
}

// preCalc the scaled dimensions, rounded to the nearest pixel
func (r *Resizer) preCalc() {
	r.resizeW = int(float64(r.srcWidth)*r.scale + 0.5)
	r.resizeH = int(float64(r.srcHeight)*r.scale + 0.5)
}

// Resize scales the source image into dest
func (r *Resizer) Resize(src gocv.Mat, dest *gocv.Mat) {

	if r.resizeW == r.srcWidth && r.resizeH == r.srcHeight {
		src.CopyTo(dest)
		return
	}

	interp := gocv.InterpolationCubic

	if r.scale < 1 {
		interp = gocv.InterpolationArea
	}

	gocv.Resize(src, dest, image.Pt(r.resizeW, r.resizeH), 0, 0, interp)
}

// Restore resizes a map produced at any resolution back to the source image
// dimensions
func (r *Resizer) Restore(src gocv.Mat, dest *gocv.Mat) {
	gocv.Resize(src, dest, image.Pt(r.srcWidth, r.srcHeight), 0, 0,
		gocv.InterpolationCubic)
}

// ScaleFactor returns the scale factor used
func (r *Resizer) ScaleFactor() float64 {
	return r.scale
}

// ResizeWidth returns the width of the scaled image
func (r *Resizer) ResizeWidth() int {
	return r.resizeW
}

// ResizeHeight returns the height of the scaled image
func (r *Resizer) ResizeHeight() int {
	return r.resizeH
}

// SrcWidth returns the width of the source image
func (r *Resizer) SrcWidth() int {
	return r.srcWidth
}

// SrcHeight returns the height of the source image
func (r *Resizer) SrcHeight() int {
	return r.srcHeight
}
