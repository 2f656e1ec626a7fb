package preprocess

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

var (
	// ErrImageLoad is returned when an image file can not be decoded
	ErrImageLoad = errors.New("failed to load image")
	// ErrUnsupportedShape is returned for images that are neither single
	// channel nor three channel
	ErrUnsupportedShape = errors.New("unsupported image shape")
)

// Load reads an image file.  The decoded Mat keeps a single channel for
// grayscale files, color files are returned in BGR order.
func Load(path string) (gocv.Mat, error) {

	img := gocv.IMRead(path, gocv.IMReadAnyColor)

	if img.Empty() {
		img.Close()
		return gocv.NewMat(), fmt.Errorf("%w: %s", ErrImageLoad, path)
	}

	return img, nil
}

// Ingest converts a decoded image into the three channel 8-bit BGR layout
// used by the estimator.  A single channel image is replicated across all
// three channels and grayscale is returned as true so the caller can warn
// about the reduced quality of the input.  The returned Mat must be closed
// by the caller.
func Ingest(src gocv.Mat) (img gocv.Mat, grayscale bool, err error) {

	if src.Empty() {
		return gocv.NewMat(), false, fmt.Errorf("%w: empty image", ErrUnsupportedShape)
	}

	if depth := src.Type() & 7; depth != gocv.MatTypeCV8U {
		return gocv.NewMat(), false, fmt.Errorf("%w: pixel depth %d is not 8-bit",
			ErrUnsupportedShape, depth)
	}

	switch src.Channels() {
	case 1:
		return Replicate(src), true, nil

	case 3:
		return src.Clone(), false, nil
	}

	return gocv.NewMat(), false, fmt.Errorf("%w: %d channels", ErrUnsupportedShape,
		src.Channels())
}

// Replicate stacks a single channel image three times into a three channel
// image
func Replicate(gray gocv.Mat) gocv.Mat {

	dst := gocv.NewMat()
	gocv.Merge([]gocv.Mat{gray, gray, gray}, &dst)

	return dst
}

// ReverseChannels swaps the channel order of a three channel image between
// RGB and BGR
func ReverseChannels(src gocv.Mat, dst *gocv.Mat) {
	gocv.CvtColor(src, dst, gocv.ColorBGRToRGB)
}
