package store

import (
	"errors"

	"gocv.io/x/gocv"
)

// WritePreview encodes an RGB image to path, the format is chosen by the
// file extension
func WritePreview(path string, rgb gocv.Mat) error {

	bgr := gocv.NewMat()
	defer bgr.Close()

	gocv.CvtColor(rgb, &bgr, gocv.ColorRGBToBGR)

	if ok := gocv.IMWrite(path, bgr); !ok {
		return wrapErr(path, "encode", errors.New("failed to save the image"))
	}

	return nil
}
