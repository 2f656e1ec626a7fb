package store

import (
	"errors"
	"fmt"

	"github.com/swdee/go-posemap"
	"gocv.io/x/gocv"
)

// ErrPersistence wraps every failure to write or read a result file
var ErrPersistence = errors.New("persistence failure")

const (
	// PoseKey is the name of the keypoint array in the archive
	PoseKey = "pose"
	// HeatmapKey is the name of the heatmap dataset in the bundle
	HeatmapKey = "heatmap"
	// ImageKey is the name of the image dataset in the bundle
	ImageKey = "image"
)

// Bundle is the canonical heatmap stack and the image it was computed from
type Bundle struct {
	Heatmap *posemap.Heatmaps
	Image   gocv.Mat
}

// Writer persists the keypoints and heatmap bundle of a processed image
type Writer struct{}

// NewWriter returns a Writer
func NewWriter() *Writer {
	return &Writer{}
}

// Persist writes the keypoint archive and heatmap bundle
func (w *Writer) Persist(pose *posemap.Pose, b Bundle, keypointsPath,
	bundlePath string) error {

	if err := WriteKeypoints(keypointsPath, pose); err != nil {
		return err
	}

	return WriteBundle(bundlePath, b)
}

// Preview writes an RGB preview image
func (w *Writer) Preview(path string, rgb gocv.Mat) error {
	return WritePreview(path, rgb)
}

// wrapErr tags err as a persistence failure on path
func wrapErr(path, op string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrPersistence, op, path, err)
}
