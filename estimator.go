package posemap

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Estimator is the heatmap predictor.  Given a BGR image and the scale
// factors to evaluate it returns the keypoints of the most confident scale
// and a heatmap stack in the predictor's native joint order at the image's
// resolution.
type Estimator interface {
	Estimate(img gocv.Mat, scales []float64) (*Pose, *Heatmaps, error)
	Close() error
}

// EstimatorFunc adapts an ordinary function to the Estimator interface
type EstimatorFunc func(img gocv.Mat, scales []float64) (*Pose, *Heatmaps, error)

// Estimate calls f(img, scales)
func (f EstimatorFunc) Estimate(img gocv.Mat, scales []float64) (*Pose, *Heatmaps, error) {
	return f(img, scales)
}

// Close is a no-op
func (f EstimatorFunc) Close() error {
	return nil
}

// Backend defines the process wide compute device selection for the
// Estimator.  It is applied once before any image is processed.
type Backend struct {
	// UseCPU runs the Estimator on the CPU instead of an accelerator
	UseCPU bool
	// Device is the accelerator device index, ignored when UseCPU is set
	Device int
	// CPUCores optionally pins the process to the given CPU cores, eg:
	// []int{4,5,6,7}
	CPUCores []int
}

// Apply pins the process CPU affinity when CPUCores are specified
func (b Backend) Apply() error {

	if len(b.CPUCores) == 0 {
		return nil
	}

	return SetCPUAffinity(CPUCoreMask(b.CPUCores))
}

// String returns a readable description of the backend
func (b Backend) String() string {

	if b.UseCPU {
		return "cpu"
	}

	return fmt.Sprintf("gpu:%d", b.Device)
}
