package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the input path does not exist
	ErrInputNotFound = errors.New("input not found")
	// ErrEstimator wraps failures returned by the Estimator
	ErrEstimator = errors.New("estimator failure")
	// ErrNoEstimator is returned when the Runner has no estimator to use
	ErrNoEstimator = errors.New("no estimator available")
)

// Stage names the step of the per image pipeline that failed
type Stage string

const (
	StageLoad      Stage = "load"
	StageEstimate  Stage = "estimate"
	StageRemap     Stage = "remap"
	StagePersist   Stage = "persist"
	StageVisualize Stage = "visualize"
)

// ImageError records the image and stage a failure occurred at
type ImageError struct {
	Path  string
	Stage Stage
	Err   error
}

// Error returns the failure with the offending image path
func (e *ImageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ImageError) Unwrap() error {
	return e.Err
}
