//go:build cuda

package dnn

import (
	"fmt"

	"github.com/swdee/go-posemap"
	"gocv.io/x/gocv/cuda"
)

// SelectDevice applies the process wide CUDA device selection
func SelectDevice(b posemap.Backend) error {

	if b.UseCPU {
		return nil
	}

	count := cuda.GetCudaEnabledDeviceCount()

	if b.Device < 0 || b.Device >= count {
		return fmt.Errorf("cuda device %d out of range, %d devices available",
			b.Device, count)
	}

	cuda.SetDevice(b.Device)

	return nil
}
