//go:build !cuda

package dnn

import (
	"fmt"

	"github.com/swdee/go-posemap"
)

// SelectDevice applies the process wide accelerator device selection.  Without
// the cuda build tag only the default device can be used.
func SelectDevice(b posemap.Backend) error {

	if b.UseCPU || b.Device == 0 {
		return nil
	}

	return fmt.Errorf("built without cuda support, can not select device %d",
		b.Device)
}
