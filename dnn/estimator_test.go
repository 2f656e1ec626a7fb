package dnn

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swdee/go-posemap"
	"gocv.io/x/gocv"
)

func TestNetTarget(t *testing.T) {

	tests := []struct {
		backend posemap.Backend
		netB    gocv.NetBackendType
		netT    gocv.NetTargetType
	}{
		{posemap.Backend{UseCPU: true}, gocv.NetBackendDefault, gocv.NetTargetCPU},
		{posemap.Backend{Device: 1}, gocv.NetBackendCUDA, gocv.NetTargetCUDA},
	}

	for _, tc := range tests {
		b, target := netTarget(tc.backend)
		assert.Equal(t, tc.netB, b, tc.backend.String())
		assert.Equal(t, tc.netT, target, tc.backend.String())
	}
}

func TestNewEstimatorMissingModel(t *testing.T) {

	p := DeeperCutDefaultParams()
	p.Prototxt = filepath.Join(t.TempDir(), "missing.prototxt")

	_, err := NewEstimator(p, posemap.Backend{UseCPU: true})
	assert.ErrorContains(t, err, p.Prototxt)
}

func TestDeeperCutDefaultParams(t *testing.T) {

	p := DeeperCutDefaultParams()
	assert.Equal(t, 14, p.Joints)
	assert.Equal(t, "prob", p.OutputLayer)
}
