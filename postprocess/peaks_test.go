package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swdee/go-posemap"
)

func TestDecodePose(t *testing.T) {

	hm := posemap.NewHeatmaps(10, 20, 3)
	hm.Set(2, 7, 0, 0.9)
	hm.Set(9, 19, 1, 0.5)
	hm.Set(0, 0, 2, 0.1)

	pose := DecodePose(hm)
	assert.Equal(t, 3, pose.NumJoints())

	tests := []struct {
		joint int
		x, y  float64
	}{
		{0, 7, 2},
		{1, 19, 9},
		{2, 0, 0},
	}

	for _, tc := range tests {
		x, y := pose.Joint(tc.joint)
		assert.Equal(t, tc.x, x, "joint %d", tc.joint)
		assert.Equal(t, tc.y, y, "joint %d", tc.joint)
	}
}

func TestConfidence(t *testing.T) {

	hm := posemap.NewHeatmaps(2, 2, 2)
	hm.Set(0, 1, 0, 0.75)
	hm.Set(1, 1, 1, 0.25)
	hm.Set(1, 0, 1, 0.125)

	assert.InDelta(t, 1.0, Confidence(hm), 1e-9)
}
