package postprocess

import (
	"math"

	"github.com/swdee/go-posemap"
)

// DecodePose returns a pose holding the location of the maximum value of each
// heatmap channel
func DecodePose(hm *posemap.Heatmaps) *posemap.Pose {

	pose := posemap.NewPose(hm.Channels)

	for c := 0; c < hm.Channels; c++ {
		best := float32(math.Inf(-1))
		bestX, bestY := 0, 0

		for y := 0; y < hm.Height; y++ {
			for x := 0; x < hm.Width; x++ {
				if v := hm.At(y, x, c); v > best {
					best = v
					bestX, bestY = x, y
				}
			}
		}

		pose.SetJoint(c, float64(bestX), float64(bestY))
	}

	return pose
}

// Confidence scores a heatmap stack as the sum of each channel's maximum
// value, used to pick the most confident scale
func Confidence(hm *posemap.Heatmaps) float64 {

	maxes := make([]float32, hm.Channels)

	for c := range maxes {
		maxes[c] = float32(math.Inf(-1))
	}

	for i, v := range hm.Data {
		c := i % hm.Channels

		if v > maxes[c] {
			maxes[c] = v
		}
	}

	var total float64

	for _, m := range maxes {
		total += float64(m)
	}

	return total
}
