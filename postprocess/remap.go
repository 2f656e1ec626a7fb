package postprocess

import (
	"errors"
	"fmt"

	"github.com/swdee/go-posemap"
)

// ErrChannelCount is returned when a heatmap stack or pose does not have the
// number of joints the remapper requires
var ErrChannelCount = errors.New("unexpected joint channel count")

// Remapper defines the struct for converting the predictor's native 14 joint
// output into the canonical 16 joint schema
type Remapper struct {
	// Params are the joint synthesis weights
	Params RemapParams
}

// RemapParams defines the weighting used when synthesizing the thorax from
// the pelvis and the two upper body channels
type RemapParams struct {
	// PelvisWeight is the weight of the pelvis in the thorax average
	PelvisWeight float32
	// UpperWeight is the weight of each of the two upper body channels in the
	// thorax average
	UpperWeight float32
}

// RemapDefaultParams returns the weighting giving the pelvis double the weight
// of each upper body channel, ie: thorax = (2*pelvis + a + b) / 4
func RemapDefaultParams() RemapParams {
	return RemapParams{
		PelvisWeight: 2,
		UpperWeight:  1,
	}
}

// NewRemapper returns an instance of the Remapper
func NewRemapper(p RemapParams) *Remapper {
	return &Remapper{
		Params: p,
	}
}

// Remap takes a native heatmap stack and returns a new stack in canonical
// order with the pelvis and thorax channels synthesized
func (r *Remapper) Remap(native *posemap.Heatmaps) (*posemap.Heatmaps, error) {

	if native.Channels != NativeJoints {
		return nil, fmt.Errorf("%w: heatmap stack has %d channels, need %d",
			ErrChannelCount, native.Channels, NativeJoints)
	}

	if err := native.Validate(); err != nil {
		return nil, err
	}

	if r.Params.PelvisWeight+2*r.Params.UpperWeight <= 0 {
		return nil, fmt.Errorf("invalid thorax weights %v", r.Params)
	}

	out := posemap.NewHeatmaps(native.Height, native.Width, CanonicalJoints)
	pixels := native.Height * native.Width

	for i := 0; i < pixels; i++ {
		src := native.Data[i*NativeJoints : (i+1)*NativeJoints]
		dst := out.Data[i*CanonicalJoints : (i+1)*CanonicalJoints]

		pelvis, thorax := r.synthesize(src[NativeRightHip], src[NativeLeftHip],
			src[NativeNeck], src[NativeHeadTop])

		copy(dst[:PelvisIndex], src[:PelvisIndex])
		dst[PelvisIndex] = pelvis
		dst[ThoraxIndex] = thorax
		copy(dst[ThoraxIndex+1:], src[PelvisIndex:])
	}

	return out, nil
}

// RemapPose applies the same synthesis to a 14 joint pose returning a 16
// joint pose in canonical order
func (r *Remapper) RemapPose(native *posemap.Pose) (*posemap.Pose, error) {

	if native.NumJoints() != NativeJoints {
		return nil, fmt.Errorf("%w: pose has %d joints, need %d",
			ErrChannelCount, native.NumJoints(), NativeJoints)
	}

	out := posemap.NewPose(CanonicalJoints)

	for j := 0; j < NativeJoints; j++ {
		x, y := native.Joint(j)
		out.SetJoint(nativeToCanonical[j], x, y)
	}

	rhx, rhy := native.Joint(NativeRightHip)
	lhx, lhy := native.Joint(NativeLeftHip)
	nx, ny := native.Joint(NativeNeck)
	hx, hy := native.Joint(NativeHeadTop)

	px, tx := r.synthesize64(rhx, lhx, nx, hx)
	py, ty := r.synthesize64(rhy, lhy, ny, hy)

	out.SetJoint(PelvisIndex, px, py)
	out.SetJoint(ThoraxIndex, tx, ty)

	return out, nil
}

// synthesize returns the pelvis as the mean of both hips and the thorax as
// the weighted mean of the pelvis and the two upper body values
func (r *Remapper) synthesize(rHip, lHip, a, b float32) (pelvis, thorax float32) {

	pelvis = (rHip + lHip) / 2
	total := r.Params.PelvisWeight + 2*r.Params.UpperWeight
	thorax = (r.Params.PelvisWeight*pelvis + r.Params.UpperWeight*a +
		r.Params.UpperWeight*b) / total

	return pelvis, thorax
}

// synthesize64 is the float64 version of synthesize used for coordinates
func (r *Remapper) synthesize64(rHip, lHip, a, b float64) (pelvis, thorax float64) {

	pw := float64(r.Params.PelvisWeight)
	uw := float64(r.Params.UpperWeight)

	pelvis = (rHip + lHip) / 2
	thorax = (pw*pelvis + uw*a + uw*b) / (pw + 2*uw)

	return pelvis, thorax
}
