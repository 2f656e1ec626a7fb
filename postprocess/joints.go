package postprocess

/* native joint order of the heatmap predictor
0: Right Ankle
1: Right Knee
2: Right Hip
3: Left Hip
4: Left Knee
5: Left Ankle
6: Right Wrist
7: Right Elbow
8: Right Shoulder
9: Left Shoulder
10: Left Elbow
11: Left Wrist
12: Neck
13: Head Top

canonical joint order adds Pelvis at 6 and Thorax at 7, native joints 6-13
move up by two to canonical 8-15
*/

const (
	// NativeJoints is the number of joint channels the predictor outputs
	NativeJoints = 14
	// CanonicalJoints is the number of joint channels in the canonical schema
	CanonicalJoints = 16
	// PelvisIndex is the canonical index of the synthesized pelvis joint
	PelvisIndex = 6
	// ThoraxIndex is the canonical index of the synthesized thorax joint
	ThoraxIndex = 7
	// canonicalShift is the offset applied to native joints placed after
	// the synthesized ones
	canonicalShift = 2
)

// native joint indices used by the synthesis rules
const (
	NativeRightHip = 2
	NativeLeftHip  = 3
	NativeNeck     = 12
	NativeHeadTop  = 13
)

var (
	// NativeJointNames are the joint names in the predictor's order
	NativeJointNames = [NativeJoints]string{
		"right_ankle", "right_knee", "right_hip", "left_hip", "left_knee",
		"left_ankle", "right_wrist", "right_elbow", "right_shoulder",
		"left_shoulder", "left_elbow", "left_wrist", "neck", "head_top",
	}

	// CanonicalJointNames are the joint names in the canonical order
	CanonicalJointNames = [CanonicalJoints]string{
		"right_ankle", "right_knee", "right_hip", "left_hip", "left_knee",
		"left_ankle", "pelvis", "thorax", "right_wrist", "right_elbow",
		"right_shoulder", "left_shoulder", "left_elbow", "left_wrist", "neck",
		"head_top",
	}

	// nativeToCanonical maps each native channel to its canonical channel
	nativeToCanonical = [NativeJoints]int{0, 1, 2, 3, 4, 5, 8, 9, 10, 11, 12, 13, 14, 15}
)

// CanonicalIndex returns the canonical index for the native joint index
func CanonicalIndex(native int) (int, bool) {

	if native < 0 || native >= NativeJoints {
		return 0, false
	}

	return nativeToCanonical[native], true
}

// NativeIndex returns the native index for the canonical joint index.  The
// synthesized pelvis and thorax joints have no native index.
func NativeIndex(canonical int) (int, bool) {

	switch {
	case canonical < 0 || canonical >= CanonicalJoints:
		return 0, false
	case canonical < PelvisIndex:
		return canonical, true
	case canonical == PelvisIndex || canonical == ThoraxIndex:
		return 0, false
	default:
		return canonical - canonicalShift, true
	}
}

// IsSynthesized reports whether the canonical joint is derived rather than
// copied from a native channel
func IsSynthesized(canonical int) bool {
	return canonical == PelvisIndex || canonical == ThoraxIndex
}
