package posemap

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Pose is a single person keypoint estimate held as a 2 x J matrix, row 0
// being the x coordinates and row 1 the y coordinates of each joint
type Pose struct {
	m *mat.Dense
}

// NewPose returns a zeroed pose for the given number of joints
func NewPose(joints int) *Pose {
	return &Pose{
		m: mat.NewDense(2, joints, nil),
	}
}

// NewPoseFromDense wraps an existing 2 x J matrix
func NewPoseFromDense(m *mat.Dense) (*Pose, error) {

	r, c := m.Dims()

	if r != 2 || c == 0 {
		return nil, fmt.Errorf("pose matrix must have shape 2xJ, got %dx%d", r, c)
	}

	return &Pose{m: m}, nil
}

// NumJoints returns the number of joints in the pose
func (p *Pose) NumJoints() int {
	_, c := p.m.Dims()
	return c
}

// Joint returns the x,y coordinate of joint j
func (p *Pose) Joint(j int) (x, y float64) {
	return p.m.At(0, j), p.m.At(1, j)
}

// SetJoint sets the x,y coordinate of joint j
func (p *Pose) SetJoint(j int, x, y float64) {
	p.m.Set(0, j, x)
	p.m.Set(1, j, y)
}

// Dense returns the underlying 2 x J matrix
func (p *Pose) Dense() *mat.Dense {
	return p.m
}

// Equal reports whether both poses hold exactly the same coordinates
func (p *Pose) Equal(o *Pose) bool {
	return mat.Equal(p.m, o.m)
}
