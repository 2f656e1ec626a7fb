package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJointTableRoundTrip(t *testing.T) {

	for n := 0; n < NativeJoints; n++ {
		c, ok := CanonicalIndex(n)
		assert.True(t, ok)
		assert.False(t, IsSynthesized(c))
		assert.Equal(t, NativeJointNames[n], CanonicalJointNames[c])

		back, ok := NativeIndex(c)
		assert.True(t, ok)
		assert.Equal(t, n, back)
	}
}

func TestJointTableBounds(t *testing.T) {

	tests := []struct {
		canonical int
		native    int
		ok        bool
	}{
		{0, 0, true},
		{5, 5, true},
		{6, 0, false},
		{7, 0, false},
		{8, 6, true},
		{15, 13, true},
		{16, 0, false},
		{-1, 0, false},
	}

	for _, tc := range tests {
		n, ok := NativeIndex(tc.canonical)
		assert.Equal(t, tc.ok, ok, "canonical %d", tc.canonical)
		assert.Equal(t, tc.native, n, "canonical %d", tc.canonical)
	}

	_, ok := CanonicalIndex(NativeJoints)
	assert.False(t, ok)
	assert.Equal(t, "pelvis", CanonicalJointNames[PelvisIndex])
	assert.Equal(t, "thorax", CanonicalJointNames[ThoraxIndex])
}
