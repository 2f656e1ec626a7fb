package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-posemap"
	"github.com/swdee/go-posemap/store"
	"gocv.io/x/gocv"
)

func TestInspectKeypoints(t *testing.T) {

	path := filepath.Join(t.TempDir(), "img.png_pose.npz")
	pose := posemap.NewPose(14)
	pose.SetJoint(12, 10.5, 20.25)
	require.NoError(t, store.WriteKeypoints(path, pose))

	var buf bytes.Buffer
	require.NoError(t, inspect(&buf, path))

	assert.Contains(t, buf.String(), "pose [2 x 14]")
	assert.Contains(t, buf.String(), "neck")
	assert.Contains(t, buf.String(), "x=   10.50 y=   20.25")
}

func TestInspectBundle(t *testing.T) {

	hm := posemap.NewHeatmaps(2, 3, 16)
	hm.Set(1, 1, 6, 0.75)

	img := gocv.NewMatWithSize(2, 3, gocv.MatTypeCV8UC3)
	defer img.Close()

	path := filepath.Join(t.TempDir(), "img.h5")
	require.NoError(t, store.WriteBundle(path, store.Bundle{Heatmap: hm, Image: img}))

	var buf bytes.Buffer
	require.NoError(t, inspect(&buf, path))

	assert.Contains(t, buf.String(), "heatmap [16 3 2]")
	assert.Contains(t, buf.String(), "pelvis          peak=0.7500")
}

func TestInspectUnknown(t *testing.T) {
	assert.Error(t, inspect(&bytes.Buffer{}, "img.png"))
}

func TestPredictMissingModel(t *testing.T) {

	cmd := newRootCmd()
	cmd.SetArgs([]string{"predict", t.TempDir(), "--use-cpu",
		"--prototxt", filepath.Join(t.TempDir(), "missing.prototxt")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "missing.prototxt")
}
