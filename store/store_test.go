package store

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-posemap"
	"gocv.io/x/gocv"
)

func testPose() *posemap.Pose {

	pose := posemap.NewPose(14)

	for j := 0; j < 14; j++ {
		pose.SetJoint(j, float64(j)*3.25+0.1, math.Pi*float64(j))
	}

	return pose
}

func TestKeypointsRoundTrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "img.png_pose.npz")
	pose := testPose()

	require.NoError(t, WriteKeypoints(path, pose))

	got, err := ReadKeypoints(path)
	require.NoError(t, err)

	assert.True(t, pose.Equal(got))
	assert.Equal(t, 14, got.NumJoints())

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestKeypointsOverwrite(t *testing.T) {

	path := filepath.Join(t.TempDir(), "a.npz")

	require.NoError(t, WriteKeypoints(path, posemap.NewPose(14)))

	pose := testPose()
	require.NoError(t, WriteKeypoints(path, pose))

	got, err := ReadKeypoints(path)
	require.NoError(t, err)
	assert.True(t, pose.Equal(got))
}

func TestKeypointsMissingDirectory(t *testing.T) {

	path := filepath.Join(t.TempDir(), "missing", "a.npz")

	err := WriteKeypoints(path, testPose())
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Contains(t, err.Error(), path)
}

func TestBundleRoundTrip(t *testing.T) {

	const h, w = 3, 4

	hm := posemap.NewHeatmaps(h, w, 16)

	for i := range hm.Data {
		hm.Data[i] = float32(i) / 10
	}

	img := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	defer img.Close()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetUCharAt(y, x*3, uint8(y))
			img.SetUCharAt(y, x*3+1, uint8(x))
			img.SetUCharAt(y, x*3+2, uint8(y*w+x))
		}
	}

	path := filepath.Join(t.TempDir(), "img.h5")
	require.NoError(t, WriteBundle(path, Bundle{Heatmap: hm, Image: img}))

	sb, err := ReadBundle(path)
	require.NoError(t, err)

	assert.Equal(t, []uint{16, w, h}, sb.HeatmapDims)
	assert.Equal(t, []uint{3, w, h}, sb.ImageDims)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < 16; c++ {
				assert.Equal(t, hm.At(y, x, c), sb.Heatmap[(c*w+x)*h+y])
			}

			assert.Equal(t, uint8(y), sb.Image[(0*w+x)*h+y])
			assert.Equal(t, uint8(x), sb.Image[(1*w+x)*h+y])
			assert.Equal(t, uint8(y*w+x), sb.Image[(2*w+x)*h+y])
		}
	}
}

func TestBundleRejectsMismatchedImage(t *testing.T) {

	img := gocv.NewMatWithSize(5, 5, gocv.MatTypeCV8UC3)
	defer img.Close()

	path := filepath.Join(t.TempDir(), "img.h5")
	err := WriteBundle(path, Bundle{Heatmap: posemap.NewHeatmaps(4, 5, 16), Image: img})

	assert.ErrorIs(t, err, ErrPersistence)
	assert.NoFileExists(t, path)
}

func TestPersist(t *testing.T) {

	dir := t.TempDir()
	img := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC3)
	defer img.Close()

	w := NewWriter()
	err := w.Persist(testPose(), Bundle{Heatmap: posemap.NewHeatmaps(2, 2, 16), Image: img},
		filepath.Join(dir, "a.png_pose.npz"), filepath.Join(dir, "a.h5"))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "a.png_pose.npz"))
	assert.FileExists(t, filepath.Join(dir, "a.h5"))
}

func TestWritePreview(t *testing.T) {

	rgb := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 0, 0), 8, 8,
		gocv.MatTypeCV8UC3)
	defer rgb.Close()

	path := filepath.Join(t.TempDir(), "a_vis.png")
	require.NoError(t, WritePreview(path, rgb))

	// decoding returns BGR so red lands in channel 2
	back := gocv.IMRead(path, gocv.IMReadColor)
	defer back.Close()
	require.False(t, back.Empty())
	assert.Equal(t, []uint8{0, 0, 255}, []uint8(back.GetVecbAt(4, 4)))

	err := WritePreview(filepath.Join(t.TempDir(), "missing", "a_vis.png"), rgb)
	assert.ErrorIs(t, err, ErrPersistence)
}
