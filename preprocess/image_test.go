package preprocess

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestIngestGrayscaleReplicatesChannel(t *testing.T) {

	gray := gocv.NewMatWithSize(4, 5, gocv.MatTypeCV8UC1)
	defer gray.Close()

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			gray.SetUCharAt(y, x, uint8(y*5+x))
		}
	}

	img, grayscale, err := Ingest(gray)
	require.NoError(t, err)
	defer img.Close()

	assert.True(t, grayscale)
	require.Equal(t, 3, img.Channels())
	require.Equal(t, 4, img.Rows())
	require.Equal(t, 5, img.Cols())

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			v := img.GetVecbAt(y, x)
			want := gray.GetUCharAt(y, x)

			assert.Equal(t, want, v[0])
			assert.Equal(t, want, v[1])
			assert.Equal(t, want, v[2])
		}
	}
}

func TestIngestColorKeepsChannels(t *testing.T) {

	src := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(10, 20, 30, 0), 3, 3,
		gocv.MatTypeCV8UC3)
	defer src.Close()

	img, grayscale, err := Ingest(src)
	require.NoError(t, err)
	defer img.Close()

	assert.False(t, grayscale)
	assert.Equal(t, []uint8{10, 20, 30}, []uint8(img.GetVecbAt(1, 1)))
}

func TestIngestUnsupportedShape(t *testing.T) {

	tests := []struct {
		name    string
		matType gocv.MatType
	}{
		{"two channels", gocv.MatTypeCV8UC2},
		{"four channels", gocv.MatTypeCV8UC4},
		{"float pixels", gocv.MatTypeCV32FC3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := gocv.NewMatWithSize(2, 2, tc.matType)
			defer src.Close()

			img, _, err := Ingest(src)
			defer img.Close()

			assert.ErrorIs(t, err, ErrUnsupportedShape)
		})
	}
}

func TestReverseChannels(t *testing.T) {

	src := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(1, 2, 3, 0), 2, 2,
		gocv.MatTypeCV8UC3)
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	ReverseChannels(src, &dst)
	assert.Equal(t, []uint8{3, 2, 1}, []uint8(dst.GetVecbAt(0, 0)))
}

func TestLoadMissingFile(t *testing.T) {

	img, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	defer img.Close()

	assert.ErrorIs(t, err, ErrImageLoad)
}
