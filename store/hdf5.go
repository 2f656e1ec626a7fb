package store

import (
	"fmt"

	"github.com/swdee/go-posemap"
	"gocv.io/x/gocv"
	"gonum.org/v1/hdf5"
)

// WriteBundle saves the heatmap stack and image to an HDF5 file, replacing
// any existing file at path.  Both arrays are stored with their first and
// last axes swapped.
func WriteBundle(path string, b Bundle) error {

	if err := b.Heatmap.Validate(); err != nil {
		return wrapErr(path, "validate", err)
	}

	if b.Image.Channels() != 3 || b.Image.Rows() != b.Heatmap.Height ||
		b.Image.Cols() != b.Heatmap.Width {
		return wrapErr(path, "validate", fmt.Errorf(
			"image %dx%dx%d does not match heatmap %dx%d",
			b.Image.Rows(), b.Image.Cols(), b.Image.Channels(),
			b.Heatmap.Height, b.Heatmap.Width))
	}

	pixels, err := imageBytes(b.Image)

	if err != nil {
		return wrapErr(path, "validate", err)
	}

	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)

	if err != nil {
		return wrapErr(path, "create", err)
	}

	hm := b.Heatmap
	heatmap := hm.ChannelMajor()

	err = writeDataset(f, HeatmapKey, hdf5.T_NATIVE_FLOAT,
		[]uint{uint(hm.Channels), uint(hm.Width), uint(hm.Height)}, &heatmap)

	if err != nil {
		f.Close()
		return wrapErr(path, "write "+HeatmapKey, err)
	}

	img := posemap.SwapFirstLastAxes(pixels, hm.Height, hm.Width, 3)

	err = writeDataset(f, ImageKey, hdf5.T_NATIVE_UINT8,
		[]uint{3, uint(hm.Width), uint(hm.Height)}, &img)

	if err != nil {
		f.Close()
		return wrapErr(path, "write "+ImageKey, err)
	}

	if err := f.Close(); err != nil {
		return wrapErr(path, "close", err)
	}

	return nil
}

// writeDataset creates a dataset of the given shape and writes data to it
func writeDataset(f *hdf5.File, name string, dtype *hdf5.Datatype, dims []uint,
	data interface{}) error {

	space, err := hdf5.CreateSimpleDataspace(dims, nil)

	if err != nil {
		return err
	}

	defer space.Close()

	dset, err := f.CreateDataset(name, dtype, space)

	if err != nil {
		return err
	}

	if err := dset.Write(data); err != nil {
		dset.Close()
		return err
	}

	return dset.Close()
}

// imageBytes returns a copy of the pixel data of a continuous 8-bit image
func imageBytes(img gocv.Mat) ([]uint8, error) {

	if img.Type()&7 != gocv.MatTypeCV8U {
		return nil, fmt.Errorf("image must have 8-bit pixels")
	}

	if !img.IsContinuous() {
		img = img.Clone()
		defer img.Close()
	}

	data, err := img.DataPtrUint8()

	if err != nil {
		return nil, fmt.Errorf("error accessing image memory: %w", err)
	}

	out := make([]uint8, len(data))
	copy(out, data)

	return out, nil
}

// StoredBundle is a heatmap bundle read back from disk, arrays keep the
// channel major layout they were stored with
type StoredBundle struct {
	// HeatmapDims is the heatmap shape, Channels x Width x Height
	HeatmapDims []uint
	Heatmap     []float32
	// ImageDims is the image shape, 3 x Width x Height
	ImageDims []uint
	Image     []uint8
}

// ReadBundle loads both datasets of a heatmap bundle
func ReadBundle(path string) (*StoredBundle, error) {

	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)

	if err != nil {
		return nil, wrapErr(path, "open", err)
	}

	defer f.Close()

	sb := &StoredBundle{}

	sb.HeatmapDims, err = readDims(f, HeatmapKey)

	if err != nil {
		return nil, wrapErr(path, "read "+HeatmapKey, err)
	}

	sb.Heatmap = make([]float32, product(sb.HeatmapDims))

	if err := readDataset(f, HeatmapKey, &sb.Heatmap); err != nil {
		return nil, wrapErr(path, "read "+HeatmapKey, err)
	}

	sb.ImageDims, err = readDims(f, ImageKey)

	if err != nil {
		return nil, wrapErr(path, "read "+ImageKey, err)
	}

	sb.Image = make([]uint8, product(sb.ImageDims))

	if err := readDataset(f, ImageKey, &sb.Image); err != nil {
		return nil, wrapErr(path, "read "+ImageKey, err)
	}

	return sb, nil
}

// readDims returns the shape of the named dataset
func readDims(f *hdf5.File, name string) ([]uint, error) {

	dset, err := f.OpenDataset(name)

	if err != nil {
		return nil, err
	}

	defer dset.Close()

	space := dset.Space()
	defer space.Close()

	dims, _, err := space.SimpleExtentDims()

	return dims, err
}

// readDataset reads the whole named dataset into data
func readDataset(f *hdf5.File, name string, data interface{}) error {

	dset, err := f.OpenDataset(name)

	if err != nil {
		return err
	}

	defer dset.Close()

	return dset.Read(data)
}

func product(dims []uint) int {

	n := 1

	for _, d := range dims {
		n *= int(d)
	}

	return n
}
