package dnn

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/swdee/go-posemap"
	"github.com/swdee/go-posemap/postprocess"
	"github.com/swdee/go-posemap/preprocess"
	"gocv.io/x/gocv"
	"image"
)

// Estimator runs a Caffe heatmap model through the OpenCV DNN module.  An
// Estimator is not safe for concurrent use, use a posemap.Pool to share
// estimators between goroutines.
type Estimator struct {
	// Params are the model configuration parameters
	Params Params
	net    gocv.Net
}

// Params defines the model files and input/output configuration
type Params struct {
	// Prototxt is the Caffe network definition file
	Prototxt string
	// Weights is the Caffe trained weights file
	Weights string
	// OutputLayer is the name of the blob holding the joint heatmaps
	OutputLayer string
	// Mean is the BGR mean pixel subtracted from the input
	Mean gocv.Scalar
	// Joints is the number of heatmap channels the model outputs
	Joints int
}

// DeeperCutDefaultParams returns the configuration of the ResNet-152
// DeeperCut model trained on MPII featuring:
// - Output Layer: prob
// - Mean BGR: 104, 117, 123
// - Joints: 14
func DeeperCutDefaultParams() Params {
	return Params{
		Prototxt:    "models/deepercut/ResNet-152.prototxt",
		Weights:     "models/deepercut/ResNet-152.caffemodel",
		OutputLayer: "prob",
		Mean:        gocv.NewScalar(104, 117, 123, 0),
		Joints:      postprocess.NativeJoints,
	}
}

// NewEstimator loads the model and configures it for the backend
func NewEstimator(p Params, b posemap.Backend) (*Estimator, error) {

	// check files exist in Go, before passing to OpenCV
	for _, file := range []string{p.Prototxt, p.Weights} {
		info, err := os.Stat(file)

		if err != nil {
			return nil, fmt.Errorf("model file does not exist at %s, error: %w",
				file, err)
		}

		if info.IsDir() {
			return nil, fmt.Errorf("model file %s is a directory", file)
		}
	}

	net := gocv.ReadNetFromCaffe(p.Prototxt, p.Weights)

	if net.Empty() {
		return nil, fmt.Errorf("error reading network model from %s", p.Weights)
	}

	backend, target := netTarget(b)

	if err := net.SetPreferableBackend(backend); err != nil {
		net.Close()
		return nil, fmt.Errorf("error setting network backend: %w", err)
	}

	if err := net.SetPreferableTarget(target); err != nil {
		net.Close()
		return nil, fmt.Errorf("error setting network target: %w", err)
	}

	return &Estimator{
		Params: p,
		net:    net,
	}, nil
}

// netTarget returns the DNN backend and target for the compute backend
func netTarget(b posemap.Backend) (gocv.NetBackendType, gocv.NetTargetType) {

	if b.UseCPU {
		return gocv.NetBackendDefault, gocv.NetTargetCPU
	}

	return gocv.NetBackendCUDA, gocv.NetTargetCUDA
}

// Estimate runs the model at each scale and returns the heatmaps of the most
// confident scale, resized to the image, along with the location of the peak
// of each heatmap
func (e *Estimator) Estimate(img gocv.Mat, scales []float64) (*posemap.Pose,
	*posemap.Heatmaps, error) {

	if len(scales) == 0 {
		return nil, nil, errors.New("no scales given")
	}

	var best *posemap.Heatmaps
	bestScore := math.Inf(-1)

	for _, scale := range scales {
		hm, err := e.estimateScale(img, scale)

		if err != nil {
			return nil, nil, fmt.Errorf("scale %v: %w", scale, err)
		}

		if score := postprocess.Confidence(hm); score > bestScore {
			best = hm
			bestScore = score
		}
	}

	return postprocess.DecodePose(best), best, nil
}

// estimateScale runs a forward pass on the image resized by scale
func (e *Estimator) estimateScale(img gocv.Mat, scale float64) (*posemap.Heatmaps, error) {

	resizer, err := preprocess.NewResizer(img.Cols(), img.Rows(), scale)

	if err != nil {
		return nil, err
	}

	scaled := gocv.NewMat()
	defer scaled.Close()
	resizer.Resize(img, &scaled)

	// image is already BGR as the model expects so no RB swap
	blob := gocv.BlobFromImage(scaled, 1.0,
		image.Pt(resizer.ResizeWidth(), resizer.ResizeHeight()), e.Params.Mean,
		false, false)
	defer blob.Close()

	e.net.SetInput(blob, "")

	out := e.net.Forward(e.Params.OutputLayer)
	defer out.Close()

	// output tensor is in NCHW format
	dims := out.Size()

	if len(dims) != 4 || dims[0] != 1 || dims[1] != e.Params.Joints {
		return nil, fmt.Errorf("unexpected output shape %v, need [1 %d H W]",
			dims, e.Params.Joints)
	}

	outH, outW := dims[2], dims[3]
	plane := outH * outW

	data, err := out.DataPtrFloat32()

	if err != nil {
		return nil, fmt.Errorf("error accessing output tensor: %w", err)
	}

	hm := posemap.NewHeatmaps(img.Rows(), img.Cols(), e.Params.Joints)

	small := gocv.NewMatWithSize(outH, outW, gocv.MatTypeCV32F)
	defer small.Close()

	full := gocv.NewMat()
	defer full.Close()

	for c := 0; c < e.Params.Joints; c++ {
		buf, err := small.DataPtrFloat32()

		if err != nil {
			return nil, fmt.Errorf("error accessing heatmap memory: %w", err)
		}

		copy(buf, data[c*plane:(c+1)*plane])

		// heatmaps are at the network stride, bring them back to the
		// original image resolution
		resizer.Restore(small, &full)

		upsampled, err := full.DataPtrFloat32()

		if err != nil {
			return nil, fmt.Errorf("error accessing heatmap memory: %w", err)
		}

		if err := hm.SetPlane(c, upsampled); err != nil {
			return nil, err
		}
	}

	return hm, nil
}

// Close releases the network
func (e *Estimator) Close() error {
	return e.net.Close()
}
