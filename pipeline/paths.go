package pipeline

import (
	"path/filepath"
	"strings"
)

const (
	// KeypointsSuffix is appended to the image name for the keypoint archive
	KeypointsSuffix = "_pose.npz"
	// BundleExt is the extension of the heatmap bundle
	BundleExt = ".h5"
	// PreviewSuffix is appended to the keypoint archive path for the preview
	PreviewSuffix = "_vis.png"
)

// OutputPaths are the files written for one input image
type OutputPaths struct {
	// Keypoints is the keypoint archive path
	Keypoints string
	// Bundle is the heatmap bundle path
	Bundle string
	// Preview is the visualization path, empty when disabled
	Preview string
}

// OutputPathsFor derives the output paths of an input image.
//
// With no output given the keypoint archive sits beside the image.  In a
// folder run the output is a directory and the archive is named after the
// image inside it.  In a single file run an explicit output is used as the
// archive path as is.  The bundle is always placed beside the image
// regardless of the output.
func OutputPathsFor(input, output string, folder, visualize bool) OutputPaths {

	var p OutputPaths

	switch {
	case output == "":
		p.Keypoints = input + KeypointsSuffix
	case folder:
		p.Keypoints = filepath.Join(output, filepath.Base(input)+KeypointsSuffix)
	default:
		p.Keypoints = output
	}

	p.Bundle = filepath.Join(filepath.Dir(input), stem(input)+BundleExt)

	if visualize {
		p.Preview = p.Keypoints + PreviewSuffix
	}

	return p
}

// stem returns the base name of path without its extension
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
