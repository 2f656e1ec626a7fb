package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPathsFor(t *testing.T) {

	tests := []struct {
		name      string
		input     string
		output    string
		folder    bool
		visualize bool
		expected  OutputPaths
	}{
		{
			name:      "single file without output",
			input:     "img.png",
			visualize: true,
			expected: OutputPaths{
				Keypoints: "img.png_pose.npz",
				Bundle:    "img.h5",
				Preview:   "img.png_pose.npz_vis.png",
			},
		},
		{
			name:  "single file in directory without visualization",
			input: filepath.Join("data", "run", "img.jpg"),
			expected: OutputPaths{
				Keypoints: filepath.Join("data", "run", "img.jpg_pose.npz"),
				Bundle:    filepath.Join("data", "run", "img.h5"),
			},
		},
		{
			name:      "single file with explicit output",
			input:     filepath.Join("data", "img.png"),
			output:    filepath.Join("results", "person.npz"),
			visualize: true,
			expected: OutputPaths{
				Keypoints: filepath.Join("results", "person.npz"),
				Bundle:    filepath.Join("data", "img.h5"),
				Preview:   filepath.Join("results", "person.npz_vis.png"),
			},
		},
		{
			name:   "folder without output",
			input:  filepath.Join("in", "a.png"),
			folder: true,
			expected: OutputPaths{
				Keypoints: filepath.Join("in", "a.png_pose.npz"),
				Bundle:    filepath.Join("in", "a.h5"),
			},
		},
		{
			name:      "folder with output directory",
			input:     filepath.Join("in", "a.png"),
			output:    "out",
			folder:    true,
			visualize: true,
			expected: OutputPaths{
				Keypoints: filepath.Join("out", "a.png_pose.npz"),
				Bundle:    filepath.Join("in", "a.h5"),
				Preview:   filepath.Join("out", "a.png_pose.npz_vis.png"),
			},
		},
		{
			name:   "bundle strips only the last extension",
			input:  filepath.Join("in", "frame.001.png"),
			output: "out",
			folder: true,
			expected: OutputPaths{
				Keypoints: filepath.Join("out", "frame.001.png_pose.npz"),
				Bundle:    filepath.Join("in", "frame.001.h5"),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := OutputPathsFor(tc.input, tc.output, tc.folder, tc.visualize)
			assert.Equal(t, tc.expected, got)
		})
	}
}
