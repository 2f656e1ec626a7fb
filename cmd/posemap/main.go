/*
posemap predicts the pose of the person in an image, or in every image of a
folder, and writes the keypoints, the canonical heatmaps and a preview.
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
