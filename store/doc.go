// Package store persists pose estimation results.
//
// Each processed image produces up to three files:
//
//   - a numpy .npz keypoint archive holding a single float64 array named
//     "pose" of shape 2 x J
//   - an HDF5 bundle holding the canonical heatmap stack as dataset
//     "heatmap" (float32, 16 x W x H) and the BGR image as dataset "image"
//     (uint8, 3 x W x H)
//   - an optional PNG preview of the detected joints
//
// The bundle stores both arrays with their first and last axes swapped, so
// readers expecting the H x W x C layout must swap them back.
package store
