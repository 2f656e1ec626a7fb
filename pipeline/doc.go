// Package pipeline drives pose estimation over a single image or a folder of
// images.
//
// For every image the Runner loads the pixels, calls the Estimator, remaps
// the native heatmaps into the canonical joint schema, persists the
// keypoints and the heatmap bundle, and optionally renders a preview.
//
// Output naming is deterministic and derived from the input path:
//
//	keypoints: <input>_pose.npz, or <outdir>/<basename>_pose.npz for a
//	           folder run with an output directory
//	bundle:    <input dir>/<input stem>.h5, never moved by the output
//	           directory
//	preview:   <keypoints>_vis.png
package pipeline
