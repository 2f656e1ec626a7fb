/*
go-posemap post processes the output of a 2D human pose heatmap predictor.
A predictor returns the best scale keypoints and a 14 channel confidence
heatmap stack for an image.  go-posemap reorders that stack into the 16 joint
torso complete schema expected by downstream consumers by synthesizing the
pelvis and thorax channels, persists the keypoints and heatmaps with a fixed
file naming policy, and renders a preview of the detected joints.

The predictor itself is treated as an opaque Estimator so it can be backed by
any model runner, see the dnn subdirectory for an OpenCV DNN implementation
running the Caffe DeeperCut model.

See the cmd/posemap subdirectory for the command line tool.
*/
package posemap
