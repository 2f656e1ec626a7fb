package render

import "image/color"

var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	// JointColors are the colors used to render each of the 14 native joints.
	// The right and left limb chains share the same six colors, neck is black
	// and head top is white.
	JointColors = [14]color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},     // right ankle
		{R: 0, G: 255, B: 0, A: 255},     // right knee
		{R: 0, G: 0, B: 255, A: 255},     // right hip
		{R: 0, G: 245, B: 255, A: 255},   // left hip
		{R: 255, G: 131, B: 250, A: 255}, // left knee
		{R: 255, G: 255, B: 0, A: 255},   // left ankle
		{R: 255, G: 0, B: 0, A: 255},     // right wrist
		{R: 0, G: 255, B: 0, A: 255},     // right elbow
		{R: 0, G: 0, B: 255, A: 255},     // right shoulder
		{R: 0, G: 245, B: 255, A: 255},   // left shoulder
		{R: 255, G: 131, B: 250, A: 255}, // left elbow
		{R: 255, G: 255, B: 0, A: 255},   // left wrist
		Black,                            // neck
		White,                            // head top
	}
)
