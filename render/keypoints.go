package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/swdee/go-posemap"
	"github.com/swdee/go-posemap/preprocess"
	"gocv.io/x/gocv"
)

const (
	// DiscRadius is the radius in pixels of the joint markers in a preview
	DiscRadius = 8
	// DiscTransparency is the transparency of the joint markers in a preview,
	// zero paints them fully opaque
	DiscTransparency = 0
)

// Preview returns an RGB copy of the BGR image with a filled disc drawn at
// each joint of the pose.  The caller must close the returned Mat.
func Preview(img gocv.Mat, pose *posemap.Pose) (gocv.Mat, error) {

	rgb := gocv.NewMat()
	preprocess.ReverseChannels(img, &rgb)

	if err := PoseDiscs(&rgb, pose, DiscRadius, DiscTransparency); err != nil {
		rgb.Close()
		return gocv.NewMat(), err
	}

	return rgb, nil
}

// PoseDiscs draws a disc for each of the first 14 joints of the pose using
// the JointColors palette
func PoseDiscs(img *gocv.Mat, pose *posemap.Pose, radius int,
	transparency float32) error {

	joints := pose.NumJoints()

	if joints > len(JointColors) {
		joints = len(JointColors)
	}

	for j := 0; j < joints; j++ {
		x, y := pose.Joint(j)

		// truncate towards zero to find the pixel the joint falls in
		center := image.Pt(int(x), int(y))

		if err := Disc(img, center, radius, JointColors[j], transparency); err != nil {
			return fmt.Errorf("error drawing joint %d: %w", j, err)
		}
	}

	return nil
}

// Disc fills the pixels within radius of center, that is every pixel at
// offset (dx,dy) where dx*dx + dy*dy <= radius*radius.  Each filled pixel is
// blended as existing*transparency + color*(1-transparency).  The color's
// R, G and B components are written to channels 0, 1 and 2 of the three
// channel 8-bit image.  Parts of the disc outside the image are skipped.
func Disc(img *gocv.Mat, center image.Point, radius int, c color.RGBA,
	transparency float32) error {

	if img.Channels() != 3 || img.Type()&7 != gocv.MatTypeCV8U {
		return fmt.Errorf("disc requires a 3 channel 8-bit image")
	}

	if transparency < 0 || transparency > 1 {
		return fmt.Errorf("transparency %v out of range [0,1]", transparency)
	}

	data, err := img.DataPtrUint8()

	if err != nil {
		return fmt.Errorf("error accessing image memory: %w", err)
	}

	// clip the disc bounding box to the image
	bounds := image.Rect(center.X-radius, center.Y-radius,
		center.X+radius+1, center.Y+radius+1).
		Intersect(image.Rect(0, 0, img.Cols(), img.Rows()))

	cols := img.Cols()
	rr := radius * radius
	paint := [3]float32{float32(c.R), float32(c.G), float32(c.B)}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		dy := y - center.Y

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := x - center.X

			if dx*dx+dy*dy > rr {
				continue
			}

			px := data[(y*cols+x)*3 : (y*cols+x)*3+3]

			for ch := 0; ch < 3; ch++ {
				px[ch] = blend(px[ch], paint[ch], transparency)
			}
		}
	}

	return nil
}

// blend mixes the existing pixel value with the paint color, truncating the
// result to 8-bit
func blend(existing uint8, paint float32, transparency float32) uint8 {
	return uint8(float32(existing)*transparency + paint*(1-transparency))
}
