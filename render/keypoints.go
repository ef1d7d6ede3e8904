package render

import (
	"image"
	"math"

	"github.com/swdee/go-blazepose/postprocess/result"
	"gocv.io/x/gocv"
)

// PoseOptions selects what Poses draws
type PoseOptions struct {
	DrawBoxes    bool
	DrawPoints   bool
	DrawLabels   bool
	DrawSegments bool
	// DepthShading colors keypoints by their relative depth
	DepthShading  bool
	PointRadius   int
	LineThickness int
	BoxFont       Font
	LabelFont     Font
}

// DefaultPoseOptions draws everything except depth shading
func DefaultPoseOptions() PoseOptions {
	return PoseOptions{
		DrawBoxes:     true,
		DrawPoints:    true,
		DrawLabels:    false,
		DrawSegments:  true,
		PointRadius:   3,
		LineThickness: 2,
		BoxFont:       DefaultFont(),
		LabelFont:     PartFont(),
	}
}

// Poses renders the skeleton segments, keypoints and boxes of the poses
func Poses(img *gocv.Mat, poses []result.PoseResult, opts PoseOptions) {

	for _, pose := range poses {

		if opts.DrawSegments {
			for group, segs := range pose.Segments {
				clr := groupColor(group)

				for _, s := range segs {
					gocv.Line(img, pt(s.From.Position), pt(s.To.Position), clr, opts.LineThickness)
				}
			}
		}

		for _, kp := range pose.Keypoints {

			if opts.DrawPoints {
				clr := White
				if opts.DepthShading {
					clr = depthColor(kp.Position.Z)
				}

				gocv.Circle(img, pt(kp.Position), opts.PointRadius, clr, -1)
			}

			if opts.DrawLabels {
				p := pt(kp.Position)
				gocv.PutTextWithParams(img, kp.Part, image.Pt(p.X+opts.PointRadius+2, p.Y),
					opts.LabelFont.Face, opts.LabelFont.Scale, opts.LabelFont.Color,
					opts.LabelFont.Thickness, opts.LabelFont.LineType, false)
			}
		}
	}

	if opts.DrawBoxes {
		PoseBoxes(img, poses, opts.BoxFont, opts.LineThickness)
	}
}

// pt rounds a pixel space position to an image.Point
func pt(p result.Point) image.Point {
	return image.Pt(int(math.Round(float64(p.X))), int(math.Round(float64(p.Y))))
}
