package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/swdee/go-blazepose/postprocess/result"
	"gocv.io/x/gocv"
)

// boxLabel defines where a pose label should be rendered on the image
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// PoseBoxes renders the box enclosing each pose with a label of its ID and
// score.  Poses without retained keypoints are drawn using the region the
// landmark model was run on
func PoseBoxes(img *gocv.Mat, poses []result.PoseResult, font Font, lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(poses))

	for _, pose := range poses {

		box := pose.Region
		if pose.Box != nil {
			box = *pose.Box
		}

		rect := box.Rect()
		useClr := poseColors[pose.ID%len(poseColors)]

		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := fmt.Sprintf("pose %d %.2f", pose.ID, pose.Score)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		var centerX int

		switch font.Alignment {
		case Center:
			centerX = (rect.Min.X + rect.Max.X) / 2

		case Right:
			centerX = rect.Max.X - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

		case Left:
			fallthrough
		default:
			centerX = rect.Min.X + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
		}

		boxLabels = append(boxLabels, boxLabel{
			rect: image.Rect(centerX-textSize.X/2-font.LeftPad,
				rect.Min.Y-textSize.Y-font.TopPad-font.BottomPad,
				centerX+textSize.X/2+font.RightPad, rect.Min.Y),
			clr:     useClr,
			text:    text,
			textPos: image.Pt(centerX-textSize.X/2, rect.Min.Y-font.BottomPad),
		})
	}

	// draw labels last so they are the top most layer
	for _, l := range boxLabels {
		gocv.Rectangle(img, l.rect, l.clr, -1)
		gocv.PutTextWithParams(img, l.text, l.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
