package render

import (
	"image/color"
	"strings"
)

var (
	// poseColors are used for the box of each pose, indexed by pose ID
	poseColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},   // #FF3838
		{R: 255, G: 178, B: 29, A: 255},  // #FFB21D
		{R: 72, G: 249, B: 10, A: 255},   // #48F90A
		{R: 0, G: 212, B: 187, A: 255},   // #00D4BB
		{R: 0, G: 194, B: 255, A: 255},   // #00C2FF
		{R: 100, G: 115, B: 255, A: 255}, // #6473FF
		{R: 132, G: 56, B: 255, A: 255},  // #8438FF
		{R: 255, G: 55, B: 199, A: 255},  // #FF37C7
	}

	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}
	Pink   = color.RGBA{R: 255, G: 0, B: 255, A: 255}

	// posePalette are the colors used for the skeleton
	posePalette = []color.RGBA{
		{R: 255, G: 128, B: 0, A: 255},
		{R: 255, G: 51, B: 255, A: 255},
		{R: 51, G: 153, B: 255, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
	}
)

// groupColor returns the skeleton color for a topology group, left and right
// side groups are drawn in different colors
func groupColor(group string) color.RGBA {

	switch {
	case strings.HasPrefix(group, "left"):
		return posePalette[2]
	case strings.HasPrefix(group, "right"):
		return posePalette[1]
	case group == "torso" || group == "spine" || group == "shoulders":
		return posePalette[0]
	default:
		return posePalette[3]
	}
}

// depthColor shades a keypoint by its relative depth, points nearer the
// camera are drawn red and those further away blue
func depthColor(z float32) color.RGBA {

	t := 0.5 + z

	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return color.RGBA{
		R: uint8(255 * (1 - t)),
		G: 64,
		B: uint8(255 * t),
		A: 255,
	}
}
