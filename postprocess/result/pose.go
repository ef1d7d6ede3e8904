// Package result holds the structures produced by the pose post processors
// and consumed by renderers
package result

// Point is a position in pixel space.  Z is relative depth scaled by the
// landmark model input size
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Keypoint is a single decoded body landmark
type Keypoint struct {
	// Index is the keypoint index defined by the model topology
	Index int `json:"index"`
	// Part is the body part name of the keypoint
	Part     string `json:"part"`
	Position Point  `json:"position"`
	// Score is the combined confidence, the lower of Visibility and Presence
	Score float32 `json:"score"`
	// Visibility is the probability the keypoint is not occluded
	Visibility float32 `json:"visibility"`
	// Presence is the probability the keypoint is inside the frame
	Presence float32 `json:"presence"`
}

// Segment is a skeleton line between two retained keypoints
type Segment struct {
	Group string   `json:"group"`
	From  Keypoint `json:"from"`
	To    Keypoint `json:"to"`
}

// Diagnostics are scoring statistics computed over every keypoint the model
// returned, including those discarded by the confidence threshold
type Diagnostics struct {
	VisibleParts int     `json:"visibleParts"`
	MissingParts int     `json:"missingParts"`
	AvgScore     float32 `json:"avgScore"`
	VisibleScore float32 `json:"visibleScore"`
}

// PoseResult is the pose estimate of one body in a frame
type PoseResult struct {
	// ID is the position of the source region in the frame's region list
	ID    int     `json:"id"`
	Score float32 `json:"score"`
	// Keypoints that scored above the confidence threshold
	Keypoints []Keypoint `json:"keypoints"`
	// Segments are keyed by topology group name
	Segments map[string][]Segment `json:"segments"`
	// Box encloses the retained Keypoints in pixel space.  It is nil when no
	// keypoint was retained
	Box *Box `json:"box"`
	// Region is the pixel space area the landmark model was run on
	Region      Box         `json:"region"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Keypoint returns the retained keypoint with the given part name
func (p PoseResult) Keypoint(part string) (Keypoint, bool) {

	for _, kp := range p.Keypoints {
		if kp.Part == part {
			return kp, true
		}
	}

	return Keypoint{}, false
}

// Empty returns true if no keypoints were retained
func (p PoseResult) Empty() bool {
	return len(p.Keypoints) == 0
}
