package postprocess

// Score is the decoded confidence of a single keypoint
type Score struct {
	// Visibility is the probability the keypoint is not occluded
	Visibility float32
	// Presence is the probability the keypoint is inside the frame
	Presence float32
	// Confidence is the lower of Visibility and Presence
	Confidence float32
}

// DecodeScore converts the visibility and presence logits of a keypoint into
// probabilities rounded to two decimal places, matching the quantization the
// landmark models were trained with
func DecodeScore(vis, pres float32) Score {

	s := Score{
		Visibility: probability(round2(Sigmoid(vis))),
		Presence:   probability(round2(Sigmoid(pres))),
	}

	s.Confidence = s.Visibility
	if s.Presence < s.Confidence {
		s.Confidence = s.Presence
	}

	return s
}

// Retained returns true if the keypoint confidence is above the minimum
func (s Score) Retained(min float32) bool {
	return s.Confidence > min
}
