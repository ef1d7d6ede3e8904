package postprocess

import (
	"github.com/swdee/go-blazepose/postprocess/result"
	"github.com/swdee/go-blazepose/topology"
	"gonum.org/v1/gonum/stat"
)

// buildSegments walks each topology group linking consecutive parts when both
// ends were retained.  A missing part breaks the chain at that link.  Every
// group is present in the returned map, possibly with no segments
func buildSegments(topo topology.Topology, retained map[string]result.Keypoint) map[string][]result.Segment {

	segments := make(map[string][]result.Segment, len(topo.Groups))

	for _, g := range topo.Groups {

		links := make([]result.Segment, 0, len(g.Parts))

		for i := 0; i+1 < len(g.Parts); i++ {
			from, ok := retained[g.Parts[i]]
			if !ok {
				continue
			}

			to, ok := retained[g.Parts[i+1]]
			if !ok {
				continue
			}

			links = append(links, result.Segment{
				Group: g.Name,
				From:  from,
				To:    to,
			})
		}

		segments[g.Name] = links
	}

	return segments
}

// assemble builds a PoseResult from every decoded keypoint, keeping those with
// a score above min.  Diagnostics are calculated over the full set
func assemble(topo topology.Topology, all []result.Keypoint, min float32,
	region result.Box) result.PoseResult {

	res := result.PoseResult{
		Keypoints: make([]result.Keypoint, 0, len(all)),
		Region:    region,
	}

	retained := make(map[string]result.Keypoint, len(all))
	points := make([]result.Point, 0, len(all))
	allScores := make([]float64, len(all))
	keptScores := make([]float64, 0, len(all))

	for i, kp := range all {
		allScores[i] = float64(kp.Score)

		// negated so a NaN score is never retained
		if !(kp.Score > min) {
			continue
		}

		res.Keypoints = append(res.Keypoints, kp)
		retained[kp.Part] = kp
		points = append(points, kp.Position)
		keptScores = append(keptScores, float64(kp.Score))
	}

	res.Box = EnclosingBox(points)
	res.Segments = buildSegments(topo, retained)

	res.Diagnostics = result.Diagnostics{
		VisibleParts: len(res.Keypoints),
		MissingParts: len(all) - len(res.Keypoints),
	}

	if len(allScores) > 0 {
		res.Diagnostics.AvgScore = float32(stat.Mean(allScores, nil))
	}

	if len(keptScores) > 0 {
		res.Diagnostics.VisibleScore = float32(stat.Mean(keptScores, nil))
	}

	res.Score = res.Diagnostics.VisibleScore

	return res
}

// EmptyResult returns the PoseResult for a normalized region that could not
// be decoded.  It has no keypoints and a nil Box but still carries the region
// and an empty segment list for every topology group
func EmptyResult(topo topology.Topology, region result.Box, outWidth, outHeight int) result.PoseResult {
	return assemble(topo, nil, 0, region.Scale(outWidth, outHeight))
}
