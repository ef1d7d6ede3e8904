// Package topology defines the keypoint layouts of the supported pose models.
// Each layout maps a keypoint index to a body part name and lists the ordered
// part chains used to draw the skeleton.
package topology

import (
	"fmt"
	"strings"
)

// Variant selects one of the supported model topologies
type Variant int

const (
	// Full is the full body landmark model with 39 keypoints
	Full Variant = iota
	// Upper is the upper body landmark model with 31 keypoints
	Upper
	// LegacySingle is the single stage heatmap model with 16 keypoints
	LegacySingle
)

// String returns the configuration name of the variant
func (v Variant) String() string {
	switch v {
	case Full:
		return "full"
	case Upper:
		return "upper"
	case LegacySingle:
		return "legacy"
	default:
		return fmt.Sprintf("unknown variant %d", int(v))
	}
}

// ParseVariant returns the Variant for the given configuration name
func ParseVariant(name string) (Variant, error) {

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "full":
		return Full, nil
	case "upper":
		return Upper, nil
	case "legacy", "legacysingle", "single":
		return LegacySingle, nil
	}

	return 0, fmt.Errorf("unsupported topology variant %q", name)
}

// Layout describes how the landmark model lays out its keypoint output buffer
type Layout int

const (
	// LayoutLandmarks is a flat buffer of N keypoints by 5 channels being
	// x, y, z, visibility logit and presence logit
	LayoutLandmarks Layout = iota
	// LayoutHeatmap is a HxWxN buffer holding one heatmap per keypoint
	LayoutHeatmap
)

// Group is a named chain of body parts.  Consecutive parts in the chain are
// connected by a skeleton segment
type Group struct {
	Name  string
	Parts []string
}

// Topology is the keypoint layout of a model
type Topology struct {
	Variant Variant
	// Parts holds the part name of each keypoint index
	Parts  []string
	Groups []Group
	Layout Layout
	// index is a reverse lookup of part name to keypoint index
	index map[string]int
}

// New builds a Topology from the given part names and groups.  Part names
// must be unique and every group may only reference known parts.
func New(variant Variant, parts []string, groups []Group, layout Layout) (Topology, error) {

	t := Topology{
		Variant: variant,
		Parts:   parts,
		Groups:  groups,
		Layout:  layout,
		index:   make(map[string]int, len(parts)),
	}

	for i, p := range parts {
		if _, dup := t.index[p]; dup {
			return Topology{}, fmt.Errorf("duplicate part name %q at index %d", p, i)
		}
		t.index[p] = i
	}

	for _, g := range groups {
		for _, p := range g.Parts {
			if _, ok := t.index[p]; !ok {
				return Topology{}, fmt.Errorf("group %q references unknown part %q", g.Name, p)
			}
		}
	}

	return t, nil
}

// Get returns the built in Topology for the variant
func Get(v Variant) (Topology, error) {

	switch v {
	case Full:
		return New(Full, fullParts, fullGroups, LayoutLandmarks)
	case Upper:
		return New(Upper, upperParts, upperGroups, LayoutLandmarks)
	case LegacySingle:
		return New(LegacySingle, legacyParts, legacyGroups, LayoutHeatmap)
	}

	return Topology{}, fmt.Errorf("unsupported topology variant %d", int(v))
}

// NumKeypoints returns the number of keypoints the model outputs
func (t Topology) NumKeypoints() int {
	return len(t.Parts)
}

// Part returns the part name for keypoint index i, or an empty string if i
// is out of range
func (t Topology) Part(i int) string {
	if i < 0 || i >= len(t.Parts) {
		return ""
	}
	return t.Parts[i]
}

// Index returns the keypoint index of the named part
func (t Topology) Index(part string) (int, bool) {
	i, ok := t.index[part]
	return i, ok
}
