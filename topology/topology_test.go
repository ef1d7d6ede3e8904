package topology

import (
	"testing"
)

func TestVariantSizes(t *testing.T) {

	tests := []struct {
		variant Variant
		points  int
		layout  Layout
	}{
		{Full, 39, LayoutLandmarks},
		{Upper, 31, LayoutLandmarks},
		{LegacySingle, 16, LayoutHeatmap},
	}

	for _, tc := range tests {
		topo, err := Get(tc.variant)

		if err != nil {
			t.Fatalf("Get(%s) returned error: %v", tc.variant, err)
		}

		if topo.NumKeypoints() != tc.points {
			t.Errorf("variant %s: expected %d keypoints, got %d",
				tc.variant, tc.points, topo.NumKeypoints())
		}

		if topo.Layout != tc.layout {
			t.Errorf("variant %s: expected layout %d, got %d",
				tc.variant, tc.layout, topo.Layout)
		}

		// every index round trips through the part name
		for i, p := range topo.Parts {
			idx, ok := topo.Index(p)

			if !ok || idx != i {
				t.Errorf("variant %s: part %q expected index %d, got %d (%v)",
					tc.variant, p, i, idx, ok)
			}
		}
	}
}

func TestGetUnknownVariant(t *testing.T) {
	if _, err := Get(Variant(42)); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestParseVariant(t *testing.T) {

	tests := []struct {
		name    string
		want    Variant
		wantErr bool
	}{
		{"full", Full, false},
		{" Upper ", Upper, false},
		{"legacy", LegacySingle, false},
		{"hands", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseVariant(tc.name)

		if (err != nil) != tc.wantErr {
			t.Errorf("ParseVariant(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			continue
		}

		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseVariant(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestNewValidation(t *testing.T) {

	if _, err := New(Full, []string{"a", "b", "a"}, nil, LayoutLandmarks); err == nil {
		t.Error("expected error for duplicate part names")
	}

	groups := []Group{{Name: "arm", Parts: []string{"a", "z"}}}

	if _, err := New(Full, []string{"a", "b"}, groups, LayoutLandmarks); err == nil {
		t.Error("expected error for group referencing unknown part")
	}

	topo, err := New(Full, []string{"a", "b"}, []Group{{Name: "ab", Parts: []string{"a", "b"}}}, LayoutLandmarks)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if topo.Part(1) != "b" || topo.Part(2) != "" || topo.Part(-1) != "" {
		t.Errorf("Part lookup returned wrong values")
	}
}
