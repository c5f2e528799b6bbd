package engine

import (
	"testing"

	"pocketscan/internal/geometry"
	"pocketscan/internal/spatial"
)

// lineGroup returns n centers spaced 1 Å apart along x, starting at x0.
func lineGroup(x0 float64, n int) []geometry.Vec3 {
	pts := make([]geometry.Vec3, n)
	for i := range pts {
		pts[i] = geometry.Vec3{x0 + float64(i), 0, 0}
	}
	return pts
}

func TestClusterSpheres_TwoSeparatedGroups(t *testing.T) {
	centers := append(lineGroup(0, 8), lineGroup(100, 8)...)
	idx := spatial.NewIndex(centers)

	labels, clusters := clusterSpheres(idx, centers, 4.0, 6)
	if clusters != 2 {
		t.Fatalf("clusters = %d, want 2", clusters)
	}

	// Every point of a group carries the group's label; the two labels
	// differ.
	for i := 1; i < 8; i++ {
		if labels[i] != labels[0] {
			t.Errorf("labels[%d] = %d, want %d (first group)", i, labels[i], labels[0])
		}
	}
	for i := 9; i < 16; i++ {
		if labels[i] != labels[8] {
			t.Errorf("labels[%d] = %d, want %d (second group)", i, labels[i], labels[8])
		}
	}
	if labels[0] == labels[8] {
		t.Error("separated groups share a label")
	}
	if labels[0] == noiseLabel || labels[8] == noiseLabel {
		t.Error("group members labeled noise")
	}
}

func TestClusterSpheres_TooFewIsAllNoise(t *testing.T) {
	centers := lineGroup(0, 5) // fewer than minPts points in total
	idx := spatial.NewIndex(centers)

	labels, clusters := clusterSpheres(idx, centers, 4.0, 6)
	if clusters != 0 {
		t.Errorf("clusters = %d, want 0", clusters)
	}
	for i, l := range labels {
		if l != noiseLabel {
			t.Errorf("labels[%d] = %d, want noise", i, l)
		}
	}
}

func TestClusterSpheres_TightBlob(t *testing.T) {
	centers := []geometry.Vec3{
		{0, 0, 0},
		{0.1, 0, 0},
		{0, 0.1, 0},
		{0, 0, 0.1},
		{0.1, 0.1, 0},
		{0.1, 0, 0.1},
	}
	idx := spatial.NewIndex(centers)

	labels, clusters := clusterSpheres(idx, centers, 4.0, 6)
	if clusters != 1 {
		t.Fatalf("clusters = %d, want 1", clusters)
	}
	for i, l := range labels {
		if l != 0 {
			t.Errorf("labels[%d] = %d, want 0", i, l)
		}
	}
}

// TestClusterSpheres_NoiseReclassified: a border point visited before
// any core point is first labeled noise, then joins the cluster that
// reaches it.
func TestClusterSpheres_NoiseReclassified(t *testing.T) {
	centers := lineGroup(0, 8)
	idx := spatial.NewIndex(centers)

	labels, _ := clusterSpheres(idx, centers, 4.0, 6)
	// Point 0 has only 5 neighbors within eps (itself and 1..4), so it
	// is not a core point, but core point 1 reaches it.
	if labels[0] == noiseLabel {
		t.Error("border point 0 stayed noise, want reclassified")
	}
}

func TestClusterSpheres_Deterministic(t *testing.T) {
	centers := append(lineGroup(0, 10), lineGroup(30, 7)...)
	idx := spatial.NewIndex(centers)

	l1, c1 := clusterSpheres(idx, centers, 4.0, 6)
	l2, c2 := clusterSpheres(idx, centers, 4.0, 6)
	if c1 != c2 {
		t.Fatalf("cluster counts differ: %d vs %d", c1, c2)
	}
	for i := range l1 {
		if l1[i] != l2[i] {
			t.Errorf("labels[%d] differ: %d vs %d", i, l1[i], l2[i])
		}
	}
}
