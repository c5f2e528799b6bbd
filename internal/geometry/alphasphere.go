package geometry

// AlphaSphere is the circumsphere of a Delaunay tetrahedron whose
// radius falls in the pocket-relevant range. It is a geometric proxy
// for a cavity region on the molecular surface.
type AlphaSphere struct {
	Center Vec3
	Radius float64
}

// AlphaSpheres computes the circumsphere of every cell and keeps those
// with minR <= radius <= maxR. Cells whose circumsphere system is
// singular are skipped; a single flat tetrahedron never fails the run.
func AlphaSpheres(points []Vec3, cells [][4]int, minR, maxR float64) []AlphaSphere {
	var spheres []AlphaSphere
	for _, cell := range cells {
		center, r, ok := Circumsphere(points[cell[0]], points[cell[1]], points[cell[2]], points[cell[3]])
		if !ok {
			continue
		}
		if r < minR || r > maxR {
			continue
		}
		spheres = append(spheres, AlphaSphere{Center: center, Radius: r})
	}
	return spheres
}
