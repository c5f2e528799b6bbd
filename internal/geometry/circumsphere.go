package geometry

import "gonum.org/v1/gonum/mat"

// Circumsphere computes the unique sphere through the four vertices of
// a tetrahedron. With a as base point the center c satisfies
// 2(p−a)·c = |p|²−|a|² for each remaining vertex p, a 3×3 linear
// system. ok is false when the system is singular or ill-conditioned
// (flat or near-flat tetrahedron); the conditioning threshold is
// gonum's, which reports a mat.Condition error instead of returning a
// numerically unstable solution unflagged.
func Circumsphere(a, b, c, d Vec3) (center Vec3, radius float64, ok bool) {
	sys := mat.NewDense(3, 3, nil)
	rhs := mat.NewVecDense(3, nil)
	for i, p := range [3]Vec3{b, c, d} {
		for j := 0; j < 3; j++ {
			sys.Set(i, j, 2*(p[j]-a[j]))
		}
		rhs.SetVec(i, p.Dot(p)-a.Dot(a))
	}

	var sol mat.VecDense
	if err := sol.SolveVec(sys, rhs); err != nil {
		return Vec3{}, 0, false
	}

	center = Vec3{sol.AtVec(0), sol.AtVec(1), sol.AtVec(2)}
	return center, center.Dist(a), true
}
