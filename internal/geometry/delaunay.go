package geometry

import (
	"errors"
	"math"
	"sort"
)

// ErrTooFewPoints is returned when fewer than four points are given.
var ErrTooFewPoints = errors.New("too few points")

// ErrDegenerate is returned when the point set admits no valid
// tetrahedron at all (fully coplanar or collinear input).
var ErrDegenerate = errors.New("degenerate point set")

// containEps absorbs floating rounding in the in-circumsphere test.
const containEps = 1e-9

type tetra struct {
	v      [4]int
	center Vec3
	r2     float64
	solved bool // circumsphere system was non-singular
	alive  bool
}

// contains reports whether p lies inside the circumsphere. Unsolvable
// (flat) cells count as containing everything so the next insertion
// re-splits them instead of leaving a broken cell behind.
func (t *tetra) contains(p Vec3) bool {
	if !t.solved {
		return true
	}
	return p.Dist2(t.center) <= t.r2*(1+containEps)+containEps
}

type face [3]int

func sortedFace(a, b, c int) face {
	f := face{a, b, c}
	if f[0] > f[1] {
		f[0], f[1] = f[1], f[0]
	}
	if f[1] > f[2] {
		f[1], f[2] = f[2], f[1]
	}
	if f[0] > f[1] {
		f[0], f[1] = f[1], f[0]
	}
	return f
}

func (t *tetra) faces() [4]face {
	v := t.v
	return [4]face{
		sortedFace(v[0], v[1], v[2]),
		sortedFace(v[0], v[1], v[3]),
		sortedFace(v[0], v[2], v[3]),
		sortedFace(v[1], v[2], v[3]),
	}
}

// Tetrahedralize computes a Delaunay tetrahedralization of points via
// incremental Bowyer–Watson insertion inside an enclosing
// super-tetrahedron. Points are inserted in ascending index order so
// the output is deterministic for a given input. Each returned cell is
// a set of four indices into points. Degenerate cells (no solvable
// circumsphere) are dropped; if nothing remains the whole input is
// degenerate and ErrDegenerate is returned.
func Tetrahedralize(points []Vec3) ([][4]int, error) {
	n := len(points)
	if n < 4 {
		return nil, ErrTooFewPoints
	}

	pts := make([]Vec3, n, n+4)
	copy(pts, points)
	pts = append(pts, superVertices(points)...)

	tets := []tetra{newTetra(pts, [4]int{n, n + 1, n + 2, n + 3})}

	var bad []int
	faceCount := make(map[face]int)
	var boundary []face

	for i := 0; i < n; i++ {
		p := pts[i]

		bad = bad[:0]
		for ti := range tets {
			if tets[ti].alive && tets[ti].contains(p) {
				bad = append(bad, ti)
			}
		}
		if len(bad) == 0 {
			// Numerically outside every live circumsphere; the
			// super-tetrahedron makes this near-impossible, but a
			// skipped point is recoverable while a broken mesh is not.
			continue
		}

		for k := range faceCount {
			delete(faceCount, k)
		}
		boundary = boundary[:0]
		for _, ti := range bad {
			for _, f := range tets[ti].faces() {
				faceCount[f]++
			}
		}
		// Collect boundary faces in bad-cell order for determinism.
		for _, ti := range bad {
			for _, f := range tets[ti].faces() {
				if faceCount[f] == 1 {
					boundary = append(boundary, f)
					faceCount[f] = 0 // emit once
				}
			}
		}

		for _, ti := range bad {
			tets[ti].alive = false
		}
		for _, f := range boundary {
			tets = append(tets, newTetra(pts, [4]int{i, f[0], f[1], f[2]}))
		}
	}

	var cells [][4]int
	for ti := range tets {
		t := &tets[ti]
		if !t.alive || !t.solved {
			continue
		}
		if t.v[0] >= n || t.v[1] >= n || t.v[2] >= n || t.v[3] >= n {
			continue
		}
		v := t.v
		sort.Ints(v[:])
		cells = append(cells, v)
	}
	if len(cells) == 0 {
		return nil, ErrDegenerate
	}
	return cells, nil
}

func newTetra(pts []Vec3, v [4]int) tetra {
	t := tetra{v: v, alive: true}
	center, r, ok := Circumsphere(pts[v[0]], pts[v[1]], pts[v[2]], pts[v[3]])
	if ok {
		t.center = center
		t.r2 = r * r
		t.solved = true
	} else {
		t.r2 = math.Inf(1)
	}
	return t
}

// superVertices returns four vertices of a tetrahedron that encloses
// the bounding box of points with a wide margin.
func superVertices(points []Vec3) []Vec3 {
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	c := min.Add(max).Scale(0.5)
	r := max.Sub(min).Norm()*50 + 100

	return []Vec3{
		c.Add(Vec3{r, r, r}),
		c.Add(Vec3{r, -r, -r}),
		c.Add(Vec3{-r, r, -r}),
		c.Add(Vec3{-r, -r, r}),
	}
}
