package engine

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"pocketscan/internal/geometry"
	"pocketscan/internal/mol"
	"pocketscan/internal/spatial"
)

// polarCutoff is the Kyte–Doolittle value at or below which a residue
// counts as polar.
const polarCutoff = -0.5

// maxVoxels caps the volume grid of a single pocket. Cost scales with
// resolution^-3, so the requested resolution is coarsened (doubled)
// until the grid fits; the guard is deterministic.
const maxVoxels = 2_000_000

// scorer computes the per-cluster pocket properties. It only reads the
// shared buffers and indexes, so a single scorer may evaluate clusters
// concurrently.
type scorer struct {
	params    Params
	atoms     []mol.Atom
	atomIdx   *spatial.Index
	spheres   []geometry.AlphaSphere
	sphereIdx *spatial.Index
	labels    []int
}

// scorePocket derives every property of one non-noise cluster.
// members holds the alpha-sphere indices of the cluster, ascending.
func (s *scorer) scorePocket(id int, members []int) Pocket {
	var centroid geometry.Vec3
	var radiusSum float64
	for _, m := range members {
		centroid = centroid.Add(s.spheres[m].Center)
		radiusSum += s.spheres[m].Radius
	}
	centroid = centroid.Scale(1 / float64(len(members)))

	residues := s.residueKeys(members)
	avgHydro, polarFrac := hydropathyStats(residues)
	exposure := s.solventExposure(members)
	volume := s.pocketVolume(id, members)

	labels := make([]string, len(residues))
	for i, k := range residues {
		labels[i] = k.Label()
	}

	return Pocket{
		ID:                id,
		Center:            centroid,
		NSpheres:          len(members),
		AvgSphereRadius:   radiusSum / float64(len(members)),
		Volume:            volume,
		Residues:          labels,
		AvgHydrophobicity: avgHydro,
		PolarFrac:         polarFrac,
		SolventExposure:   exposure,
		Druggability:      druggability(len(members), avgHydro, exposure, polarFrac),
	}
}

// residueKeys returns the deduplicated residue identities of all atoms
// within ResidueRadius of any member sphere center, in a fixed order.
func (s *scorer) residueKeys(members []int) []mol.ResidueKey {
	seen := make(map[mol.ResidueKey]struct{})
	for _, m := range members {
		for _, ai := range s.atomIdx.Within(s.spheres[m].Center, s.params.ResidueRadius) {
			seen[s.atoms[ai].Key()] = struct{}{}
		}
	}

	keys := make([]mol.ResidueKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Chain != keys[j].Chain {
			return keys[i].Chain < keys[j].Chain
		}
		if keys[i].Seq != keys[j].Seq {
			return keys[i].Seq < keys[j].Seq
		}
		return keys[i].Name < keys[j].Name
	})
	return keys
}

// hydropathyStats averages the Kyte–Doolittle values of the residues
// that resolve on the scale and returns the polar fraction among them.
// Both are 0 when nothing resolves.
func hydropathyStats(keys []mol.ResidueKey) (avg, polarFrac float64) {
	var sum float64
	known, polar := 0, 0
	for _, k := range keys {
		v, ok := mol.Hydropathy(k.Name)
		if !ok {
			continue
		}
		known++
		sum += v
		if v <= polarCutoff {
			polar++
		}
	}
	if known == 0 {
		return 0, 0
	}
	return sum / float64(known), float64(polar) / float64(known)
}

// solventExposure estimates pocket burial from the spread of atom
// counts around member sphere centers: 1 means the least buried member
// is representative, 0 means no discriminating signal.
func (s *scorer) solventExposure(members []int) float64 {
	cmin, cmax := math.MaxInt, 0
	sum := 0
	for _, m := range members {
		c := s.atomIdx.CountWithin(s.spheres[m].Center, s.params.ExposureRadius)
		if c < cmin {
			cmin = c
		}
		if c > cmax {
			cmax = c
		}
		sum += c
	}
	if cmax == cmin {
		return 0
	}
	cmean := float64(sum) / float64(len(members))
	return 1 - (cmean-float64(cmin))/float64(cmax-cmin)
}

// pocketVolume integrates the volume of the union of member spheres on
// a regular voxel grid: a voxel counts when its center lies inside at
// least one member sphere. Deterministic numerical quadrature with
// accuracy bounded by resolution^3. Voxel slabs are evaluated in
// parallel; the counts are summed afterwards, so the result does not
// depend on scheduling order.
func (s *scorer) pocketVolume(id int, members []int) float64 {
	var maxR float64
	min := s.spheres[members[0]].Center
	max := min
	for _, m := range members {
		c := s.spheres[m].Center
		for i := 0; i < 3; i++ {
			if c[i] < min[i] {
				min[i] = c[i]
			}
			if c[i] > max[i] {
				max[i] = c[i]
			}
		}
		if s.spheres[m].Radius > maxR {
			maxR = s.spheres[m].Radius
		}
	}

	pad := maxR + 1
	origin := min.Sub(geometry.Vec3{pad, pad, pad})
	extent := max.Add(geometry.Vec3{pad, pad, pad})

	res := s.params.VoxelResolution
	var nx, ny, nz int
	for {
		nx = int(math.Ceil((extent[0] - origin[0]) / res))
		ny = int(math.Ceil((extent[1] - origin[1]) / res))
		nz = int(math.Ceil((extent[2] - origin[2]) / res))
		if nx*ny*nz <= maxVoxels {
			break
		}
		res *= 2
	}

	counts := make([]int, nz)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for iz := 0; iz < nz; iz++ {
		iz := iz
		g.Go(func() error {
			z := origin[2] + (float64(iz)+0.5)*res
			count := 0
			for ix := 0; ix < nx; ix++ {
				x := origin[0] + (float64(ix)+0.5)*res
				for iy := 0; iy < ny; iy++ {
					y := origin[1] + (float64(iy)+0.5)*res
					if s.insidePocket(geometry.Vec3{x, y, z}, id, maxR) {
						count++
					}
				}
			}
			counts[iz] = count
			return nil
		})
	}
	g.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return float64(total) * res * res * res
}

// insidePocket reports whether p lies inside any member sphere of the
// cluster. The sphere-center index restricts the candidate set: any
// sphere containing p has its center within its own radius <= maxR.
func (s *scorer) insidePocket(p geometry.Vec3, id int, maxR float64) bool {
	for _, si := range s.sphereIdx.Within(p, maxR) {
		if s.labels[si] != id {
			continue
		}
		if p.Dist(s.spheres[si].Center) <= s.spheres[si].Radius {
			return true
		}
	}
	return false
}

// druggability combines pocket size, hydrophobicity preference, burial
// and polarity into a single heuristic, clamped to [0,1].
func druggability(nSpheres int, avgHydro, exposure, polarFrac float64) float64 {
	sizeScore := math.Tanh(float64(nSpheres) / 50)
	hydroPref := math.Exp(-(avgHydro - 1.5) * (avgHydro - 1.5) / (2 * 1.5 * 1.5))
	exposurePref := 1 - math.Abs(exposure-0.4)
	polarityFactor := 1 - polarFrac

	d := sizeScore * hydroPref * exposurePref * polarityFactor
	return math.Min(math.Max(d, 0), 1)
}
