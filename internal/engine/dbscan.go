package engine

import (
	"pocketscan/internal/geometry"
	"pocketscan/internal/spatial"
)

// noiseLabel marks an alpha-sphere that belongs to no cluster.
const noiseLabel = -1

// clusterSpheres runs DBSCAN over alpha-sphere centers and returns one
// label per sphere (noiseLabel for unclustered) and the number of
// clusters started.
//
// Points are visited in ascending index order and expansion uses an
// explicit FIFO worklist, so labeling is deterministic for a given
// input. A point labeled noise early is reclassified when a later
// cluster reaches it; a point already claimed by a cluster is never
// relabeled. Neighbor counts include the point itself.
func clusterSpheres(idx *spatial.Index, centers []geometry.Vec3, eps float64, minPts int) (labels []int, clusters int) {
	n := len(centers)
	labels = make([]int, n)
	for i := range labels {
		labels[i] = noiseLabel
	}
	visited := make([]bool, n)

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := idx.Within(centers[i], eps)
		if len(neighbors) < minPts {
			continue // noise, possibly reclassified later
		}

		id := clusters
		clusters++
		labels[i] = id

		queue := append([]int(nil), neighbors...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]

			if labels[j] == noiseLabel {
				labels[j] = id
			}
			if visited[j] {
				continue
			}
			visited[j] = true

			reach := idx.Within(centers[j], eps)
			if len(reach) >= minPts {
				queue = append(queue, reach...)
			}
		}
	}
	return labels, clusters
}
