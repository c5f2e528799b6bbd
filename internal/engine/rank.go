package engine

import "sort"

// rankPockets orders candidates by druggability descending and
// attaches the run summary. Equal scores break by cluster id ascending
// so the ordering is total. No truncation: every scored pocket is
// returned.
func rankPockets(pockets []Pocket, meta Meta) *Result {
	sort.SliceStable(pockets, func(i, j int) bool {
		if pockets[i].Druggability != pockets[j].Druggability {
			return pockets[i].Druggability > pockets[j].Druggability
		}
		return pockets[i].ID < pockets[j].ID
	})
	if pockets == nil {
		pockets = []Pocket{}
	}
	return &Result{Pockets: pockets, Meta: meta}
}
