package motionplan

import (
	"math"

	"go.viam.com/jointplan/referenceframe"
)

// nearestNeighbor returns the index of the tree node whose configuration minimizes L2
// distance to the target. The scan is an exhaustive breadth-first walk of the arena, so each
// call is O(number of nodes); at the tree sizes this planner targets that beats the bookkeeping
// cost of a spatial index. Ties go to the first node visited, which the breadth-first order
// makes deterministic.
func (t *rrtTree) nearestNeighbor(target []referenceframe.Input) int {
	best := 0
	bestDist := math.Inf(1)
	for _, idx := range t.bfsOrder() {
		if dist := referenceframe.InputsL2Distance(t.nodes[idx].q, target); dist < bestDist {
			bestDist = dist
			best = idx
		}
	}
	return best
}
