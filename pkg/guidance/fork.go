package guidance

import (
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

// fork. contiguous index range [right, left] of roads that behave as
// near-straight continuations.
type fork struct {
	right int
	left  int
	size  int
}

func newFork(right, left int) fork {
	f := fork{right: right, left: left, size: left - right + 1}
	util.AssertPanic(f.right < f.left, "fork right must precede fork left")
	util.AssertPanic(f.size >= 2 && f.size <= 3, "fork must span two or three roads")
	return f
}

/*
isOutermostForkCandidate. given two adjacent roads with `road1` a fork
candidate, true iff `road2` is not one as well, which makes `road1` the
outermost road of the fork. a road is a fork candidate if it is close
to straight or close to a street that goes close to straight.
*/
func (th *TurnHandler) isOutermostForkCandidate(road1, road2 datastructure.ConnectedRoad) bool {
	angleBetweenNextRoadAndStraight := geo.AngularDeviation(road2.Angle, th.thresholds.StraightAngle)
	angleBetweenPrevRoadAndNext := geo.AngularDeviation(road1.Angle, road2.Angle)
	angleBetweenPrevRoadAndStraight := geo.AngularDeviation(road1.Angle, th.thresholds.StraightAngle)

	if angleBetweenNextRoadAndStraight > th.thresholds.NarrowTurnAngle {
		if angleBetweenPrevRoadAndNext > th.thresholds.NarrowTurnAngle ||
			angleBetweenPrevRoadAndStraight > th.thresholds.GroupAngle {
			return true
		}
	}
	return false
}

/*
findLeftAndRightmostForkCandidates. starting from the straightest
enterable road, walk outwards in both directions while the adjacent
road still qualifies as part of the fork.

	 left   right          left   right
	    \   /                 \ | /
	     \ /                   \|/
	      |                     |
	      |                     |

	possibly a fork        possibly a fork

	       left             left
	        /                 \
	       /____ right         \ ______ right
	      |                     |
	      |                     |

	not a fork cause       not a fork cause
	it's not going         angle is too wide
	straigthish
*/
func (th *TurnHandler) findLeftAndRightmostForkCandidates(
	intersection datastructure.Intersection) (fork, bool) {

	if len(intersection) < 3 {
		return fork{}, false
	}

	straightest := th.findClosestToStraight(intersection)
	if straightest.deviationFromStraight > th.thresholds.NarrowTurnAngle {
		return fork{}, false
	}

	// rightmost road that might be part of the fork
	right := 0
	for i := straightest.id; i >= 1; i-- {
		if th.isOutermostForkCandidate(intersection[i], intersection[i-1]) {
			right = i
			break
		}
	}

	// leftmost road that might be part of the fork
	left := len(intersection) - 1
	for i := straightest.id; i+1 < len(intersection); i++ {
		if th.isOutermostForkCandidate(intersection[i], intersection[i+1]) {
			left = i
			break
		}
	}

	if right < left && left-right+1 <= 3 {
		return newFork(right, left), true
	}
	return fork{}, false
}

/*
isCompatibleByRoadClass. all fork roads share the link class of the
rightmost one, and no road in the fork range dominates another by road
class.
*/
func (th *TurnHandler) isCompatibleByRoadClass(intersection datastructure.Intersection,
	f fork) bool {

	viaClass := th.graph.GetEdgeData(intersection[0].Eid).GetRoadClassification()

	rightIsLink := th.graph.GetEdgeData(intersection[f.right].Eid).
		GetRoadClassification().IsLinkClass()
	for i := f.right + 1; i <= f.left; i++ {
		roadIsLink := th.graph.GetEdgeData(intersection[i].Eid).
			GetRoadClassification().IsLinkClass()
		if roadIsLink != rightIsLink {
			return false
		}
	}

	for base := f.right; base <= f.left; base++ {
		baseClass := th.graph.GetEdgeData(intersection[base].Eid).GetRoadClassification()
		for compare := f.right; compare <= f.left; compare++ {
			if compare == base {
				continue
			}
			compareClass := th.graph.GetEdgeData(intersection[compare].Eid).GetRoadClassification()
			if obviousByRoadClass(viaClass, baseClass, compareClass) {
				return false
			}
		}
	}
	return true
}

// hasObvious. true if any adjacent pair inside the fork range has an
// obvious road in either direction. forks are never obvious.
func (th *TurnHandler) hasObvious(viaEdge datastructure.Index,
	intersection datastructure.Intersection, f fork) bool {

	for i := f.right; i < f.left; i++ {
		if th.isObviousOfTwo(viaEdge, intersection[i], intersection[i+1]) ||
			th.isObviousOfTwo(viaEdge, intersection[i+1], intersection[i]) {
			return true
		}
	}
	return false
}

/*
findFork. the fork candidate range, accepted only if it is isolated
from the neighbouring streets on both sides, has no obvious member, is
class-compatible, and every member allows entry.
*/
func (th *TurnHandler) findFork(viaEdge datastructure.Index,
	intersection datastructure.Intersection) (fork, bool) {

	f, ok := th.findLeftAndRightmostForkCandidates(intersection)
	if !ok {
		return fork{}, false
	}
	util.AssertPanic(f.right >= 1, "u-turn slot cannot be part of a fork")

	next := f.left + 1
	if next == len(intersection) {
		next = 0
	}
	separatedAtLeftSide := geo.AngularDeviation(intersection[f.left].Angle,
		intersection[next].Angle) >= th.thresholds.GroupAngle
	separatedAtRightSide := geo.AngularDeviation(intersection[f.right].Angle,
		intersection[f.right-1].Angle) >= th.thresholds.GroupAngle

	hasObvious := th.hasObvious(viaEdge, intersection, f)
	hasCompatibleClasses := th.isCompatibleByRoadClass(intersection, f)
	onlyValidEntries := intersection.HasValidEntries(f.right, f.left)

	if separatedAtLeftSide && separatedAtRightSide && !hasObvious &&
		hasCompatibleClasses && onlyValidEntries {
		return f, true
	}
	return fork{}, false
}
