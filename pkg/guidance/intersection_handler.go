package guidance

import (
	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

/*
findBasicTurnType. base turn type of taking `road` coming from
`viaEdge`, before any intersection-shape reasoning: ramp transitions by
link class, then name continuity.
*/
func (th *TurnHandler) findBasicTurnType(viaEdge datastructure.Index,
	road datastructure.ConnectedRoad) datastructure.TurnType {

	viaData := th.graph.GetEdgeData(viaEdge)
	roadData := th.graph.GetEdgeData(road.Eid)

	onLink := viaData.GetRoadClassification().IsLinkClass()
	ontoLink := roadData.GetRoadClassification().IsLinkClass()

	if !onLink && ontoLink {
		return datastructure.ON_RAMP
	}
	if onLink && !ontoLink {
		return datastructure.OFF_RAMP
	}

	sameName := viaData.GetNameID() != pkg.EMPTY_NAME_ID &&
		roadData.GetNameID() != pkg.EMPTY_NAME_ID &&
		!RequiresNameAnnounced(viaData.GetNameID(), roadData.GetNameID(), th.names, th.suffixes)
	if sameName {
		return datastructure.CONTINUE
	}

	return datastructure.TURN
}

// getInstructionForObvious. instruction for the one road that is the
// natural continuation of the via edge.
func (th *TurnHandler) getInstructionForObvious(numRoads int, viaEdge datastructure.Index,
	throughStreet bool, road datastructure.ConnectedRoad) datastructure.TurnInstruction {

	turnType := th.findBasicTurnType(viaEdge, road)
	direction := th.thresholds.TurnDirection(road.Angle)

	if turnType == datastructure.ON_RAMP || turnType == datastructure.OFF_RAMP {
		return datastructure.NewTurnInstruction(turnType, direction)
	}

	if geo.AngularDeviation(road.Angle, 0) < 0.01 {
		return datastructure.NewTurnInstruction(datastructure.TURN, datastructure.U_TURN)
	}

	if turnType == datastructure.TURN {
		viaData := th.graph.GetEdgeData(viaEdge)
		roadData := th.graph.GetEdgeData(road.Eid)
		if RequiresNameAnnounced(viaData.GetNameID(), roadData.GetNameID(), th.names, th.suffixes) {
			if throughStreet {
				// obvious turn onto a crossing through street reads as a merge
				side := datastructure.SLIGHT_RIGHT
				if road.Angle > th.thresholds.StraightAngle {
					side = datastructure.SLIGHT_LEFT
				}
				return datastructure.NewTurnInstruction(datastructure.MERGE, side)
			}
			return datastructure.NewTurnInstruction(datastructure.TURN, direction)
		}
		return datastructure.NewTurnInstruction(datastructure.SUPPRESSED, direction)
	}

	util.AssertPanic(turnType == datastructure.CONTINUE, "unexpected basic turn type")
	return datastructure.NewTurnInstruction(datastructure.CONTINUE, direction)
}

/*
isThroughStreet. whether the road at `index` continues across the
intersection: some other connected road carries an equivalent non-empty
name and leaves on roughly the opposite side.
*/
func (th *TurnHandler) isThroughStreet(index int, intersection datastructure.Intersection) bool {
	data := th.graph.GetEdgeData(intersection[index].Eid)
	if data.GetNameID() == pkg.EMPTY_NAME_ID {
		return false
	}

	for i := range intersection {
		if i == index {
			continue
		}
		otherData := th.graph.GetEdgeData(intersection[i].Eid)
		sameName := otherData.GetNameID() != pkg.EMPTY_NAME_ID &&
			!RequiresNameAnnounced(data.GetNameID(), otherData.GetNameID(), th.names, th.suffixes)
		wideEnough := geo.AngularDeviation(intersection[index].Angle, intersection[i].Angle) >
			th.thresholds.StraightAngle-th.thresholds.NarrowTurnAngle
		if sameName && wideEnough {
			return true
		}
	}
	return false
}

/*
obviousByRoadClass. whether `candidate` clearly dominates `other` as the
continuation of a road classed like `via`: either the candidate is a
real road while the other is a link, or the candidate outranks the
other by more than one priority tier. in both cases the candidate must
stay within one tier of the via road.
*/
func obviousByRoadClass(via, candidate, other datastructure.RoadClassification) bool {
	if candidate.GetPriority() > via.GetPriority()+1 {
		return false
	}
	if !candidate.IsLinkClass() && other.IsLinkClass() {
		return true
	}
	return candidate.GetPriority()+1 < other.GetPriority()
}

// canBeSeenAsFork. two roads of the same broad tier (both link or both
// not) whose priorities differ by at most one.
func canBeSeenAsFork(left, right datastructure.RoadClassification) bool {
	return left.IsLinkClass() == right.IsLinkClass() &&
		util.Abs(int(left.GetPriority())-int(right.GetPriority())) <= 1
}

/*
isObviousOfTwo. whether taking `road` is obvious when `other` is the
only alternative: by road class, by perfectly-straight name continuity,
or by being much straighter than the alternative.
*/
func (th *TurnHandler) isObviousOfTwo(viaEdge datastructure.Index,
	road, other datastructure.ConnectedRoad) bool {

	viaData := th.graph.GetEdgeData(viaEdge)
	viaClass := viaData.GetRoadClassification()
	roadClass := th.graph.GetEdgeData(road.Eid).GetRoadClassification()
	otherClass := th.graph.GetEdgeData(other.Eid).GetRoadClassification()

	if obviousByRoadClass(viaClass, roadClass, otherClass) {
		return true
	}
	if obviousByRoadClass(viaClass, otherClass, roadClass) {
		return false
	}

	perfectlyStraight := geo.AngularDeviation(road.Angle, th.thresholds.StraightAngle) <
		datastructure.MachineEpsilon
	if perfectlyStraight && viaData.GetNameID() != pkg.EMPTY_NAME_ID {
		roadData := th.graph.GetEdgeData(road.Eid)
		if !RequiresNameAnnounced(viaData.GetNameID(), roadData.GetNameID(), th.names, th.suffixes) {
			return true
		}
	}

	devRoad := geo.AngularDeviation(road.Angle, th.thresholds.StraightAngle)
	devOther := geo.AngularDeviation(other.Angle, th.thresholds.StraightAngle)
	muchNarrower := devOther/devRoad > th.thresholds.IncreasesByFortyPercent &&
		geo.AngularDeviation(devOther, devRoad) > th.thresholds.FuzzyAngleDifference

	return muchNarrower
}

/*
findObviousTurn. index of the single road that is obvious against every
other candidate, or 0 if there is none (or more than one).
*/
func (th *TurnHandler) findObviousTurn(viaEdge datastructure.Index,
	intersection datastructure.Intersection) int {

	best := 0
	for i := 1; i < len(intersection); i++ {
		if !intersection[i].EntryAllowed {
			continue
		}
		obvious := true
		for j := 1; j < len(intersection); j++ {
			if j == i {
				continue
			}
			if !th.isObviousOfTwo(viaEdge, intersection[i], intersection[j]) {
				obvious = false
				break
			}
		}
		if obvious {
			if best != 0 {
				return 0
			}
			best = i
		}
	}
	return best
}

func (th *TurnHandler) forkTurnType(viaEdge datastructure.Index,
	road datastructure.ConnectedRoad) datastructure.TurnType {

	if basic := th.findBasicTurnType(viaEdge, road); basic == datastructure.ON_RAMP {
		return datastructure.ON_RAMP
	}
	return datastructure.FORK
}

// assignFork. two near-straight roads share the fork's slight modifiers.
func (th *TurnHandler) assignFork(viaEdge datastructure.Index,
	left, right *datastructure.ConnectedRoad) {

	left.Instruction = datastructure.NewTurnInstruction(
		th.forkTurnType(viaEdge, *left), datastructure.SLIGHT_LEFT)
	right.Instruction = datastructure.NewTurnInstruction(
		th.forkTurnType(viaEdge, *right), datastructure.SLIGHT_RIGHT)
}

func (th *TurnHandler) assignFork3(viaEdge datastructure.Index,
	left, middle, right *datastructure.ConnectedRoad) {

	left.Instruction = datastructure.NewTurnInstruction(
		th.forkTurnType(viaEdge, *left), datastructure.SLIGHT_LEFT)
	middle.Instruction = datastructure.NewTurnInstruction(
		th.forkTurnType(viaEdge, *middle), datastructure.STRAIGHT)
	right.Instruction = datastructure.NewTurnInstruction(
		th.forkTurnType(viaEdge, *right), datastructure.SLIGHT_RIGHT)
}

// assignTrivialTurns. every enterable road in [from, to) gets its basic
// type with its natural direction bucket.
func (th *TurnHandler) assignTrivialTurns(viaEdge datastructure.Index,
	intersection datastructure.Intersection, from, to int) {

	for i := from; i < to; i++ {
		if !intersection[i].EntryAllowed {
			continue
		}
		intersection[i].Instruction = datastructure.NewTurnInstruction(
			th.findBasicTurnType(viaEdge, intersection[i]),
			th.thresholds.TurnDirection(intersection[i].Angle))
	}
}
