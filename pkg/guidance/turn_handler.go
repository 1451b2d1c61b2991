package guidance

import (
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

/*
TurnHandler. assigns a turn instruction to every connected road of an
intersection, coming from a via edge. purely functional over one
intersection: borrowed read-only access to the graph and the name
tables, no state across calls, safe to run from many goroutines.
*/
type TurnHandler struct {
	graph      Graph
	names      NameTable
	suffixes   *SuffixTable
	thresholds Thresholds
}

func NewTurnHandler(graph Graph, names NameTable, suffixes *SuffixTable,
	thresholds Thresholds) *TurnHandler {

	return &TurnHandler{
		graph:      graph,
		names:      names,
		suffixes:   suffixes,
		thresholds: thresholds,
	}
}

// Compute. dispatch on the intersection size and fill every road's
// instruction. the intersection is taken and returned by value.
func (th *TurnHandler) Compute(viaEdge datastructure.Index,
	intersection datastructure.Intersection) datastructure.Intersection {

	util.AssertPanic(intersection.Valid(), "intersection must be sorted with a u-turn slot at 0")

	if len(intersection) == 1 {
		return th.handleOneWayTurn(intersection)
	}

	// if the u-turn is allowed, give index 0 its basic type with the u-turn modifier
	if intersection[0].EntryAllowed {
		intersection[0].Instruction = datastructure.NewTurnInstruction(
			th.findBasicTurnType(viaEdge, intersection[0]), datastructure.U_TURN)
	}

	if len(intersection) == 2 {
		return th.handleTwoWayTurn(viaEdge, intersection)
	}
	if len(intersection) == 3 {
		return th.handleThreeWayTurn(viaEdge, intersection)
	}
	return th.handleComplexTurn(viaEdge, intersection)
}

func (th *TurnHandler) handleOneWayTurn(
	intersection datastructure.Intersection) datastructure.Intersection {

	util.AssertPanic(intersection[0].Angle < 0.001, "dead end must only hold the u-turn slot")
	return intersection
}

func (th *TurnHandler) handleTwoWayTurn(viaEdge datastructure.Index,
	intersection datastructure.Intersection) datastructure.Intersection {

	intersection[1].Instruction = th.getInstructionForObvious(
		len(intersection), viaEdge, false, intersection[1])
	return intersection
}

/*
isEndOfRoad. T intersection coming from the stem:

	OOOOOOO T OOOOOOOO
	        I
	        I

the first road parameter (the u-turn slot) does not matter for the
shape, only the right and left candidates do.
*/
func (th *TurnHandler) isEndOfRoad(_, possibleRightTurn,
	possibleLeftTurn datastructure.ConnectedRoad) bool {

	return geo.AngularDeviation(possibleRightTurn.Angle, 90) < th.thresholds.NarrowTurnAngle &&
		geo.AngularDeviation(possibleLeftTurn.Angle, 270) < th.thresholds.NarrowTurnAngle &&
		geo.AngularDeviation(possibleRightTurn.Angle, possibleLeftTurn.Angle) >
			2*th.thresholds.NarrowTurnAngle
}

type straightestTurn struct {
	id                    int
	deviationFromStraight float64
}

// findClosestToStraight. the enterable road closest to going straight.
func (th *TurnHandler) findClosestToStraight(
	intersection datastructure.Intersection) straightestTurn {

	best := 0
	bestDeviation := 180.0
	for i := 1; i < len(intersection); i++ {
		deviation := geo.AngularDeviation(intersection[i].Angle, th.thresholds.StraightAngle)
		if intersection[i].EntryAllowed && deviation < bestDeviation {
			bestDeviation = deviation
			best = i
		}
	}
	return straightestTurn{id: best, deviationFromStraight: bestDeviation}
}

func (th *TurnHandler) handleThreeWayTurn(viaEdge datastructure.Index,
	intersection datastructure.Intersection) datastructure.Intersection {

	util.AssertPanic(len(intersection) == 3, "three way handler needs exactly three roads")
	obviousIndex := th.findObviousTurn(viaEdge, intersection)

	/* two nearly straight turns -> fork
	         OOOOOOO
	       /
	IIIIII
	       \
	         OOOOOOO
	*/
	f, hasFork := th.findFork(viaEdge, intersection)

	switch {
	case hasFork && obviousIndex == 0:
		th.assignFork(viaEdge, &intersection[f.left], &intersection[f.right])

	case th.isEndOfRoad(intersection[0], intersection[1], intersection[2]) && obviousIndex == 0:
		if intersection[1].EntryAllowed {
			turnType := datastructure.END_OF_ROAD
			if th.findBasicTurnType(viaEdge, intersection[1]) == datastructure.ON_RAMP {
				turnType = datastructure.ON_RAMP
			}
			intersection[1].Instruction = datastructure.NewTurnInstruction(
				turnType, datastructure.RIGHT)
		}
		if intersection[2].EntryAllowed {
			turnType := datastructure.END_OF_ROAD
			if th.findBasicTurnType(viaEdge, intersection[2]) == datastructure.ON_RAMP {
				turnType = datastructure.ON_RAMP
			}
			intersection[2].Instruction = datastructure.NewTurnInstruction(
				turnType, datastructure.LEFT)
		}

	case obviousIndex != 0:
		directionAtOne := th.thresholds.TurnDirection(intersection[1].Angle)
		directionAtTwo := th.thresholds.TurnDirection(intersection[2].Angle)
		if obviousIndex == 1 {
			intersection[1].Instruction = th.getInstructionForObvious(
				3, viaEdge, th.isThroughStreet(1, intersection), intersection[1])

			secondDirection := directionAtTwo
			if directionAtOne == directionAtTwo && directionAtTwo == datastructure.STRAIGHT {
				secondDirection = datastructure.SLIGHT_LEFT
			}
			intersection[2].Instruction = datastructure.NewTurnInstruction(
				th.findBasicTurnType(viaEdge, intersection[2]), secondDirection)
		} else {
			util.AssertPanic(obviousIndex == 2, "obvious index out of range")
			intersection[2].Instruction = th.getInstructionForObvious(
				3, viaEdge, th.isThroughStreet(2, intersection), intersection[2])

			firstDirection := directionAtOne
			if directionAtOne == directionAtTwo && directionAtOne == datastructure.STRAIGHT {
				firstDirection = datastructure.SLIGHT_RIGHT
			}
			intersection[1].Instruction = datastructure.NewTurnInstruction(
				th.findBasicTurnType(viaEdge, intersection[1]), firstDirection)
		}

	default:
		th.assignTrivialTurns(viaEdge, intersection, 1, len(intersection))
	}
	return intersection
}

func (th *TurnHandler) handleComplexTurn(viaEdge datastructure.Index,
	intersection datastructure.Intersection) datastructure.Intersection {

	obviousIndex := th.findObviousTurn(viaEdge, intersection)
	f, hasFork := th.findFork(viaEdge, intersection)
	straightmost := th.findClosestToStraight(intersection)

	switch {
	case obviousIndex != 0:
		intersection[obviousIndex].Instruction = th.getInstructionForObvious(
			len(intersection), viaEdge,
			th.isThroughStreet(obviousIndex, intersection), intersection[obviousIndex])

		intersection = th.assignLeftTurns(viaEdge, intersection, obviousIndex+1)
		intersection = th.assignRightTurns(viaEdge, intersection, obviousIndex)

	case hasFork:
		if f.size == 2 {
			leftClass := th.graph.GetEdgeData(intersection[f.left].Eid).GetRoadClassification()
			rightClass := th.graph.GetEdgeData(intersection[f.right].Eid).GetRoadClassification()
			if canBeSeenAsFork(leftClass, rightClass) {
				th.assignFork(viaEdge, &intersection[f.left], &intersection[f.right])
			} else if leftClass.GetPriority() > rightClass.GetPriority() {
				intersection[f.right].Instruction = th.getInstructionForObvious(
					len(intersection), viaEdge, false, intersection[f.right])
				intersection[f.left].Instruction = datastructure.NewTurnInstruction(
					th.findBasicTurnType(viaEdge, intersection[f.left]), datastructure.SLIGHT_LEFT)
			} else {
				intersection[f.left].Instruction = th.getInstructionForObvious(
					len(intersection), viaEdge, false, intersection[f.left])
				intersection[f.right].Instruction = datastructure.NewTurnInstruction(
					th.findBasicTurnType(viaEdge, intersection[f.right]), datastructure.SLIGHT_RIGHT)
			}
		} else {
			util.AssertPanic(f.size == 3, "fork size must be 2 or 3")
			th.assignFork3(viaEdge,
				&intersection[f.left], &intersection[f.right+1], &intersection[f.right])
		}

		intersection = th.assignLeftTurns(viaEdge, intersection, f.left+1)
		intersection = th.assignRightTurns(viaEdge, intersection, f.right)

	case straightmost.deviationFromStraight < th.thresholds.FuzzyAngleDifference &&
		!intersection[straightmost.id].EntryAllowed:
		// straight turn exists but cannot be entered
		intersection = th.assignLeftTurns(viaEdge, intersection, straightmost.id+1)
		intersection = th.assignRightTurns(viaEdge, intersection, straightmost.id)

	case intersection[straightmost.id].Angle > 180:
		// no straight turn, straightest road leans left
		intersection = th.assignLeftTurns(viaEdge, intersection, straightmost.id)
		intersection = th.assignRightTurns(viaEdge, intersection, straightmost.id)

	case intersection[straightmost.id].Angle < 180:
		intersection = th.assignLeftTurns(viaEdge, intersection, straightmost.id+1)
		intersection = th.assignRightTurns(viaEdge, intersection, straightmost.id+1)

	default:
		th.assignTrivialTurns(viaEdge, intersection, 1, len(intersection))
	}
	return intersection
}

/*
assignLeftTurns. hand the left side over to the right-turn logic:
mirror every road, reverse the order, assign right turns, then mirror
and reverse back. mirroring is an involution and keeps the u-turn slot
and the sort order intact, so the round trip is exact.
*/
func (th *TurnHandler) assignLeftTurns(viaEdge datastructure.Index,
	intersection datastructure.Intersection, startingAt int) datastructure.Intersection {

	util.AssertPanic(startingAt <= len(intersection), "starting index out of range")

	switchLeftAndRight := func(intersection datastructure.Intersection) {
		util.AssertPanic(len(intersection) > 0, "intersection must not be empty")
		for i := range intersection {
			intersection[i].Mirror()
		}
		util.ReverseInPlaceG(intersection, 1, len(intersection))
	}

	switchLeftAndRight(intersection)
	// account for the u-turn in the beginning
	count := len(intersection) - startingAt + 1
	intersection = th.assignRightTurns(viaEdge, intersection, count)
	switchLeftAndRight(intersection)

	return intersection
}

// assignRightTurns. assign turns on indices [1, upTo). at most three
// conflicting candidates can be told apart.
func (th *TurnHandler) assignRightTurns(viaEdge datastructure.Index,
	intersection datastructure.Intersection, upTo int) datastructure.Intersection {

	util.AssertPanic(upTo <= len(intersection), "upper bound out of range")

	countValid := 0
	for i := 1; i < upTo; i++ {
		if intersection[i].EntryAllowed {
			countValid++
		}
	}
	if upTo <= 1 || countValid == 0 {
		return intersection
	}

	if upTo == 2 {
		th.assignTrivialTurns(viaEdge, intersection, 1, upTo)
		return intersection
	}

	if upTo == 3 {
		firstDirection := th.thresholds.TurnDirection(intersection[1].Angle)
		secondDirection := th.thresholds.TurnDirection(intersection[2].Angle)
		if firstDirection == secondDirection {
			th.handleDistinctConflict(viaEdge, &intersection[2], &intersection[1])
		} else {
			th.assignTrivialTurns(viaEdge, intersection, 1, upTo)
		}
		return intersection
	}

	if upTo == 4 {
		firstDirection := th.thresholds.TurnDirection(intersection[1].Angle)
		secondDirection := th.thresholds.TurnDirection(intersection[2].Angle)
		thirdDirection := th.thresholds.TurnDirection(intersection[3].Angle)

		switch {
		case firstDirection != secondDirection && secondDirection != thirdDirection:
			// circular order makes the three directions pairwise unique
			th.assignTrivialTurns(viaEdge, intersection, 1, upTo)

		case countValid <= 2:
			if !intersection[3].EntryAllowed {
				th.handleDistinctConflict(viaEdge, &intersection[2], &intersection[1])
			} else if !intersection[1].EntryAllowed {
				th.handleDistinctConflict(viaEdge, &intersection[3], &intersection[2])
			} else {
				// roads 1 and 3 are valid, the middle one is blocked
				th.handleDistinctConflict(viaEdge, &intersection[3], &intersection[1])
			}

		case geo.AngularDeviation(intersection[1].Angle, intersection[2].Angle) >=
			th.thresholds.NarrowTurnAngle &&
			geo.AngularDeviation(intersection[2].Angle, intersection[3].Angle) >=
				th.thresholds.NarrowTurnAngle:
			// conflicting buckets but the roads are far apart
			intersection[1].Instruction = datastructure.NewTurnInstruction(
				th.findBasicTurnType(viaEdge, intersection[1]), datastructure.SHARP_RIGHT)
			intersection[2].Instruction = datastructure.NewTurnInstruction(
				th.findBasicTurnType(viaEdge, intersection[2]), datastructure.RIGHT)
			intersection[3].Instruction = datastructure.NewTurnInstruction(
				th.findBasicTurnType(viaEdge, intersection[3]), datastructure.SLIGHT_RIGHT)

		case (firstDirection == secondDirection && secondDirection == thirdDirection) ||
			(firstDirection == secondDirection &&
				geo.AngularDeviation(intersection[2].Angle, intersection[3].Angle) <
					th.thresholds.GroupAngle) ||
			(secondDirection == thirdDirection &&
				geo.AngularDeviation(intersection[1].Angle, intersection[2].Angle) <
					th.thresholds.GroupAngle):
			th.assignTrivialTurns(viaEdge, intersection, 1, upTo)

		case (firstDirection == secondDirection &&
			geo.AngularDeviation(intersection[2].Angle, intersection[3].Angle) >=
				th.thresholds.GroupAngle) ||
			(secondDirection == thirdDirection &&
				geo.AngularDeviation(intersection[1].Angle, intersection[2].Angle) >=
					th.thresholds.GroupAngle):
			if geo.AngularDeviation(intersection[2].Angle, intersection[3].Angle) >=
				th.thresholds.GroupAngle {
				th.handleDistinctConflict(viaEdge, &intersection[2], &intersection[1])
				intersection[3].Instruction = datastructure.NewTurnInstruction(
					th.findBasicTurnType(viaEdge, intersection[3]), thirdDirection)
			} else {
				intersection[1].Instruction = datastructure.NewTurnInstruction(
					th.findBasicTurnType(viaEdge, intersection[1]), firstDirection)
				th.handleDistinctConflict(viaEdge, &intersection[3], &intersection[2])
			}

		default:
			th.assignTrivialTurns(viaEdge, intersection, 1, upTo)
		}
		return intersection
	}

	th.assignTrivialTurns(viaEdge, intersection, 1, upTo)
	return intersection
}
