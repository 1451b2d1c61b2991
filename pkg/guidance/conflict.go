package guidance

import (
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
)

/*
handleDistinctConflict. two candidates fall into the same direction
bucket; shift one of them to the adjacent bucket so the instructions
stay distinguishable. caller contract: left.Angle > right.Angle.

the fork-looking branch does not return: execution falls through into
the quadrant table below, which always overwrites its assignment.
*/
func (th *TurnHandler) handleDistinctConflict(viaEdge datastructure.Index,
	left, right *datastructure.ConnectedRoad) {

	// a single valid turn, or multiple identical angles (bad osm data):
	// keep the natural buckets
	if !left.EntryAllowed || !right.EntryAllowed || left.Angle == right.Angle {
		if left.EntryAllowed {
			left.Instruction = datastructure.NewTurnInstruction(
				th.findBasicTurnType(viaEdge, *left), th.thresholds.TurnDirection(left.Angle))
		}
		if right.EntryAllowed {
			right.Instruction = datastructure.NewTurnInstruction(
				th.findBasicTurnType(viaEdge, *right), th.thresholds.TurnDirection(right.Angle))
		}
		return
	}

	if th.thresholds.TurnDirection(left.Angle) == datastructure.STRAIGHT ||
		th.thresholds.TurnDirection(left.Angle) == datastructure.SLIGHT_LEFT ||
		th.thresholds.TurnDirection(right.Angle) == datastructure.SLIGHT_RIGHT {

		leftClass := th.graph.GetEdgeData(left.Eid).GetRoadClassification()
		rightClass := th.graph.GetEdgeData(right.Eid).GetRoadClassification()
		if canBeSeenAsFork(leftClass, rightClass) {
			th.assignFork(viaEdge, left, right)
		} else if leftClass.GetPriority() > rightClass.GetPriority() {
			// intersection size is unknown here; treat it as complex
			right.Instruction = th.getInstructionForObvious(4, viaEdge, false, *right)
			left.Instruction = datastructure.NewTurnInstruction(
				th.findBasicTurnType(viaEdge, *left), datastructure.SLIGHT_LEFT)
		} else {
			left.Instruction = th.getInstructionForObvious(4, viaEdge, false, *left)
			right.Instruction = datastructure.NewTurnInstruction(
				th.findBasicTurnType(viaEdge, *right), datastructure.SLIGHT_RIGHT)
		}
	}

	leftType := th.findBasicTurnType(viaEdge, *left)
	rightType := th.findBasicTurnType(viaEdge, *right)

	// two right turns around the perfect right angle
	if geo.AngularDeviation(left.Angle, 90) < th.thresholds.MaximalAllowedNoTurnDeviation {
		// keep left perfect, shift right
		left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.RIGHT)
		right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.SHARP_RIGHT)
		return
	}
	if geo.AngularDeviation(right.Angle, 90) < th.thresholds.MaximalAllowedNoTurnDeviation {
		// keep right perfect, shift left
		left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.SLIGHT_RIGHT)
		right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.RIGHT)
		return
	}
	// two left turns around the perfect left angle
	if geo.AngularDeviation(left.Angle, 270) < th.thresholds.MaximalAllowedNoTurnDeviation {
		left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.LEFT)
		right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.SLIGHT_LEFT)
		return
	}
	if geo.AngularDeviation(right.Angle, 270) < th.thresholds.MaximalAllowedNoTurnDeviation {
		left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.SHARP_LEFT)
		right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.LEFT)
		return
	}

	// shift the lesser penalty
	if th.thresholds.TurnDirection(left.Angle) == datastructure.SHARP_LEFT {
		left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.SHARP_LEFT)
		right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.LEFT)
		return
	}
	if th.thresholds.TurnDirection(right.Angle) == datastructure.SHARP_RIGHT {
		left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.RIGHT)
		right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.SHARP_RIGHT)
		return
	}

	if th.thresholds.TurnDirection(left.Angle) == datastructure.RIGHT {
		if geo.AngularDeviation(left.Angle, 85) >= geo.AngularDeviation(right.Angle, 85) {
			left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.RIGHT)
			right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.SHARP_RIGHT)
		} else {
			left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.SLIGHT_RIGHT)
			right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.RIGHT)
		}
	} else {
		if geo.AngularDeviation(left.Angle, 265) >= geo.AngularDeviation(right.Angle, 265) {
			left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.SHARP_LEFT)
			right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.LEFT)
		} else {
			left.Instruction = datastructure.NewTurnInstruction(leftType, datastructure.LEFT)
			right.Instruction = datastructure.NewTurnInstruction(rightType, datastructure.SLIGHT_LEFT)
		}
	}
}
