package guidance

import (
	"testing"

	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func conflictHandler() *TurnHandler {
	return newTestHandler(map[datastructure.Index]edgeSpec{
		viaEdge:   {name: "Via Street", highway: pkg.RESIDENTIAL},
		uturnEdge: {name: "Via Street", highway: pkg.RESIDENTIAL},
		1:         {name: "Right Road", highway: pkg.RESIDENTIAL},
		2:         {name: "Left Road", highway: pkg.RESIDENTIAL},
	})
}

func TestConflictTwoRightTurns(t *testing.T) {
	th := conflictHandler()
	left := road(2, 90)
	right := road(1, 70)

	th.handleDistinctConflict(viaEdge, &left, &right)

	assert.Equal(t, datastructure.RIGHT, left.Instruction.Direction)
	assert.Equal(t, datastructure.SHARP_RIGHT, right.Instruction.Direction)
}

func TestConflictTwoLeftTurnsNearPerfectLeft(t *testing.T) {
	th := conflictHandler()
	left := road(2, 280)
	right := road(1, 250)

	th.handleDistinctConflict(viaEdge, &left, &right)

	assert.Equal(t, datastructure.LEFT, left.Instruction.Direction)
	assert.Equal(t, datastructure.SLIGHT_LEFT, right.Instruction.Direction)
}

func TestConflictSingleValidKeepsNaturalBucket(t *testing.T) {
	th := conflictHandler()
	left := deniedRoad(2, 90)
	right := road(1, 70)

	th.handleDistinctConflict(viaEdge, &left, &right)

	assert.Equal(t, datastructure.NO_TURN, left.Instruction.Type)
	assert.Equal(t, datastructure.NewTurnInstruction(datastructure.TURN, datastructure.RIGHT),
		right.Instruction)
}

func TestConflictIdenticalAnglesKeepNaturalBucket(t *testing.T) {
	th := conflictHandler()
	left := road(2, 90)
	right := road(1, 90)

	th.handleDistinctConflict(viaEdge, &left, &right)

	assert.Equal(t, datastructure.RIGHT, left.Instruction.Direction)
	assert.Equal(t, datastructure.RIGHT, right.Instruction.Direction)
}

// the fork-looking branch assigns fork instructions and then falls
// through into the quadrant table, which overwrites them. this test
// locks that behavior.
func TestConflictForkBranchFallsThrough(t *testing.T) {
	th := conflictHandler()
	left := road(2, 200)
	right := road(1, 180)

	th.handleDistinctConflict(viaEdge, &left, &right)

	assert.Equal(t, datastructure.NewTurnInstruction(datastructure.TURN, datastructure.LEFT),
		left.Instruction)
	assert.Equal(t, datastructure.NewTurnInstruction(datastructure.TURN, datastructure.SLIGHT_LEFT),
		right.Instruction)
}

func TestConflictTwoSharpRightsShiftTheLeftOne(t *testing.T) {
	th := conflictHandler()
	// both sharp right, too far from the perfect right angle for the
	// quadrant rules, so the sharp-right rule decides
	left := road(2, 25)
	right := road(1, 16)

	th.handleDistinctConflict(viaEdge, &left, &right)

	assert.Equal(t, datastructure.RIGHT, left.Instruction.Direction)
	assert.Equal(t, datastructure.SHARP_RIGHT, right.Instruction.Direction)
}
