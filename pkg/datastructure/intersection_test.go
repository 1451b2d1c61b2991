package datastructure

import (
	"testing"
)

func connectedRoad(eid Index, angle float64, dir DirectionModifier) ConnectedRoad {
	r := NewConnectedRoad(eid, true, angle, 0)
	r.Instruction = NewTurnInstruction(TURN, dir)
	return r
}

func TestMirrorSwapsSideAndAngle(t *testing.T) {
	testCases := []struct {
		name      string
		angle     float64
		dir       DirectionModifier
		wantAngle float64
		wantDir   DirectionModifier
	}{
		{"right becomes left", 100, RIGHT, 260, LEFT},
		{"slight right becomes slight left", 150, SLIGHT_RIGHT, 210, SLIGHT_LEFT},
		{"sharp left becomes sharp right", 320, SHARP_LEFT, 40, SHARP_RIGHT},
		{"straight stays straight", 180, STRAIGHT, 180, STRAIGHT},
		{"u-turn slot untouched", 0, U_TURN, 0, U_TURN},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			r := connectedRoad(1, tt.angle, tt.dir)
			r.Mirror()
			if r.Angle != tt.wantAngle || r.Instruction.Direction != tt.wantDir {
				t.Errorf("mirror of (%v, %v) = (%v, %v), want (%v, %v)",
					tt.angle, tt.dir, r.Angle, r.Instruction.Direction, tt.wantAngle, tt.wantDir)
			}
		})
	}
}

func TestMirrorIsInvolution(t *testing.T) {
	angles := []float64{0, 15, 90, 170, 180, 195, 270, 345}
	for _, angle := range angles {
		for dir := U_TURN; dir < MAX_DIRECTION_MODIFIER; dir++ {
			r := connectedRoad(1, angle, dir)
			want := r
			r.Mirror()
			r.Mirror()
			if r != want {
				t.Errorf("mirror twice of (%v, %v) = (%v, %v)", angle, dir, r.Angle,
					r.Instruction.Direction)
			}
		}
	}
}

func TestIntersectionValid(t *testing.T) {
	valid := Intersection{
		NewConnectedRoad(0, false, 0, 0),
		NewConnectedRoad(1, true, 90, 0),
		NewConnectedRoad(2, true, 270, 0),
	}
	if !valid.Valid() {
		t.Error("sorted intersection with u-turn slot should be valid")
	}

	empty := Intersection{}
	if empty.Valid() {
		t.Error("empty intersection must be invalid")
	}

	unsorted := Intersection{
		NewConnectedRoad(0, false, 0, 0),
		NewConnectedRoad(1, true, 270, 0),
		NewConnectedRoad(2, true, 90, 0),
	}
	if unsorted.Valid() {
		t.Error("unsorted intersection must be invalid")
	}

	noUturnSlot := Intersection{
		NewConnectedRoad(1, true, 90, 0),
		NewConnectedRoad(2, true, 270, 0),
	}
	if noUturnSlot.Valid() {
		t.Error("intersection without the u-turn slot must be invalid")
	}
}

func TestFindClosestTurn(t *testing.T) {
	in := Intersection{
		NewConnectedRoad(0, false, 0, 0),
		NewConnectedRoad(1, true, 170, 0),
		NewConnectedRoad(2, true, 190, 0),
	}

	if got := in.FindClosestTurn(165); got != 1 {
		t.Errorf("FindClosestTurn(165) = %d, want 1", got)
	}
	// equal deviation: first occurrence wins
	if got := in.FindClosestTurn(180); got != 1 {
		t.Errorf("FindClosestTurn(180) = %d, want 1", got)
	}
	if got := in.FindClosestTurn(5); got != 0 {
		t.Errorf("FindClosestTurn(5) = %d, want 0", got)
	}
}

func TestHasValidEntries(t *testing.T) {
	in := Intersection{
		NewConnectedRoad(0, false, 0, 0),
		NewConnectedRoad(1, true, 90, 0),
		NewConnectedRoad(2, true, 180, 0),
		NewConnectedRoad(3, false, 270, 0),
	}

	if !in.HasValidEntries(1, 2) {
		t.Error("roads 1-2 all allow entry")
	}
	if in.HasValidEntries(0, 2) {
		t.Error("range including the blocked u-turn slot must fail")
	}
	if in.HasValidEntries(2, 3) {
		t.Error("range including road 3 must fail")
	}
}

type laneGraph map[Index]EdgeData

func (g laneGraph) GetEdgeData(e Index) EdgeData {
	return g[e]
}

func TestHighestConnectedLaneCount(t *testing.T) {
	graph := laneGraph{
		0: NewEdgeData(0, NewRoadClassification(5, false, 1)),
		1: NewEdgeData(0, NewRoadClassification(2, false, 3)),
		2: NewEdgeData(0, NewRoadClassification(5, false, 2)),
	}
	in := Intersection{
		NewConnectedRoad(0, false, 0, 0),
		NewConnectedRoad(1, true, 90, 0),
		NewConnectedRoad(2, true, 180, 0),
	}

	if got := in.HighestConnectedLaneCount(graph); got != 3 {
		t.Errorf("HighestConnectedLaneCount = %d, want 3", got)
	}
}
