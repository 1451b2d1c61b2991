package datastructure

import (
	"fmt"
	"sort"

	"github.com/lintang-b-s/guidancex/pkg/geo"
)

const MachineEpsilon = 2.220446049250313e-16

// ConnectedRoad. one outgoing edge around an intersection node.
// Angle is relative to the u-turn direction (0 = back along the via
// edge), increasing counter-clockwise, so a road leaving to the right
// of travel has angle < 180. Bearing is the absolute compass bearing.
type ConnectedRoad struct {
	Eid          Index
	EntryAllowed bool
	Angle        float64
	Bearing      float64
	Instruction  TurnInstruction
	LaneDataID   uint16
}

func NewConnectedRoad(eid Index, entryAllowed bool, angle, bearing float64) ConnectedRoad {
	return ConnectedRoad{
		Eid:          eid,
		EntryAllowed: entryAllowed,
		Angle:        angle,
		Bearing:      bearing,
	}
}

// Mirror. reflect the road across the straight axis: the angle becomes
// 360-angle and the direction modifier flips side. the u-turn slot is
// left untouched.
func (cr *ConnectedRoad) Mirror() {
	if geo.AngularDeviation(cr.Angle, 0) > MachineEpsilon {
		cr.Angle = 360 - cr.Angle
		cr.Instruction.Direction = cr.Instruction.Direction.Mirror()
	}
}

func (cr ConnectedRoad) String() string {
	return fmt.Sprintf("[connection] %d allows entry: %v angle: %f bearing: %f instruction: %s",
		cr.Eid, cr.EntryAllowed, cr.Angle, cr.Bearing, cr.Instruction)
}

func (cr ConnectedRoad) compareByAngle(other ConnectedRoad) bool {
	return cr.Angle < other.Angle
}

// Intersection. ordered sequence of connected roads around a node.
// invariants: non-empty, sorted by increasing angle, index 0 is the
// u-turn slot with angle ~0 (always present, possibly not enterable).
type Intersection []ConnectedRoad

// edge data accessor needed by intersection helpers. satisfied by the
// concrete Graph and by test doubles.
type EdgeDataGetter interface {
	GetEdgeData(e Index) EdgeData
}

func (in Intersection) Valid() bool {
	if len(in) == 0 {
		return false
	}
	sorted := sort.SliceIsSorted(in, func(i, j int) bool {
		return in[i].compareByAngle(in[j])
	})
	return sorted && in[0].Angle < MachineEpsilon
}

// FindClosestTurn. index of the road with minimum angular deviation
// from the target angle. ties broken by first occurrence.
func (in Intersection) FindClosestTurn(angle float64) int {
	best := 0
	bestDeviation := 361.0
	for i := range in {
		dev := geo.AngularDeviation(in[i].Angle, angle)
		if dev < bestDeviation {
			bestDeviation = dev
			best = i
		}
	}
	return best
}

func (in Intersection) HighestConnectedLaneCount(graph EdgeDataGetter) uint8 {
	maxLanes := uint8(0)
	for i := range in {
		lanes := graph.GetEdgeData(in[i].Eid).GetRoadClassification().GetNumberOfLanes()
		if lanes > maxLanes {
			maxLanes = lanes
		}
	}
	return maxLanes
}

// HasValidEntries. true iff every road in the inclusive range
// [first, last] allows entry.
func (in Intersection) HasValidEntries(first, last int) bool {
	for i := first; i <= last; i++ {
		if !in[i].EntryAllowed {
			return false
		}
	}
	return true
}
