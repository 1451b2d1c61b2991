package guidance

import (
	"testing"

	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestTurnDirectionBands(t *testing.T) {
	th := DefaultThresholds()

	testCases := []struct {
		angle float64
		want  datastructure.DirectionModifier
	}{
		{0, datastructure.U_TURN},
		{14.9, datastructure.U_TURN},
		{15, datastructure.SHARP_RIGHT},
		{59.9, datastructure.SHARP_RIGHT},
		{60, datastructure.RIGHT},
		{139.9, datastructure.RIGHT},
		{140, datastructure.SLIGHT_RIGHT},
		{164.9, datastructure.SLIGHT_RIGHT},
		{165, datastructure.STRAIGHT},
		{180, datastructure.STRAIGHT},
		{195, datastructure.STRAIGHT},
		{195.1, datastructure.SLIGHT_LEFT},
		{220, datastructure.SLIGHT_LEFT},
		{220.1, datastructure.LEFT},
		{300, datastructure.LEFT},
		{300.1, datastructure.SHARP_LEFT},
		{345, datastructure.SHARP_LEFT},
		{345.1, datastructure.U_TURN},
		{359.9, datastructure.U_TURN},
	}

	for _, tt := range testCases {
		got := th.TurnDirection(tt.angle)
		if got != tt.want {
			t.Errorf("TurnDirection(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestTurnDirectionIsTotal(t *testing.T) {
	th := DefaultThresholds()
	for angle := 0.0; angle < 360.0; angle += 0.1 {
		got := th.TurnDirection(angle)
		if got >= datastructure.MAX_DIRECTION_MODIFIER {
			t.Fatalf("TurnDirection(%v) out of range: %v", angle, got)
		}
	}
}

func TestFindBasicTurnType(t *testing.T) {
	th := newTestHandler(map[datastructure.Index]edgeSpec{
		viaEdge: {name: "Main Street", highway: pkg.PRIMARY},
		1:       {name: "", highway: pkg.MOTORWAY_LINK},
		2:       {name: "Main St", highway: pkg.PRIMARY},
		3:       {name: "Oak Avenue", highway: pkg.PRIMARY},
		4:       {name: "", highway: pkg.PRIMARY},
	})

	assert.Equal(t, datastructure.ON_RAMP, th.findBasicTurnType(viaEdge, road(1, 150)))
	// suffix-equivalent name continues the street
	assert.Equal(t, datastructure.CONTINUE, th.findBasicTurnType(viaEdge, road(2, 180)))
	assert.Equal(t, datastructure.TURN, th.findBasicTurnType(viaEdge, road(3, 90)))
	// empty name never continues
	assert.Equal(t, datastructure.TURN, th.findBasicTurnType(viaEdge, road(4, 180)))

	// leaving a link road
	linkHandler := newTestHandler(map[datastructure.Index]edgeSpec{
		viaEdge: {name: "", highway: pkg.MOTORWAY_LINK},
		1:       {name: "", highway: pkg.MOTORWAY},
	})
	assert.Equal(t, datastructure.OFF_RAMP, linkHandler.findBasicTurnType(viaEdge, road(1, 180)))
}

func TestObviousByRoadClass(t *testing.T) {
	primary := datastructure.RoadClassificationFromHighway(pkg.PRIMARY, 0)
	residential := datastructure.RoadClassificationFromHighway(pkg.RESIDENTIAL, 0)
	service := datastructure.RoadClassificationFromHighway(pkg.SERVICE, 0)
	primaryLink := datastructure.RoadClassificationFromHighway(pkg.PRIMARY_LINK, 0)

	// the real road wins against a link of the same tier
	assert.True(t, obviousByRoadClass(primary, primary, primaryLink))
	// dominating by more than one priority tier
	assert.True(t, obviousByRoadClass(primary, primary, residential))
	// candidate far below the via road is never obvious
	assert.False(t, obviousByRoadClass(primary, service, residential))
	// one tier apart is not enough
	livingStreet := datastructure.RoadClassificationFromHighway(pkg.LIVING_STREET, 0)
	assert.False(t, obviousByRoadClass(residential, residential, livingStreet))
}

func TestCanBeSeenAsFork(t *testing.T) {
	primary := datastructure.RoadClassificationFromHighway(pkg.PRIMARY, 0)
	secondary := datastructure.RoadClassificationFromHighway(pkg.SECONDARY, 0)
	residential := datastructure.RoadClassificationFromHighway(pkg.RESIDENTIAL, 0)
	primaryLink := datastructure.RoadClassificationFromHighway(pkg.PRIMARY_LINK, 0)
	secondaryLink := datastructure.RoadClassificationFromHighway(pkg.SECONDARY_LINK, 0)

	assert.True(t, canBeSeenAsFork(primary, secondary))
	assert.True(t, canBeSeenAsFork(primaryLink, secondaryLink))
	assert.False(t, canBeSeenAsFork(primary, residential))
	assert.False(t, canBeSeenAsFork(primaryLink, primary))
}

func TestIsObviousOfTwoByStraightness(t *testing.T) {
	th := newTestHandler(map[datastructure.Index]edgeSpec{
		viaEdge: {name: "Main Street", highway: pkg.RESIDENTIAL},
		1:       {name: "Main Street", highway: pkg.RESIDENTIAL},
		2:       {name: "Other Road", highway: pkg.RESIDENTIAL},
	})

	// perfectly straight with name continuity
	assert.True(t, th.isObviousOfTwo(viaEdge, road(1, 180), road(2, 120)))

	// much narrower than the alternative
	assert.True(t, th.isObviousOfTwo(viaEdge, road(2, 170), road(1, 120)))

	// deviation exactly 40% larger (not more) and within the fuzzy band: not obvious
	assert.False(t, th.isObviousOfTwo(viaEdge, road(2, 170), road(1, 166)))

	// the alternative is the straighter one
	assert.False(t, th.isObviousOfTwo(viaEdge, road(2, 120), road(1, 180)))
}

func TestFindObviousTurnReturnsAtMostOne(t *testing.T) {
	th := newTestHandler(map[datastructure.Index]edgeSpec{
		viaEdge:   {name: "Main Street", highway: pkg.RESIDENTIAL},
		uturnEdge: {name: "Main Street", highway: pkg.RESIDENTIAL},
		1:         {name: "A", highway: pkg.RESIDENTIAL},
		2:         {name: "B", highway: pkg.RESIDENTIAL},
	})

	// symmetric t-intersection: nobody is obvious
	symmetric := datastructure.Intersection{road(uturnEdge, 0), road(1, 90), road(2, 270)}
	assert.Equal(t, 0, th.findObviousTurn(viaEdge, symmetric))

	// a single near-straight road among sharp turns
	oneStraight := datastructure.Intersection{road(uturnEdge, 0), road(1, 90), road(2, 178)}
	assert.Equal(t, 2, th.findObviousTurn(viaEdge, oneStraight))
}

func TestRequiresNameAnnounced(t *testing.T) {
	names := util.NewIdMap()
	suffixes := DefaultSuffixTable()

	mainStreet := names.GetID("Main Street")
	mainSt := names.GetID("Main St")
	oak := names.GetID("Oak Avenue")

	testCases := []struct {
		name string
		from uint32
		to   uint32
		want bool
	}{
		{"same id", mainStreet, mainStreet, false},
		{"suffix equivalent", mainStreet, mainSt, false},
		{"different street", mainStreet, oak, true},
		{"both empty", 0, 0, false},
		{"empty to named", 0, oak, true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := RequiresNameAnnounced(tt.from, tt.to, names, suffixes)
			if got != tt.want {
				t.Errorf("RequiresNameAnnounced(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
