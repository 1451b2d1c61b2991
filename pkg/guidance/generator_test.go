package guidance

import (
	"testing"

	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/logger"
	"github.com/lintang-b-s/guidancex/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
crossGraph. a four-way crossing near the equator:

	        north
	          |
	west -- center -- east
	          |
	        south

returns the graph, the name table, and the via edge south -> center.
*/
func crossGraph(t *testing.T) (*datastructure.Graph, *util.IDMap, datastructure.Index) {
	t.Helper()

	g := datastructure.NewGraph()
	names := util.NewIdMap()

	center := g.AddVertex(0, 0, 1)
	north := g.AddVertex(0.001, 0, 2)
	east := g.AddVertex(0, 0.001, 3)
	south := g.AddVertex(-0.001, 0, 4)
	west := g.AddVertex(0, -0.001, 5)

	data := func(name string) datastructure.EdgeData {
		return datastructure.NewEdgeData(names.GetID(name),
			datastructure.RoadClassificationFromHighway(pkg.RESIDENTIAL, 0))
	}

	southFwd, _ := g.AddEdgePair(south, center, data("Stem Street"), true, true)
	g.AddEdgePair(center, north, data("Stem Street"), true, true)
	g.AddEdgePair(center, east, data("Cross Street"), true, true)
	g.AddEdgePair(center, west, data("Cross Street"), true, true)

	return g, names, southFwd
}

func TestGenerateCrossIntersection(t *testing.T) {
	g, _, via := crossGraph(t)
	gen := NewIntersectionGenerator(g)

	in := gen.Generate(via)

	require.Len(t, in, 4)
	require.True(t, in.Valid())

	assert.Equal(t, 0.0, in[0].Angle)
	assert.InDelta(t, 90, in[1].Angle, 0.5)  // east, right of travel
	assert.InDelta(t, 180, in[2].Angle, 0.5) // north, straight ahead
	assert.InDelta(t, 270, in[3].Angle, 0.5) // west, left of travel

	for _, road := range in {
		assert.True(t, road.EntryAllowed)
	}
}

func TestGenerateOnewayDeniesEntry(t *testing.T) {
	g := datastructure.NewGraph()
	names := util.NewIdMap()

	center := g.AddVertex(0, 0, 1)
	north := g.AddVertex(0.001, 0, 2)
	south := g.AddVertex(-0.001, 0, 3)

	data := datastructure.NewEdgeData(names.GetID("One Way Street"),
		datastructure.RoadClassificationFromHighway(pkg.RESIDENTIAL, 0))

	southFwd, _ := g.AddEdgePair(south, center, data, true, true)
	// southbound only: north -> center
	g.AddEdgePair(north, center, data, true, false)

	gen := NewIntersectionGenerator(g)
	in := gen.Generate(southFwd)

	require.Len(t, in, 2)
	assert.False(t, in[1].EntryAllowed)
}

func TestProcessorClassifiesEveryIncomingEdge(t *testing.T) {
	g, names, _ := crossGraph(t)

	log, err := logger.New()
	require.NoError(t, err)

	handler := NewTurnHandler(g, names, DefaultSuffixTable(), DefaultThresholds())
	processor := NewProcessor(g, handler, log, 2)

	turns, stats := processor.Run()

	// center: 4 incoming edges * 4 roads; each leaf: 1 incoming * 1 road
	assert.Len(t, turns, 4*4+4)
	assert.Equal(t, len(turns), stats.Total())

	// deterministic order regardless of worker interleaving
	for i := 1; i < len(turns); i++ {
		prev, curr := turns[i-1], turns[i]
		ordered := prev.Node < curr.Node ||
			(prev.Node == curr.Node && prev.ViaEdge < curr.ViaEdge) ||
			(prev.Node == curr.Node && prev.ViaEdge == curr.ViaEdge && prev.OutEdge < curr.OutEdge)
		assert.True(t, ordered, "turn data not sorted at %d", i)
	}

	// straight through the crossing continues on the stem street
	straightCount := 0
	for _, turn := range turns {
		if turn.Instruction.Type == datastructure.CONTINUE &&
			turn.Instruction.Direction == datastructure.STRAIGHT {
			straightCount++
		}
	}
	assert.Greater(t, straightCount, 0)
}
