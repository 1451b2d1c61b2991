package guidance

import (
	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

type stubGraph struct {
	edges map[datastructure.Index]datastructure.EdgeData
}

func (g stubGraph) GetEdgeData(e datastructure.Index) datastructure.EdgeData {
	return g.edges[e]
}

type edgeSpec struct {
	name    string
	highway pkg.OsmHighwayType
	lanes   uint8
}

// newTestHandler. build a turn handler over a stub graph described by
// edge id -> (street name, highway type).
func newTestHandler(specs map[datastructure.Index]edgeSpec) *TurnHandler {
	names := util.NewIdMap()
	edges := make(map[datastructure.Index]datastructure.EdgeData, len(specs))
	for id, spec := range specs {
		edges[id] = datastructure.NewEdgeData(names.GetID(spec.name),
			datastructure.RoadClassificationFromHighway(spec.highway, spec.lanes))
	}
	return NewTurnHandler(stubGraph{edges: edges}, names, DefaultSuffixTable(),
		DefaultThresholds())
}

func road(eid datastructure.Index, angle float64) datastructure.ConnectedRoad {
	r := datastructure.NewConnectedRoad(eid, true, angle, 0)
	r.LaneDataID = pkg.INVALID_LANE_DATA_ID
	return r
}

func deniedRoad(eid datastructure.Index, angle float64) datastructure.ConnectedRoad {
	r := road(eid, angle)
	r.EntryAllowed = false
	return r
}

// the via edge and its u-turn twin share ids 100/101 in every fixture
const (
	viaEdge   datastructure.Index = 100
	uturnEdge datastructure.Index = 101
)
