package guidance

import (
	"math"
	"sort"

	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

// sample the bearing this far into an edge so short noisy first
// segments don't distort the intersection geometry
const bearingSampleMeters = 5.0

/*
IntersectionGenerator. builds the ordered intersection for one
(via edge, node) pair: the u-turn slot at index 0 with angle 0,
every other outgoing edge at its angle relative to the u-turn
direction, sorted counter-clockwise.
*/
type IntersectionGenerator struct {
	graph TopologyGraph
}

func NewIntersectionGenerator(graph TopologyGraph) *IntersectionGenerator {
	return &IntersectionGenerator{graph: graph}
}

/*
Generate. the via edge enters the node; its reverse twin is the u-turn
slot. for an outgoing edge with absolute bearing O and the u-turn
direction at bearing R, the intersection angle is mod(R - O, 360):
0 = back along the via edge, 180 = straight ahead, right of travel
< 180.
*/
func (ig *IntersectionGenerator) Generate(viaEdge datastructure.Index) datastructure.Intersection {
	node := ig.graph.GetHeadOfEdge(viaEdge)
	uturnEdge := ig.graph.GetReverseEdge(viaEdge)
	util.AssertPanic(uturnEdge != datastructure.INVALID_INDEX, "via edge must have a twin")

	reverseBearing := ig.edgeBearing(uturnEdge)

	uturn := datastructure.NewConnectedRoad(uturnEdge,
		ig.graph.IsEdgeDrivable(uturnEdge), 0, reverseBearing)
	uturn.LaneDataID = pkg.INVALID_LANE_DATA_ID

	intersection := datastructure.Intersection{uturn}
	ig.graph.ForOutEdgesOf(node, func(e *datastructure.OutEdge) {
		if e.GetEdgeID() == uturnEdge {
			return
		}
		bearing := ig.edgeBearing(e.GetEdgeID())
		angle := math.Mod(reverseBearing-bearing+360, 360)
		road := datastructure.NewConnectedRoad(e.GetEdgeID(), e.IsDrivable(), angle, bearing)
		road.LaneDataID = pkg.INVALID_LANE_DATA_ID
		intersection = append(intersection, road)
	})

	rest := intersection[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Angle < rest[j].Angle
	})

	util.AssertPanic(intersection.Valid(), "generated intersection must be sorted")
	return intersection
}

func (ig *IntersectionGenerator) edgeBearing(e datastructure.Index) float64 {
	from := ig.graph.GetVertexCoordinate(ig.graph.GetTailOfEdge(e))
	to := ig.graph.GetVertexCoordinate(ig.graph.GetHeadOfEdge(e))
	sample := geo.PointAlongLine(from, to, bearingSampleMeters)
	return geo.BearingTo(from.GetLat(), from.GetLon(), sample.GetLat(), sample.GetLon())
}
