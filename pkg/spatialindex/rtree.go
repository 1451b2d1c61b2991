package spatialindex

import (
	"math"

	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type nodePoint struct {
	id  datastructure.Index
	lat float64
	lon float64
}

func (np nodePoint) GetID() datastructure.Index {
	return np.id
}

// Rtree. spatial index over graph vertices, for looking up the
// intersections around a coordinate.
type Rtree struct {
	tr *rtree.RTreeG[nodePoint]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[nodePoint]
	return &Rtree{
		tr: &tr,
	}
}

func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...",
		zap.Int("vertices", graph.NumberOfVertices()))

	for v := 0; v < graph.NumberOfVertices(); v++ {
		c := graph.GetVertexCoordinate(datastructure.Index(v))
		p := [2]float64{c.GetLon(), c.GetLat()}
		rt.tr.Insert(p, p, nodePoint{id: datastructure.Index(v), lat: c.GetLat(), lon: c.GetLon()})
	}
}

// NodesWithin. graph vertices within radiusKm of (lat, lon). bounding
// box search first, exact haversine filter after.
func (rt *Rtree) NodesWithin(lat, lon, radiusKm float64) []datastructure.Index {
	dLat := radiusKm / 110.574
	dLon := radiusKm / (111.320 * math.Cos(lat*math.Pi/180.0))

	min := [2]float64{lon - math.Abs(dLon), lat - dLat}
	max := [2]float64{lon + math.Abs(dLon), lat + dLat}

	nodes := make([]datastructure.Index, 0)
	rt.tr.Search(min, max, func(_, _ [2]float64, p nodePoint) bool {
		if geo.CalculateHaversineDistance(lat, lon, p.lat, p.lon) <= radiusKm {
			nodes = append(nodes, p.id)
		}
		return true
	})
	return nodes
}
