package guidance

import (
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/geo"
)

// Graph. the only graph capability the classifier itself needs.
type Graph interface {
	GetEdgeData(e datastructure.Index) datastructure.EdgeData
}

// TopologyGraph. what the intersection generator and the processor
// additionally need: adjacency, twin edges, and coordinates.
type TopologyGraph interface {
	Graph
	NumberOfVertices() int
	GetVertexCoordinate(v datastructure.Index) geo.Coordinate
	GetHeadOfEdge(e datastructure.Index) datastructure.Index
	GetTailOfEdge(e datastructure.Index) datastructure.Index
	GetReverseEdge(e datastructure.Index) datastructure.Index
	IsEdgeDrivable(e datastructure.Index) bool
	ForOutEdgesOf(v datastructure.Index, handle func(e *datastructure.OutEdge))
}

// NameTable. resolves name ids to street names. id 0 = empty.
type NameTable interface {
	GetStr(id uint32) string
}
