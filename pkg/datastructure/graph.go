package datastructure

import (
	"github.com/lintang-b-s/guidancex/pkg/geo"
)

type Vertex struct {
	id    Index
	lat   float64
	lon   float64
	osmId int64
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) GetOsmID() int64 {
	return v.osmId
}

// OutEdge. one directed edge of the node-based graph. every road
// segment is materialized in both directions; the backward direction of
// a oneway carries drivable = false, so intersection geometry stays
// complete while entry permission is denied.
type OutEdge struct {
	edgeId   Index
	tail     Index
	head     Index
	data     EdgeData
	drivable bool
	reverse  Index
}

func (e *OutEdge) GetEdgeID() Index {
	return e.edgeId
}

func (e *OutEdge) GetTail() Index {
	return e.tail
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetReverse() Index {
	return e.reverse
}

func (e *OutEdge) IsDrivable() bool {
	return e.drivable
}

// Graph. node-based directed graph over road segments. the turn
// classifier only reads edge data; the generator also walks adjacency
// and coordinates.
type Graph struct {
	vertices []Vertex
	edges    []OutEdge
	adj      [][]Index // out edge ids per tail vertex
}

func NewGraph() *Graph {
	return &Graph{
		vertices: make([]Vertex, 0),
		edges:    make([]OutEdge, 0),
		adj:      make([][]Index, 0),
	}
}

func (g *Graph) AddVertex(lat, lon float64, osmId int64) Index {
	id := Index(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{id: id, lat: lat, lon: lon, osmId: osmId})
	g.adj = append(g.adj, nil)
	return id
}

// AddEdgePair. add the two directed twins of one road segment and wire
// their reverse pointers. returns (forward id, backward id).
func (g *Graph) AddEdgePair(u, v Index, data EdgeData, forwardDrivable, backwardDrivable bool) (Index, Index) {
	fwd := Index(len(g.edges))
	bwd := fwd + 1

	g.edges = append(g.edges, OutEdge{
		edgeId: fwd, tail: u, head: v, data: data, drivable: forwardDrivable, reverse: bwd,
	})
	g.edges = append(g.edges, OutEdge{
		edgeId: bwd, tail: v, head: u, data: data, drivable: backwardDrivable, reverse: fwd,
	})

	g.adj[u] = append(g.adj[u], fwd)
	g.adj[v] = append(g.adj[v], bwd)
	return fwd, bwd
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) GetVertex(v Index) *Vertex {
	return &g.vertices[v]
}

func (g *Graph) GetVertexCoordinate(v Index) geo.Coordinate {
	return geo.NewCoordinate(g.vertices[v].lat, g.vertices[v].lon)
}

func (g *Graph) GetOutEdge(e Index) *OutEdge {
	return &g.edges[e]
}

func (g *Graph) GetEdgeData(e Index) EdgeData {
	return g.edges[e].data
}

func (g *Graph) GetHeadOfEdge(e Index) Index {
	return g.edges[e].head
}

func (g *Graph) GetTailOfEdge(e Index) Index {
	return g.edges[e].tail
}

func (g *Graph) GetReverseEdge(e Index) Index {
	return g.edges[e].reverse
}

func (g *Graph) IsEdgeDrivable(e Index) bool {
	return g.edges[e].drivable
}

func (g *Graph) ForOutEdgesOf(v Index, handle func(e *OutEdge)) {
	for _, eid := range g.adj[v] {
		handle(&g.edges[eid])
	}
}

func (g *Graph) GetOutDegree(v Index) int {
	return len(g.adj[v])
}
