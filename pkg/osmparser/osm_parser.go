package osmparser

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/lintang-b-s/guidancex/pkg"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

// https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
var acceptedHighway = map[string]struct{}{
	"motorway":       {},
	"motorway_link":  {},
	"trunk":          {},
	"trunk_link":     {},
	"primary":        {},
	"primary_link":   {},
	"secondary":      {},
	"secondary_link": {},
	"tertiary":       {},
	"tertiary_link":  {},
	"residential":    {},
	"service":        {},
	"road":           {},
	"track":          {},
	"unclassified":   {},
	"living_street":  {},
	"motorroad":      {},
}

type nodeCoord struct {
	lat float64
	lon float64
}

type OsmParser struct {
	ways            []osmWay
	acceptedNodeMap map[int64]nodeCoord
	nodeIDMap       map[int64]datastructure.Index
	nameIdMap       *util.IDMap
}

func NewOsmParser() *OsmParser {
	return &OsmParser{
		ways:            make([]osmWay, 0),
		acceptedNodeMap: make(map[int64]nodeCoord),
		nodeIDMap:       make(map[int64]datastructure.Index),
		nameIdMap:       util.NewIdMap(),
	}
}

func (o *OsmParser) GetNameIdMap() *util.IDMap {
	return o.nameIdMap
}

/*
Parse. build the node-based graph from an osm pbf extract. two scans:
ways first (to know which nodes matter), then node coordinates.
*/
func (o *OsmParser) Parse(path string, log *zap.Logger) (*datastructure.Graph, error) {
	log.Info("parsing osm ways...", zap.String("file", path))
	if err := o.scanWays(path); err != nil {
		return nil, err
	}

	log.Info("parsing osm nodes...", zap.Int("ways", len(o.ways)))
	if err := o.scanNodes(path); err != nil {
		return nil, err
	}

	graph := o.buildGraph()
	log.Info("graph built",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))
	return graph, nil
}

func (o *OsmParser) scanWays(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	wayNodeIds := make(map[int64]struct{})

	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}

		highway := way.Tags.Find("highway")
		if _, accepted := acceptedHighway[highway]; !accepted {
			continue
		}
		if len(way.Nodes) < 2 {
			continue
		}

		nodes := make([]int64, len(way.Nodes))
		for i, n := range way.Nodes {
			nodes[i] = int64(n.ID)
			wayNodeIds[int64(n.ID)] = struct{}{}
		}

		o.ways = append(o.ways, osmWay{
			nodes:   nodes,
			highway: pkg.GetHighwayType(highway),
			nameId:  o.nameIdMap.GetID(way.Tags.Find("name")),
			lanes:   parseLanes(way.Tags.Find("lanes")),
			oneway:  parseOneway(way),
		})
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for id := range wayNodeIds {
		o.acceptedNodeMap[id] = nodeCoord{}
	}
	return nil
}

func (o *OsmParser) scanNodes(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, used := o.acceptedNodeMap[int64(node.ID)]; !used {
			continue
		}
		o.acceptedNodeMap[int64(node.ID)] = nodeCoord{lat: node.Lat, lon: node.Lon}
	}
	return scanner.Err()
}

func (o *OsmParser) buildGraph() *datastructure.Graph {
	graph := datastructure.NewGraph()

	vertexOf := func(osmId int64) datastructure.Index {
		if v, ok := o.nodeIDMap[osmId]; ok {
			return v
		}
		coord := o.acceptedNodeMap[osmId]
		v := graph.AddVertex(coord.lat, coord.lon, osmId)
		o.nodeIDMap[osmId] = v
		return v
	}

	for _, way := range o.ways {
		data := datastructure.NewEdgeData(way.nameId,
			datastructure.RoadClassificationFromHighway(way.highway, way.lanes))

		for i := 0; i+1 < len(way.nodes); i++ {
			u := vertexOf(way.nodes[i])
			v := vertexOf(way.nodes[i+1])
			if u == v {
				continue
			}
			graph.AddEdgePair(u, v, data,
				way.oneway != BACKWARD_ONLY, way.oneway != FORWARD_ONLY)
		}
	}

	return graph
}

func parseLanes(lanes string) uint8 {
	if lanes == "" {
		return 0
	}
	// "lanes=3;2" style values: take the first number
	if idx := strings.IndexByte(lanes, ';'); idx >= 0 {
		lanes = lanes[:idx]
	}
	n, err := strconv.Atoi(strings.TrimSpace(lanes))
	if err != nil || n < 0 || n > 255 {
		return 0
	}
	return uint8(n)
}

func parseOneway(way *osm.Way) onewayDir {
	switch way.Tags.Find("oneway") {
	case "yes", "true", "1":
		return FORWARD_ONLY
	case "-1", "reverse":
		return BACKWARD_ONLY
	case "no", "false", "0":
		return BOTH_DIRECTIONS
	}

	// motorways & roundabouts are oneway unless tagged otherwise
	highway := way.Tags.Find("highway")
	if highway == "motorway" || highway == "motorway_link" ||
		way.Tags.Find("junction") == "roundabout" {
		return FORWARD_ONLY
	}
	return BOTH_DIRECTIONS
}
