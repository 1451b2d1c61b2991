package main

import (
	"fmt"

	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/guidance"
	"github.com/lintang-b-s/guidancex/pkg/logger"
	"github.com/lintang-b-s/guidancex/pkg/osmparser"
	"github.com/lintang-b-s/guidancex/pkg/spatialindex"
	"github.com/lintang-b-s/guidancex/pkg/util"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// inspector. classify an extract and dump the turn instructions around
// the configured coordinate, with edge polylines for pasting into a
// geometry viewer.
func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := util.ReadConfig()
	if err != nil {
		log.Fatal("reading config", zap.Error(err))
	}

	parser := osmparser.NewOsmParser()
	graph, err := parser.Parse(cfg.OsmFile, log)
	if err != nil {
		log.Fatal("parsing osm file", zap.Error(err))
	}

	names := parser.GetNameIdMap()
	handler := guidance.NewTurnHandler(graph, names,
		guidance.DefaultSuffixTable(), guidance.ThresholdsFromConfig(cfg))
	processor := guidance.NewProcessor(graph, handler, log, cfg.NumWorkers)

	var (
		turns []datastructure.TurnData
		index = spatialindex.NewRtree()
	)
	var eg errgroup.Group
	eg.Go(func() error {
		turns, _ = processor.Run()
		return nil
	})
	eg.Go(func() error {
		index.Build(graph, log)
		return nil
	})
	if err := eg.Wait(); err != nil {
		log.Fatal("classification", zap.Error(err))
	}

	nearby := index.NodesWithin(cfg.InspectLat, cfg.InspectLon, cfg.InspectRadiusKm)
	nearbySet := make(map[datastructure.Index]struct{}, len(nearby))
	for _, v := range nearby {
		nearbySet[v] = struct{}{}
	}
	log.Info("inspecting intersections",
		zap.Float64("lat", cfg.InspectLat), zap.Float64("lon", cfg.InspectLon),
		zap.Int("nodes", len(nearby)))

	for _, t := range turns {
		if _, ok := nearbySet[t.Node]; !ok {
			continue
		}
		viaName := names.GetStr(graph.GetEdgeData(t.ViaEdge).GetNameID())
		outName := names.GetStr(graph.GetEdgeData(t.OutEdge).GetNameID())

		tail := graph.GetVertexCoordinate(graph.GetTailOfEdge(t.OutEdge))
		head := graph.GetVertexCoordinate(graph.GetHeadOfEdge(t.OutEdge))
		shape := polyline.EncodeCoords([][]float64{
			{tail.GetLat(), tail.GetLon()},
			{head.GetLat(), head.GetLon()},
		})

		fmt.Printf("node %d: %q -> %q: %s [%s]\n",
			t.Node, viaName, outName, t.Instruction, shape)
	}
}
