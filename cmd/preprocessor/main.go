package main

import (
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/guidance"
	"github.com/lintang-b-s/guidancex/pkg/logger"
	"github.com/lintang-b-s/guidancex/pkg/osmparser"
	"github.com/lintang-b-s/guidancex/pkg/util"
	"go.uber.org/zap"
)

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

	handler := guidance.NewTurnHandler(graph, parser.GetNameIdMap(),
		guidance.DefaultSuffixTable(), guidance.ThresholdsFromConfig(cfg))
	processor := guidance.NewProcessor(graph, handler, log, cfg.NumWorkers)

	turns, stats := processor.Run()

	if err := datastructure.WriteTurnData(cfg.OutputFile, turns); err != nil {
		log.Fatal("writing turn data", zap.Error(err))
	}
	stats.LogSummary(log)

	log.Sugar().Infof("Preprocessing completed successfully.")
}
