package guidance

import (
	"sort"

	"github.com/lintang-b-s/guidancex/pkg/concurrent"
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/metrics"
	"go.uber.org/zap"
)

/*
Processor. runs the turn handler over every (incoming edge, node) pair
of the graph. intersections are independent, so nodes are fanned out
over a worker pool; results are re-sorted afterwards so the output is
deterministic regardless of worker interleaving.
*/
type Processor struct {
	graph      TopologyGraph
	handler    *TurnHandler
	generator  *IntersectionGenerator
	log        *zap.Logger
	numWorkers int
}

func NewProcessor(graph TopologyGraph, handler *TurnHandler, log *zap.Logger,
	numWorkers int) *Processor {

	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Processor{
		graph:      graph,
		handler:    handler,
		generator:  NewIntersectionGenerator(graph),
		log:        log,
		numWorkers: numWorkers,
	}
}

func (p *Processor) Run() ([]datastructure.TurnData, *metrics.TurnStats) {
	n := p.graph.NumberOfVertices()
	p.log.Info("classifying intersections...",
		zap.Int("vertices", n), zap.Int("workers", p.numWorkers))

	wp := concurrent.NewWorkerPool[datastructure.Index, []datastructure.TurnData](
		p.numWorkers, n)
	wp.Start(p.processNode)
	for v := 0; v < n; v++ {
		wp.AddJob(datastructure.Index(v))
	}
	wp.Close()
	wp.Wait()

	turns := make([]datastructure.TurnData, 0, n*2)
	for nodeTurns := range wp.CollectResults() {
		turns = append(turns, nodeTurns...)
	}

	sort.Slice(turns, func(i, j int) bool {
		if turns[i].Node != turns[j].Node {
			return turns[i].Node < turns[j].Node
		}
		if turns[i].ViaEdge != turns[j].ViaEdge {
			return turns[i].ViaEdge < turns[j].ViaEdge
		}
		return turns[i].OutEdge < turns[j].OutEdge
	})

	stats := metrics.NewTurnStats()
	for _, t := range turns {
		stats.Add(t.Instruction.Type)
	}

	p.log.Info("classification done", zap.Int("turns", len(turns)))
	return turns, stats
}

// processNode. classify every intersection entered through this node.
// incoming edges are the reverse twins of the node's outgoing edges.
func (p *Processor) processNode(node datastructure.Index) []datastructure.TurnData {
	var turns []datastructure.TurnData

	p.graph.ForOutEdgesOf(node, func(out *datastructure.OutEdge) {
		viaEdge := out.GetReverse()
		if !p.graph.IsEdgeDrivable(viaEdge) {
			return
		}

		intersection := p.generator.Generate(viaEdge)
		intersection = p.handler.Compute(viaEdge, intersection)

		for _, road := range intersection {
			turns = append(turns, datastructure.NewTurnData(node, viaEdge, road.Eid,
				road.Instruction))
		}
	})

	return turns
}
