package metrics

import (
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"go.uber.org/zap"
)

const numTurnTypes = int(datastructure.SUPPRESSED) + 1

// TurnStats. histogram of assigned turn types over one preprocessing
// run. filled single-threaded after the worker results are merged.
type TurnStats struct {
	counts [numTurnTypes]int
	total  int
}

func NewTurnStats() *TurnStats {
	return &TurnStats{}
}

func (ts *TurnStats) Add(t datastructure.TurnType) {
	ts.counts[t]++
	ts.total++
}

func (ts *TurnStats) Count(t datastructure.TurnType) int {
	return ts.counts[t]
}

func (ts *TurnStats) Total() int {
	return ts.total
}

func (ts *TurnStats) Merge(other *TurnStats) {
	for i := range ts.counts {
		ts.counts[i] += other.counts[i]
	}
	ts.total += other.total
}

func (ts *TurnStats) LogSummary(log *zap.Logger) {
	fields := make([]zap.Field, 0, numTurnTypes+1)
	fields = append(fields, zap.Int("total", ts.total))
	for t := 0; t < numTurnTypes; t++ {
		if ts.counts[t] == 0 {
			continue
		}
		fields = append(fields, zap.Int(datastructure.TurnType(t).String(), ts.counts[t]))
	}
	log.Info("turn type distribution", fields...)
}
