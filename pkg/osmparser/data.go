package osmparser

import (
	"github.com/lintang-b-s/guidancex/pkg"
)

// oneway direction of an osm way relative to its node order
type onewayDir int8

const (
	BOTH_DIRECTIONS onewayDir = 0
	FORWARD_ONLY    onewayDir = 1
	BACKWARD_ONLY   onewayDir = -1
)

type osmWay struct {
	nodes   []int64
	highway pkg.OsmHighwayType
	nameId  uint32
	lanes   uint8
	oneway  onewayDir
}
