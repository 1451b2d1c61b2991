package datastructure

import (
	"github.com/lintang-b-s/guidancex/pkg"
)

// RoadClassification. static per-edge road attributes used by the turn
// classifier. priority: smaller = more important road. link marks
// connector roads (motorway_link & friends).
type RoadClassification struct {
	priority uint8
	link     bool
	lanes    uint8
}

func NewRoadClassification(priority uint8, link bool, lanes uint8) RoadClassification {
	return RoadClassification{
		priority: priority,
		link:     link,
		lanes:    lanes,
	}
}

// RoadClassificationFromHighway. derive classification from the osm highway type.
func RoadClassificationFromHighway(t pkg.OsmHighwayType, lanes uint8) RoadClassification {
	if lanes == 0 {
		lanes = pkg.GetDefaultLanes(t)
	}
	return RoadClassification{
		priority: pkg.GetHighwayPriority(t),
		link:     pkg.IsHighwayLink(t),
		lanes:    lanes,
	}
}

func (rc RoadClassification) GetPriority() uint8 {
	return rc.priority
}

func (rc RoadClassification) IsLinkClass() bool {
	return rc.link
}

func (rc RoadClassification) GetNumberOfLanes() uint8 {
	return rc.lanes
}

// EdgeData. bundle returned by the graph for an edge id.
// nameId 0 = empty street name.
type EdgeData struct {
	nameId             uint32
	roadClassification RoadClassification
}

func NewEdgeData(nameId uint32, rc RoadClassification) EdgeData {
	return EdgeData{
		nameId:             nameId,
		roadClassification: rc,
	}
}

func (ed EdgeData) GetNameID() uint32 {
	return ed.nameId
}

func (ed EdgeData) GetRoadClassification() RoadClassification {
	return ed.roadClassification
}
