package pkg

const (
	DEBUG = false

	EMPTY_NAME_ID uint32 = 0

	INVALID_LANE_DATA_ID uint16 = 65535
)

type OsmHighwayType uint8

// enum buat osm highway buat routing: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       OsmHighwayType = 0
	TRUNK          OsmHighwayType = 1
	PRIMARY        OsmHighwayType = 2
	SECONDARY      OsmHighwayType = 3
	TERTIARY       OsmHighwayType = 4
	RESIDENTIAL    OsmHighwayType = 5
	SERVICE        OsmHighwayType = 6
	UNCLASSIFIED   OsmHighwayType = 7
	MOTORWAY_LINK  OsmHighwayType = 8
	TRUNK_LINK     OsmHighwayType = 9
	PRIMARY_LINK   OsmHighwayType = 10
	SECONDARY_LINK OsmHighwayType = 11
	TERTIARY_LINK  OsmHighwayType = 12
	LIVING_STREET  OsmHighwayType = 13
	ROAD           OsmHighwayType = 14
	TRACK          OsmHighwayType = 15
	MOTORROAD      OsmHighwayType = 16
	UNKNOWN        OsmHighwayType = 17
)

func GetHighwayType(roadType string) OsmHighwayType {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	case "track":
		return TRACK
	case "motorroad":
		return MOTORROAD
	default:
		return UNKNOWN
	}
}

// priority per highway type. smaller = more important road.
// link roads share the priority of their parent road.
var highwayPriority = map[OsmHighwayType]uint8{
	MOTORWAY:       0,
	MOTORROAD:      0,
	MOTORWAY_LINK:  0,
	TRUNK:          1,
	TRUNK_LINK:     1,
	PRIMARY:        2,
	PRIMARY_LINK:   2,
	SECONDARY:      3,
	SECONDARY_LINK: 3,
	TERTIARY:       4,
	TERTIARY_LINK:  4,
	UNCLASSIFIED:   5,
	RESIDENTIAL:    5,
	ROAD:           5,
	LIVING_STREET:  6,
	SERVICE:        7,
	TRACK:          8,
	UNKNOWN:        9,
}

func GetHighwayPriority(t OsmHighwayType) uint8 {
	return highwayPriority[t]
}

func IsHighwayLink(t OsmHighwayType) bool {
	switch t {
	case MOTORWAY_LINK, TRUNK_LINK, PRIMARY_LINK, SECONDARY_LINK, TERTIARY_LINK:
		return true
	default:
		return false
	}
}

// default lane count when the osm way has no lanes tag
func GetDefaultLanes(t OsmHighwayType) uint8 {
	switch t {
	case MOTORWAY, MOTORROAD, TRUNK, PRIMARY:
		return 2
	default:
		return 1
	}
}
