package guidance

import (
	"github.com/lintang-b-s/guidancex/pkg/datastructure"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

// default angle thresholds (degrees) of the turn classifier.
const (
	STRAIGHT_ANGLE                    = 180.0
	NARROW_TURN_ANGLE                 = 35.0
	FUZZY_ANGLE_DIFFERENCE            = 15.0
	GROUP_ANGLE                       = 60.0
	MAXIMAL_ALLOWED_NO_TURN_DEVIATION = 60.0
	INCREASES_BY_FOURTY_PERCENT       = 1.4
)

// Thresholds. the tunable policy knobs of the classifier. guidance
// quality depends on how these interact; the defaults are the values
// the whole decision tree was calibrated against.
type Thresholds struct {
	StraightAngle                 float64
	NarrowTurnAngle               float64
	FuzzyAngleDifference          float64
	GroupAngle                    float64
	MaximalAllowedNoTurnDeviation float64
	IncreasesByFortyPercent       float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		StraightAngle:                 STRAIGHT_ANGLE,
		NarrowTurnAngle:               NARROW_TURN_ANGLE,
		FuzzyAngleDifference:          FUZZY_ANGLE_DIFFERENCE,
		GroupAngle:                    GROUP_ANGLE,
		MaximalAllowedNoTurnDeviation: MAXIMAL_ALLOWED_NO_TURN_DEVIATION,
		IncreasesByFortyPercent:       INCREASES_BY_FOURTY_PERCENT,
	}
}

// ThresholdsFromConfig. defaults with any overrides the config file sets.
func ThresholdsFromConfig(cfg *util.Config) Thresholds {
	t := DefaultThresholds()
	if cfg.NarrowTurnAngle > 0 {
		t.NarrowTurnAngle = cfg.NarrowTurnAngle
	}
	if cfg.FuzzyAngleDifference > 0 {
		t.FuzzyAngleDifference = cfg.FuzzyAngleDifference
	}
	if cfg.GroupAngle > 0 {
		t.GroupAngle = cfg.GroupAngle
	}
	return t
}

/*
TurnDirection. bucket a raw intersection angle into one of the 8
direction modifiers. angle 0 = u-turn slot, angle grows
counter-clockwise, so the right-hand side of travel is (0, 180):

	[0, fuzzy)        u-turn
	[fuzzy, 60)       sharp right
	[60, 140)         right
	[140, 165)        slight right
	[165, 195]        straight
	(195, 220]        slight left
	(220, 300]        left
	(300, 360-fuzzy]  sharp left
	else              u-turn
*/
func (t Thresholds) TurnDirection(angle float64) datastructure.DirectionModifier {
	switch {
	case angle >= 0 && angle < t.FuzzyAngleDifference:
		return datastructure.U_TURN
	case angle < 60:
		return datastructure.SHARP_RIGHT
	case angle < 140:
		return datastructure.RIGHT
	case angle < 165:
		return datastructure.SLIGHT_RIGHT
	case angle <= 195:
		return datastructure.STRAIGHT
	case angle <= 220:
		return datastructure.SLIGHT_LEFT
	case angle <= 300:
		return datastructure.LEFT
	case angle <= 360-t.FuzzyAngleDifference:
		return datastructure.SHARP_LEFT
	default:
		return datastructure.U_TURN
	}
}
