package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/fastlit/internal/constants"
)

// PlanKind identifies a fasting plan variant
type PlanKind int

const (
	PlanSixteenEight PlanKind = iota
	PlanEighteenSix
	PlanTwentyFour
	PlanCustom
)

// FastingPlan is an immutable fasting/eating hour split. The named presets
// carry fixed fasting hours; a custom plan carries its own hour count.
// Changing the plan always replaces the value, never mutates it.
type FastingPlan struct {
	Kind        PlanKind
	CustomHours int
}

// FastingHours returns the number of fasting hours for the plan.
// Custom plans are clamped to at least one hour.
func (p FastingPlan) FastingHours() int {
	switch p.Kind {
	case PlanSixteenEight:
		return 16
	case PlanEighteenSix:
		return 18
	case PlanTwentyFour:
		return 20
	case PlanCustom:
		if p.CustomHours < 1 {
			return 1
		}
		return p.CustomHours
	default:
		return 16
	}
}

// DisplayName returns the human-readable plan name
func (p FastingPlan) DisplayName() string {
	switch p.Kind {
	case PlanSixteenEight:
		return "16:8"
	case PlanEighteenSix:
		return "18:6"
	case PlanTwentyFour:
		return "20:4"
	case PlanCustom:
		h := p.CustomHours
		eating := 24 - h
		if eating < 0 {
			eating = 0
		}
		return fmt.Sprintf("Custom (%d:%d)", h, eating)
	default:
		return "16:8"
	}
}

// Tag returns the stable textual identifier used for persistence.
func (p FastingPlan) Tag() string {
	switch p.Kind {
	case PlanSixteenEight:
		return constants.PlanTagSixteenEight
	case PlanEighteenSix:
		return constants.PlanTagEighteenSix
	case PlanTwentyFour:
		return constants.PlanTagTwentyFour
	case PlanCustom:
		return fmt.Sprintf("%s%d", constants.PlanTagCustomPrefix, p.CustomHours)
	default:
		return constants.PlanTagSixteenEight
	}
}

// ParsePlanTag parses a persisted plan tag. Unrecognized or empty tags
// fall back to the 16:8 plan so that stale persisted values never fail a load.
func ParsePlanTag(tag string) FastingPlan {
	switch tag {
	case constants.PlanTagSixteenEight:
		return FastingPlan{Kind: PlanSixteenEight}
	case constants.PlanTagEighteenSix:
		return FastingPlan{Kind: PlanEighteenSix}
	case constants.PlanTagTwentyFour:
		return FastingPlan{Kind: PlanTwentyFour}
	}
	if strings.HasPrefix(tag, constants.PlanTagCustomPrefix) {
		h, err := strconv.Atoi(strings.TrimPrefix(tag, constants.PlanTagCustomPrefix))
		if err == nil {
			return FastingPlan{Kind: PlanCustom, CustomHours: h}
		}
	}
	return FastingPlan{Kind: PlanSixteenEight}
}

// PlanPresets returns the named presets in fixed display order.
// Custom plans are excluded; they are built from user input.
func PlanPresets() []FastingPlan {
	return []FastingPlan{
		{Kind: PlanSixteenEight},
		{Kind: PlanEighteenSix},
		{Kind: PlanTwentyFour},
	}
}
