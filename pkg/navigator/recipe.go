package navigator

import (
	"time"

	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
)

// Timings are the durations shared by every transition recipe.
type Timings struct {
	Transition    time.Duration // Primary translate / clip / cross-fade curve
	Opacity       time.Duration // Title and back icon ramps
	TitleInDelay  time.Duration
	BackIconDelay time.Duration
	ModeChange    time.Duration
	Curve         Curve
}

// DefaultTimings returns the standard transition timings.
func DefaultTimings() Timings {
	return Timings{
		Transition:    constants.DefaultTransitionDuration,
		Opacity:       constants.DefaultOpacityDuration,
		TitleInDelay:  constants.DefaultTitleInDelay,
		BackIconDelay: constants.DefaultBackIconDelay,
		ModeChange:    constants.DefaultModeChangeDuration,
		Curve:         CurveFriction,
	}
}

// Instant returns timings that finish every recipe on the next frame.
func (t Timings) Instant() Timings {
	return Timings{Curve: t.Curve}
}

// Slide is a translation expressed as fractions of the node width.
type Slide struct {
	From, To float64
}

// Ramp is an opacity animation layered on top of the primary curve.
type Ramp struct {
	From, To float64
	Delay    time.Duration
}

// Recipe describes how one transition moves the outgoing and incoming surfaces.
type Recipe struct {
	Topology Mode
	Op       Operation

	OutContent Slide
	InContent  Slide
	OutTitle   Slide
	InTitle    Slide

	OutTitleOpacity Ramp
	InTitleOpacity  Ramp

	BackIcon           Ramp
	BackIconOnIncoming bool // Push fades the new back icon in, pop fades the old one out

	Mask           bool  // Stack only: scrim over the covered surface
	MaskOnIncoming bool  // Pop uncovers the incoming surface
	MaskFrom       uint8 // Scrim alpha at start
	MaskTo         uint8 // Scrim alpha at end

	Clip bool // Split only: keep both surfaces inside the content region

	CrossFade  bool // Replace: fade instead of slide, inputs disabled
	OutOpacity Ramp
	InOpacity  Ramp
}

type recipeKey struct {
	topology Mode
	op       Operation
}

// RecipeFor returns the recipe for a topology and operation. Auto topology is
// treated as Stack; unknown operations yield a mode change fade.
func RecipeFor(topology Mode, op Operation, t Timings) Recipe {
	if topology != ModeSplit {
		topology = ModeStack
	}
	build, ok := recipes[recipeKey{topology, op}]
	if !ok {
		return modeChangeRecipe(topology)
	}
	r := build(t)
	r.Topology, r.Op = topology, op
	return r
}

var recipes = map[recipeKey]func(Timings) Recipe{
	{ModeStack, OpPush}: func(t Timings) Recipe {
		r := pushRecipe(t)
		r.Mask, r.MaskFrom, r.MaskTo = true, 0, constants.MaskAlpha
		return r
	},
	{ModeStack, OpPop}: func(t Timings) Recipe {
		r := popRecipe(t)
		r.Mask, r.MaskOnIncoming, r.MaskFrom, r.MaskTo = true, true, constants.MaskAlpha, 0
		return r
	},
	{ModeStack, OpReplace}: replaceRecipe,
	{ModeSplit, OpPush}: func(t Timings) Recipe {
		r := pushRecipe(t)
		r.Clip = true
		return r
	},
	{ModeSplit, OpPop}: func(t Timings) Recipe {
		r := popRecipe(t)
		r.Clip = true
		return r
	},
	{ModeSplit, OpReplace}: func(t Timings) Recipe {
		r := replaceRecipe(t)
		r.Clip = true
		return r
	},
}

func pushRecipe(t Timings) Recipe {
	return Recipe{
		OutContent:         Slide{0, constants.CoveredOffsetFraction},
		InContent:          Slide{constants.IncomingOffsetFraction, 0},
		OutTitle:           Slide{0, -constants.TitleOffsetFraction},
		InTitle:            Slide{constants.TitleOffsetFraction, 0},
		OutTitleOpacity:    Ramp{From: 1, To: 0},
		InTitleOpacity:     Ramp{From: 0, To: 1, Delay: t.TitleInDelay},
		BackIcon:           Ramp{From: 0, To: 1, Delay: t.BackIconDelay},
		BackIconOnIncoming: true,
	}
}

func popRecipe(t Timings) Recipe {
	return Recipe{
		OutContent:      Slide{0, constants.IncomingOffsetFraction},
		InContent:       Slide{constants.CoveredOffsetFraction, 0},
		OutTitle:        Slide{0, constants.TitleOffsetFraction},
		InTitle:         Slide{-constants.TitleOffsetFraction, 0},
		OutTitleOpacity: Ramp{From: 1, To: 0},
		InTitleOpacity:  Ramp{From: 0, To: 1, Delay: t.TitleInDelay},
		BackIcon:        Ramp{From: 1, To: 0},
	}
}

func replaceRecipe(t Timings) Recipe {
	return Recipe{
		CrossFade:  true,
		OutOpacity: Ramp{From: 1, To: 0},
		InOpacity:  Ramp{From: 0, To: 1},
	}
}

func modeChangeRecipe(topology Mode) Recipe {
	return Recipe{
		Topology:  topology,
		Op:        OpModeChange,
		InOpacity: Ramp{From: 0, To: 1},
	}
}

// primaryTiming is the timing of the translate / clip / cross-fade curve.
func (r Recipe) primaryTiming(t Timings) Timing {
	if r.Op == OpModeChange {
		return Timing{Duration: t.ModeChange, Curve: CurveLinear}
	}
	return Timing{Duration: t.Transition, Curve: t.Curve}
}

// rampTiming is the timing of an opacity ramp layered on the primary curve.
func rampTiming(ramp Ramp, t Timings) Timing {
	return Timing{Duration: t.Opacity, Delay: ramp.Delay, Curve: CurveLinear}
}
