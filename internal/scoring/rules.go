package scoring

import (
	"math"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// Expert rule magnitudes. These are design constants, not runtime knobs:
// changing them changes every score and breaks reproducibility of past
// rankings.
const (
	bonusPriceTierMatch = 0.20
	bonusRAMMet         = 0.10
	penaltyRAMShort     = -0.15
	bonusStorageMet     = 0.10
	penaltyStorageShort = -0.10
	bonusOSMatch        = 0.15
	bonusHighResCamera  = 0.10
	bonusLargeBattery   = 0.08
	bonusBoth5G         = 0.05
	bonusScreenClose    = 0.05
	penaltyScreenFar    = -0.05

	highResCameraMP = 48
	largeBatteryMAh = 4500
	screenCloseIn   = 0.3
	screenFarIn     = 1.0
)

// RuleBonus applies the expert rules to one preference/candidate pair and
// returns the additive bonus. Terms are order-independent; within the
// ram, storage, and screen-size groups at most one branch fires, all other
// rules are independent. Missing or unknown values simply fail their
// comparisons and contribute nothing.
func RuleBonus(pref, c types.AttributeSet) float64 {
	bonus := 0.0

	if pref.PriceTier == c.PriceTier {
		bonus += bonusPriceTierMatch
	}

	if c.RAM >= pref.RAM {
		bonus += bonusRAMMet
	} else {
		bonus += penaltyRAMShort
	}

	if c.Storage >= pref.Storage {
		bonus += bonusStorageMet
	} else {
		bonus += penaltyStorageShort
	}

	if pref.OS == c.OS {
		bonus += bonusOSMatch
	}

	if pref.CameraMP >= highResCameraMP && c.CameraMP >= highResCameraMP {
		bonus += bonusHighResCamera
	}

	if pref.BatteryMAh >= largeBatteryMAh && c.BatteryMAh >= largeBatteryMAh {
		bonus += bonusLargeBattery
	}

	if pref.Network == "5G" && c.Network == "5G" {
		bonus += bonusBoth5G
	}

	switch diff := math.Abs(c.ScreenSize - pref.ScreenSize); {
	case diff <= screenCloseIn:
		bonus += bonusScreenClose
	case diff > screenFarIn:
		bonus += penaltyScreenFar
	}

	return bonus
}
