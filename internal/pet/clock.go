package pet

import "time"

// LifecycleClock tracks birth time and derives the life stage from
// accumulated game time. The stage only ever advances, one step per
// Advance call, each step from its immediate predecessor; the GOOD/BAD
// branch is decided once, from the care snapshot at the transition
// instant, and never revisited.
type LifecycleClock struct {
	BirthTime time.Time `json:"birth_time"`
	Stage     LifeStage `json:"stage"`
}

// NewLifecycleClock starts a clock at EGG.
func NewLifecycleClock(birth time.Time) LifecycleClock {
	return LifecycleClock{BirthTime: birth, Stage: StageEgg}
}

// GameTime returns accumulated game-seconds at the given wall-clock time.
func (c *LifecycleClock) GameTime(now time.Time, tun *Tunables) float64 {
	elapsed := now.Sub(c.BirthTime).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed * tun.TimeScale
}

// Advance evaluates the stage transition table against the current game
// time and care snapshot. It returns the new stage and whether a
// transition happened; callers force the activity state back to IDLE and
// announce the change.
func (c *LifecycleClock) Advance(now time.Time, stats Stats, tun *Tunables) (LifeStage, bool) {
	total := c.GameTime(now, tun)

	switch c.Stage {
	case StageEgg:
		if total > tun.TimeToBaby {
			c.Stage = StageBaby
			return c.Stage, true
		}
	case StageBaby:
		if total > tun.TimeToChild {
			c.Stage = StageChild
			return c.Stage, true
		}
	case StageChild:
		if total > tun.TimeToTeen {
			if stats.CareMistakes < tun.TeenMistakeLimit && stats.Discipline > tun.TeenDisciplineFloor {
				c.Stage = StageTeenGood
			} else {
				c.Stage = StageTeenBad
			}
			return c.Stage, true
		}
	case StageTeenGood, StageTeenBad:
		if total > tun.TimeToAdult {
			if stats.CareMistakes < tun.AdultMistakeLimit && stats.Happiness > tun.AdultHappinessFloor {
				c.Stage = StageAdultGood
			} else {
				c.Stage = StageAdultBad
			}
			return c.Stage, true
		}
	}
	return c.Stage, false
}

// HatchCountdown returns the game-seconds left until hatching, or zero
// once the egg stage is behind us. The UI renders this on the egg.
func (c *LifecycleClock) HatchCountdown(now time.Time, tun *Tunables) float64 {
	if c.Stage != StageEgg {
		return 0
	}
	left := tun.TimeToBaby - c.GameTime(now, tun)
	if left < 0 {
		return 0
	}
	return left
}
