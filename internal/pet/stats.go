package pet

// Stats holds the pet's decaying vital attributes. Every bounded field
// stays in [0,100]; no caller can observe an out-of-range value because
// every mutation goes through clamp. Linear decay model: Vt = V0 - r*dt.
type Stats struct {
	Fullness    float64 `json:"fullness"` // 100 = full, 0 = starving
	Happiness   float64 `json:"happiness"`
	Energy      float64 `json:"energy"`
	Health      float64 `json:"health"`
	Discipline  float64 `json:"discipline"`
	Cleanliness float64 `json:"cleanliness"`

	CareMistakes int `json:"care_mistakes"`
	Coins        int `json:"coins"`
}

// NewStats returns the starting stat vector for a fresh egg.
func NewStats() Stats {
	return Stats{
		Fullness:    50.0,
		Happiness:   100.0,
		Energy:      100.0,
		Health:      100.0,
		Discipline:  50.0,
		Cleanliness: 100.0,
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func isNight(hour int, tun *Tunables) bool {
	return hour >= tun.NightStartHour || hour < tun.NightEndHour
}

// Tick applies dtGameSeconds of continuous decay/regeneration. Rates in
// Tunables are per game-hour; dt of zero is a no-op. Clamping makes very
// large dt values saturate rather than overshoot, so offline catch-up
// can reuse the same formula in a single call.
func (s *Stats) Tick(dtGameSeconds float64, state ActivityState, hour int, tun *Tunables) {
	if dtGameSeconds <= 0 {
		return
	}
	h := dtGameSeconds / 3600.0

	fullRate := tun.FullnessDecay
	if state == StateSleeping {
		fullRate = tun.FullnessDecayAsleep
	}
	s.Fullness = clamp(s.Fullness - fullRate*h)

	happyRate := tun.HappinessDecay
	if s.Fullness < tun.HungryThreshold {
		happyRate += tun.HungryHappinessPenalty
	}
	if state == StateSick {
		happyRate += tun.SickHappinessPenalty
	}
	s.Happiness = clamp(s.Happiness - happyRate*h)

	if state == StateSleeping {
		s.Energy = clamp(s.Energy + tun.EnergyRegen*h)
	} else {
		drain := tun.EnergyDrain
		if isNight(hour, tun) {
			drain *= tun.NightDrainMult
		}
		if state == StatePlaying || state == StateTraining {
			drain *= 2
		}
		s.Energy = clamp(s.Energy - drain*h)
	}

	if s.Fullness == 0 || s.Energy == 0 || state == StateSick {
		s.Health = clamp(s.Health - tun.HealthDecay*h)
	} else if s.Health < 100 {
		s.Health = clamp(s.Health + tun.HealthRegen*h)
	}

	s.Cleanliness = clamp(s.Cleanliness - tun.CleanlinessDecay*h)
}

// ApplyDelta adjusts a single named stat through the clamp invariant.
// This is the only generic mutation path; items and minigame rewards
// target stats through it instead of reflection.
func (s *Stats) ApplyDelta(stat StatName, delta float64) {
	switch stat {
	case StatFullness:
		s.Fullness = clamp(s.Fullness + delta)
	case StatHappiness:
		s.Happiness = clamp(s.Happiness + delta)
	case StatEnergy:
		s.Energy = clamp(s.Energy + delta)
	case StatHealth:
		s.Health = clamp(s.Health + delta)
	case StatDiscipline:
		s.Discipline = clamp(s.Discipline + delta)
	case StatCleanliness:
		s.Cleanliness = clamp(s.Cleanliness + delta)
	}
}

// Get returns the current value of a named stat.
func (s Stats) Get(stat StatName) float64 {
	switch stat {
	case StatFullness:
		return s.Fullness
	case StatHappiness:
		return s.Happiness
	case StatEnergy:
		return s.Energy
	case StatHealth:
		return s.Health
	case StatDiscipline:
		return s.Discipline
	case StatCleanliness:
		return s.Cleanliness
	default:
		return 0
	}
}
