package pet

// Tunables collects every rate, threshold, and duration the simulation
// uses. The historical builds never converged on single values, so
// nothing here is hard-coded at call sites; the config file can override
// any of them. All decay rates are units per game-hour.
type Tunables struct {
	TimeScale float64 `yaml:"time_scale"` // game-seconds per real second

	// Stat decay/regen rates.
	FullnessDecay          float64 `yaml:"fullness_decay"`
	FullnessDecayAsleep    float64 `yaml:"fullness_decay_asleep"`
	HappinessDecay         float64 `yaml:"happiness_decay"`
	HungryHappinessPenalty float64 `yaml:"hungry_happiness_penalty"` // added when fullness < HungryThreshold
	SickHappinessPenalty   float64 `yaml:"sick_happiness_penalty"`
	EnergyDrain            float64 `yaml:"energy_drain"`
	EnergyRegen            float64 `yaml:"energy_regen"` // while sleeping
	NightDrainMult         float64 `yaml:"night_drain_mult"`
	HealthDecay            float64 `yaml:"health_decay"`
	HealthRegen            float64 `yaml:"health_regen"`
	CleanlinessDecay       float64 `yaml:"cleanliness_decay"`

	HungryThreshold float64 `yaml:"hungry_threshold"` // fullness below this speeds happiness loss

	// Night window for the awake energy-drain multiplier.
	NightStartHour int `yaml:"night_start_hour"`
	NightEndHour   int `yaml:"night_end_hour"`

	// Timed action effects (real seconds / stat units).
	ActionDuration      float64 `yaml:"action_duration"`
	FeedFullnessGain    float64 `yaml:"feed_fullness_gain"`
	FeedHealthGain      float64 `yaml:"feed_health_gain"`
	PlayHappinessGain   float64 `yaml:"play_happiness_gain"`
	PlayEnergyCost      float64 `yaml:"play_energy_cost"`
	TrainDisciplineGain float64 `yaml:"train_discipline_gain"`
	TrainHappinessCost  float64 `yaml:"train_happiness_cost"`
	CleanHappinessGain  float64 `yaml:"clean_happiness_gain"`

	// Healing.
	HealDisciplineCost float64 `yaml:"heal_discipline_cost"`
	HealHealthGain     float64 `yaml:"heal_health_gain"`
	SickHealthFloor    float64 `yaml:"sick_health_floor"`   // health below this triggers sickness
	RecoverHealthCeil  float64 `yaml:"recover_health_ceil"` // sick pet recovers above this

	// Life-stage thresholds in game-seconds, strictly increasing.
	TimeToBaby  float64 `yaml:"time_to_baby"`
	TimeToChild float64 `yaml:"time_to_child"`
	TimeToTeen  float64 `yaml:"time_to_teen"`
	TimeToAdult float64 `yaml:"time_to_adult"`

	// Evolution branch quality gates.
	TeenMistakeLimit    int     `yaml:"teen_mistake_limit"`
	TeenDisciplineFloor float64 `yaml:"teen_discipline_floor"`
	AdultMistakeLimit   int     `yaml:"adult_mistake_limit"`
	AdultHappinessFloor float64 `yaml:"adult_happiness_floor"`

	// Persistence and notification windows, real seconds.
	SaveInterval      float64 `yaml:"save_interval"`
	MaxCatchupSeconds float64 `yaml:"max_catchup_seconds"`
	NotifyCooldown    float64 `yaml:"notify_cooldown"`

	// Needs-alert thresholds.
	AlertFullness    float64 `yaml:"alert_fullness"`
	AlertCleanliness float64 `yaml:"alert_cleanliness"`
	AlertHealth      float64 `yaml:"alert_health"`
	AlertEnergy      float64 `yaml:"alert_energy"`
	AlertHappiness   float64 `yaml:"alert_happiness"`
}

// DefaultTunables returns the canonical reference values.
func DefaultTunables() Tunables {
	return Tunables{
		TimeScale: 1.0,

		FullnessDecay:          8.0,
		FullnessDecayAsleep:    2.0,
		HappinessDecay:         10.0,
		HungryHappinessPenalty: 5.0,
		SickHappinessPenalty:   10.0,
		EnergyDrain:            15.0,
		EnergyRegen:            30.0,
		NightDrainMult:         1.5,
		HealthDecay:            10.0,
		HealthRegen:            2.0,
		CleanlinessDecay:       4.0,

		HungryThreshold: 20.0,

		NightStartHour: 22,
		NightEndHour:   6,

		ActionDuration:      3.0,
		FeedFullnessGain:    20.0,
		FeedHealthGain:      5.0,
		PlayHappinessGain:   30.0,
		PlayEnergyCost:      10.0,
		TrainDisciplineGain: 15.0,
		TrainHappinessCost:  5.0,
		CleanHappinessGain:  5.0,

		HealDisciplineCost: 10.0,
		HealHealthGain:     20.0,
		SickHealthFloor:    10.0,
		RecoverHealthCeil:  50.0,

		TimeToBaby:  3600,       // 1 game-hour
		TimeToChild: 4 * 3600,   // 4 game-hours
		TimeToTeen:  24 * 3600,  // 1 game-day
		TimeToAdult: 72 * 3600,  // 3 game-days

		TeenMistakeLimit:    3,
		TeenDisciplineFloor: 50.0,
		AdultMistakeLimit:   5,
		AdultHappinessFloor: 75.0,

		SaveInterval:      5.0,
		MaxCatchupSeconds: 4 * 3600, // 4 real hours
		NotifyCooldown:    1800.0,

		AlertFullness:    20.0,
		AlertCleanliness: 25.0,
		AlertHealth:      30.0,
		AlertEnergy:      20.0,
		AlertHappiness:   20.0,
	}
}
