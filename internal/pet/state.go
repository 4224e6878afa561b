package pet

import (
	"log"
	"strings"
)

// ActivityState is the pet's fine-grained, reversible behavioral mode.
// It is orthogonal to LifeStage: a CHILD can be SLEEPING.
type ActivityState int

const (
	StateEgg ActivityState = iota
	StateIdle
	StateEating
	StatePlaying
	StateTraining
	StateSleeping
	StateSick
	StateDead
)

var activityNames = map[ActivityState]string{
	StateEgg:      "EGG",
	StateIdle:     "IDLE",
	StateEating:   "EATING",
	StatePlaying:  "PLAYING",
	StateTraining: "TRAINING",
	StateSleeping: "SLEEPING",
	StateSick:     "SICK",
	StateDead:     "DEAD",
}

func (s ActivityState) String() string {
	if name, ok := activityNames[s]; ok {
		return name
	}
	return "IDLE"
}

// IsTimedAction reports whether the state runs on ActionTimer and
// completes after the configured action duration.
func (s ActivityState) IsTimedAction() bool {
	return s == StateEating || s == StatePlaying || s == StateTraining
}

// ParseActivityState decodes a persisted state name. Legacy saves used
// hyphenated names ("ELITE-CHILD") and states that no longer exist; any
// unrecognized value decodes to IDLE with ok=false so a stale record
// never prevents a load.
func ParseActivityState(value string) (ActivityState, bool) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), "-", "_"))
	for state, name := range activityNames {
		if name == normalized {
			return state, true
		}
	}
	log.Printf("WARNING: mapping unknown activity state %q to IDLE", value)
	return StateIdle, false
}

// LifeStage is the coarse developmental phase. It only ever advances;
// the GOOD/BAD branch is locked in at the transition instant.
type LifeStage int

const (
	StageEgg LifeStage = iota
	StageBaby
	StageChild
	StageTeenGood
	StageTeenBad
	StageAdultGood
	StageAdultBad
)

var stageNames = map[LifeStage]string{
	StageEgg:       "EGG",
	StageBaby:      "BABY",
	StageChild:     "CHILD",
	StageTeenGood:  "TEEN_GOOD",
	StageTeenBad:   "TEEN_BAD",
	StageAdultGood: "ADULT_GOOD",
	StageAdultBad:  "ADULT_BAD",
}

func (s LifeStage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "EGG"
}

// IsAdult reports whether the pet has reached its final stage.
func (s LifeStage) IsAdult() bool {
	return s == StageAdultGood || s == StageAdultBad
}

// ParseLifeStage decodes a persisted stage name, falling back to EGG for
// anything unrecognized.
func ParseLifeStage(value string) (LifeStage, bool) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), "-", "_"))
	for stage, name := range stageNames {
		if name == normalized {
			return stage, true
		}
	}
	log.Printf("WARNING: mapping unknown life stage %q to EGG", value)
	return StageEgg, false
}

// DisplayName returns a label for the UI ("Teen (well-behaved)").
func (s LifeStage) DisplayName() string {
	switch s {
	case StageEgg:
		return "Egg"
	case StageBaby:
		return "Baby"
	case StageChild:
		return "Child"
	case StageTeenGood:
		return "Teen (well-behaved)"
	case StageTeenBad:
		return "Teen (rebellious)"
	case StageAdultGood:
		return "Adult (thriving)"
	case StageAdultBad:
		return "Adult (rough around the edges)"
	default:
		return "Unknown"
	}
}

// StatName identifies one of the bounded vital stats for generic deltas
// (item effects, minigame rewards). A closed enum instead of reflection:
// any item can target any stat, but only through ApplyDelta.
type StatName int

const (
	StatFullness StatName = iota
	StatHappiness
	StatEnergy
	StatHealth
	StatDiscipline
	StatCleanliness
)

var statNames = map[StatName]string{
	StatFullness:    "fullness",
	StatHappiness:   "happiness",
	StatEnergy:      "energy",
	StatHealth:      "health",
	StatDiscipline:  "discipline",
	StatCleanliness: "cleanliness",
}

func (n StatName) String() string {
	if name, ok := statNames[n]; ok {
		return name
	}
	return "unknown"
}

// ParseStatName decodes a catalog stat column. Unknown names report
// ok=false and callers skip the effect rather than guessing.
func ParseStatName(value string) (StatName, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for stat, name := range statNames {
		if name == normalized {
			return stat, true
		}
	}
	return StatFullness, false
}
