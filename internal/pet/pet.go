package pet

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Testable time source shared by the state machine, the notifier, and
// offline catch-up.
var TimeNow = func() time.Time { return time.Now().UTC() }

// Message kinds surfaced through the OnMessage callback.
const (
	MsgLifecycle = "lifecycle"
	MsgWarning   = "warning"
	MsgInfo      = "info"
	MsgMissed    = "missed"
)

// Message is a human-readable event for the host's message log.
type Message struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// Pet is the simulation aggregate: one stat vector, one lifecycle clock,
// and the activity state machine. There is exactly one mutator; Update
// runs to completion before the next frame renders.
type Pet struct {
	ID    string
	Name  string
	Stats Stats
	Clock LifecycleClock
	State ActivityState

	// ActionTimer counts real seconds inside a timed action state and
	// resets on every transition.
	ActionTimer float64
	IsAlive     bool

	tun       *Tunables
	onMessage func(Message)
	saver     func(*Pet)
	sinceSave float64

	// Previous-tick values for low-stat edge-triggered messages.
	prevFullness  float64
	prevHappiness float64
	prevEnergy    float64
}

// New creates a fresh egg-stage pet born now.
func New(name string, tun *Tunables) *Pet {
	now := TimeNow()
	stats := NewStats()
	p := &Pet{
		ID:      uuid.NewString(),
		Name:    name,
		Stats:   stats,
		Clock:   NewLifecycleClock(now),
		State:   StateEgg,
		IsAlive: true,
		tun:     tun,
	}
	p.prevFullness = stats.Fullness
	p.prevHappiness = stats.Happiness
	p.prevEnergy = stats.Energy
	log.Printf("Created new pet %s (%s)", name, p.ID)
	return p
}

// Tunables exposes the active tuning set (read-only use).
func (p *Pet) Tunables() *Tunables { return p.tun }

// SetMessageHandler installs the host callback for lifecycle, warning,
// and rejection messages. A nil handler silently drops them.
func (p *Pet) SetMessageHandler(fn func(Message)) { p.onMessage = fn }

// SetSaver installs the persistence hook invoked on death and on the
// periodic save interval.
func (p *Pet) SetSaver(fn func(*Pet)) { p.saver = fn }

func (p *Pet) say(kind, format string, args ...any) {
	if p.onMessage == nil {
		return
	}
	p.onMessage(Message{Text: fmt.Sprintf(format, args...), Kind: kind})
}

func (p *Pet) persist() {
	if p.saver != nil {
		p.saver(p)
	}
}

// GetStats returns a read-only snapshot for rendering.
func (p *Pet) GetStats() Stats { return p.Stats }

// GetState returns the current activity state.
func (p *Pet) GetState() ActivityState { return p.State }

// GetLifeStage returns the current developmental stage.
func (p *Pet) GetLifeStage() LifeStage { return p.Clock.Stage }

// transitionTo switches activity state, resets the action timer, and
// announces the transitions a player cares about.
func (p *Pet) transitionTo(next ActivityState) {
	if p.State == next {
		return
	}
	prev := p.State
	p.State = next
	p.ActionTimer = 0

	switch {
	case next == StateSleeping:
		p.say(MsgInfo, "%s is now fast asleep.", p.Name)
	case prev == StateSleeping && next == StateIdle:
		p.say(MsgInfo, "%s woke up! Good morning!", p.Name)
	case next == StateSick:
		p.say(MsgWarning, "Oh no! %s is feeling sick.", p.Name)
	case prev == StateSick && next == StateIdle:
		p.say(MsgInfo, "%s is feeling better!", p.Name)
	case next == StateDead:
		p.say(MsgLifecycle, "Alas, %s has passed away...", p.Name)
	case prev == StateEgg && next == StateIdle:
		p.say(MsgLifecycle, "It's a %s! Welcome to the world!", p.Name)
	}
}

func (p *Pet) completeAction() {
	switch p.State {
	case StateEating:
		p.Stats.ApplyDelta(StatFullness, p.tun.FeedFullnessGain)
		p.Stats.ApplyDelta(StatHealth, p.tun.FeedHealthGain)
		p.say(MsgInfo, "%s enjoyed the meal! Fullness +%.0f, Health +%.0f.",
			p.Name, p.tun.FeedFullnessGain, p.tun.FeedHealthGain)
	case StatePlaying:
		p.Stats.ApplyDelta(StatHappiness, p.tun.PlayHappinessGain)
		p.Stats.ApplyDelta(StatEnergy, -p.tun.PlayEnergyCost)
		p.say(MsgInfo, "%s had a blast! Happiness +%.0f, Energy -%.0f.",
			p.Name, p.tun.PlayHappinessGain, p.tun.PlayEnergyCost)
	case StateTraining:
		p.Stats.ApplyDelta(StatDiscipline, p.tun.TrainDisciplineGain)
		p.Stats.ApplyDelta(StatHappiness, -p.tun.TrainHappinessCost)
		p.say(MsgInfo, "%s learned something new! Discipline +%.0f.",
			p.Name, p.tun.TrainDisciplineGain)
	}
	p.transitionTo(StateIdle)
}

// Update advances the simulation by dt real seconds. hour is the local
// wall-clock hour in [0,23], driving the night energy-drain multiplier.
// Guard order is fixed: death, sickness, recovery, lifecycle.
func (p *Pet) Update(dt float64, hour int) {
	if !p.IsAlive && p.State == StateDead {
		return
	}

	// 1. Timed actions run on real seconds regardless of time scale.
	if p.State.IsTimedAction() {
		p.ActionTimer += dt
		if p.ActionTimer >= p.tun.ActionDuration {
			p.completeAction()
		}
	}

	// 2. Stat decay runs on scaled game time.
	p.Stats.Tick(dt*p.tun.TimeScale, p.State, hour, p.tun)
	p.emitLowStatWarnings()

	// 3. Guards.
	if p.runGuards(TimeNow()) {
		return
	}

	// 4. Periodic save.
	p.sinceSave += dt
	if p.sinceSave >= p.tun.SaveInterval {
		p.sinceSave = 0
		p.persist()
	}
}

// runGuards evaluates the death, sickness, recovery, and lifecycle
// guards in order. It reports true when the death guard fired; the
// caller must not mutate anything further that tick.
func (p *Pet) runGuards(now time.Time) bool {
	if p.Stats.Health == 0 && p.IsAlive {
		p.IsAlive = false
		p.transitionTo(StateDead)
		p.persist()
		return true
	}

	if (p.Stats.Fullness == 0 || p.Stats.Health < p.tun.SickHealthFloor) &&
		p.State != StateSick && p.State != StateDead {
		p.transitionTo(StateSick)
		p.Stats.CareMistakes++
	} else if p.State == StateSick && p.Stats.Health > p.tun.RecoverHealthCeil && p.Stats.Fullness > 0 {
		p.transitionTo(StateIdle)
	}

	if stage, changed := p.Clock.Advance(now, p.Stats, p.tun); changed {
		p.transitionTo(StateIdle)
		p.announceStage(stage)
		p.persist()
	}
	return false
}

func (p *Pet) announceStage(stage LifeStage) {
	switch stage {
	case StageBaby:
		p.say(MsgLifecycle, "Congratulations! %s has hatched into a Baby!", p.Name)
	case StageChild:
		p.say(MsgLifecycle, "%s has grown into a Child!", p.Name)
	case StageTeenGood:
		p.say(MsgLifecycle, "Congratulations! %s evolved into a well-behaved Teen!", p.Name)
	case StageTeenBad:
		p.say(MsgLifecycle, "%s evolved into a rebellious Teen...", p.Name)
	case StageAdultGood:
		p.say(MsgLifecycle, "Amazing! %s is now a thriving Adult!", p.Name)
	case StageAdultBad:
		p.say(MsgLifecycle, "%s has reached adulthood, but seems a bit rough around the edges.", p.Name)
	}
}

func (p *Pet) emitLowStatWarnings() {
	if p.Stats.Fullness < p.tun.AlertFullness && p.prevFullness >= p.tun.AlertFullness {
		p.say(MsgWarning, "%s is feeling very hungry!", p.Name)
	}
	if p.Stats.Happiness < p.tun.AlertHappiness && p.prevHappiness >= p.tun.AlertHappiness {
		p.say(MsgWarning, "%s is feeling lonely.", p.Name)
	}
	if p.Stats.Energy < p.tun.AlertEnergy && p.prevEnergy >= p.tun.AlertEnergy {
		p.say(MsgWarning, "%s is very tired.", p.Name)
	}
	p.prevFullness = p.Stats.Fullness
	p.prevHappiness = p.Stats.Happiness
	p.prevEnergy = p.Stats.Energy
}

// Feed moves an idle pet to EATING; deltas land on action completion.
func (p *Pet) Feed() bool {
	if p.State != StateIdle {
		p.say(MsgInfo, "%s can't eat right now.", p.Name)
		return false
	}
	p.transitionTo(StateEating)
	return true
}

// Play moves an idle pet to PLAYING.
func (p *Pet) Play() bool {
	if p.State != StateIdle {
		p.say(MsgInfo, "%s can't play right now.", p.Name)
		return false
	}
	p.transitionTo(StatePlaying)
	return true
}

// Train moves an idle or sick pet to TRAINING. Training while sick is
// allowed so a neglected pet can still build the discipline heal needs.
func (p *Pet) Train() bool {
	if p.State != StateIdle && p.State != StateSick {
		p.say(MsgInfo, "%s can't train right now.", p.Name)
		return false
	}
	p.transitionTo(StateTraining)
	return true
}

// ToggleSleep puts an idle pet to sleep or wakes a sleeping one.
func (p *Pet) ToggleSleep() bool {
	switch p.State {
	case StateIdle:
		p.transitionTo(StateSleeping)
		return true
	case StateSleeping:
		p.transitionTo(StateIdle)
		return true
	default:
		p.say(MsgInfo, "%s can't sleep right now.", p.Name)
		return false
	}
}

// Heal treats a sick pet. It requires enough discipline to accept the
// treatment; on failure nothing changes and a rejection is emitted.
func (p *Pet) Heal() bool {
	if p.State != StateSick {
		p.say(MsgInfo, "%s doesn't need healing.", p.Name)
		return false
	}
	if p.Stats.Discipline < p.tun.HealDisciplineCost {
		p.say(MsgWarning, "%s needs more discipline to accept treatment.", p.Name)
		return false
	}
	p.Stats.ApplyDelta(StatHealth, p.tun.HealHealthGain)
	p.Stats.ApplyDelta(StatDiscipline, -p.tun.HealDisciplineCost)
	p.say(MsgInfo, "%s is feeling much better! Health +%.0f.", p.Name, p.tun.HealHealthGain)
	p.transitionTo(StateIdle)
	return true
}

// Clean gives the pet a bath. Instant, legal while idle or sick.
func (p *Pet) Clean() bool {
	if p.State != StateIdle && p.State != StateSick {
		p.say(MsgInfo, "%s can't take a bath right now.", p.Name)
		return false
	}
	p.Stats.ApplyDelta(StatCleanliness, 100)
	p.Stats.ApplyDelta(StatHappiness, p.tun.CleanHappinessGain)
	p.say(MsgInfo, "%s is squeaky clean!", p.Name)
	return true
}

// ApplyExternalReward adjusts a stat on behalf of a minigame or an item
// effect, passing through the clamp invariant. Dead pets are immutable.
func (p *Pet) ApplyExternalReward(stat StatName, delta float64) {
	if !p.IsAlive {
		return
	}
	p.Stats.ApplyDelta(stat, delta)
}

// AddCoins credits minigame winnings. The balance never goes negative.
func (p *Pet) AddCoins(n int) {
	if !p.IsAlive {
		return
	}
	p.Stats.Coins += n
	if p.Stats.Coins < 0 {
		p.Stats.Coins = 0
	}
}
