package pet

import (
	"strings"
	"testing"
	"time"
)

// newTestPet returns a hatched idle pet so action tests don't need to
// wait out the egg stage.
func newTestPet(t *testing.T, tun *Tunables) *Pet {
	t.Helper()
	p := New("Mochi", tun)
	p.State = StateIdle
	p.Clock.Stage = StageChild
	return p
}

func collectMessages(p *Pet) *[]Message {
	var msgs []Message
	p.SetMessageHandler(func(m Message) { msgs = append(msgs, m) })
	return &msgs
}

func hasMessage(msgs []Message, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}

func TestTimedActionCompletes(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	p.Stats.Fullness = 50

	if !p.Feed() {
		t.Fatal("Feed refused on an idle pet")
	}
	if p.State != StateEating {
		t.Fatalf("state after Feed = %v, want EATING", p.State)
	}

	// One second in: still eating, no deltas yet.
	p.Update(1.0, 12)
	if p.State != StateEating {
		t.Fatalf("state after 1s = %v, want EATING", p.State)
	}
	if p.Stats.Fullness > 50 {
		t.Errorf("fullness gained before action completed: %v", p.Stats.Fullness)
	}

	// Past the action duration: deltas land, back to idle.
	p.Update(tun.ActionDuration, 12)
	if p.State != StateIdle {
		t.Fatalf("state after action = %v, want IDLE", p.State)
	}
	if p.Stats.Fullness <= 50 {
		t.Errorf("fullness after eating = %v, want > 50", p.Stats.Fullness)
	}
}

func TestActionRefusedWhileBusy(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)

	p.Feed()
	if p.Play() {
		t.Error("Play accepted while eating")
	}
	if p.Feed() {
		t.Error("Feed accepted while already eating")
	}
	if p.ToggleSleep() {
		t.Error("ToggleSleep accepted while eating")
	}
}

func TestEggCannotAct(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := New("Mochi", &tun)

	if p.State != StateEgg {
		t.Fatalf("fresh pet state = %v, want EGG", p.State)
	}
	if p.Feed() || p.Play() || p.ToggleSleep() || p.Heal() {
		t.Error("egg accepted a care action")
	}
}

func TestSleepToggle(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)

	if !p.ToggleSleep() || p.State != StateSleeping {
		t.Fatalf("state after sleep toggle = %v, want SLEEPING", p.State)
	}
	if !p.ToggleSleep() || p.State != StateIdle {
		t.Fatalf("state after wake toggle = %v, want IDLE", p.State)
	}
}

func TestSicknessIncrementsCareMistakesOnce(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	p.Stats.Fullness = 0

	p.Update(1.0, 12)
	if p.State != StateSick {
		t.Fatalf("state with empty stomach = %v, want SICK", p.State)
	}
	if p.Stats.CareMistakes != 1 {
		t.Fatalf("care mistakes = %d, want 1", p.Stats.CareMistakes)
	}

	// Staying sick must not keep incrementing.
	p.Update(1.0, 12)
	p.Update(1.0, 12)
	if p.Stats.CareMistakes != 1 {
		t.Errorf("care mistakes after staying sick = %d, want 1", p.Stats.CareMistakes)
	}
}

func TestSickRecovery(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	p.State = StateSick
	p.Stats.Health = 60
	p.Stats.Fullness = 80

	p.Update(1.0, 12)
	if p.State != StateIdle {
		t.Errorf("state with health above recovery ceiling = %v, want IDLE", p.State)
	}
}

func TestHealRequiresDiscipline(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()

	// Not enough discipline: rejected, nothing changes.
	p := newTestPet(t, &tun)
	p.State = StateSick
	p.Stats.Health = 30
	p.Stats.Discipline = 5
	msgs := collectMessages(p)

	if p.Heal() {
		t.Fatal("Heal accepted with discipline below cost")
	}
	if p.Stats.Health != 30 || p.State != StateSick {
		t.Errorf("failed heal mutated pet: health=%v state=%v", p.Stats.Health, p.State)
	}
	if !hasMessage(*msgs, "discipline") {
		t.Error("expected a rejection message mentioning discipline")
	}

	// Enough discipline: health up, discipline spent, back to idle.
	p = newTestPet(t, &tun)
	p.State = StateSick
	p.Stats.Health = 30
	p.Stats.Discipline = 15

	if !p.Heal() {
		t.Fatal("Heal refused with sufficient discipline")
	}
	if p.Stats.Health != 30+tun.HealHealthGain {
		t.Errorf("health after heal = %v, want %v", p.Stats.Health, 30+tun.HealHealthGain)
	}
	if p.Stats.Discipline != 15-tun.HealDisciplineCost {
		t.Errorf("discipline after heal = %v, want %v", p.Stats.Discipline, 15-tun.HealDisciplineCost)
	}
	if p.State != StateIdle {
		t.Errorf("state after heal = %v, want IDLE", p.State)
	}
}

func TestHealOnlyWhileSick(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	p.Stats.Discipline = 100

	if p.Heal() {
		t.Error("Heal accepted on a healthy pet")
	}
}

func TestTrainWhileSick(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	p.State = StateSick
	p.Stats.Health = 30

	if !p.Train() {
		t.Fatal("Train refused on a sick pet")
	}
	if p.State != StateTraining {
		t.Errorf("state = %v, want TRAINING", p.State)
	}
}

func TestClean(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	p.Stats.Cleanliness = 10
	p.Stats.Happiness = 50

	if !p.Clean() {
		t.Fatal("Clean refused on an idle pet")
	}
	if p.Stats.Cleanliness != 100 {
		t.Errorf("cleanliness after bath = %v, want 100", p.Stats.Cleanliness)
	}
	if p.Stats.Happiness != 50+tun.CleanHappinessGain {
		t.Errorf("happiness after bath = %v, want %v", p.Stats.Happiness, 50+tun.CleanHappinessGain)
	}
}

func TestDeathIsTerminal(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	p.Stats.Fullness = 0
	p.Stats.Health = 0

	saves := 0
	p.SetSaver(func(*Pet) { saves++ })

	p.Update(1.0, 12)
	if p.IsAlive {
		t.Fatal("pet alive with zero health after update")
	}
	if p.State != StateDead {
		t.Fatalf("state = %v, want DEAD", p.State)
	}
	if saves == 0 {
		t.Error("death did not trigger a save")
	}

	// No action or update revives a dead pet.
	if p.Feed() || p.Play() || p.Heal() || p.ToggleSleep() || p.Clean() || p.Train() {
		t.Error("dead pet accepted an action")
	}
	statsBefore := p.Stats
	p.Update(3600, 12)
	p.ApplyExternalReward(StatHealth, 100)
	p.AddCoins(10)
	if p.Stats != statsBefore {
		t.Errorf("dead pet stats changed: %+v != %+v", p.Stats, statsBefore)
	}
	if p.State != StateDead || p.IsAlive {
		t.Error("dead pet left DEAD state")
	}
}

func TestDeathGuardWinsOverLifecycle(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	// Due for a lifecycle transition and dead at the same instant.
	p.Clock.Stage = StageChild
	p.Clock.BirthTime = now.Add(-time.Duration(tun.TimeToTeen+10) * time.Second)
	p.Stats.Fullness = 0
	p.Stats.Health = 0

	p.Update(1.0, 12)
	if p.IsAlive {
		t.Fatal("death guard did not fire")
	}
	if p.Clock.Stage != StageChild {
		t.Errorf("stage advanced on the death tick: %v", p.Clock.Stage)
	}
}

func TestLifecycleTransitionInterruptsAction(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	p.Clock.Stage = StageBaby
	p.Clock.BirthTime = now.Add(-time.Duration(tun.TimeToChild+10) * time.Second)
	msgs := collectMessages(p)

	p.Feed()
	p.Update(1.0, 12)

	if p.Clock.Stage != StageChild {
		t.Fatalf("stage = %v, want CHILD", p.Clock.Stage)
	}
	if p.State != StateIdle {
		t.Errorf("state after transition = %v, want IDLE", p.State)
	}
	if !hasMessage(*msgs, "grown into a Child") {
		t.Error("expected a child announcement message")
	}
}

func TestLowStatWarningsEdgeTriggered(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)
	p.Stats.Fullness = 20.001
	msgs := collectMessages(p)

	// Crossing the threshold fires exactly once.
	p.Update(1.0, 12)
	p.Update(1.0, 12)
	p.Update(1.0, 12)

	count := 0
	for _, m := range *msgs {
		if strings.Contains(m.Text, "hungry") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("hungry warnings = %d, want 1", count)
	}
}

func TestPeriodicSave(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	tun.SaveInterval = 5.0
	p := newTestPet(t, &tun)

	saves := 0
	p.SetSaver(func(*Pet) { saves++ })

	for i := 0; i < 12; i++ {
		p.Update(1.0, 12)
	}
	if saves != 2 {
		t.Errorf("saves after 12s at 5s interval = %d, want 2", saves)
	}
}

func TestAddCoinsFloor(t *testing.T) {
	mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun)

	p.AddCoins(5)
	p.AddCoins(-20)
	if p.Stats.Coins != 0 {
		t.Errorf("coins = %d, want 0", p.Stats.Coins)
	}
}
