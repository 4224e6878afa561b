package pet

import (
	"errors"
	"testing"
	"time"
)

// memLedger is an in-memory LedgerStore for notifier tests.
type memLedger struct {
	entries map[string]time.Time
	loadErr error
}

func newMemLedger() *memLedger {
	return &memLedger{entries: map[string]time.Time{}}
}

func (m *memLedger) SaveNotified(need string, at time.Time) error {
	m.entries[need] = at
	return nil
}

func (m *memLedger) LoadLedger() (map[string]time.Time, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := map[string]time.Time{}
	for k, v := range m.entries {
		out[k] = v
	}
	return out, nil
}

func needyTestPet(t *testing.T, tun *Tunables) *Pet {
	t.Helper()
	p := newTestPet(t, tun)
	p.Stats.Fullness = 5 // below AlertFullness
	return p
}

func findNeed(ns []Notification, need string) *Notification {
	for i := range ns {
		if ns[i].Need == need {
			return &ns[i]
		}
	}
	return nil
}

func TestNotifyCooldown(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := needyTestPet(t, &tun)
	n := NewNotifier(newMemLedger(), &tun)

	first := n.CheckAndNotify(p, now)
	if findNeed(first, NeedHunger) == nil {
		t.Fatal("expected a hunger alert on first check")
	}

	// One second before the cooldown expires: silent.
	almost := now.Add(time.Duration(tun.NotifyCooldown)*time.Second - time.Second)
	if again := n.CheckAndNotify(p, almost); findNeed(again, NeedHunger) != nil {
		t.Error("hunger alert re-fired inside the cooldown window")
	}

	// Past the cooldown: fires again.
	after := now.Add(time.Duration(tun.NotifyCooldown)*time.Second + time.Second)
	if again := n.CheckAndNotify(p, after); findNeed(again, NeedHunger) == nil {
		t.Error("hunger alert missing after the cooldown expired")
	}
}

func TestNotifyOnlyQualifyingNeeds(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := newTestPet(t, &tun) // everything comfortable except fullness 50
	n := NewNotifier(newMemLedger(), &tun)

	if out := n.CheckAndNotify(p, now); len(out) != 0 {
		t.Errorf("healthy pet produced %d alerts: %+v", len(out), out)
	}
}

func TestNotifySkipsDeadPet(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := needyTestPet(t, &tun)
	p.IsAlive = false
	n := NewNotifier(newMemLedger(), &tun)

	if out := n.CheckAndNotify(p, now); len(out) != 0 {
		t.Errorf("dead pet produced alerts: %+v", out)
	}
}

func TestNotifierCooldownSurvivesRestart(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := needyTestPet(t, &tun)
	ledger := newMemLedger()

	n := NewNotifier(ledger, &tun)
	if out := n.CheckAndNotify(p, now); len(out) == 0 {
		t.Fatal("expected an alert before restart")
	}

	// A new notifier over the same ledger inherits the cooldown.
	n2 := NewNotifier(ledger, &tun)
	if out := n2.CheckAndNotify(p, now.Add(time.Minute)); findNeed(out, NeedHunger) != nil {
		t.Error("restart reset the hunger cooldown")
	}
}

func TestNotifierToleratesLedgerLoadFailure(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := needyTestPet(t, &tun)

	ledger := newMemLedger()
	ledger.loadErr = errors.New("table missing")
	n := NewNotifier(ledger, &tun)

	if out := n.CheckAndNotify(p, now); findNeed(out, NeedHunger) == nil {
		t.Error("notifier with failed ledger load should still alert")
	}
}

func TestMissedWhileAway(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := needyTestPet(t, &tun)
	lastUpdate := now.Add(-2 * time.Hour)

	ledger := newMemLedger()
	n := NewNotifier(ledger, &tun)

	out := n.MissedWhileAway(p, lastUpdate, now)
	hunger := findNeed(out, NeedHunger)
	if hunger == nil {
		t.Fatal("expected a missed hunger alert")
	}
	if hunger.Kind != MsgMissed {
		t.Errorf("missed alert kind = %q, want %q", hunger.Kind, MsgMissed)
	}

	// The missed alert also arms the live cooldown: no immediate dupe.
	if live := n.CheckAndNotify(p, now); findNeed(live, NeedHunger) != nil {
		t.Error("live alert duplicated the missed alert")
	}
}

func TestMissedWhileAwaySuppressedByRecentLedger(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := needyTestPet(t, &tun)
	lastUpdate := now.Add(-2 * time.Hour)

	// Already notified after the last save: nothing was missed.
	ledger := newMemLedger()
	ledger.entries[NeedHunger] = now.Add(-time.Hour)
	n := NewNotifier(ledger, &tun)

	if out := n.MissedWhileAway(p, lastUpdate, now); findNeed(out, NeedHunger) != nil {
		t.Error("missed alert fired despite a post-save ledger entry")
	}
}

func TestMissedWhileAwayZeroLastUpdate(t *testing.T) {
	now := mockTimeNow(t)
	tun := DefaultTunables()
	p := needyTestPet(t, &tun)
	n := NewNotifier(newMemLedger(), &tun)

	if out := n.MissedWhileAway(p, time.Time{}, now); len(out) != 0 {
		t.Errorf("fresh pet produced missed alerts: %+v", out)
	}
}
