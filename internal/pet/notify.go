package pet

import (
	"fmt"
	"log"
	"time"
)

// Monitored needs. "hunger" has inverted sense: it alerts on low
// fullness.
const (
	NeedHunger      = "hunger"
	NeedCleanliness = "cleanliness"
	NeedHealth      = "health"
	NeedEnergy      = "energy"
	NeedHappiness   = "happiness"
)

// Notification is one emitted alert.
type Notification struct {
	Need string
	Text string
	Kind string // MsgWarning for live alerts, MsgMissed for away summaries
}

// LedgerStore persists the last-notified timestamps across restarts.
type LedgerStore interface {
	SaveNotified(need string, at time.Time) error
	LoadLedger() (map[string]time.Time, error)
}

type needCheck struct {
	need      string
	qualifies func(Stats, *Tunables) bool
	live      string
	missed    string
}

var needChecks = []needCheck{
	{
		need:      NeedHunger,
		qualifies: func(s Stats, t *Tunables) bool { return s.Fullness < t.AlertFullness },
		live:      "%s is hungry!",
		missed:    "%s got very hungry while you were away.",
	},
	{
		need:      NeedCleanliness,
		qualifies: func(s Stats, t *Tunables) bool { return s.Cleanliness < t.AlertCleanliness },
		live:      "%s needs a bath!",
		missed:    "%s needed a bath while you were away.",
	},
	{
		need:      NeedHealth,
		qualifies: func(s Stats, t *Tunables) bool { return s.Health < t.AlertHealth },
		live:      "%s is in poor health!",
		missed:    "%s's health suffered while you were away.",
	},
	{
		need:      NeedEnergy,
		qualifies: func(s Stats, t *Tunables) bool { return s.Energy < t.AlertEnergy },
		live:      "%s is exhausted!",
		missed:    "%s got exhausted while you were away.",
	},
	{
		need:      NeedHappiness,
		qualifies: func(s Stats, t *Tunables) bool { return s.Happiness < t.AlertHappiness },
		live:      "%s is unhappy!",
		missed:    "%s got lonely while you were away.",
	},
}

// Notifier watches stat thresholds and emits at most one alert per need
// per cooldown window, suppressing duplicates across restarts via the
// persisted ledger.
type Notifier struct {
	tun    *Tunables
	store  LedgerStore
	ledger map[string]time.Time
}

// NewNotifier loads the persisted ledger; a load failure starts with an
// empty ledger and a logged warning rather than blocking startup.
func NewNotifier(store LedgerStore, tun *Tunables) *Notifier {
	ledger := map[string]time.Time{}
	if store != nil {
		loaded, err := store.LoadLedger()
		if err != nil {
			log.Printf("Error loading notification ledger: %v", err)
		} else if loaded != nil {
			ledger = loaded
		}
	}
	return &Notifier{tun: tun, store: store, ledger: ledger}
}

func (n *Notifier) record(need string, at time.Time) {
	n.ledger[need] = at
	if n.store != nil {
		if err := n.store.SaveNotified(need, at); err != nil {
			log.Printf("Error persisting notification ledger: %v", err)
		}
	}
}

// CheckAndNotify emits a live alert for every need that currently
// qualifies and whose cooldown window has elapsed.
func (n *Notifier) CheckAndNotify(p *Pet, now time.Time) []Notification {
	if !p.IsAlive {
		return nil
	}
	cooldown := time.Duration(n.tun.NotifyCooldown * float64(time.Second))

	var out []Notification
	for _, check := range needChecks {
		if !check.qualifies(p.Stats, n.tun) {
			continue
		}
		if last, ok := n.ledger[check.need]; ok && now.Sub(last) < cooldown {
			continue
		}
		out = append(out, Notification{
			Need: check.need,
			Text: fmt.Sprintf(check.live, p.Name),
			Kind: MsgWarning,
		})
		n.record(check.need, now)
	}
	return out
}

// MissedWhileAway surfaces needs that qualify right after a load and
// were not notified since the record's last save: the catch-up summary
// shown once on startup, on a channel distinct from live alerts. Each
// surfaced need is recorded so the live path does not immediately
// duplicate it.
func (n *Notifier) MissedWhileAway(p *Pet, lastUpdate, now time.Time) []Notification {
	if !p.IsAlive || lastUpdate.IsZero() {
		return nil
	}

	var out []Notification
	for _, check := range needChecks {
		if !check.qualifies(p.Stats, n.tun) {
			continue
		}
		if last, ok := n.ledger[check.need]; ok && !last.Before(lastUpdate) {
			continue
		}
		out = append(out, Notification{
			Need: check.need,
			Text: fmt.Sprintf(check.missed, p.Name),
			Kind: MsgMissed,
		})
		n.record(check.need, now)
	}
	return out
}
