package pet

import (
	"log"
	"time"
)

// Record is the durable snapshot of a pet, one per save slot. Stage and
// state travel as symbolic names so old saves stay readable; decode goes
// through the Parse helpers, which fall back instead of failing.
type Record struct {
	ID           string
	Name         string
	Fullness     float64
	Happiness    float64
	Energy       float64
	Health       float64
	Discipline   float64
	Cleanliness  float64
	CareMistakes int
	Coins        int
	IsAlive      bool
	BirthTime    time.Time
	LastUpdate   time.Time
	LifeStage    string
	State        string
}

// RecordStore is the durable backend for pet records. Save must be
// atomic: a reader can never observe a partial record.
type RecordStore interface {
	SavePet(Record) error
	LoadPet() (*Record, error) // (nil, nil) when no record exists
}

// Gateway serializes the pet to a RecordStore and reconstructs it on
// load, simulating the time the application was not running.
type Gateway struct {
	store RecordStore
	tun   *Tunables
}

// NewGateway binds a gateway to a store and tuning set.
func NewGateway(store RecordStore, tun *Tunables) *Gateway {
	return &Gateway{store: store, tun: tun}
}

// Save writes the full pet snapshot with LastUpdate = now. A failed save
// is reported to the host; the in-memory simulation continues and the
// next periodic save retries.
func (g *Gateway) Save(p *Pet) error {
	rec := Record{
		ID:           p.ID,
		Name:         p.Name,
		Fullness:     p.Stats.Fullness,
		Happiness:    p.Stats.Happiness,
		Energy:       p.Stats.Energy,
		Health:       p.Stats.Health,
		Discipline:   p.Stats.Discipline,
		Cleanliness:  p.Stats.Cleanliness,
		CareMistakes: p.Stats.CareMistakes,
		Coins:        p.Stats.Coins,
		IsAlive:      p.IsAlive,
		BirthTime:    p.Clock.BirthTime,
		LastUpdate:   TimeNow(),
		LifeStage:    p.Clock.Stage.String(),
		State:        p.State.String(),
	}
	return g.store.SavePet(rec)
}

// Load reconstructs the pet, or creates a fresh egg when no usable
// record exists. For an existing record it applies exactly one lump-sum
// catch-up tick for the offline gap, clamped to MaxCatchupSeconds of
// real time, then one guard pass, so a pet can be discovered sick or
// dead immediately on load. A corrupt record yields a fresh pet rather
// than an error: availability over data preservation.
//
// The returned timestamp is the record's LastUpdate (zero for a fresh
// pet); the notifier compares it against the needs ledger to surface
// "missed while away" alerts.
func (g *Gateway) Load(defaultName string, hour int) (*Pet, time.Time) {
	rec, err := g.store.LoadPet()
	if err != nil {
		log.Printf("Error reading pet record: %v. Creating new pet.", err)
		return New(defaultName, g.tun), time.Time{}
	}
	if rec == nil {
		return New(defaultName, g.tun), time.Time{}
	}

	p := g.restore(rec, defaultName)

	now := TimeNow()
	gap := now.Sub(rec.LastUpdate).Seconds()
	if gap < 0 {
		gap = 0
	}
	if gap > g.tun.MaxCatchupSeconds {
		gap = g.tun.MaxCatchupSeconds
	}
	if p.IsAlive {
		p.Stats.Tick(gap*g.tun.TimeScale, p.State, hour, g.tun)
		p.runGuards(now)
		// The death guard's persist hook is not installed yet during
		// load, so write a death discovered here back ourselves: the
		// record must never stay alive once the pet is not.
		if !p.IsAlive {
			if err := g.Save(p); err != nil {
				log.Printf("Error saving pet discovered dead on load: %v", err)
			}
		}
	}
	return p, rec.LastUpdate
}

// restore populates a pet from a record, substituting documented
// defaults for malformed fields.
func (g *Gateway) restore(rec *Record, defaultName string) *Pet {
	name := rec.Name
	if name == "" {
		name = defaultName
	}

	state, ok := ParseActivityState(rec.State)
	if !ok {
		state = StateIdle
	}
	stage, _ := ParseLifeStage(rec.LifeStage)

	birth := rec.BirthTime
	if birth.IsZero() {
		birth = TimeNow()
	}

	p := &Pet{
		ID:      rec.ID,
		Name:    name,
		IsAlive: rec.IsAlive,
		State:   state,
		Clock:   LifecycleClock{BirthTime: birth, Stage: stage},
		Stats: Stats{
			Fullness:     clamp(rec.Fullness),
			Happiness:    clamp(rec.Happiness),
			Energy:       clamp(rec.Energy),
			Health:       clamp(rec.Health),
			Discipline:   clamp(rec.Discipline),
			Cleanliness:  clamp(rec.Cleanliness),
			CareMistakes: rec.CareMistakes,
			Coins:        rec.Coins,
		},
		tun: g.tun,
	}
	if p.ID == "" {
		p.ID = "pet-1"
	}
	if p.Stats.CareMistakes < 0 {
		p.Stats.CareMistakes = 0
	}
	if p.Stats.Coins < 0 {
		p.Stats.Coins = 0
	}
	if !p.IsAlive {
		p.State = StateDead
	}
	p.prevFullness = p.Stats.Fullness
	p.prevHappiness = p.Stats.Happiness
	p.prevEnergy = p.Stats.Energy
	return p
}
