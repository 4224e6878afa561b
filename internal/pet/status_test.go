package pet

import (
	"strings"
	"testing"
)

func TestGetStatus(t *testing.T) {
	tun := DefaultTunables()

	tests := []struct {
		name  string
		setup func(*Pet)
		want  string
	}{
		{"egg shows only the shell", func(p *Pet) { p.State = StateEgg }, StatusEmojiEgg},
		{"dead shows only the skull", func(p *Pet) {
			p.State = StateDead
			p.IsAlive = false
		}, StatusEmojiDead},
		{"healthy idle", func(p *Pet) {}, StatusEmojiHappy},
		{"sleeping", func(p *Pet) { p.State = StateSleeping }, StatusEmojiSleeping},
		{"hungry idle", func(p *Pet) { p.Stats.Fullness = 5 }, StatusEmojiHappy + StatusEmojiHungry},
		{"tired idle", func(p *Pet) { p.Stats.Energy = 5 }, StatusEmojiHappy + StatusEmojiTired},
		{"sad idle", func(p *Pet) { p.Stats.Happiness = 5 }, StatusEmojiHappy + StatusEmojiSad},
		{"dirty idle", func(p *Pet) { p.Stats.Cleanliness = 5 }, StatusEmojiHappy + StatusEmojiDirty},
		{"hungrier than tired", func(p *Pet) {
			p.Stats.Energy = 10
			p.Stats.Fullness = 5
		}, StatusEmojiHappy + StatusEmojiHungry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("Mochi", &tun)
			p.State = StateIdle
			p.Clock.Stage = StageChild
			tt.setup(p)
			if got := GetStatus(p); got != tt.want {
				t.Errorf("GetStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetStatusWithLabel(t *testing.T) {
	tun := DefaultTunables()
	p := New("Mochi", &tun)

	if got := GetStatusWithLabel(p); !strings.Contains(got, "Incubating") {
		t.Errorf("egg label = %q, want Incubating", got)
	}

	p.State = StateSleeping
	if got := GetStatusWithLabel(p); !strings.Contains(got, "Sleeping") {
		t.Errorf("sleeping label = %q, want Sleeping", got)
	}

	p.State = StateIdle
	if got := GetStatusWithLabel(p); !strings.Contains(got, "Happy") {
		t.Errorf("healthy idle label = %q, want Happy", got)
	}

	p.Stats.Fullness = 5
	if got := GetStatusWithLabel(p); !strings.Contains(got, "Needs care") {
		t.Errorf("needy idle label = %q, want Needs care", got)
	}
}
