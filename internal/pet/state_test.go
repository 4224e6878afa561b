package pet

import "testing"

func TestParseActivityState(t *testing.T) {
	tests := []struct {
		input    string
		want     ActivityState
		wantOK   bool
	}{
		{"IDLE", StateIdle, true},
		{"sleeping", StateSleeping, true},
		{"  Eating  ", StateEating, true},
		{"SICK", StateSick, true},
		{"DEAD", StateDead, true},
		{"EGG", StateEgg, true},
		{"ELITE-CHILD", StateIdle, false},
		{"POWER-TEEN", StateIdle, false},
		{"", StateIdle, false},
		{"nonsense", StateIdle, false},
	}
	for _, tt := range tests {
		got, ok := ParseActivityState(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseActivityState(%q) = (%v, %v), want (%v, %v)",
				tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseLifeStage(t *testing.T) {
	tests := []struct {
		input  string
		want   LifeStage
		wantOK bool
	}{
		{"EGG", StageEgg, true},
		{"baby", StageBaby, true},
		{"TEEN_GOOD", StageTeenGood, true},
		{"ADULT_BAD", StageAdultBad, true},
		{"MEGA", StageEgg, false},
		{"", StageEgg, false},
	}
	for _, tt := range tests {
		got, ok := ParseLifeStage(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLifeStage(%q) = (%v, %v), want (%v, %v)",
				tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStateStringRoundTrip(t *testing.T) {
	states := []ActivityState{StateEgg, StateIdle, StateSleeping, StateEating, StatePlaying, StateTraining, StateSick, StateDead}
	for _, s := range states {
		got, ok := ParseActivityState(s.String())
		if !ok || got != s {
			t.Errorf("ParseActivityState(%q) = (%v, %v), want (%v, true)", s.String(), got, ok, s)
		}
	}
}

func TestIsTimedAction(t *testing.T) {
	timed := map[ActivityState]bool{
		StateEating:   true,
		StatePlaying:  true,
		StateTraining: true,
		StateIdle:     false,
		StateSleeping: false,
		StateSick:     false,
		StateDead:     false,
		StateEgg:      false,
	}
	for s, want := range timed {
		if got := s.IsTimedAction(); got != want {
			t.Errorf("%v.IsTimedAction() = %v, want %v", s, got, want)
		}
	}
}

func TestLifeStageIsAdult(t *testing.T) {
	if !StageAdultGood.IsAdult() || !StageAdultBad.IsAdult() {
		t.Error("adult stages should report IsAdult")
	}
	if StageTeenGood.IsAdult() || StageEgg.IsAdult() {
		t.Error("non-adult stages should not report IsAdult")
	}
}
