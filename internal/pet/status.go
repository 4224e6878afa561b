package pet

// Status emojis
const (
	StatusEmojiEgg      = "🥚"
	StatusEmojiHappy    = "😸"
	StatusEmojiEating   = "😋"
	StatusEmojiPlaying  = "😻"
	StatusEmojiTraining = "🎓"
	StatusEmojiSleeping = "😴"
	StatusEmojiSick     = "🤢"
	StatusEmojiDead     = "💀"
	StatusEmojiHungry   = "🙀"
	StatusEmojiTired    = "😾"
	StatusEmojiSad      = "😿"
	StatusEmojiDirty    = "🛁"
)

// GetStatus returns the activity emoji plus the most pressing need, if
// any stat is critically low.
func GetStatus(p *Pet) string {
	activity := activityEmoji(p.State)
	if p.State == StateDead || p.State == StateEgg {
		return activity
	}

	tun := p.tun
	lowest := p.Stats.Health
	feeling := StatusEmojiSick
	if p.Stats.Energy < lowest {
		lowest = p.Stats.Energy
		feeling = StatusEmojiTired
	}
	if p.Stats.Fullness < lowest {
		lowest = p.Stats.Fullness
		feeling = StatusEmojiHungry
	}
	if p.Stats.Happiness < lowest {
		lowest = p.Stats.Happiness
		feeling = StatusEmojiSad
	}
	if p.Stats.Cleanliness < lowest {
		lowest = p.Stats.Cleanliness
		feeling = StatusEmojiDirty
	}

	if lowest < tun.AlertHealth {
		return activity + feeling
	}
	return activity
}

func activityEmoji(s ActivityState) string {
	switch s {
	case StateEgg:
		return StatusEmojiEgg
	case StateEating:
		return StatusEmojiEating
	case StatePlaying:
		return StatusEmojiPlaying
	case StateTraining:
		return StatusEmojiTraining
	case StateSleeping:
		return StatusEmojiSleeping
	case StateSick:
		return StatusEmojiSick
	case StateDead:
		return StatusEmojiDead
	default:
		return StatusEmojiHappy
	}
}

// GetStatusWithLabel returns status with a text label for the UI.
func GetStatusWithLabel(p *Pet) string {
	status := GetStatus(p)
	switch p.State {
	case StateEgg:
		return status + " Incubating"
	case StateEating:
		return status + " Eating"
	case StatePlaying:
		return status + " Playing"
	case StateTraining:
		return status + " Training"
	case StateSleeping:
		return status + " Sleeping"
	case StateSick:
		return status + " Sick"
	case StateDead:
		return status + " Dead"
	default:
		if len(status) > len(StatusEmojiHappy) {
			return status + " Needs care"
		}
		return status + " Happy"
	}
}
