package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pipet/internal/pet"
	"pipet/internal/store"
)

type gameStyles struct {
	title    lipgloss.Style
	status   lipgloss.Style
	statName lipgloss.Style
	barFull  lipgloss.Style
	barEmpty lipgloss.Style
	menu     lipgloss.Style
	selected lipgloss.Style
	message  lipgloss.Style
	warning  lipgloss.Style
	missed   lipgloss.Style
	dim      lipgloss.Style
	frame    lipgloss.Style
}

func newGameStyles() gameStyles {
	return gameStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		statName: lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("252")),
		barFull:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		barEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		menu:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		message:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		missed:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Italic(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2),
	}
}

var styles = newGameStyles()

func (m *Model) View() string {
	switch m.screen {
	case screenDead:
		return m.deadView()
	case screenShop:
		return m.shopView()
	case screenInventory:
		return m.inventoryView()
	}
	return m.mainView()
}

func (m *Model) mainView() string {
	var b strings.Builder

	b.WriteString(styles.title.Render(fmt.Sprintf("🐾 %s the %s", m.pet.Name, m.pet.GetLifeStage().DisplayName())))
	b.WriteString("\n\n")

	if m.anim.Type != AnimNone {
		b.WriteString(m.renderAnimation())
	} else {
		b.WriteString(m.renderStatus())
	}
	b.WriteString("\n")

	b.WriteString(m.renderStats())
	b.WriteString("\n")
	b.WriteString(m.renderMessages())
	b.WriteString("\n")
	b.WriteString(m.renderMenu())
	b.WriteString("\n")
	b.WriteString(styles.dim.Render("↑/↓ move · enter select · q quit"))

	return styles.frame.Render(b.String())
}

func (m *Model) renderStatus() string {
	if m.pet.GetState() == pet.StateEgg {
		remaining := m.pet.Clock.HatchCountdown(pet.TimeNow(), m.pet.Tunables())
		return styles.status.Render(fmt.Sprintf("🥚 The egg wobbles... hatches in %s", formatDuration(remaining)))
	}
	line := pet.GetStatus(m.pet)
	coins := styles.dim.Render(fmt.Sprintf("  💰 %d", m.pet.Stats.Coins))
	return styles.status.Render(line) + coins
}

func (m *Model) renderAnimation() string {
	return GetAnimationFrame(m.anim)
}

func (m *Model) renderStats() string {
	rows := []struct {
		label string
		value float64
	}{
		{"Fullness", m.pet.Stats.Fullness},
		{"Happiness", m.pet.Stats.Happiness},
		{"Energy", m.pet.Stats.Energy},
		{"Health", m.pet.Stats.Health},
		{"Discipline", m.pet.Stats.Discipline},
		{"Cleanliness", m.pet.Stats.Cleanliness},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(styles.statName.Render(r.label))
		b.WriteString(renderBar(r.value))
		b.WriteString(fmt.Sprintf(" %3.0f", r.value))
		b.WriteString("\n")
	}
	return b.String()
}

func renderBar(value float64) string {
	const width = 20
	filled := int(value / 100 * width)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return styles.barFull.Render(strings.Repeat("█", filled)) +
		styles.barEmpty.Render(strings.Repeat("░", width-filled))
}

func (m *Model) renderMessages() string {
	if len(m.messages) == 0 {
		return styles.dim.Render("(no news)") + "\n"
	}
	var b strings.Builder
	for _, msg := range m.messages {
		style := styles.message
		switch msg.Kind {
		case pet.MsgWarning:
			style = styles.warning
		case pet.MsgMissed:
			style = styles.missed
		}
		b.WriteString(style.Render("• " + msg.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(styles.selected.Render("▶ " + item))
		} else {
			b.WriteString(styles.menu.Render("  " + item))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) shopView() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("🛒 Shop"))
	b.WriteString("\n")
	b.WriteString(styles.dim.Render(fmt.Sprintf("💰 %d coins", m.pet.Stats.Coins)))
	b.WriteString("\n\n")
	for i, item := range store.Catalog {
		effect := fmt.Sprintf("(+%.0f %s)", item.Value, item.Stat)
		if item.Value <= 0 {
			effect = "(plant it in the garden)"
		}
		line := fmt.Sprintf("%-14s %3d 💰  %s", item.Name, item.Price, effect)
		if i == m.shopCursor {
			b.WriteString(styles.selected.Render("▶ " + line))
		} else {
			b.WriteString(styles.menu.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.dim.Render("enter buy · esc back"))
	return styles.frame.Render(b.String())
}

func (m *Model) inventoryView() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("🎒 Items"))
	b.WriteString("\n\n")
	if len(m.inventory) == 0 {
		b.WriteString(styles.dim.Render("Nothing here. Visit the shop!"))
		b.WriteString("\n")
	}
	for i, entry := range m.inventory {
		line := fmt.Sprintf("%-14s ×%d", entry.Item.Name, entry.Quantity)
		if i == m.invCursor {
			b.WriteString(styles.selected.Render("▶ " + line))
		} else {
			b.WriteString(styles.menu.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.dim.Render("enter use · esc back"))
	return styles.frame.Render(b.String())
}

func (m *Model) deadView() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("🪦 In Memoriam"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s lived as a %s.\n", m.pet.Name, m.pet.GetLifeStage().DisplayName()))
	b.WriteString(fmt.Sprintf("Care mistakes: %d · Coins saved: %d\n\n", m.pet.Stats.CareMistakes, m.pet.Stats.Coins))
	b.WriteString(`
      .-~~~-.
     /  RIP  \
    |         |
    |  🐾     |
~~~~~~~~~~~~~~~~~
`)
	b.WriteString("\n")
	b.WriteString(styles.status.Render("Adopt a new egg? (y/n)"))
	return styles.frame.Render(b.String())
}

func formatDuration(seconds float64) string {
	s := int(seconds)
	if s < 0 {
		s = 0
	}
	h := s / 3600
	mn := (s % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mn)
	}
	if mn > 0 {
		return fmt.Sprintf("%dm %ds", mn, s%60)
	}
	return fmt.Sprintf("%ds", s)
}
