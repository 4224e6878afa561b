package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pipet/internal/pet"
)

// StatsModel is a read-only snapshot view for the -stats flag. It loads
// the saved record, prints one box, and exits on any key.
type StatsModel struct {
	pet *pet.Pet
}

func NewStatsModel(p *pet.Pet) StatsModel {
	return StatsModel{pet: p}
}

func (m StatsModel) Init() tea.Cmd {
	return nil
}

func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m StatsModel) View() string {
	p := m.pet
	var b strings.Builder
	b.WriteString("╭──────────────────────────────╮\n")
	b.WriteString(fmt.Sprintf("│ %-28s │\n", p.Name+" · "+p.GetLifeStage().DisplayName()))
	b.WriteString("├──────────────────────────────┤\n")
	b.WriteString(statRow("Fullness", p.Stats.Fullness))
	b.WriteString(statRow("Happiness", p.Stats.Happiness))
	b.WriteString(statRow("Energy", p.Stats.Energy))
	b.WriteString(statRow("Health", p.Stats.Health))
	b.WriteString(statRow("Discipline", p.Stats.Discipline))
	b.WriteString(statRow("Cleanliness", p.Stats.Cleanliness))
	b.WriteString("├──────────────────────────────┤\n")
	b.WriteString(fmt.Sprintf("│ State: %-21s │\n", p.GetState()))
	b.WriteString(fmt.Sprintf("│ Coins: %-21d │\n", p.Stats.Coins))
	b.WriteString("╰──────────────────────────────╯\n")
	b.WriteString("press any key to exit\n")
	return b.String()
}

func statRow(label string, value float64) string {
	return fmt.Sprintf("│ %-12s %15.1f │\n", label, value)
}
