// Package garden implements the garden side-activity: four persistent
// beds where seeds from the inventory grow into harvestable food over
// real time.
package garden

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pipet/internal/pet"
	"pipet/internal/store"
)

const (
	growDuration    = 2 * time.Hour
	thirstAfter     = time.Hour
	harvestYield    = 2
	harvestCheer    = 5
	refreshInterval = time.Second

	seedItemID    = "seed"
	harvestItemID = "berry"
	berryBush     = "Berry Bush"
)

// Model is the Bubble Tea model for the garden screen.
type Model struct {
	Pet       *pet.Pet
	DB        *store.Store
	Plots     []store.Plot
	Cursor    int
	Status    string
	Harvested int
	Done      bool
}

type refreshMsg time.Time

// Run opens the garden, then saves any harvest cheer applied to the pet.
func Run(p *pet.Pet, gateway *pet.Gateway, db *store.Store) {
	if !p.IsAlive || p.GetState() == pet.StateEgg {
		fmt.Println("Nobody here can tend the garden right now.")
		return
	}

	plots, err := db.GardenPlots()
	if err != nil {
		log.Printf("garden error: %v", err)
		os.Exit(1)
	}

	model := Model{Pet: p, DB: db, Plots: plots}
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		log.Printf("garden error: %v", err)
		os.Exit(1)
	}

	m, ok := final.(Model)
	if !ok || m.Harvested == 0 {
		return
	}
	if err := gateway.Save(p); err != nil {
		log.Printf("save after gardening: %v", err)
	}
	fmt.Printf("%s harvested %d berries!\n", p.Name, m.Harvested*harvestYield)
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(refresh(), tea.EnterAltScreen)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Done = true
			return m, tea.Quit
		case "left", "h", "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "down", "j":
			if m.Cursor < len(m.Plots)-1 {
				m.Cursor++
			}
		case "enter", " ":
			m.tendPlot()
		}
		return m, nil

	case refreshMsg:
		return m, refresh()
	}

	return m, nil
}

// tendPlot performs the one sensible action for the selected bed:
// plant when empty, harvest when grown, water otherwise.
func (m *Model) tendPlot() {
	if m.Cursor < 0 || m.Cursor >= len(m.Plots) {
		return
	}
	plot := m.Plots[m.Cursor]
	now := pet.TimeNow()

	switch {
	case plot.Plant == "":
		removed, err := m.DB.RemoveItem(seedItemID)
		if err != nil {
			log.Printf("plant: %v", err)
			return
		}
		if !removed {
			m.Status = "No seeds left. The shop sells them."
			return
		}
		if err := m.DB.PlantSeed(plot.ID, berryBush, now); err != nil {
			log.Printf("plant: %v", err)
			return
		}
		m.Status = fmt.Sprintf("Planted a %s in bed %d.", berryBush, plot.ID)

	case grown(plot, now):
		if err := m.DB.AddItem(harvestItemID, harvestYield); err != nil {
			log.Printf("harvest: %v", err)
			return
		}
		if err := m.DB.ClearPlot(plot.ID); err != nil {
			log.Printf("harvest: %v", err)
			return
		}
		m.Harvested++
		m.Pet.ApplyExternalReward(pet.StatHappiness, harvestCheer)
		m.Status = fmt.Sprintf("Harvested %d berries from bed %d!", harvestYield, plot.ID)

	default:
		if err := m.DB.WaterPlot(plot.ID, now); err != nil {
			log.Printf("water: %v", err)
			return
		}
		m.Status = fmt.Sprintf("Watered bed %d.", plot.ID)
	}

	m.reload()
}

func (m *Model) reload() {
	plots, err := m.DB.GardenPlots()
	if err != nil {
		log.Printf("garden reload: %v", err)
		return
	}
	m.Plots = plots
}

func grown(plot store.Plot, now time.Time) bool {
	return plot.Plant != "" && now.Sub(plot.PlantedAt) >= growDuration
}

func thirsty(plot store.Plot, now time.Time) bool {
	return plot.Plant != "" && now.Sub(plot.WateredAt) >= thirstAfter
}

// growthPercent reports progress toward harvest, clamped to [0,100].
func growthPercent(plot store.Plot, now time.Time) int {
	if plot.Plant == "" {
		return 0
	}
	pct := int(now.Sub(plot.PlantedAt) * 100 / growDuration)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

func plotEmoji(plot store.Plot, now time.Time) string {
	switch {
	case plot.Plant == "":
		return "🟫"
	case grown(plot, now):
		return "🍓"
	case growthPercent(plot, now) >= 50:
		return "🌿"
	default:
		return "🌱"
	}
}

// View implements tea.Model
func (m Model) View() string {
	now := pet.TimeNow()
	var b strings.Builder
	b.WriteString("\n  🏡 Garden\n\n")

	for i, plot := range m.Plots {
		marker := "  "
		if i == m.Cursor {
			marker = "▶ "
		}
		line := fmt.Sprintf("%s%s bed %d  ", marker, plotEmoji(plot, now), plot.ID)
		switch {
		case plot.Plant == "":
			line += "empty"
		case grown(plot, now):
			line += fmt.Sprintf("%s · ready to harvest!", plot.Plant)
		default:
			line += fmt.Sprintf("%s · %d%% grown", plot.Plant, growthPercent(plot, now))
			if thirsty(plot, now) {
				line += " · needs water!"
			}
		}
		b.WriteString("  " + line + "\n")
	}

	if m.Status != "" {
		b.WriteString("\n  " + m.Status + "\n")
	}
	b.WriteString("\n  ←/→ select · enter tend · q quit\n")
	return b.String()
}
