package catch

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pipet/internal/pet"
)

const (
	tickInterval   = 120 * time.Millisecond
	minVisibleRows = 8
	totalDrops     = 10
	maxMisses      = 3
)

// randIntn is a hook for deterministic tests.
var randIntn = rand.Intn

// Food is one falling snack.
type Food struct {
	Emoji string
	X     int
	Y     int
}

var foodEmojis = []string{"🍎", "🍪", "🍣", "🍔", "🍦"}

// getCatchEmoji returns the pet's emoji under the basket based on how
// the round is going.
func getCatchEmoji(p *pet.Pet, misses, score int) string {
	if misses >= maxMisses-1 {
		return "🙀"
	}
	if score >= totalDrops/2 {
		return "😻"
	}
	if p.Stats.Energy < 30 {
		return "😴"
	}
	return "😸"
}

// Model is the Bubble Tea model for the catch-the-food minigame.
type Model struct {
	Pet        *pet.Pet
	TermWidth  int
	TermHeight int
	BasketX    int
	Food       Food
	Drops      int
	Score      int
	Misses     int
	Done       bool
	Frame      int
}

type fallTickMsg time.Time

// Run plays one round, then pays out coins and happiness and saves.
func Run(p *pet.Pet, gateway *pet.Gateway) {
	if !p.IsAlive || p.GetState() == pet.StateEgg {
		fmt.Println("Nobody here wants to play right now.")
		return
	}

	model := Model{Pet: p}
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		log.Printf("minigame error: %v", err)
		os.Exit(1)
	}

	m, ok := final.(Model)
	if !ok {
		return
	}
	payout(p, gateway, m.Score)
}

func payout(p *pet.Pet, gateway *pet.Gateway, score int) {
	if score <= 0 {
		fmt.Printf("%s caught nothing this time.\n", p.Name)
		return
	}
	p.AddCoins(score)
	p.ApplyExternalReward(pet.StatHappiness, float64(score)*2)
	if err := gateway.Save(p); err != nil {
		log.Printf("save after minigame: %v", err)
	}
	fmt.Printf("%s caught %d snacks and earned %d coins!\n", p.Name, score, score)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return fallTickMsg(t)
	})
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), tea.EnterAltScreen)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Done {
			return m, tea.Quit
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Done = true
			return m, tea.Quit
		case "left", "h":
			if m.BasketX > 0 {
				m.BasketX -= 2
			}
		case "right", "l":
			if m.BasketX < m.maxX() {
				m.BasketX += 2
			}
		}
		m.clampPositions()
		return m, nil

	case tea.WindowSizeMsg:
		m.TermWidth = msg.Width
		m.TermHeight = msg.Height
		m.clampPositions()
		if m.Food.Emoji == "" {
			m.spawnFood()
		}
		return m, nil

	case fallTickMsg:
		m.Frame++

		if m.TermWidth == 0 || m.TermHeight == 0 || m.Done {
			return m, tick()
		}

		// Food falls one row every other frame
		if m.Frame%2 == 0 {
			m.Food.Y++
		}

		floor := m.visibleRows() - 1
		if m.Food.Y >= floor {
			if absInt(m.Food.X-m.BasketX) <= 1 {
				m.Score++
			} else {
				m.Misses++
			}
			m.Drops++
			if m.Drops >= totalDrops || m.Misses >= maxMisses {
				m.Done = true
				return m, nil
			}
			m.spawnFood()
		}

		return m, tick()
	}

	return m, nil
}

func (m *Model) spawnFood() {
	maxX := m.maxX()
	if maxX < 1 {
		maxX = 1
	}
	m.Food = Food{
		Emoji: foodEmojis[randIntn(len(foodEmojis))],
		X:     randIntn(maxX),
		Y:     0,
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.TermWidth == 0 || m.TermHeight == 0 {
		return "Initializing..."
	}

	if m.Done {
		return fmt.Sprintf(
			"\n  Round over!\n\n  Caught: %d / %d\n  Missed: %d\n\n  Press any key to exit\n",
			m.Score, m.Drops, m.Misses,
		)
	}

	rows := m.visibleRows()
	grid := make([][]rune, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]rune, m.TermWidth)
		for x := 0; x < m.TermWidth; x++ {
			grid[y][x] = ' '
		}
	}

	placeEmoji(grid, m.Food.X, m.Food.Y, m.Food.Emoji, m.TermWidth)
	placeEmoji(grid, m.BasketX, rows-1, getCatchEmoji(m.Pet, m.Misses, m.Score), m.TermWidth)

	var result strings.Builder
	for y := 0; y < rows; y++ {
		result.WriteString(string(grid[y]))
		result.WriteRune('\n')
	}
	result.WriteString(fmt.Sprintf("\n  Caught %d · Missed %d/%d   ←/→ move · q quit", m.Score, m.Misses, maxMisses))

	return result.String()
}

func placeEmoji(grid [][]rune, x, y int, emoji string, width int) {
	if y < 0 || y >= len(grid) || x < 0 {
		return
	}
	for i, r := range []rune(emoji) {
		if x+i < width {
			grid[y][x+i] = r
		}
	}
}

func (m *Model) clampPositions() {
	if m.BasketX < 0 {
		m.BasketX = 0
	}
	if m.BasketX > m.maxX() {
		m.BasketX = m.maxX()
	}
	if m.Food.X > m.maxX() {
		m.Food.X = m.maxX()
	}
}

func (m Model) visibleRows() int {
	if m.TermHeight <= 0 {
		return 0
	}
	rows := m.TermHeight - 3 // leave space for the status line
	if rows < minVisibleRows {
		rows = minVisibleRows
	}
	return rows
}

func (m Model) maxX() int {
	if m.TermWidth <= 2 {
		return 0
	}
	return m.TermWidth - 2
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
