package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pipet/internal/config"
	"pipet/internal/pet"
	"pipet/internal/store"
)

type screen int

const (
	screenMain screen = iota
	screenShop
	screenInventory
	screenDead
)

// maxMessages is how many recent messages the log pane keeps.
const maxMessages = 6

var menuItems = []string{
	"Feed",
	"Play",
	"Train",
	"Sleep",
	"Heal",
	"Clean",
	"Shop",
	"Items",
	"Quit",
}

// Model is the bubbletea model hosting one pet session.
type Model struct {
	cfg      *config.Config
	pet      *pet.Pet
	gateway  *pet.Gateway
	notifier *pet.Notifier
	db       *store.Store

	cursor     int
	screen     screen
	shopCursor int
	invCursor  int
	inventory  []store.InventoryEntry

	messages []pet.Message
	anim     Animation
	lastTick time.Time
	width    int
	height   int
}

type tickMsg time.Time
type animTickMsg time.Time

// NewModel loads (or creates) the pet and wires it to the store.
func NewModel(cfg *config.Config, db *store.Store) *Model {
	now := pet.TimeNow()
	gateway := pet.NewGateway(db, &cfg.Simulation)
	p, lastUpdate := gateway.Load(cfg.PetName, now.Local().Hour())

	m := &Model{
		cfg:      cfg,
		pet:      p,
		gateway:  gateway,
		notifier: pet.NewNotifier(db, &cfg.Simulation),
		db:       db,
		lastTick: now,
	}
	p.SetMessageHandler(m.pushMessage)
	p.SetSaver(func(pp *pet.Pet) {
		if err := gateway.Save(pp); err != nil {
			log.Printf("save failed: %v", err)
		}
	})
	if !p.IsAlive {
		m.screen = screenDead
	} else if !lastUpdate.IsZero() {
		for _, n := range m.notifier.MissedWhileAway(p, lastUpdate, now) {
			m.pushMessage(pet.Message{Text: n.Text, Kind: n.Kind})
		}
	}
	return m
}

func (m *Model) pushMessage(msg pet.Message) {
	m.messages = append(m.messages, msg)
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func animTick() tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := pet.TimeNow()
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		if m.pet.IsAlive {
			m.pet.Update(dt, now.Local().Hour())
			for _, n := range m.notifier.CheckAndNotify(m.pet, now) {
				m.pushMessage(pet.Message{Text: n.Text, Kind: n.Kind})
			}
		}
		if !m.pet.IsAlive && m.screen != screenDead {
			m.screen = screenDead
		}
		return m, tick()

	case animTickMsg:
		if m.anim.Type == AnimNone {
			return m, nil
		}
		m.anim.Frame++
		if IsAnimationComplete(m.anim) {
			m.anim = Animation{}
			return m, nil
		}
		return m, animTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenShop:
		return m.handleShopKey(msg)
	case screenInventory:
		return m.handleInventoryKey(msg)
	case screenDead:
		return m.handleDeadKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.selectMenuItem()
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if err := m.gateway.Save(m.pet); err != nil {
		log.Printf("save on quit failed: %v", err)
	}
	return m, tea.Quit
}

func (m *Model) selectMenuItem() (tea.Model, tea.Cmd) {
	switch menuItems[m.cursor] {
	case "Feed":
		if m.pet.Feed() {
			return m.startAnimation(AnimFeed)
		}
		m.pushMessage(pet.Message{Text: fmt.Sprintf("%s is busy.", m.pet.Name), Kind: pet.MsgInfo})
	case "Play":
		if m.pet.Play() {
			return m.startAnimation(AnimPlay)
		}
		m.pushMessage(pet.Message{Text: fmt.Sprintf("%s is busy.", m.pet.Name), Kind: pet.MsgInfo})
	case "Train":
		if m.pet.Train() {
			return m.startAnimation(AnimTrain)
		}
		m.pushMessage(pet.Message{Text: fmt.Sprintf("%s can't train right now.", m.pet.Name), Kind: pet.MsgInfo})
	case "Sleep":
		if m.pet.ToggleSleep() && m.pet.GetState() == pet.StateSleeping {
			return m.startAnimation(AnimSleep)
		}
	case "Heal":
		if m.pet.Heal() {
			return m.startAnimation(AnimHeal)
		}
	case "Clean":
		if m.pet.Clean() {
			return m.startAnimation(AnimClean)
		}
	case "Shop":
		m.screen = screenShop
		m.shopCursor = 0
	case "Items":
		m.refreshInventory()
		m.screen = screenInventory
		m.invCursor = 0
	case "Quit":
		return m.quit()
	}
	return m, nil
}

func (m *Model) startAnimation(t AnimationType) (tea.Model, tea.Cmd) {
	m.anim = Animation{Type: t, StartTime: pet.TimeNow()}
	return m, animTick()
}

func (m *Model) refreshInventory() {
	inv, err := m.db.Inventory()
	if err != nil {
		log.Printf("load inventory: %v", err)
		inv = nil
	}
	m.inventory = inv
}

func (m *Model) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = screenMain
	case "up", "k":
		if m.shopCursor > 0 {
			m.shopCursor--
		}
	case "down", "j":
		if m.shopCursor < len(store.Catalog)-1 {
			m.shopCursor++
		}
	case "enter", " ":
		item := store.Catalog[m.shopCursor]
		if m.pet.Stats.Coins < item.Price {
			m.pushMessage(pet.Message{Text: "Not enough coins.", Kind: pet.MsgInfo})
			return m, nil
		}
		if err := m.db.AddItem(item.ID, 1); err != nil {
			log.Printf("buy %s: %v", item.ID, err)
			return m, nil
		}
		m.pet.AddCoins(-item.Price)
		m.pushMessage(pet.Message{Text: fmt.Sprintf("Bought %s for %d coins.", item.Name, item.Price), Kind: pet.MsgInfo})
	case "ctrl+c":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handleInventoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = screenMain
	case "up", "k":
		if m.invCursor > 0 {
			m.invCursor--
		}
	case "down", "j":
		if m.invCursor < len(m.inventory)-1 {
			m.invCursor++
		}
	case "enter", " ":
		if len(m.inventory) == 0 {
			return m, nil
		}
		entry := m.inventory[m.invCursor]
		stat, value, ok := store.ItemEffect(entry.Item.ID)
		if !ok {
			return m, nil
		}
		removed, err := m.db.RemoveItem(entry.Item.ID)
		if err != nil {
			log.Printf("use %s: %v", entry.Item.ID, err)
			return m, nil
		}
		if !removed {
			return m, nil
		}
		m.pet.ApplyExternalReward(stat, value)
		m.pushMessage(pet.Message{Text: fmt.Sprintf("%s used %s.", m.pet.Name, entry.Item.Name), Kind: pet.MsgInfo})
		m.refreshInventory()
		if m.invCursor >= len(m.inventory) && m.invCursor > 0 {
			m.invCursor--
		}
	case "ctrl+c":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handleDeadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		fresh := pet.New(m.cfg.PetName, &m.cfg.Simulation)
		fresh.SetMessageHandler(m.pushMessage)
		fresh.SetSaver(func(pp *pet.Pet) {
			if err := m.gateway.Save(pp); err != nil {
				log.Printf("save failed: %v", err)
			}
		})
		m.pet = fresh
		m.messages = nil
		m.screen = screenMain
		m.cursor = 0
		if err := m.gateway.Save(fresh); err != nil {
			log.Printf("save new pet: %v", err)
		}
		m.pushMessage(pet.Message{Text: fmt.Sprintf("A new egg arrived for %s!", fresh.Name), Kind: pet.MsgLifecycle})
	case "n", "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	return m, nil
}
