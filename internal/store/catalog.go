package store

import (
	"fmt"

	"pipet/internal/pet"
)

// Item is a purchasable consumable. Each item targets one stat; feeding
// it to the pet applies the effect through the clamp invariant.
type Item struct {
	ID    string
	Name  string
	Price int
	Stat  pet.StatName
	Value float64
}

// Catalog is the fixed shop stock.
var Catalog = []Item{
	{ID: "cookie", Name: "Cookie", Price: 5, Stat: pet.StatFullness, Value: 10},
	{ID: "apple", Name: "Apple", Price: 5, Stat: pet.StatFullness, Value: 15},
	{ID: "burger", Name: "Burger", Price: 15, Stat: pet.StatFullness, Value: 35},
	{ID: "sushi", Name: "Sushi", Price: 18, Stat: pet.StatHealth, Value: 10},
	{ID: "ice_cream", Name: "Ice Cream", Price: 10, Stat: pet.StatHappiness, Value: 20},
	{ID: "candy", Name: "Candy", Price: 3, Stat: pet.StatHappiness, Value: 10},
	{ID: "energy_drink", Name: "Energy Drink", Price: 15, Stat: pet.StatEnergy, Value: 30},
	{ID: "tea", Name: "Tea", Price: 5, Stat: pet.StatEnergy, Value: 10},
	{ID: "soap", Name: "Soap Bar", Price: 8, Stat: pet.StatCleanliness, Value: 40},
	{ID: "berry", Name: "Berry", Price: 6, Stat: pet.StatFullness, Value: 12},
	// Seeds are for the garden, not the pet, so they carry no stat value.
	{ID: "seed", Name: "Berry Seed", Price: 4},
}

// FindItem looks an item up by id.
func FindItem(id string) (Item, bool) {
	for _, item := range Catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// ItemEffect returns the stat delta a consumed item produces. Items with
// no stat value (seeds) are not consumable and report false.
func ItemEffect(id string) (pet.StatName, float64, bool) {
	item, ok := FindItem(id)
	if !ok || item.Value <= 0 {
		return 0, 0, false
	}
	return item.Stat, item.Value, true
}

// InventoryEntry is one owned item stack.
type InventoryEntry struct {
	Item     Item
	Quantity int
}

// AddItem credits quantity of an item to the inventory.
func (s *Store) AddItem(id string, quantity int) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("add item: store is nil")
	}
	if _, ok := FindItem(id); !ok {
		return fmt.Errorf("add item: unknown item %q", id)
	}
	query := `
	INSERT INTO inventory (item_id, quantity) VALUES (?, ?)
	ON CONFLICT(item_id) DO UPDATE SET quantity = quantity + excluded.quantity`
	if _, err := s.db.Exec(query, id, quantity); err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	return nil
}

// RemoveItem consumes one unit of an item. It reports false when none
// are owned.
func (s *Store) RemoveItem(id string) (bool, error) {
	if s == nil || s.db == nil {
		return false, fmt.Errorf("remove item: store is nil")
	}
	result, err := s.db.Exec(
		`UPDATE inventory SET quantity = quantity - 1 WHERE item_id = ? AND quantity > 0`, id)
	if err != nil {
		return false, fmt.Errorf("remove item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove item: rows affected: %w", err)
	}
	return affected > 0, nil
}

// Inventory returns the owned item stacks in catalog order.
func (s *Store) Inventory() ([]InventoryEntry, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("inventory: store is nil")
	}
	rows, err := s.db.Query(`SELECT item_id, quantity FROM inventory WHERE quantity > 0`)
	if err != nil {
		return nil, fmt.Errorf("inventory: query: %w", err)
	}
	defer rows.Close()

	quantities := map[string]int{}
	for rows.Next() {
		var id string
		var qty int
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, fmt.Errorf("inventory: scan: %w", err)
		}
		quantities[id] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventory: rows: %w", err)
	}

	var entries []InventoryEntry
	for _, item := range Catalog {
		if qty, ok := quantities[item.ID]; ok {
			entries = append(entries, InventoryEntry{Item: item, Quantity: qty})
		}
	}
	return entries, nil
}
