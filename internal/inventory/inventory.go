// internal/inventory/inventory.go
package inventory

// Item is anything that fits in an inventory slot.
type Item interface {
	Name() string
}

// Tool is a named item with no behaviour of its own.
type Tool string

func (t Tool) Name() string { return string(t) }

// Инструменты стартового набора
const (
	Bucket     Tool = "Bucket"
	Hoe        Tool = "Hoe"
	Jackhammer Tool = "Jackhammer"
	HiveHammer Tool = "Hive Hammer"
	Pole       Tool = "Pole"
)

// DefaultTools is the starting hotbar, in slot order.
var DefaultTools = []Item{Bucket, Hoe, Jackhammer, HiveHammer, Pole}

// Inventory holds the farmer's coins, food and a fixed number of item slots.
type Inventory struct {
	coins    int
	food     int
	items    []Item
	selected int
}

func New(size, coins, food int) *Inventory {
	if size < 1 {
		size = 1
	}
	inv := &Inventory{items: make([]Item, size)}
	inv.AddCoins(coins)
	inv.AddFood(food)
	return inv
}

func (i *Inventory) Coins() int { return i.coins }

func (i *Inventory) Food() int { return i.food }

// AddCoins applies a delta; the balance never drops below zero.
func (i *Inventory) AddCoins(delta int) {
	i.coins = max(0, i.coins+delta)
}

// AddFood applies a delta; the balance never drops below zero.
func (i *Inventory) AddFood(delta int) {
	i.food = max(0, i.food+delta)
}

func (i *Inventory) Size() int { return len(i.items) }

// SetItem places item in slot. Out of range slots are ignored.
func (i *Inventory) SetItem(slot int, item Item) {
	if slot < 0 || slot >= len(i.items) {
		return
	}
	i.items[slot] = item
}

// Item returns the slot content or nil.
func (i *Inventory) Item(slot int) Item {
	if slot < 0 || slot >= len(i.items) {
		return nil
	}
	return i.items[slot]
}

func (i *Inventory) Select(slot int) {
	if slot < 0 || slot >= len(i.items) {
		return
	}
	i.selected = slot
}

func (i *Inventory) SelectedSlot() int { return i.selected }

func (i *Inventory) Holding() Item { return i.items[i.selected] }
