package view

import (
	"sort"
	"strconv"

	"foodcart/internal/domain"
)

// ItemControl is the affordance rendered in an item's control cell: an add
// button when the item is not in the cart, quantity controls when it is.
type ItemControl struct {
	InCart   bool
	Quantity int
}

func ControlFor(line *domain.CartLine) ItemControl {
	if line == nil || line.Quantity == 0 {
		return ItemControl{}
	}
	return ItemControl{InCart: true, Quantity: line.Quantity}
}

// MenuRow is one rendered menu table row.
type MenuRow struct {
	ID      int
	Name    string
	Price   int
	Control ItemControl
}

// SidebarCard is one summary card of the cart sidebar.
type SidebarCard struct {
	ID       string
	Name     string
	Price    int
	Quantity int
}

// SidebarCards projects the cart into the sidebar model. Cards are ordered
// by id, numerically where both ids parse, so repeated renders of the same
// cart are identical and "10" lands after "9".
func SidebarCards(cart domain.Cart) []SidebarCard {
	cards := make([]SidebarCard, 0, len(cart))
	for id, line := range cart {
		cards = append(cards, SidebarCard{
			ID:       id,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}
	sort.Slice(cards, func(i, j int) bool { return idLess(cards[i].ID, cards[j].ID) })
	return cards
}

func idLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

// ToggleEmptyState picks between the empty-cart panel and the cart panel.
// Evaluated when the sidebar is opened, which is the only point the choice
// is user-visible.
func ToggleEmptyState(cart domain.Cart, r Renderer) {
	if cart.IsEmpty() {
		r.ShowEmptyPanel()
		return
	}
	r.ShowCartPanel()
}

// Renderer is the fixed set of render targets the session writes to: the
// menu table body, the error container, per-item control cells keyed by item
// id, the sidebar container, the total label, and the empty/cart panels.
type Renderer interface {
	ReplaceMenuRows(rows []MenuRow)
	ShowMenuPlaceholder()
	ClearMenu()
	SetError(message string)
	ClearError()
	UpdateItemControl(id string, control ItemControl)
	ReplaceSidebar(cards []SidebarCard)
	SetTotal(total int)
	ShowEmptyPanel()
	ShowCartPanel()
}
