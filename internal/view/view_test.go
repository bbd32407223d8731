package view

import (
	"testing"

	"foodcart/internal/domain"

	"github.com/stretchr/testify/assert"
)

type panelRecorder struct {
	emptyShown bool
	cartShown  bool
}

func (p *panelRecorder) ReplaceMenuRows(rows []MenuRow) {}

func (p *panelRecorder) ShowMenuPlaceholder() {}

func (p *panelRecorder) ClearMenu() {}

func (p *panelRecorder) SetError(message string) {}

func (p *panelRecorder) ClearError() {}

func (p *panelRecorder) UpdateItemControl(id string, c ItemControl) {}

func (p *panelRecorder) ReplaceSidebar(cards []SidebarCard) {}

func (p *panelRecorder) SetTotal(total int) {}

func (p *panelRecorder) ShowEmptyPanel() { p.emptyShown = true }

func (p *panelRecorder) ShowCartPanel() { p.cartShown = true }

func TestSidebarCards_OrderedByID(t *testing.T) {
	cart := domain.Cart{
		"9": {ID: "9", Name: "Fries", Price: 60, Quantity: 3},
		"7": {ID: "7", Name: "Burger", Price: 150, Quantity: 1},
	}

	cards := SidebarCards(cart)

	assert.Len(t, cards, 2)
	assert.Equal(t, "7", cards[0].ID)
	assert.Equal(t, "Burger", cards[0].Name)
	assert.Equal(t, 1, cards[0].Quantity)
	assert.Equal(t, "9", cards[1].ID)
	assert.Equal(t, 3, cards[1].Quantity)
}

func TestSidebarCards_NumericIDOrdering(t *testing.T) {
	cart := domain.Cart{
		"10": {ID: "10", Name: "Thali", Price: 200, Quantity: 1},
		"9":  {ID: "9", Name: "Fries", Price: 60, Quantity: 1},
		"2":  {ID: "2", Name: "Tea", Price: 20, Quantity: 1},
	}

	cards := SidebarCards(cart)

	assert.Len(t, cards, 3)
	assert.Equal(t, "2", cards[0].ID)
	assert.Equal(t, "9", cards[1].ID)
	assert.Equal(t, "10", cards[2].ID)
}

func TestSidebarCards_EmptyCart(t *testing.T) {
	cards := SidebarCards(domain.NewCart())
	assert.Empty(t, cards)
}

func TestControlFor(t *testing.T) {
	assert.Equal(t, ItemControl{}, ControlFor(nil))
	assert.Equal(t, ItemControl{}, ControlFor(&domain.CartLine{Quantity: 0}))
	assert.Equal(t,
		ItemControl{InCart: true, Quantity: 2},
		ControlFor(&domain.CartLine{ID: "7", Quantity: 2}),
	)
}

func TestToggleEmptyState_EmptyCart(t *testing.T) {
	recorder := &panelRecorder{}

	ToggleEmptyState(domain.NewCart(), recorder)

	assert.True(t, recorder.emptyShown)
	assert.False(t, recorder.cartShown)
}

func TestToggleEmptyState_NonEmptyCart(t *testing.T) {
	recorder := &panelRecorder{}
	cart := domain.Cart{"7": {ID: "7", Name: "Burger", Price: 150, Quantity: 1}}

	ToggleEmptyState(cart, recorder)

	assert.True(t, recorder.cartShown)
	assert.False(t, recorder.emptyShown)
}
