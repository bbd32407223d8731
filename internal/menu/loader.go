package menu

import (
	"context"
	"strconv"

	"foodcart/internal/domain"
	"foodcart/internal/view"

	"go.uber.org/zap"
)

type MenuAPI interface {
	FetchMenu(ctx context.Context) ([]domain.MenuItem, error)
}

type CartReader interface {
	Line(id string) (domain.CartLine, bool)
}

// Loader fetches the menu once per session and renders it merged with the
// current cart state. Several user actions can ask for the menu; only the
// first actually hits the backend.
type Loader struct {
	api      MenuAPI
	cart     CartReader
	renderer view.Renderer
	logger   *zap.Logger
	loaded   bool
	items    []domain.MenuItem
}

func NewLoader(api MenuAPI, cart CartReader, renderer view.Renderer, logger *zap.Logger) *Loader {
	return &Loader{
		api:      api,
		cart:     cart,
		renderer: renderer,
		logger:   logger,
	}
}

// FetchMenu loads and renders the menu. Repeat invocations within the same
// session are silent no-ops; a failed first attempt surfaces an error and
// still arms the guard, leaving the table empty rather than half-rendered.
func (l *Loader) FetchMenu(ctx context.Context) {
	if l.loaded {
		return
	}
	l.loaded = true

	// Clearing up front keeps a re-entrant call from ever doubling rows,
	// even if the guard were bypassed.
	l.renderer.ClearMenu()

	items, err := l.api.FetchMenu(ctx)
	if err != nil {
		l.logger.Warn("menu fetch failed", zap.Error(err))
		l.renderer.SetError(err.Error())
		return
	}
	l.renderer.ClearError()
	l.items = items

	if len(items) == 0 {
		l.renderer.ShowMenuPlaceholder()
		return
	}

	l.renderer.ReplaceMenuRows(l.buildRows(items))
}

// Loaded reports whether the one-shot guard has fired.
func (l *Loader) Loaded() bool {
	return l.loaded
}

// Item looks up a rendered menu row. Add-to-cart captures name and price
// from here rather than re-fetching.
func (l *Loader) Item(id int) (domain.MenuItem, bool) {
	for _, item := range l.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func (l *Loader) buildRows(items []domain.MenuItem) []view.MenuRow {
	rows := make([]view.MenuRow, 0, len(items))
	for _, item := range items {
		row := view.MenuRow{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
		}
		if line, ok := l.cart.Line(strconv.Itoa(item.ID)); ok {
			row.Control = view.ControlFor(&line)
		}
		rows = append(rows, row)
	}
	return rows
}
