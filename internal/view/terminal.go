package view

import (
	"fmt"
	"io"
)

// TerminalRenderer writes each render target to the terminal as it changes.
// It is the storefront's stand-in for a real page: menu rows and sidebar
// cards print wholesale, per-item control updates print as single lines.
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

func (r *TerminalRenderer) ReplaceMenuRows(rows []MenuRow) {
	fmt.Fprintf(r.out, "%-6s %-24s %-10s %s\n", "ID", "ITEM", "PRICE", "CART")
	for _, row := range rows {
		fmt.Fprintf(r.out, "%-6d %-24s Rs.%-7d %s\n", row.ID, row.Name, row.Price, controlLabel(row.Control))
	}
}

func (r *TerminalRenderer) ShowMenuPlaceholder() {
	fmt.Fprintln(r.out, "No items available in the menu.")
}

func (r *TerminalRenderer) ClearMenu() {}

func (r *TerminalRenderer) SetError(message string) {
	fmt.Fprintf(r.out, "Error: %s\n", message)
}

func (r *TerminalRenderer) ClearError() {}

func (r *TerminalRenderer) UpdateItemControl(id string, control ItemControl) {
	fmt.Fprintf(r.out, "item %s: %s\n", id, controlLabel(control))
}

func (r *TerminalRenderer) ReplaceSidebar(cards []SidebarCard) {
	for _, card := range cards {
		fmt.Fprintf(r.out, "  %s  Rs.%d x%d\n", card.Name, card.Price, card.Quantity)
	}
}

func (r *TerminalRenderer) SetTotal(total int) {
	fmt.Fprintf(r.out, "Total: %d\n", total)
}

func (r *TerminalRenderer) ShowEmptyPanel() {
	fmt.Fprintln(r.out, "Your cart is empty.")
}

func (r *TerminalRenderer) ShowCartPanel() {
	fmt.Fprintln(r.out, "Cart:")
}

func controlLabel(control ItemControl) string {
	if !control.InCart {
		return "[add]"
	}
	return fmt.Sprintf("[-] %d [+]", control.Quantity)
}
