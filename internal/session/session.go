package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"foodcart/internal/api"
	"foodcart/internal/cart"
	"foodcart/internal/checkout"
	"foodcart/internal/domain"
	apperrors "foodcart/internal/errors"
	"foodcart/internal/menu"
	"foodcart/internal/storage"
	"foodcart/internal/view"

	"go.uber.org/zap"
)

// Session is one page lifetime of the storefront: cart loaded from storage,
// menu fetched once, user events dispatched to the components until the
// session ends. Handlers run to completion on a single goroutine; the only
// suspension points are the network calls.
type Session struct {
	store     *cart.Store
	loader    *menu.Loader
	submitter *checkout.Submitter
	client    *api.Client
	renderer  view.Renderer
	storage   storage.Store
	logger    *zap.Logger
	in        io.Reader
	out       io.Writer
}

func New(client *api.Client, st storage.Store, renderer view.Renderer, logger *zap.Logger, in io.Reader, out io.Writer) *Session {
	s := &Session{
		client:   client,
		renderer: renderer,
		storage:  st,
		logger:   logger,
		in:       in,
		out:      out,
	}

	s.store = cart.NewStore(st, logger)
	s.store.SetListener(s)
	s.loader = menu.NewLoader(client, s.store, renderer, logger)
	s.submitter = checkout.NewSubmitter(client, s.store, st, s, logger)
	return s
}

// LineChanged refreshes the item's control cell after a sync pass.
func (s *Session) LineChanged(id string, line *domain.CartLine) {
	s.renderer.UpdateItemControl(id, view.ControlFor(line))
}

// CartSynced republishes the total and the sidebar after a sync pass.
func (s *Session) CartSynced(c domain.Cart) {
	s.renderer.SetTotal(c.Total())
	s.renderer.ReplaceSidebar(view.SidebarCards(c))
}

// NavigateToTracking is the post-checkout redirect: it swaps the session
// over to the order tracking view.
func (s *Session) NavigateToTracking(orderID uint) {
	fmt.Fprintf(s.out, "Order submitted successfully! Your order ID is %d\n", orderID)
	s.showTracking(context.Background(), orderID)
}

// Run drives the session until the input ends or the user quits.
func (s *Session) Run(ctx context.Context) error {
	s.store.Load()
	s.store.Sync()
	s.loader.FetchMenu(ctx)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if quit := s.dispatch(ctx, fields[0], fields[1:], scanner); quit {
			return nil
		}
	}
}

func (s *Session) dispatch(ctx context.Context, command string, args []string, scanner *bufio.Scanner) bool {
	switch command {
	case "menu":
		s.loader.FetchMenu(ctx)
	case "add":
		s.handleAdd(args)
	case "plus":
		s.withItemID(args, s.store.Increment)
	case "minus":
		s.withItemID(args, s.store.Decrement)
	case "remove":
		s.withItemID(args, s.store.RemoveAll)
	case "cart":
		s.openSidebar()
	case "clear":
		s.store.Clear()
	case "checkout":
		s.handleCheckout(ctx, scanner)
	case "track":
		s.handleTrack(ctx)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q\n", command)
	}
	return false
}

// handleAdd captures name and price from the rendered menu row, the same
// values the row displayed when the user acted.
func (s *Session) handleAdd(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: add <item-id>")
		return
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "unknown menu item %q\n", args[0])
		return
	}

	item, ok := s.loader.Item(id)
	if !ok {
		fmt.Fprintf(s.out, "unknown menu item %q\n", args[0])
		return
	}

	s.store.Add(strconv.Itoa(item.ID), item.Name, item.Price)
}

func (s *Session) withItemID(args []string, op func(id string)) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: <command> <item-id>")
		return
	}
	op(args[0])
}

func (s *Session) openSidebar() {
	snapshot := s.store.Cart()
	view.ToggleEmptyState(snapshot, s.renderer)
	if !snapshot.IsEmpty() {
		s.renderer.ReplaceSidebar(view.SidebarCards(snapshot))
		s.renderer.SetTotal(snapshot.Total())
	}
}

func (s *Session) handleCheckout(ctx context.Context, scanner *bufio.Scanner) {
	form := checkout.Form{
		Name:        s.prompt(scanner, "Name"),
		PhoneNumber: s.prompt(scanner, "Phone"),
		Email:       s.prompt(scanner, "Email"),
		Address:     s.prompt(scanner, "Address"),
		City:        s.prompt(scanner, "City"),
		State:       s.prompt(scanner, "State"),
	}

	if _, err := s.submitter.Submit(ctx, form); err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			fmt.Fprintln(s.out, ve.Message)
			return
		}
		fmt.Fprintln(s.out, err.Error())
	}
}

func (s *Session) handleTrack(ctx context.Context) {
	raw, ok, err := s.storage.Get(storage.KeyOrderID)
	if err != nil || !ok {
		fmt.Fprintln(s.out, "no order to track yet")
		return
	}

	orderID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "no order to track yet")
		return
	}
	s.showTracking(ctx, uint(orderID))
}

func (s *Session) showTracking(ctx context.Context, orderID uint) {
	token, _, err := s.storage.Get(storage.KeyToken)
	if err != nil {
		token = ""
	}

	detail, err := s.client.FetchOrder(ctx, orderID, token)
	if err != nil {
		s.logger.Warn("order tracking fetch failed", zap.Error(err))
		fmt.Fprintln(s.out, "could not fetch order status, please try again")
		return
	}

	fmt.Fprintf(s.out, "Order %d (%s) total Rs.%d\n", detail.OrderID, detail.Status, detail.TotalPrice)
	for _, item := range detail.Items {
		fmt.Fprintf(s.out, "  %s x%d = Rs.%d\n", item.Name, item.Quantity, item.TotalItemPrice)
	}
}

func (s *Session) prompt(scanner *bufio.Scanner, label string) string {
	fmt.Fprintf(s.out, "%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
