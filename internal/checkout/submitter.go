package checkout

import (
	"context"
	"sort"
	"strconv"

	"foodcart/internal/domain"
	"foodcart/internal/dto"
	apperrors "foodcart/internal/errors"
	"foodcart/internal/storage"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle       State = "IDLE"
	StateValidating State = "VALIDATING"
	StateSubmitting State = "SUBMITTING"
	StateSuccess    State = "SUCCESS"
	StateFailure    State = "FAILURE"
)

// Form carries the checkout fields as typed by the user.
type Form struct {
	Name        string
	PhoneNumber string
	Email       string
	Address     string
	City        string
	State       string
}

type OrderAPI interface {
	SubmitOrder(ctx context.Context, order dto.OrderRequest, token string) (*dto.OrderResponse, error)
}

type CartSource interface {
	Cart() domain.Cart
	Clear()
}

// Navigator is the redirect-to-tracking hook fired on success.
type Navigator interface {
	NavigateToTracking(orderID uint)
}

// Submitter runs one checkout attempt at a time through
// Idle -> Validating -> Submitting -> Success or Failure. It holds no retry
// policy; a failed attempt returns to the user with the cart intact.
type Submitter struct {
	api       OrderAPI
	cart      CartSource
	storage   storage.Store
	navigator Navigator
	logger    *zap.Logger
	state     State
}

func NewSubmitter(api OrderAPI, cart CartSource, st storage.Store, navigator Navigator, logger *zap.Logger) *Submitter {
	return &Submitter{
		api:       api,
		cart:      cart,
		storage:   st,
		navigator: navigator,
		logger:    logger,
		state:     StateIdle,
	}
}

func (s *Submitter) State() State {
	return s.state
}

// Submit validates the form and, if it passes, builds the order from the
// current cart and posts it. On success the order id is persisted, the cart
// cleared, and the user is sent to the tracking view. Any failure
// leaves the cart untouched.
func (s *Submitter) Submit(ctx context.Context, form Form) (uint, error) {
	s.state = StateValidating
	if err := validateForm(form); err != nil {
		s.state = StateIdle
		return 0, err
	}

	s.state = StateSubmitting
	order := s.buildOrder(form)

	token, _, err := s.storage.Get(storage.KeyToken)
	if err != nil {
		// An unreadable token is attached as empty; the backend decides.
		s.logger.Warn("reading auth token failed", zap.Error(err))
		token = ""
	}

	resp, err := s.api.SubmitOrder(ctx, order, token)
	if err != nil {
		s.state = StateFailure
		s.logger.Warn("order submission failed", zap.Error(err))
		return 0, apperrors.NewTransientError("an error occurred while submitting your order, please try again", err)
	}

	if err := s.storage.Set(storage.KeyOrderID, strconv.FormatUint(uint64(resp.OrderID), 10)); err != nil {
		s.logger.Warn("persisting order id failed", zap.Error(err))
	}
	s.cart.Clear()
	s.state = StateSuccess

	if s.navigator != nil {
		s.navigator.NavigateToTracking(resp.OrderID)
	}
	return resp.OrderID, nil
}

func validateForm(form Form) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", form.Name},
		{"phone_number", form.PhoneNumber},
		{"email", form.Email},
		{"address", form.Address},
		{"city", form.City},
		{"state", form.State},
	}

	var details []apperrors.ValidationDetail
	for _, f := range fields {
		if f.value == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.name,
				Message: f.name + " is required",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("please fill all fields to submit your order", details...)
	}
	return nil
}

// buildOrder projects the cart into the order payload. Item prices and
// names are left out: the backend reprices by menu_id.
func (s *Submitter) buildOrder(form Form) dto.OrderRequest {
	cart := s.cart.Cart()

	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]dto.OrderItemBody, 0, len(cart))
	for _, id := range ids {
		menuID, err := strconv.Atoi(id)
		if err != nil {
			s.logger.Warn("skipping cart line with non-numeric id", zap.String("id", id))
			continue
		}
		items = append(items, dto.OrderItemBody{
			MenuID:   menuID,
			Quantity: cart[id].Quantity,
		})
	}

	return dto.OrderRequest{
		Name:        form.Name,
		PhoneNumber: form.PhoneNumber,
		Email:       form.Email,
		Address:     form.Address,
		City:        form.City,
		State:       form.State,
		Items:       items,
	}
}
