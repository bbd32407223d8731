package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"foodcart/internal/domain"
	"foodcart/internal/dto"
	apperrors "foodcart/internal/errors"

	"go.uber.org/zap"
)

// Client talks to the storefront backend. Every failure that the user could
// retry (connection errors, non-2xx statuses, undecodable bodies) surfaces
// as a TransientError; callers decide how to show it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchMenu lists the menu. An empty menu is a valid result, distinct from
// an error.
func (c *Client) FetchMenu(ctx context.Context) ([]domain.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/menu", nil)
	if err != nil {
		return nil, apperrors.NewInternalError("building menu request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to fetch menu items", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("menu fetch returned non-2xx", zap.Int("status", resp.StatusCode))
		return nil, apperrors.NewTransientError("failed to fetch menu items", nil)
	}

	items := []domain.MenuItem{}
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, apperrors.NewTransientError("failed to fetch menu items", err)
	}
	return items, nil
}

// SubmitOrder posts the order. The token is attached as-is even when empty;
// the backend is the authority on rejecting it.
func (c *Client) SubmitOrder(ctx context.Context, order dto.OrderRequest, token string) (*dto.OrderResponse, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, apperrors.NewInternalError("encoding order", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError("building order request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to submit order", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("order submission returned non-2xx", zap.Int("status", resp.StatusCode))
		return nil, apperrors.NewTransientError("failed to submit order", nil)
	}

	var result dto.OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.NewTransientError("failed to submit order", err)
	}
	return &result, nil
}

// FetchOrder retrieves one order for the tracking view.
func (c *Client) FetchOrder(ctx context.Context, orderID uint, token string) (*dto.OrderDetail, error) {
	url := fmt.Sprintf("%s/orders/%d", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("building order detail request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransientError("failed to fetch order", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %d not found", orderID))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("order fetch returned non-2xx", zap.Int("status", resp.StatusCode))
		return nil, apperrors.NewTransientError("failed to fetch order", nil)
	}

	var detail dto.OrderDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, apperrors.NewTransientError("failed to fetch order", err)
	}
	return &detail, nil
}
