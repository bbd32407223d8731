package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"foodcart/internal/domain"

	"go.uber.org/zap"
)

type MenuRepository interface {
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
}

type MenuController struct {
	repo   MenuRepository
	logger *zap.Logger
}

func NewMenuController(repo MenuRepository, logger *zap.Logger) *MenuController {
	return &MenuController{
		repo:   repo,
		logger: logger,
	}
}

func (c *MenuController) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := c.repo.ListMenu(r.Context())
	if err != nil {
		c.logger.Error("listing menu failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	// An empty menu responds as [], never null: the client treats an empty
	// array as a valid menu distinct from an error.
	if items == nil {
		items = []domain.MenuItem{}
	}

	c.writeJSON(w, http.StatusOK, items)
}

func (c *MenuController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
