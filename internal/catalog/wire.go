package catalog

import (
	"database/sql"

	"foodcart/internal/catalog/controller"
	"foodcart/internal/catalog/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.MenuController {
	repo := repository.NewMySQLMenuRepository(db)
	return controller.NewMenuController(repo, logger)
}
