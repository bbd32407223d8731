package order

import (
	"database/sql"
	"time"

	catalogrepo "foodcart/internal/catalog/repository"
	"foodcart/internal/order/controller"
	orderrepo "foodcart/internal/order/repository"
	"foodcart/internal/order/service"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.OrderController {
	menuRepo := catalogrepo.NewMySQLMenuRepository(db)
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	itemRepo := orderrepo.NewMySQLOrderItemRepository(db)

	svc := service.NewOrderService(db, menuRepo, orderRepo, itemRepo, logger, 5*time.Second)

	return controller.NewOrderController(svc, logger)
}
