package service

import (
	"context"
	"database/sql"
	"time"

	"foodcart/internal/domain"
	"foodcart/internal/dto"

	"go.uber.org/zap"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type MenuRepository interface {
	FindByID(ctx context.Context, id int) (*domain.MenuItem, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	FindDetailByOrderID(ctx context.Context, orderID uint) ([]dto.OrderDetailItem, error)
}

type OrderService struct {
	db        TransactionManager
	menuRepo  MenuRepository
	orderRepo OrderRepository
	itemRepo  OrderItemRepository
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewOrderService(
	db TransactionManager,
	menuRepo MenuRepository,
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *OrderService {
	return &OrderService{
		db:        db,
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

// CreateOrder prices every item from the menu table, then inserts the order
// header and its items in one transaction. The client never sends prices;
// an unknown menu_id fails the whole order.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.OrderRequest) (uint, error) {
	type pricedItem struct {
		menuID   int
		quantity int
		price    int
	}

	priced := make([]pricedItem, 0, len(req.Items))
	totalPrice := 0
	for _, item := range req.Items {
		menuItem, err := s.menuRepo.FindByID(ctx, item.MenuID)
		if err != nil {
			return 0, err
		}
		priced = append(priced, pricedItem{
			menuID:   item.MenuID,
			quantity: item.Quantity,
			price:    menuItem.Price,
		})
		totalPrice += menuItem.Price * item.Quantity
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}
	// Rollback is a no-op once the transaction commits.
	defer tx.Rollback()

	orderID, err := s.orderRepo.Insert(txCtx, tx, domain.Order{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Status:      domain.OrderStatusPlaced,
		TotalPrice:  totalPrice,
	})
	if err != nil {
		s.logger.Error("failed to insert order", zap.Error(err))
		return 0, err
	}

	for _, item := range priced {
		_, err := s.itemRepo.Insert(txCtx, tx, domain.OrderItem{
			OrderID:      orderID,
			MenuID:       item.menuID,
			Quantity:     item.quantity,
			PricePerItem: item.price,
		})
		if err != nil {
			s.logger.Error("failed to insert order item", zap.Uint("orderId", orderID), zap.Int("menuId", item.menuID), zap.Error(err))
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("order created", zap.Uint("orderId", orderID), zap.Int("itemCount", len(priced)), zap.Int("totalPrice", totalPrice))
	return orderID, nil
}

// GetOrderDetail assembles the order header with its priced items.
func (s *OrderService) GetOrderDetail(ctx context.Context, orderID uint) (*dto.OrderDetail, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindDetailByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []dto.OrderDetailItem{}
	}

	return &dto.OrderDetail{
		OrderID:     order.ID,
		Name:        order.Name,
		PhoneNumber: order.PhoneNumber,
		Email:       order.Email,
		Address:     order.Address,
		City:        order.City,
		State:       order.State,
		Status:      order.Status,
		TotalPrice:  order.TotalPrice,
		Items:       items,
	}, nil
}
