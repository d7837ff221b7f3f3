package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/dto"
)

// Audit actions emitted by the order service.
const (
	ActionOrderCreated       = "order.created"
	ActionOrderStatusUpdated = "order.status_updated"
)

type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
	txManager portsrepo.TransactionManager
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, txManager portsrepo.TransactionManager, audit portssvc.AuditRecorder, clock func() time.Time) portssvc.OrderSvcFacade {
	return &orderService{
		BaseService: BaseService{Audit: audit, Clock: clock},
		orderRepo:   orderRepo,
		txManager:   txManager,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder opens a draft order with an unpaid payment summary.
func (s *orderService) CreateOrder(ctx context.Context, shopID string, req dto.CreateOrderRequest, actorID string) (*domain.Order, error) {
	if strings.TrimSpace(req.OrderNumber) == "" {
		return nil, fmt.Errorf("%w: orderNumber is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.CustomerID) == "" {
		return nil, fmt.Errorf("%w: customerId is required", apperrors.ErrValidation)
	}
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: totalAmount cannot be negative", apperrors.ErrValidation)
	}
	if err := validateMoney("totalAmount", req.TotalAmount); err != nil {
		return nil, err
	}

	now := s.Now()
	order := domain.Order{
		OrderID:              uuid.NewString(),
		ShopID:               shopID,
		OrderNumber:          req.OrderNumber,
		CustomerID:           req.CustomerID,
		CustomerName:         req.CustomerName,
		Status:               domain.OrderDraft,
		Payment:              domain.NewPaymentSummary(req.TotalAmount),
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		Notes:                req.Notes,
		AuditFields:          domain.NewAuditFields(actorID, now),
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.String("shop_id", shopID), slog.String("order_number", req.OrderNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Order created", slog.String("order_id", order.OrderID), slog.String("order_number", order.OrderNumber))
	s.Emit(ctx, domain.AuditEvent{
		Actor:       actorID,
		Shop:        shopID,
		Action:      ActionOrderCreated,
		Description: fmt.Sprintf("Order %s created for %s", order.OrderNumber, order.Payment.TotalAmount),
		Metadata:    map[string]any{"order_id": order.OrderID, "order_number": order.OrderNumber},
	})
	return &order, nil
}

// GetOrder retrieves an order of a shop.
func (s *orderService) GetOrder(ctx context.Context, shopID, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, shopID, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get order", slog.String("order_id", orderID))
		}
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus moves an order along its transition table.
func (s *orderService) UpdateOrderStatus(ctx context.Context, shopID, orderID string, target domain.OrderStatus, actorID string) (*domain.Order, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: invalid order status %q", apperrors.ErrValidation, target)
	}

	now := s.Now()
	var (
		updated *domain.Order
		from    domain.OrderStatus
	)
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		order, err := repos.Orders.FindOrderByIDForUpdate(ctx, shopID, orderID)
		if err != nil {
			return err
		}
		from = order.Status
		if err := order.TransitionTo(target, now); err != nil {
			return err
		}
		order.Touch(actorID, now)
		if err := repos.Orders.UpdateOrder(ctx, *order); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		updated = order
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to update order status", slog.String("order_id", orderID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Order status updated", slog.String("order_id", orderID), slog.String("from", string(from)), slog.String("to", string(target)))
	s.Emit(ctx, domain.AuditEvent{
		Actor:       actorID,
		Shop:        shopID,
		Action:      ActionOrderStatusUpdated,
		Description: fmt.Sprintf("Order %s moved from %s to %s", updated.OrderNumber, from, target),
		Metadata:    map[string]any{"order_id": orderID, "from_status": string(from), "status": string(target)},
	})
	return updated, nil
}
