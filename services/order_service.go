package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/solocoffee/pos-api/apperrors"
	"github.com/solocoffee/pos-api/models"
)

// OrderService orchestrates the order lifecycle. Every operation runs as a
// single transaction: order status, inventory rows and points rows either
// all commit or none do.
type OrderService struct {
	db      *gorm.DB
	payment PaymentService
}

// NewOrderService builds an OrderService on the given database handle and
// payment collaborator.
func NewOrderService(db *gorm.DB, payment PaymentService) *OrderService {
	return &OrderService{db: db, payment: payment}
}

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

// CreateOrder creates an order in PENDING_PAYMENT, snapshotting product
// price and name, and deducts finished-good stock plus the exploded
// raw-material requirements for every item. The first failing deduction
// aborts the whole transaction, so a partially-deducted order is never
// visible.
func (s *OrderService) CreateOrder(storeID uint, customerID *uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.New(apperrors.CodeParameter, "order must contain at least one item")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, apperrors.New(apperrors.CodeParameter, "item quantity must be greater than 0")
		}
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.First(&store, storeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.Newf(apperrors.CodeStoreNotFound, "store %d not found", storeID)
			}
			return apperrors.Wrap(apperrors.CodeDatabase, "failed to load store", err)
		}
		if customerID != nil {
			var customer models.Customer
			if err := tx.First(&customer, *customerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.Newf(apperrors.CodeCustomerNotFound, "customer %d not found", *customerID)
				}
				return apperrors.Wrap(apperrors.CodeDatabase, "failed to load customer", err)
			}
		}

		order = models.Order{
			OrderNo:    generateOrderNo(),
			StoreID:    storeID,
			CustomerID: customerID,
			Status:     models.StatusPendingPayment,
		}

		var total float64
		for _, input := range items {
			var product models.Product
			if err := tx.First(&product, input.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.Newf(apperrors.CodeProductNotFound, "product %d not found", input.ProductID)
				}
				return apperrors.Wrap(apperrors.CodeDatabase, "failed to load product", err)
			}
			if !product.IsActive() {
				return apperrors.Newf(apperrors.CodeParameter, "product %q is not available", product.Name)
			}

			subtotal := product.Price * float64(input.Quantity)
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    input.Quantity,
				Subtotal:    subtotal,
			})
			total += subtotal

			if err := DeductStock(tx, storeID, product.ID, float64(input.Quantity)); err != nil {
				return err
			}
			required, err := ExplodeBOM(tx, product.ID, input.Quantity)
			if err != nil {
				return err
			}
			for materialID, qty := range required {
				if err := DeductMaterial(tx, storeID, materialID, qty); err != nil {
					return err
				}
			}
		}

		order.TotalAmount = total
		order.ActualAmount = total

		if err := tx.Create(&order).Error; err != nil {
			return apperrors.Wrap(apperrors.CodeDatabase, "failed to create order", err)
		}
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	log.Info().Str("order_no", order.OrderNo).Uint("store_id", storeID).
		Float64("total", order.TotalAmount).Msg("order created")
	return &order, nil
}

// PayOrder charges a PENDING_PAYMENT order through the payment collaborator
// and moves it to IN_PRODUCTION. Any rejection fails PAYMENT_FAILED and
// leaves status and inventory untouched; stock was already committed at
// creation and is governed by order existence, not payment outcome.
func (s *OrderService) PayOrder(orderID uint, method string) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadOrder(tx, orderID, &order); err != nil {
			return err
		}
		if order.Status != models.StatusPendingPayment {
			return apperrors.Newf(apperrors.CodePaymentFailed,
				"order %s does not allow payment in status %s", order.OrderNo, order.Status)
		}

		result, err := s.payment.Charge(&order, method)
		if err != nil {
			return apperrors.Newf(apperrors.CodePaymentFailed,
				"payment failed for order %s: %v", order.OrderNo, err)
		}
		if !result.Success {
			return apperrors.Newf(apperrors.CodePaymentFailed,
				"payment failed for order %s: %s", order.OrderNo, result.Message)
		}

		if err := TransitionOrder(&order, models.StatusInProduction); err != nil {
			return err
		}
		order.PaymentMethod = method
		return transitionOrderRow(tx, &order, models.StatusPendingPayment, map[string]interface{}{
			"status":         order.Status,
			"payment_method": method,
		}, apperrors.CodePaymentFailed)
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	log.Info().Str("order_no", order.OrderNo).Str("method", method).Msg("order paid")
	return &order, nil
}

// CancelOrder cancels a PENDING_PAYMENT or IN_PRODUCTION order, returning
// every item's finished-good and raw-material quantities to stock. Any
// other status fails CANCEL_FAILED, and the status write is guarded by the
// loaded status, so repeated or racing cancels never double-restock.
func (s *OrderService) CancelOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadOrder(tx, orderID, &order); err != nil {
			return err
		}
		if !CanTransition(order.Status, models.StatusCancelled) {
			return apperrors.Newf(apperrors.CodeCancelFailed,
				"order %s cannot be cancelled in status %s", order.OrderNo, order.Status)
		}

		if err := restockOrderItems(tx, &order); err != nil {
			return err
		}
		from := order.Status
		order.Status = models.StatusCancelled
		return transitionOrderRow(tx, &order, from,
			map[string]interface{}{"status": models.StatusCancelled}, apperrors.CodeCancelFailed)
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	log.Info().Str("order_no", order.OrderNo).Msg("order cancelled")
	return &order, nil
}

// CompleteOrder moves an IN_PRODUCTION order to COMPLETED. When a customer
// is attached, loyalty points are accrued: one point per whole currency
// unit of the actual amount, rounded down.
func (s *OrderService) CompleteOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadOrder(tx, orderID, &order); err != nil {
			return err
		}
		if err := TransitionOrder(&order, models.StatusCompleted); err != nil {
			return err
		}
		if err := transitionOrderRow(tx, &order, models.StatusInProduction,
			map[string]interface{}{"status": models.StatusCompleted}, apperrors.CodeInvalidOrderStatus); err != nil {
			return err
		}

		if order.CustomerID != nil {
			points := int(math.Floor(order.ActualAmount))
			if points > 0 {
				if err := AccruePoints(tx, *order.CustomerID, &order.ID, points, models.PointsReasonOrderAccrual); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	log.Info().Str("order_no", order.OrderNo).Msg("order completed")
	return &order, nil
}

// RefundOrder refunds a COMPLETED order: stock is returned, the order's
// point accrual is reversed and the order moves to REFUNDED. Refunding an
// IN_PRODUCTION order is treated as cancel-with-refund: stock is returned
// and the order moves to CANCELLED. Any other status fails REFUND_FAILED.
func (s *OrderService) RefundOrder(orderID uint, reason string) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := loadOrder(tx, orderID, &order); err != nil {
			return err
		}

		from := order.Status
		switch order.Status {
		case models.StatusCompleted:
			if err := restockOrderItems(tx, &order); err != nil {
				return err
			}
			if err := ReversePoints(tx, order.ID); err != nil {
				return err
			}
			order.Status = models.StatusRefunded
		case models.StatusInProduction:
			if err := restockOrderItems(tx, &order); err != nil {
				return err
			}
			order.Status = models.StatusCancelled
		default:
			return apperrors.Newf(apperrors.CodeRefundFailed,
				"order %s cannot be refunded in status %s", order.OrderNo, order.Status)
		}

		order.Remarks = reason
		return transitionOrderRow(tx, &order, from, map[string]interface{}{
			"status":  order.Status,
			"remarks": reason,
		}, apperrors.CodeRefundFailed)
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	log.Info().Str("order_no", order.OrderNo).Str("status", order.Status.String()).Msg("order refunded")
	return &order, nil
}

// GetOrder loads an order with its items.
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := loadOrder(s.db, orderID, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderByNo loads an order by its order number.
func (s *OrderService) GetOrderByNo(orderNo string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Where("order_no = ?", orderNo).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.CodeOrderNotFound, "order %s not found", orderNo)
		}
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to load order", err)
	}
	return &order, nil
}

// ListOrders returns orders newest first, optionally filtered by store,
// status and a creation-time cutoff.
func (s *OrderService) ListOrders(storeID *uint, status *models.OrderStatus, since *time.Time) ([]models.Order, error) {
	query := s.db.Preload("Items").Order("created_at DESC, id DESC")
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "failed to list orders", err)
	}
	return orders, nil
}

// restockOrderItems returns every item's finished-good quantity and its
// exploded raw-material requirements to stock, the exact inverse of the
// deductions made at creation. The explosion reads the current catalog, so
// exact restoration assumes BOM rows stay fixed over an order's lifetime.
func restockOrderItems(tx *gorm.DB, order *models.Order) error {
	for _, item := range order.Items {
		if err := RestockStock(tx, order.StoreID, item.ProductID, float64(item.Quantity)); err != nil {
			return err
		}
		required, err := ExplodeBOM(tx, item.ProductID, item.Quantity)
		if err != nil {
			return err
		}
		for materialID, qty := range required {
			if err := RestockMaterial(tx, order.StoreID, materialID, qty); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadOrder(tx *gorm.DB, orderID uint, order *models.Order) error {
	if err := tx.Preload("Items").First(order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Newf(apperrors.CodeOrderNotFound, "order %d not found", orderID)
		}
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to load order", err)
	}
	return nil
}

// transitionOrderRow persists a status change guarded by the status the
// order was loaded in. RowsAffected == 0 means a concurrent transaction
// moved the order first; the error rolls back the enclosing transaction,
// taking any restocks or accruals already issued with it.
func transitionOrderRow(tx *gorm.DB, order *models.Order, from models.OrderStatus, fields map[string]interface{}, staleCode apperrors.Code) error {
	res := tx.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, from).
		Updates(fields)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "failed to update order", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.Newf(staleCode,
			"order %s was updated concurrently", order.OrderNo)
	}
	return nil
}

func generateOrderNo() string {
	return fmt.Sprintf("ORD%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// asServiceError keeps typed business errors as-is and wraps anything else
// as a database failure.
func asServiceError(err error) error {
	if appErr := apperrors.From(err); appErr != nil {
		return appErr
	}
	return apperrors.Wrap(apperrors.CodeDatabase, "database operation failed", err)
}
