package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	txManager repo.TransactionManager
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, txManager repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		txManager: txManager,
	}
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
	Price     float64
}

type CreateOrderInput struct {
	UserID      string
	TotalAmount float64
	Items       []OrderItemInput
}

type UpdateOrderInput struct {
	TotalAmount *float64
	Status      *string
	// nilなら明細はそのまま。指定があれば全入れ替え。
	Items []OrderItemInput
}

// 注文本体と明細を同一トランザクションで作る。
// 金額は呼び出し側の申告値をそのまま保存する（明細からの再計算はしない）。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (Envelope, error) {
	if uuid.Validate(in.UserID) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	if len(in.Items) == 0 {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Order items are required")
	}
	for _, item := range in.Items {
		if uuid.Validate(item.ProductID) != nil {
			return Envelope{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid product ID: %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return Envelope{}, NewHTTPError(http.StatusBadRequest, "Quantity must be greater than 0")
		}
	}

	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		o := model.Order{
			UserID:      in.UserID,
			TotalAmount: in.TotalAmount,
			Status:      model.OrderStatusPending,
		}
		if err := r.Orders().Create(ctx, &o); err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(in.Items))
		for _, item := range in.Items {
			items = append(items, model.OrderItem{
				OrderID:   o.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}
		return r.OrderItems().CreateBulk(ctx, items)
	})
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "Failed to create order")
	}

	return Envelope{
		Message: "Order created successfully",
		Status:  http.StatusCreated,
		Success: true,
	}, nil
}

func (u *OrderUsecase) ListAllOrders(ctx context.Context) (Envelope, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(orders) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No orders found")
	}

	return Envelope{
		Message: "Orders fetched successfully",
		Data:    orders,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// ユーザーIDでそのユーザーの注文を引く。
func (u *OrderUsecase) FindUserOrders(ctx context.Context, userID string) (Envelope, error) {
	if uuid.Validate(userID) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(orders) == 0 {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "No orders found for this user")
	}

	return Envelope{
		Message: "User orders fetched successfully",
		Data:    orders,
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// 明細を渡された場合は全入れ替え。金額の整合チェックはしない。
func (u *OrderUsecase) UpdateOrder(ctx context.Context, id string, in UpdateOrderInput) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid order ID")
	}
	for _, item := range in.Items {
		if uuid.Validate(item.ProductID) != nil {
			return Envelope{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid product ID: %s", item.ProductID))
		}
	}

	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if in.TotalAmount != nil {
			o.TotalAmount = *in.TotalAmount
		}
		if in.Status != nil {
			o.Status = model.OrderStatus(*in.Status)
		}

		if in.Items != nil {
			if err := r.OrderItems().DeleteByOrderID(ctx, o.ID); err != nil {
				return err
			}
			items := make([]model.OrderItem, 0, len(in.Items))
			for _, item := range in.Items {
				items = append(items, model.OrderItem{
					OrderID:   o.ID,
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Price:     item.Price,
				})
			}
			if err := r.OrderItems().CreateBulk(ctx, items); err != nil {
				return err
			}
		}

		return r.Orders().Save(ctx, o)
	})
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Order updated successfully",
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

func (u *OrderUsecase) ChangeOrderStatus(ctx context.Context, id string, status string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid order ID")
	}
	if status == "" {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Status is required")
	}

	err := u.orderRepo.UpdateStatus(ctx, id, model.OrderStatus(status))
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Order status updated successfully",
		Status:  http.StatusOK,
		Success: true,
	}, nil
}

// 削除はキャンセル扱い。行は消さずにstatusをCancelledへ。
func (u *OrderUsecase) CancelOrder(ctx context.Context, id string) (Envelope, error) {
	if uuid.Validate(id) != nil {
		return Envelope{}, NewHTTPError(http.StatusBadRequest, "Invalid order ID")
	}

	err := u.orderRepo.UpdateStatus(ctx, id, model.OrderStatusCancelled)
	if errors.Is(err, repo.ErrNotFound) {
		return Envelope{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return Envelope{
		Message: "Order canceled successfully",
		Status:  http.StatusOK,
		Success: true,
	}, nil
}
