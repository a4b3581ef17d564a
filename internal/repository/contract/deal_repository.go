package contract

import (
	"context"

	"landivo-be/internal/entity"
	"landivo-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	Update(ctx context.Context, deal *entity.Deal) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Deal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deal, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Payments
	CreatePayment(ctx context.Context, payment *entity.Payment) error
	FindPaymentByOrderId(ctx context.Context, orderId string) (*entity.Payment, error)
	FindPaymentsByDealId(ctx context.Context, dealId uuid.UUID) ([]*entity.Payment, error)
	UpdatePaymentStatus(ctx context.Context, orderId string, status entity.PaymentStatus, paymentMethod string) error
}
