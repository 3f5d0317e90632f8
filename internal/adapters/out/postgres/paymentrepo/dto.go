// Package paymentrepo persists payment attempts and their gateway details.
package paymentrepo

import (
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO maps the payment aggregate onto the payments table.
// The order ID carries a unique index: one payment attempt per order is the
// idempotency guarantee for redelivered payment events.
type PaymentDTO struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID         `gorm:"type:uuid;uniqueIndex"`
	Amount         float64           `gorm:"type:numeric(12,2)"`
	Status         string            `gorm:"type:varchar(16)"`
	Method         string            `gorm:"type:varchar(16)"`
	IdempotencyKey string            `gorm:"type:varchar(64)"`
	Gateway        GatewayDetailsDTO `gorm:"embedded;embeddedPrefix:gateway_"`
	AttemptCount   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides GORM's naming convention.
func (PaymentDTO) TableName() string {
	return "payments"
}

// GatewayDetailsDTO is the embedded gateway handshake state.
type GatewayDetailsDTO struct {
	RequestID       string `gorm:"type:varchar(64)"`
	ExternalOrderID string `gorm:"type:varchar(64)"`
	PayURL          string `gorm:"type:varchar(512)"`
	ResultCode      int
	TransactionID   string `gorm:"type:varchar(64)"`
	Message         string `gorm:"type:varchar(256)"`
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	gateway := aggregate.Gateway()
	return PaymentDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		Amount:         aggregate.Amount(),
		Status:         string(aggregate.Status()),
		Method:         string(aggregate.Method()),
		IdempotencyKey: aggregate.IdempotencyKey(),
		Gateway: GatewayDetailsDTO{
			RequestID:       gateway.RequestID,
			ExternalOrderID: gateway.ExternalOrderID,
			PayURL:          gateway.PayURL,
			ResultCode:      gateway.ResultCode,
			TransactionID:   gateway.TransactionID,
			Message:         gateway.Message,
		},
		AttemptCount: aggregate.AttemptCount(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID,
		dto.Amount,
		payment.Status(dto.Status),
		payment.Method(dto.Method),
		dto.IdempotencyKey,
		payment.GatewayDetails{
			RequestID:       dto.Gateway.RequestID,
			ExternalOrderID: dto.Gateway.ExternalOrderID,
			PayURL:          dto.Gateway.PayURL,
			ResultCode:      dto.Gateway.ResultCode,
			TransactionID:   dto.Gateway.TransactionID,
			Message:         dto.Gateway.Message,
		},
		dto.AttemptCount,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
