// Package orderrepo persists the order aggregate and its line snapshots.
// Order lines are written once at placement and never updated afterwards;
// the snapshot taken at order time stays authoritative.
package orderrepo

import (
	"time"

	"fooddrone/internal/core/domain/model/kernel"
	"fooddrone/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO maps the order aggregate onto the orders table.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID  uuid.UUID       `gorm:"type:uuid;index"`
	TotalPrice    float64         `gorm:"type:numeric(12,2)"`
	Status        string          `gorm:"type:varchar(32);index"`
	PaymentStatus string          `gorm:"type:varchar(16)"`
	PaymentMethod string          `gorm:"type:varchar(16)"`
	DeliveryInfo  DeliveryInfoDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	DroneID       string          `gorm:"type:varchar(32);default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryInfoDTO is the embedded customer contact snapshot.
type DeliveryInfoDTO struct {
	FullName string `gorm:"type:varchar(128)"`
	Phone    string `gorm:"type:varchar(32)"`
	Address  string `gorm:"type:varchar(256)"`
	City     string `gorm:"type:varchar(64)"`
	Notes    string `gorm:"type:varchar(512)"`
}

// OrderItemDTO maps one order line onto the order_items table.
type OrderItemDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string    `gorm:"type:varchar(128)"`
	Quantity    int
	UnitPrice   float64 `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's naming convention.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	info := aggregate.DeliveryInfo()
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		RestaurantID:  aggregate.RestaurantID().Bytes(),
		TotalPrice:    aggregate.TotalPrice(),
		Status:        aggregate.Status().String(),
		PaymentStatus: string(aggregate.PaymentStatus()),
		PaymentMethod: aggregate.PaymentMethod(),
		DeliveryInfo: DeliveryInfoDTO{
			FullName: info.FullName,
			Phone:    info.Phone,
			Address:  info.Address,
			City:     info.City,
			Notes:    info.Notes,
		},
		DroneID:     aggregate.DroneID(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Items:       items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(productID, itemDTO.ProductName, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, userID, restaurantID,
		items,
		dto.TotalPrice,
		status,
		order.PaymentStatus(dto.PaymentStatus),
		dto.PaymentMethod,
		order.DeliveryInfo{
			FullName: dto.DeliveryInfo.FullName,
			Phone:    dto.DeliveryInfo.Phone,
			Address:  dto.DeliveryInfo.Address,
			City:     dto.DeliveryInfo.City,
			Notes:    dto.DeliveryInfo.Notes,
		},
		dto.DroneID,
		dto.CreatedAt, dto.UpdatedAt,
		dto.PickedUpAt, dto.DeliveredAt,
	)
}
