// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders belong to the wider retail application; the
// dispatch core reads them for routing and writes only the status column.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for order rows.
type OrderDTO struct {
	ID                  uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OrderNumber         int          `gorm:"type:int;not null;uniqueIndex"`
	OrderType           int          `gorm:"type:int;not null"`
	Status              int          `gorm:"type:int;not null;index"`
	Recipient           RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	Address             AddressDTO   `gorm:"embedded;embeddedPrefix:address_"`
	DeliveryDate        *time.Time   `gorm:"type:date"`
	DeliveryTime        string       `gorm:"type:varchar(5)"`
	SpecialInstructions string       `gorm:"type:text"`
	CardMessage         string       `gorm:"type:text"`
	CreatedAt           time.Time    `gorm:"not null"`
	Items               []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientDTO is the embedded recipient contact within the order table.
type RecipientDTO struct {
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(32)"`
}

// AddressDTO is the embedded delivery destination within the order table.
type AddressDTO struct {
	Line1      string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(128)"`
	Province   string `gorm:"type:varchar(64)"`
	PostalCode string `gorm:"type:varchar(16)"`
	Country    string `gorm:"type:varchar(2)"`
}

// ItemDTO represents one order line item.
type ItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Quantity int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order entity to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:       item.ID.Bytes(),
			OrderID:  orderID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	return OrderDTO{
		ID:          orderID,
		OrderNumber: aggregate.OrderNumber(),
		OrderType:   int(aggregate.Type()),
		Status:      int(aggregate.Status()),
		Recipient: RecipientDTO{
			FirstName: aggregate.Recipient().FirstName,
			LastName:  aggregate.Recipient().LastName,
			Phone:     aggregate.Recipient().Phone,
		},
		Address: AddressDTO{
			Line1:      aggregate.Address().Line1,
			City:       aggregate.Address().City,
			Province:   aggregate.Address().Province,
			PostalCode: aggregate.Address().PostalCode,
			Country:    aggregate.Address().Country,
		},
		DeliveryDate:        aggregate.DeliveryDate(),
		DeliveryTime:        aggregate.DeliveryTime(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		CardMessage:         aggregate.CardMessage(),
		CreatedAt:           aggregate.CreatedAt(),
		Items:               items,
	}
}

// toDomain converts a database DTO to an order entity using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, order.Item{
			ID:       itemID,
			Name:     itemDTO.Name,
			Quantity: itemDTO.Quantity,
		})
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		order.Recipient{
			FirstName: dto.Recipient.FirstName,
			LastName:  dto.Recipient.LastName,
			Phone:     dto.Recipient.Phone,
		},
		order.Address{
			Line1:      dto.Address.Line1,
			City:       dto.Address.City,
			Province:   dto.Address.Province,
			PostalCode: dto.Address.PostalCode,
			Country:    dto.Address.Country,
		},
		dto.DeliveryDate,
		dto.DeliveryTime,
		dto.SpecialInstructions,
		dto.CardMessage,
		items,
		dto.CreatedAt,
	)
}
