package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "new"
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment"
	OrderStatusPaid            OrderStatus = "paid"
	OrderStatusDone            OrderStatus = "done"
)

// OrderStatuses is the persisted value set, also the admin dropdown.
var OrderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusAwaitingPayment,
	OrderStatusPaid,
	OrderStatusDone,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Order struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Flavor     string `gorm:"size:100;not null"`
	Size       string `gorm:"size:100;not null"`
	Shape      string `gorm:"size:100"`
	PlaqueText string `gorm:"size:255"`
	PickupDate string `gorm:"size:50;not null"`

	// Amount is fixed at creation in whole CZK and never recomputed.
	Amount int64       `gorm:"not null"`
	Status OrderStatus `gorm:"size:32;not null;default:new"`

	CustomerName  string `gorm:"size:255"`
	CustomerEmail string `gorm:"size:255"`
	CustomerPhone string `gorm:"size:50"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

// Customer returns the attached contact, or nil before the payment step.
func (o *Order) Customer() *Customer {
	if o.CustomerName == "" && o.CustomerEmail == "" && o.CustomerPhone == "" {
		return nil
	}
	return &Customer{Name: o.CustomerName, Email: o.CustomerEmail, Phone: o.CustomerPhone}
}

func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string      `json:"id"`
		Flavor     string      `json:"flavor"`
		Size       string      `json:"size"`
		Shape      string      `json:"shape,omitempty"`
		PlaqueText string      `json:"plaqueText,omitempty"`
		PickupDate string      `json:"pickupDate"`
		Amount     int64       `json:"amount"`
		Status     OrderStatus `json:"status"`
		Customer   *Customer   `json:"customer,omitempty"`
		CreatedAt  time.Time   `json:"createdAt"`
	}{
		ID:         o.ID,
		Flavor:     o.Flavor,
		Size:       o.Size,
		Shape:      o.Shape,
		PlaqueText: o.PlaqueText,
		PickupDate: o.PickupDate,
		Amount:     o.Amount,
		Status:     o.Status,
		Customer:   o.Customer(),
		CreatedAt:  o.CreatedAt,
	})
}
