package services

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/vengerka/cakemaster-api/app/repositories"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrUnknownStatus = errors.New("unknown order status")
)

type OrderInput struct {
	Flavor     string `json:"flavor" validate:"required"`
	Size       string `json:"size" validate:"required"`
	Shape      string `json:"shape"`
	PlaqueText string `json:"plaqueText"`
	PickupDate string `json:"pickupDate" validate:"required"`

	// Amount is quoted by the ordering UI from the price table and treated
	// as opaque here; it is never recomputed after creation.
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type ContactInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// OrderService owns the order lifecycle:
// new → awaiting_payment → paid → done.
type OrderService struct {
	orderRepo repositories.OrderRepository
	notifier  Notifier
	validate  *validator.Validate
}

func NewOrderService(orderRepo repositories.OrderRepository, notifier Notifier) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		notifier:  notifier,
		validate:  validator.New(),
	}
}

// Create persists a new order and returns it with its assigned id. The id is
// shown to the buyer on the payment page and embedded in the payment URL.
func (s *OrderService) Create(ctx context.Context, input OrderInput) (*models.Order, error) {
	if err := s.validate.Struct(&input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, helpers.FormatValidationErrors(validationErrors)
		}
		return nil, err
	}

	order := &models.Order{
		Flavor:     input.Flavor,
		Size:       input.Size,
		Shape:      input.Shape,
		PlaqueText: input.PlaqueText,
		PickupDate: input.PickupDate,
		Amount:     input.Amount,
		Status:     models.OrderStatusNew,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go func(order models.Order) {
			if err := s.notifier.NotifyNewOrder(&order); err != nil {
				log.Printf("OrderService.Create: order notification failed for %s: %v", order.ID, err)
			}
		}(*order)
	}

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

// AttachContact stores the buyer contact from the payment page and moves the
// order to awaiting_payment. Calling it again overwrites the contact and
// re-asserts awaiting_payment, even on a paid or done order.
func (s *OrderService) AttachContact(ctx context.Context, id string, input ContactInput) (*models.Order, error) {
	if err := s.validate.Struct(&input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, helpers.FormatValidationErrors(validationErrors)
		}
		return nil, err
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	customer := models.Customer{Name: input.Name, Phone: input.Phone, Email: input.Email}
	if err := s.orderRepo.UpdateCustomer(ctx, id, customer, models.OrderStatusAwaitingPayment); err != nil {
		return nil, err
	}

	order.CustomerName = customer.Name
	order.CustomerEmail = customer.Email
	order.CustomerPhone = customer.Phone
	order.Status = models.OrderStatusAwaitingPayment
	return order, nil
}

// SetStatus is the admin override: any of the four statuses, unconditionally.
func (s *OrderService) SetStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrUnknownStatus
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.UpdateStatus(ctx, id, status)
}
