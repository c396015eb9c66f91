package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/vengerka/cakemaster-api/app/repositories"
)

func newOrderService(t *testing.T) (*OrderService, repositories.OrderRepository) {
	t.Helper()
	repo := repositories.NewOrderRepository(getTestDB(t))
	return NewOrderService(repo, nil), repo
}

func validOrderInput() OrderInput {
	return OrderInput{
		Flavor:     "pistachio",
		Size:       "two",
		Shape:      "heart",
		PlaqueText: "Vše nejlepší",
		PickupDate: "2026-09-12",
		Amount:     850,
	}
}

func TestCreateOrder(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, validOrderInput())
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusNew, order.Status)

	// The stored amount is exactly what the client quoted.
	fetched, err := svc.Get(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(850), fetched.Amount)
	assert.Equal(t, models.OrderStatusNew, fetched.Status)
	assert.Nil(t, fetched.Customer())
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	input := validOrderInput()
	input.Flavor = ""
	input.Amount = 0

	_, err := svc.Create(ctx, input)
	var vErr *helpers.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "flavor")
	assert.Contains(t, vErr.Fields, "amount")

	// Nothing was persisted.
	orders, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestAttachContact(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, validOrderInput())
	assert.NoError(t, err)

	updated, err := svc.AttachContact(ctx, order.ID, ContactInput{
		Name:  "Jana Nováková",
		Phone: "+420777123456",
		Email: "jana@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusAwaitingPayment, updated.Status)

	fetched, err := svc.Get(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusAwaitingPayment, fetched.Status)
	assert.Equal(t, "Jana Nováková", fetched.CustomerName)
	assert.Equal(t, "+420777123456", fetched.CustomerPhone)
	assert.Equal(t, "jana@example.com", fetched.CustomerEmail)
}

func TestAttachContactValidation(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, validOrderInput())
	assert.NoError(t, err)

	_, err = svc.AttachContact(ctx, order.ID, ContactInput{Name: "Jana", Phone: "123", Email: "not-an-email"})
	var vErr *helpers.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")

	fetched, err := svc.Get(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, fetched.Status)
}

func TestAttachContactUnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.AttachContact(context.Background(), "missing", ContactInput{
		Name: "Jana", Phone: "123", Email: "jana@example.com",
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

// Re-submitting the contact form resets even a settled order back to
// awaiting_payment. That mirrors the storefront's behavior, where the
// payment page is the only writer of this transition.
func TestAttachContactRegressesPaidOrder(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, validOrderInput())
	assert.NoError(t, err)
	assert.NoError(t, svc.SetStatus(ctx, order.ID, models.OrderStatusPaid))

	_, err = svc.AttachContact(ctx, order.ID, ContactInput{
		Name: "Jana", Phone: "123", Email: "jana@example.com",
	})
	assert.NoError(t, err)

	fetched, err := svc.Get(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusAwaitingPayment, fetched.Status)
}

func TestSetStatus(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, validOrderInput())
	assert.NoError(t, err)

	for _, status := range models.OrderStatuses {
		assert.NoError(t, svc.SetStatus(ctx, order.ID, status))
		fetched, err := svc.Get(ctx, order.ID)
		assert.NoError(t, err)
		assert.Equal(t, status, fetched.Status)
	}
}

func TestSetStatusErrors(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, validOrderInput())
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.SetStatus(ctx, order.ID, "shipped"), ErrUnknownStatus)
	assert.ErrorIs(t, svc.SetStatus(ctx, "missing", models.OrderStatusPaid), ErrOrderNotFound)

	fetched, err := svc.Get(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, fetched.Status)
}

func TestGetUnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
