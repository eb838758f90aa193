package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/apperrors"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/events"
	"github.com/tm-acme-shop/acme-shop-pos-service/internal/models"
)

// fakeOrderSubmitter records submissions and returns a canned response.
type fakeOrderSubmitter struct {
	submitted []*models.CreateOrderRequest
	response  json.RawMessage
	err       error
}

func (f *fakeOrderSubmitter) SubmitOrder(ctx context.Context, req *models.CreateOrderRequest) (json.RawMessage, error) {
	f.submitted = append(f.submitted, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func newTestCheckoutService(repo *memoryCartRepository, submitter *fakeOrderSubmitter, publisher events.CheckoutEventPublisher) (*CheckoutService, *CartService) {
	carts := newTestCartService(repo, publisher)
	carts.config.Square.LocationID = "LOC123"
	return NewCheckoutService(carts, submitter, publisher, carts.config), carts
}

func TestCheckout_SubmitsAndClearsCart(t *testing.T) {
	repo := newMemoryCartRepository()
	submitter := &fakeOrderSubmitter{response: json.RawMessage(`{"order":{"id":"ord-1"}}`)}
	publisher := events.NewMockEventPublisher()
	svc, carts := newTestCheckoutService(repo, submitter, publisher)
	ctx := context.Background()

	item := fakeItem()
	_, err := carts.AddItem(ctx, "owner-1", item)
	require.NoError(t, err)

	resp, err := svc.Checkout(ctx, "owner-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"order":{"id":"ord-1"}}`, string(resp))

	require.Len(t, submitter.submitted, 1)
	req := submitter.submitted[0]
	assert.NotEmpty(t, req.IdempotencyKey)
	assert.Equal(t, "LOC123", req.Order.LocationID)
	require.Len(t, req.Order.LineItems, 1)
	assert.Equal(t, item.VariantID, req.Order.LineItems[0].CatalogObjectID)

	reloaded, err := carts.GetCart(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _ := newTestCheckoutService(newMemoryCartRepository(), &fakeOrderSubmitter{}, events.NewMockEventPublisher())

	_, err := svc.Checkout(context.Background(), "owner-1")

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "items", validationErr.Field)
}

func TestCheckout_NoVariationIDs(t *testing.T) {
	repo := newMemoryCartRepository()
	submitter := &fakeOrderSubmitter{}
	svc, carts := newTestCheckoutService(repo, submitter, events.NewMockEventPublisher())
	ctx := context.Background()

	p := int64(450)
	_, err := carts.AddItem(ctx, "owner-1", models.CartItem{ID: "a", Name: "No variant", Price: &p, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "owner-1")

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, submitter.submitted)

	// the cart is kept so the shopper can fix it
	reloaded, err := carts.GetCart(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, reloaded.Items, 1)
}

func TestCheckout_SubmissionFailureKeepsCart(t *testing.T) {
	repo := newMemoryCartRepository()
	submitter := &fakeOrderSubmitter{err: errors.New("platform unavailable")}
	publisher := events.NewMockEventPublisher()
	svc, carts := newTestCheckoutService(repo, submitter, publisher)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "owner-1", fakeItem())
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "owner-1")
	require.Error(t, err)

	reloaded, err := carts.GetCart(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, reloaded.Items, 1)
	assert.Empty(t, publisher.Events)
}

func TestCheckout_IncludesOrderLevelAdjustments(t *testing.T) {
	repo := newMemoryCartRepository()
	submitter := &fakeOrderSubmitter{response: json.RawMessage(`{}`)}
	svc, carts := newTestCheckoutService(repo, submitter, events.NewMockEventPublisher())
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "owner-1", fakeItem())
	require.NoError(t, err)
	_, err = carts.SelectOrderDiscount(ctx, "owner-1", &models.OrderSelection{
		Name:       "10% off entire order",
		Percentage: models.PercentageFromFloat(10),
	})
	require.NoError(t, err)
	_, err = carts.SelectOrderTax(ctx, "owner-1", &models.OrderSelection{
		Name:       "Sales Tax",
		Percentage: models.PercentageFromFloat(11),
	})
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "owner-1")
	require.NoError(t, err)

	require.Len(t, submitter.submitted, 1)
	order := submitter.submitted[0].Order
	require.Len(t, order.Discounts, 1)
	assert.Equal(t, models.ScopeOrder, order.Discounts[0].Scope)
	assert.Equal(t, "10", order.Discounts[0].Percentage)
	require.Len(t, order.Taxes, 1)
	assert.Equal(t, models.TaxTypeAdditive, order.Taxes[0].Type)
}

func TestCheckout_PublishesEvents(t *testing.T) {
	repo := newMemoryCartRepository()
	submitter := &fakeOrderSubmitter{response: json.RawMessage(`{}`)}
	publisher := events.NewMockEventPublisher()
	svc, carts := newTestCheckoutService(repo, submitter, publisher)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "owner-1", fakeItem())
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "owner-1")
	require.NoError(t, err)

	// checkout.submitted followed by cart.cleared from the post-checkout clear
	require.Len(t, publisher.Events, 2)
	assert.Equal(t, events.EventTypeCheckoutSubmitted, publisher.Events[0].Type)
	assert.Equal(t, events.EventTypeCartCleared, publisher.Events[1].Type)
}

func TestValidateOwnerID(t *testing.T) {
	assert.NoError(t, ValidateOwnerID("owner-1"))
	assert.Error(t, ValidateOwnerID(""))

	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateOwnerID(string(long)))
}

func TestValidateCartItem(t *testing.T) {
	p := int64(-1)
	tests := []struct {
		name  string
		item  models.CartItem
		field string
	}{
		{"missing id", models.CartItem{Name: "x"}, "id"},
		{"missing name", models.CartItem{ID: "a"}, "name"},
		{"negative price", models.CartItem{ID: "a", Name: "x", Price: &p}, "price"},
		{"negative quantity", models.CartItem{ID: "a", Name: "x", Quantity: -1}, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCartItem(&tt.item)
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	valid := fakeItem()
	assert.NoError(t, ValidateCartItem(&valid))
}
