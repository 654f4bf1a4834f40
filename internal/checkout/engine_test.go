package checkout

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func testEngine() *Engine {
	return &Engine{
		Catalog: catalog.Default(),
		Tracer:  sdktrace.NewTracerProvider().Tracer("test"),
	}
}

func TestBuildOrder(t *testing.T) {
	e := testEngine()

	order, err := e.BuildOrder(context.Background(),
		[]CartLine{{ID: "A01", Qty: 2}}, "S-711", "P-COD")
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	line := order.Lines[0]
	assert.Equal(t, "A01", line.ProductID)
	assert.Equal(t, "Alishan High Mountain Oolong", line.Name)
	assert.Equal(t, int64(1890), line.UnitPrice)
	assert.Equal(t, 2, line.Qty)
	assert.Equal(t, int64(3780), line.LineTotal)

	assert.Equal(t, int64(3780), order.ItemsTotal)
	assert.Equal(t, int64(60), order.ShippingFee)
	assert.Equal(t, int64(3840), order.GrandTotal)

	require.NotNil(t, order.Shipping)
	assert.Equal(t, "7-Eleven Pickup", order.Shipping.Name)
	require.NotNil(t, order.Payment)
	assert.Equal(t, "Cash on Delivery", order.Payment.Name)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.False(t, order.CreatedAt.IsZero())
}

func TestBuildOrderEmptyCart(t *testing.T) {
	e := testEngine()

	_, err := e.BuildOrder(context.Background(), nil, "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = e.BuildOrder(context.Background(), []CartLine{}, "S-711", "P-COD")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildOrderNoValidItems(t *testing.T) {
	e := testEngine()

	_, err := e.BuildOrder(context.Background(),
		[]CartLine{{ID: "ZZZ", Qty: 1}, {ID: "", Qty: 3}}, "S-711", "P-COD")
	assert.ErrorIs(t, err, ErrNoValidItems)
}

func TestBuildOrderDropsUnknownProducts(t *testing.T) {
	e := testEngine()

	order, err := e.BuildOrder(context.Background(),
		[]CartLine{{ID: "A01", Qty: 1}, {ID: "ZZZ", Qty: 4}}, "", "")
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	assert.Equal(t, "A01", order.Lines[0].ProductID)
	assert.Equal(t, int64(1890), order.ItemsTotal)
}

func TestBuildOrderUnknownShippingAndPayment(t *testing.T) {
	e := testEngine()

	order, err := e.BuildOrder(context.Background(),
		[]CartLine{{ID: "A01", Qty: 1}}, "S-MOON", "P-IOU")
	require.NoError(t, err)

	assert.Nil(t, order.Shipping)
	assert.Nil(t, order.Payment)
	assert.Equal(t, int64(0), order.ShippingFee)
	assert.Equal(t, order.ItemsTotal, order.GrandTotal)
}

func TestBuildOrderNoShippingSelected(t *testing.T) {
	e := testEngine()

	order, err := e.BuildOrder(context.Background(),
		[]CartLine{{ID: "B01", Qty: 3}}, "", "")
	require.NoError(t, err)

	assert.Nil(t, order.Shipping)
	assert.Equal(t, int64(1440), order.GrandTotal)
}

func TestBuildOrderClampsQty(t *testing.T) {
	e := testEngine()

	order, err := e.BuildOrder(context.Background(),
		[]CartLine{{ID: "A01", Qty: -3}}, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, order.Lines[0].Qty)
	assert.Equal(t, int64(1890), order.Lines[0].LineTotal)

	order, err = e.BuildOrder(context.Background(),
		[]CartLine{{ID: "A01", Qty: 5000}}, "", "")
	require.NoError(t, err)
	assert.Equal(t, 999, order.Lines[0].Qty)
	assert.Equal(t, int64(1890*999), order.Lines[0].LineTotal)
}

func TestBuildOrderTolerantQtyTypes(t *testing.T) {
	e := testEngine()

	order, err := e.BuildOrder(context.Background(),
		[]CartLine{
			{ID: "A01", Qty: float64(2)},
			{ID: "A02", Qty: "3"},
			{ID: "A03", Qty: "abc"},
			{ID: "B01", Qty: nil},
		}, "", "")
	require.NoError(t, err)

	require.Len(t, order.Lines, 4)
	assert.Equal(t, 2, order.Lines[0].Qty)
	assert.Equal(t, 3, order.Lines[1].Qty)
	assert.Equal(t, 1, order.Lines[2].Qty)
	assert.Equal(t, 1, order.Lines[3].Qty)
}

func TestBuildOrderIgnoresSubmittedPrices(t *testing.T) {
	e := testEngine()

	// A tampered cart can only choose ids and quantities; unit prices always
	// come from the catalog.
	order, err := e.BuildOrder(context.Background(),
		[]CartLine{{ID: "A01", Qty: 1}}, "S-711", "")
	require.NoError(t, err)

	p, ok := e.Catalog.ProductByID("A01")
	require.True(t, ok)
	assert.Equal(t, p.Price, order.Lines[0].UnitPrice)
	assert.Equal(t, p.Price+60, order.GrandTotal)
}

func TestBuildOrderUniqueIDs(t *testing.T) {
	e := testEngine()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		order, err := e.BuildOrder(context.Background(),
			[]CartLine{{ID: "A01", Qty: 1}}, "", "")
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "duplicate order id %s", order.ID)
		seen[order.ID] = true
	}
}
