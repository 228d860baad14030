package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	price := MustMoney("19.99")
	assert.Equal(t, "59.97", price.Times(3).StringFixed(2))
	assert.Equal(t, "20.00", price.Plus(MustMoney("0.01")).StringFixed(2))
	assert.Equal(t, "0.10", MustMoney("0.1").Plus(MustMoney("0.2")).Plus(MustMoney("-0.2")).StringFixed(2))
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Price Money `json:"price"`
	}{MustMoney("5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"5.00"}`, string(b))

	var in struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"12.30","b":7.5}`), &in))
	assert.Equal(t, "12.30", in.A.StringFixed(2))
	assert.Equal(t, "7.50", in.B.StringFixed(2))
}

func TestOrderEnums(t *testing.T) {
	assert.True(t, OrderStatusInProgress.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.True(t, PaymentMethodBank.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
}

func TestNewOrderItemSnapshotsPrice(t *testing.T) {
	product := Product{Price: MustMoney("2.50")}
	product.ID = 9
	item := NewOrderItem(1, product, 4)
	assert.Equal(t, uint(9), item.ProductID)
	assert.Equal(t, "10.00", item.Price.StringFixed(2))

	product.Price = MustMoney("100")
	assert.Equal(t, "10.00", item.Price.StringFixed(2))
}
