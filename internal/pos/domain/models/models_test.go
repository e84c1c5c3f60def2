package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Dana", LastName: "Karimova"}
	assert.Equal(t, "Dana Karimova", u.FullName())

	solo := User{FirstName: "Dana"}
	assert.Equal(t, "Dana", solo.FullName())
}

func TestOrderItemSubtotal(t *testing.T) {
	it := OrderItem{Quantity: 3, Price: decimal.RequireFromString("5.50")}
	assert.True(t, it.Subtotal().Equal(decimal.RequireFromString("16.50")))
}

func TestOrderItemLookups(t *testing.T) {
	ready := time.Now()
	o := Order{Items: []OrderItem{
		{ID: 1, ProductID: 10, ReadyAt: &ready},
		{ID: 2, ProductID: 10},
		{ID: 3, ProductID: 11},
	}}

	assert.Equal(t, int64(2), o.Item(2).ID)
	assert.Nil(t, o.Item(99))

	// Ready lines are skipped so repeated adds merge into the open row.
	assert.Equal(t, int64(2), o.UnreadyItemForProduct(10).ID)
	assert.Nil(t, o.UnreadyItemForProduct(12))
}
