package notify

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"maktaba-be/internal/catalog"
	"maktaba-be/internal/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *order.Order {
	wilaya := "الجزائر"
	return &order.Order{
		ID:           7,
		CustomerName: "Amine Benali",
		Address:      "12 Rue Didouche Mourad",
		City:         "Algiers",
		WilayaName:   &wilaya,
		Status:       order.StatusShipped,
		Total:        decimal.NewFromInt(5400),
		Items: []order.Item{
			{
				Quantity:  2,
				UnitPrice: decimal.NewFromInt(2500),
				Book:      &catalog.Book{TitleAr: "مقدمة ابن خلدون"},
			},
		},
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "تم الشحن", StatusLabel(order.StatusShipped))
	assert.Equal(t, "تم الإلغاء", StatusLabel(order.StatusCancelled))
	assert.Equal(t, "weird", StatusLabel(order.Status("weird")))
}

func TestRenderNewOrder(t *testing.T) {
	subject, html, err := renderNewOrder(sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, subject, "#7")
	assert.Contains(t, html, "Amine Benali")
	assert.Contains(t, html, "مقدمة ابن خلدون")
	assert.Contains(t, html, "2500 DZD")
	assert.Contains(t, html, "5400 DZD")
	assert.Contains(t, html, `dir="rtl"`)
}

func TestRenderStatusUpdate(t *testing.T) {
	subject, html, err := renderStatusUpdate(sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, subject, "تحديث حالة الطلب")
	assert.Contains(t, html, "تم الشحن")
	assert.Contains(t, html, "12 Rue Didouche Mourad")
	assert.Contains(t, html, "الجزائر")
}

func TestRenderFallbackTitleForDeletedBook(t *testing.T) {
	o := sampleOrder()
	o.Items[0].Book = nil

	_, html, err := renderNewOrder(o)
	require.NoError(t, err)
	assert.Contains(t, html, "كتاب")
}

func TestOrderCreatedCopiesStore(t *testing.T) {
	var sent []string
	n := NewSMTPNotifier("localhost", "25", "", "", "store@daralibenzid.dz")
	n.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, strings.Join(to, ","))
		return nil
	}

	n.OrderCreated(context.Background(), sampleOrder(), "user@example.com")

	require.Len(t, sent, 2)
	assert.Equal(t, "user@example.com", sent[0])
	assert.Equal(t, "store@daralibenzid.dz", sent[1])
}

func TestGuestOrderOnlyNotifiesStore(t *testing.T) {
	var sent []string
	n := NewSMTPNotifier("localhost", "25", "", "", "store@daralibenzid.dz")
	n.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, strings.Join(to, ","))
		return nil
	}

	n.OrderCreated(context.Background(), sampleOrder(), "")

	require.Len(t, sent, 1)
	assert.Equal(t, "store@daralibenzid.dz", sent[0])
}

func TestStatusChangeSkipsUnknownEmail(t *testing.T) {
	calls := 0
	n := NewSMTPNotifier("localhost", "25", "", "", "store@daralibenzid.dz")
	n.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		calls++
		return nil
	}

	n.OrderStatusChanged(context.Background(), sampleOrder(), "")
	assert.Zero(t, calls)
}
