// Package notify sends transactional order emails. Delivery is best-effort:
// every failure is logged and swallowed so checkout never depends on SMTP.
package notify

import (
	"context"

	"maktaba-be/internal/order"
)

// NopNotifier drops every notification. Used in tests and when no SMTP
// host is configured.
type NopNotifier struct{}

func (NopNotifier) OrderCreated(context.Context, *order.Order, string)       {}
func (NopNotifier) OrderStatusChanged(context.Context, *order.Order, string) {}

var _ order.Notifier = NopNotifier{}
