// Package events carries order lifecycle notifications to subscribers
// (websocket clients, the message broker) after a change is committed.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	OrderCreated       Type = "order.created"
	OrderStatusChanged Type = "order.status_changed"
	OrderCrewAssigned  Type = "order.crew_assigned"
	OrderDeleted       Type = "order.deleted"
)

type Event struct {
	Type           Type            `json:"type"`
	OrderID        uint            `json:"orderId"`
	UserID         uint            `json:"userId"`
	DeliveryCrewID *uint           `json:"deliveryCrewId"`
	Status         bool            `json:"status"`
	Total          decimal.Decimal `json:"total"`
	At             time.Time       `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop ทิ้ง event ทั้งหมด
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Multi ส่ง event ให้ทุก publisher แม้ตัวใดตัวหนึ่ง error
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
