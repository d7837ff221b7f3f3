package domain

import "time"

// OrderStatus is the lifecycle state of a (custom jewelry) order.
type OrderStatus string

const (
	OrderDraft        OrderStatus = "draft"
	OrderConfirmed    OrderStatus = "confirmed"
	OrderInProgress   OrderStatus = "in_progress"
	OrderOnHold       OrderStatus = "on_hold"
	OrderQualityCheck OrderStatus = "quality_check"
	OrderReady        OrderStatus = "ready"
	OrderDelivered    OrderStatus = "delivered"
	OrderCompleted    OrderStatus = "completed"
	OrderCancelled    OrderStatus = "cancelled"
)

// AllOrderStatuses lists every order status in declaration order.
var AllOrderStatuses = []OrderStatus{
	OrderDraft, OrderConfirmed, OrderInProgress, OrderOnHold, OrderQualityCheck,
	OrderReady, OrderDelivered, OrderCompleted, OrderCancelled,
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderDraft:        {OrderConfirmed, OrderCancelled},
	OrderConfirmed:    {OrderInProgress, OrderCancelled},
	OrderInProgress:   {OrderOnHold, OrderQualityCheck, OrderCancelled},
	OrderOnHold:       {OrderInProgress, OrderCancelled},
	OrderQualityCheck: {OrderReady, OrderInProgress},
	OrderReady:        {OrderDelivered},
	OrderDelivered:    {OrderCompleted},
}

func (s OrderStatus) IsValid() bool {
	for _, st := range AllOrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal returns true for completed and cancelled orders.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransitionTo checks the order transition table.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Order is a customer order. It doubles as a reference document for payments.
type Order struct {
	OrderID              string         `json:"orderId"`
	ShopID               string         `json:"shopId"`
	OrderNumber          string         `json:"orderNumber"`
	CustomerID           string         `json:"customerId"`
	CustomerName         string         `json:"customerName"`
	Status               OrderStatus    `json:"status"`
	Payment              PaymentSummary `json:"payment"`
	ExpectedDeliveryDate *time.Time     `json:"expectedDeliveryDate,omitempty"`
	ActualStartDate      *time.Time     `json:"actualStartDate,omitempty"`
	ActualCompletionDate *time.Time     `json:"actualCompletionDate,omitempty"`
	Notes                string         `json:"notes,omitempty"`
	AuditFields
}

// TransitionTo moves the order along the transition table and stamps the
// start/completion dates.
func (o *Order) TransitionTo(target OrderStatus, now time.Time) error {
	if !o.Status.CanTransitionTo(target) {
		return &InvalidTransitionError{Entity: "order", From: string(o.Status), To: string(target)}
	}
	o.Status = target
	switch target {
	case OrderInProgress:
		if o.ActualStartDate == nil {
			o.ActualStartDate = &now
		}
	case OrderCompleted:
		o.ActualCompletionDate = &now
	}
	return nil
}

// AsReference exposes the order as a reference document.
func (o *Order) AsReference() ReferenceDocument {
	return ReferenceDocument{
		DocumentID:    o.OrderID,
		ShopID:        o.ShopID,
		ReferenceType: ReferenceOrder,
		Number:        o.OrderNumber,
		Payment:       o.Payment,
		AuditFields:   o.AuditFields,
	}
}
