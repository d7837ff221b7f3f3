package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/jewel_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// view implements the repository ports over a state the caller has locked.
type view struct {
	st *state
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func clonePayment(p domain.Payment) domain.Payment {
	p.Reference = clonePtr(p.Reference)
	if p.Details.Cheque != nil {
		cheque := *p.Details.Cheque
		cheque.ChequeDate = clonePtr(cheque.ChequeDate)
		cheque.ClearanceDate = clonePtr(cheque.ClearanceDate)
		p.Details.Cheque = &cheque
	}
	p.Reconciliation.ReconciledAt = clonePtr(p.Reconciliation.ReconciledAt)
	p.Approval.ApprovedAt = clonePtr(p.Approval.ApprovedAt)
	p.Refund = clonePtr(p.Refund)
	p.Cancellation = clonePtr(p.Cancellation)
	p.DeletedAt = clonePtr(p.DeletedAt)
	return p
}

func cloneOrder(o domain.Order) domain.Order {
	o.ExpectedDeliveryDate = clonePtr(o.ExpectedDeliveryDate)
	o.ActualStartDate = clonePtr(o.ActualStartDate)
	o.ActualCompletionDate = clonePtr(o.ActualCompletionDate)
	return o
}

func (v *view) FindPaymentByID(_ context.Context, shopID, paymentID string) (*domain.Payment, error) {
	p, ok := v.st.payments[paymentID]
	if !ok || p.ShopID != shopID || p.IsDeleted() {
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
	}
	cp := clonePayment(p)
	return &cp, nil
}

func (v *view) FindPaymentByIDForUpdate(ctx context.Context, shopID, paymentID string) (*domain.Payment, error) {
	return v.FindPaymentByID(ctx, shopID, paymentID)
}

func matchesFilter(p domain.Payment, f portsrepo.PaymentListFilter) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Mode != "" && p.PaymentMode != f.Mode {
		return false
	}
	if f.PartyID != "" && p.Party.PartyID != f.PartyID {
		return false
	}
	if f.ReferenceID != "" && (p.Reference == nil || p.Reference.ReferenceID != f.ReferenceID) {
		return false
	}
	return true
}

func (v *view) ListPayments(_ context.Context, shopID string, filter portsrepo.PaymentListFilter, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	var matched []domain.Payment
	for _, p := range v.st.payments {
		if p.ShopID != shopID || p.IsDeleted() || !matchesFilter(p, filter) {
			continue
		}
		if cursor != nil && !cursor.After(p.CreatedAt, p.PaymentID) {
			continue
		}
		matched = append(matched, clonePayment(p))
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].PaymentID > matched[j].PaymentID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	var next *string
	if len(matched) > limit {
		matched = matched[:limit]
		last := matched[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.PaymentID)
		next = &token
	}
	return matched, next, nil
}

func (v *view) SavePayment(_ context.Context, payment domain.Payment) error {
	if _, exists := v.st.payments[payment.PaymentID]; exists {
		return fmt.Errorf("%w: payment %s", apperrors.ErrDuplicate, payment.PaymentID)
	}
	for _, p := range v.st.payments {
		if p.ShopID == payment.ShopID && p.PaymentNumber == payment.PaymentNumber {
			return fmt.Errorf("%w: payment number %s", apperrors.ErrDuplicate, payment.PaymentNumber)
		}
	}
	v.st.payments[payment.PaymentID] = clonePayment(payment)
	return nil
}

func (v *view) UpdatePayment(_ context.Context, payment domain.Payment) error {
	existing, ok := v.st.payments[payment.PaymentID]
	if !ok || existing.ShopID != payment.ShopID || existing.IsDeleted() {
		return fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, payment.PaymentID)
	}
	v.st.payments[payment.PaymentID] = clonePayment(payment)
	return nil
}

func (v *view) FindReference(_ context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error) {
	if refType == domain.ReferenceOrder {
		o, ok := v.st.orders[refID]
		if !ok || o.ShopID != shopID {
			return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, refID)
		}
		doc := o.AsReference()
		return &doc, nil
	}
	doc, ok := v.st.references[refKey{shopID, refType, refID}]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, refType, refID)
	}
	return &doc, nil
}

func (v *view) FindReferenceForUpdate(ctx context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error) {
	return v.FindReference(ctx, shopID, refType, refID)
}

func (v *view) UpdateReferencePayment(_ context.Context, doc domain.ReferenceDocument) error {
	if doc.ReferenceType == domain.ReferenceOrder {
		o, ok := v.st.orders[doc.DocumentID]
		if !ok || o.ShopID != doc.ShopID {
			return fmt.Errorf("%w: order %s", apperrors.ErrNotFound, doc.DocumentID)
		}
		o = cloneOrder(o)
		o.Payment = doc.Payment
		o.Touch(doc.LastUpdatedBy, doc.LastUpdatedAt)
		v.st.orders[doc.DocumentID] = o
		return nil
	}
	key := refKey{doc.ShopID, doc.ReferenceType, doc.DocumentID}
	existing, ok := v.st.references[key]
	if !ok {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, doc.ReferenceType, doc.DocumentID)
	}
	existing.Payment = doc.Payment
	existing.Touch(doc.LastUpdatedBy, doc.LastUpdatedAt)
	v.st.references[key] = existing
	return nil
}

func (v *view) SaveReference(_ context.Context, doc domain.ReferenceDocument) error {
	if doc.ReferenceType != domain.ReferenceSale && doc.ReferenceType != domain.ReferencePurchase {
		return fmt.Errorf("%w: cannot store %s documents as references", apperrors.ErrValidation, doc.ReferenceType)
	}
	key := refKey{doc.ShopID, doc.ReferenceType, doc.DocumentID}
	if _, exists := v.st.references[key]; exists {
		return fmt.Errorf("%w: %s %s", apperrors.ErrDuplicate, doc.ReferenceType, doc.DocumentID)
	}
	v.st.references[key] = doc
	return nil
}

func (v *view) FindParty(_ context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error) {
	p, ok := v.st.parties[partyKey{shopID, partyType, partyID}]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, partyType, partyID)
	}
	return &p, nil
}

func (v *view) FindPartyForUpdate(ctx context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error) {
	return v.FindParty(ctx, shopID, partyType, partyID)
}

func (v *view) AdjustPartyBalance(_ context.Context, shopID string, partyType domain.PartyType, partyID string, delta decimal.Decimal, userID string, now time.Time) error {
	key := partyKey{shopID, partyType, partyID}
	p, ok := v.st.parties[key]
	if !ok {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, partyType, partyID)
	}
	p.Balance = p.Balance.Add(delta)
	p.Touch(userID, now)
	v.st.parties[key] = p
	return nil
}

func (v *view) SaveParty(_ context.Context, party domain.PartyAccount) error {
	key := partyKey{party.ShopID, party.PartyType, party.PartyID}
	if _, exists := v.st.parties[key]; exists {
		return fmt.Errorf("%w: %s %s", apperrors.ErrDuplicate, party.PartyType, party.PartyID)
	}
	v.st.parties[key] = party
	return nil
}

func (v *view) FindOrderByID(_ context.Context, shopID, orderID string) (*domain.Order, error) {
	o, ok := v.st.orders[orderID]
	if !ok || o.ShopID != shopID {
		return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
	}
	cp := cloneOrder(o)
	return &cp, nil
}

func (v *view) FindOrderByIDForUpdate(ctx context.Context, shopID, orderID string) (*domain.Order, error) {
	return v.FindOrderByID(ctx, shopID, orderID)
}

func (v *view) SaveOrder(_ context.Context, order domain.Order) error {
	if _, exists := v.st.orders[order.OrderID]; exists {
		return fmt.Errorf("%w: order %s", apperrors.ErrDuplicate, order.OrderID)
	}
	for _, o := range v.st.orders {
		if o.ShopID == order.ShopID && o.OrderNumber == order.OrderNumber {
			return fmt.Errorf("%w: order number %s", apperrors.ErrDuplicate, order.OrderNumber)
		}
	}
	v.st.orders[order.OrderID] = cloneOrder(order)
	return nil
}

// UpdateOrder writes status, dates and notes. The payment summary is owned by
// UpdateReferencePayment and is left untouched.
func (v *view) UpdateOrder(_ context.Context, order domain.Order) error {
	existing, ok := v.st.orders[order.OrderID]
	if !ok || existing.ShopID != order.ShopID {
		return fmt.Errorf("%w: order %s", apperrors.ErrNotFound, order.OrderID)
	}
	updated := cloneOrder(order)
	updated.Payment = existing.Payment
	v.st.orders[order.OrderID] = updated
	return nil
}
