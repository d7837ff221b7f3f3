package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/core/services"
	"github.com/SscSPs/jewel_ledger/internal/dto"
	"github.com/SscSPs/jewel_ledger/internal/middleware"
	"github.com/SscSPs/jewel_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testShop   = "shop-1"
	testActor  = "user-1"
	customerID = "cust-1"
	supplierID = "sup-1"
)

var fixedNow = time.Date(2026, 4, 10, 11, 30, 0, 0, time.UTC)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

type PaymentServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.Store
	audit    *MockAuditRecorder
	payments portssvc.PaymentSvcFacade
	orders   portssvc.OrderSvcFacade
	parties  portssvc.PartySvcFacade
	refs     portssvc.ReferenceSvcFacade
	order    *domain.Order
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.ctx = middleware.WithActor(context.Background(), testActor, "org-1", []string{testShop})
	s.store = memory.NewStore()
	s.audit = new(MockAuditRecorder)
	s.audit.On("Record", mock.Anything, mock.Anything).Return(nil)

	clock := func() time.Time { return fixedNow }
	repos := s.store.Provider(memory.NewSequence())
	s.payments = services.NewPaymentService(repos,
		services.WithPaymentAuditRecorder(s.audit),
		services.WithPaymentClock(clock))
	s.orders = services.NewOrderService(repos.OrderRepo, repos.TxManager, s.audit, clock)
	s.parties = services.NewPartyService(repos.PartyRepo, clock)
	s.refs = services.NewReferenceService(repos.ReferenceRepo, clock)

	_, err := s.parties.CreateParty(s.ctx, testShop, dto.CreatePartyRequest{PartyID: customerID, PartyType: domain.PartyCustomer, Name: "Asha"}, testActor)
	s.Require().NoError(err)
	_, err = s.parties.CreateParty(s.ctx, testShop, dto.CreatePartyRequest{PartyID: supplierID, PartyType: domain.PartySupplier, Name: "Goldsmiths Ltd", OpeningBalance: dec(-5000)}, testActor)
	s.Require().NoError(err)

	s.order, err = s.orders.CreateOrder(s.ctx, testShop, dto.CreateOrderRequest{OrderNumber: "ORD-1", CustomerID: customerID, TotalAmount: dec(10000)}, testActor)
	s.Require().NoError(err)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

// --- helpers ---

func (s *PaymentServiceTestSuite) receipt(amount int64, mode domain.PaymentMode) dto.CreatePaymentRequest {
	req := dto.CreatePaymentRequest{
		Amount:          dec(amount),
		TransactionType: domain.Receipt,
		PaymentMode:     mode,
		PartyType:       domain.PartyCustomer,
		PartyID:         customerID,
		PartyName:       "Asha",
		ReferenceType:   domain.ReferenceOrder,
		ReferenceID:     s.order.OrderID,
		ReferenceNumber: s.order.OrderNumber,
	}
	if mode == domain.ModeCheque {
		req.Cheque = &dto.ChequeRequest{ChequeNumber: "004512"}
	}
	return req
}

func (s *PaymentServiceTestSuite) create(req dto.CreatePaymentRequest) *domain.PaymentOutcome {
	out, err := s.payments.CreatePayment(s.ctx, testShop, req, testActor)
	s.Require().NoError(err)
	return out
}

func (s *PaymentServiceTestSuite) orderSummary() domain.PaymentSummary {
	o, err := s.orders.GetOrder(s.ctx, testShop, s.order.OrderID)
	s.Require().NoError(err)
	return o.Payment
}

func (s *PaymentServiceTestSuite) balance(partyType domain.PartyType, id string) decimal.Decimal {
	p, err := s.parties.GetParty(s.ctx, testShop, partyType, id)
	s.Require().NoError(err)
	return p.Balance
}

func (s *PaymentServiceTestSuite) assertSummary(sum domain.PaymentSummary, paid, due int64, status domain.SettlementStatus) {
	s.True(sum.PaidAmount.Equal(dec(paid)), "paid: got %s want %d", sum.PaidAmount, paid)
	s.True(sum.DueAmount.Equal(dec(due)), "due: got %s want %d", sum.DueAmount, due)
	s.Equal(status, sum.PaymentStatus)
	s.True(sum.IsBalanced())
}

func (s *PaymentServiceTestSuite) assertDecimal(want int64, got decimal.Decimal, msg string) {
	s.True(got.Equal(dec(want)), "%s: got %s want %d", msg, got, want)
}

// --- creation ---

func (s *PaymentServiceTestSuite) TestCreatePayment_CashAgainstOrder() {
	out := s.create(s.receipt(4000, domain.ModeCash))

	s.Equal("PAY000001", out.Payment.PaymentNumber)
	s.Equal(domain.PaymentCompleted, out.Payment.Status)
	s.Equal(domain.ApprovalPending, out.Payment.Approval.ApprovalStatus)
	s.True(out.Payment.Effects.ReferenceApplied)
	s.True(out.Payment.Effects.BalanceApplied)
	s.Require().Len(out.Effects, 2)
	s.Equal(domain.EffectReference, out.Effects[0].Kind)
	s.Equal(domain.EffectBalance, out.Effects[1].Kind)
	s.assertDecimal(-4000, out.Effects[1].Delta, "balance delta")

	s.assertSummary(s.orderSummary(), 4000, 6000, domain.SettlementPartial)
	s.assertDecimal(-4000, s.balance(domain.PartyCustomer, customerID), "customer balance")

	ev := s.audit.lastEvent()
	s.Equal(services.ActionPaymentCreated, ev.Action)
	s.Equal("org-1", ev.Org)
	s.Equal(testShop, ev.Shop)
	s.Equal(domain.SeverityInfo, ev.Severity)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_InitialStatusByMode() {
	upi := s.receipt(100, domain.ModeUPI)
	upi.TransactionID = "UTR-77"
	s.Equal(domain.PaymentCompleted, s.create(upi).Payment.Status)

	s.Equal(domain.PaymentPending, s.create(s.receipt(100, domain.ModeUPI)).Payment.Status)
	s.Equal(domain.PaymentPending, s.create(s.receipt(100, domain.ModeCard)).Payment.Status)

	cheque := s.create(s.receipt(100, domain.ModeCheque)).Payment
	s.Equal(domain.PaymentPending, cheque.Status)
	s.Require().NotNil(cheque.Details.Cheque)
	s.Equal(domain.ChequePending, cheque.Details.Cheque.ChequeStatus)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_NumbersIncrease() {
	for i := 1; i <= 3; i++ {
		out := s.create(s.receipt(10, domain.ModeCash))
		s.Equal(fmt.Sprintf("PAY%06d", i), out.Payment.PaymentNumber)
	}
}

func (s *PaymentServiceTestSuite) TestCreatePayment_Validation() {
	tests := []struct {
		name   string
		mutate func(*dto.CreatePaymentRequest)
	}{
		{"zero amount", func(r *dto.CreatePaymentRequest) { r.Amount = decimal.Zero }},
		{"negative amount", func(r *dto.CreatePaymentRequest) { r.Amount = dec(-1) }},
		{"sub-cent amount", func(r *dto.CreatePaymentRequest) { r.Amount = decimal.RequireFromString("0.005") }},
		{"amount with a fraction of a cent", func(r *dto.CreatePaymentRequest) { r.Amount = decimal.RequireFromString("250.129") }},
		{"bad mode", func(r *dto.CreatePaymentRequest) { r.PaymentMode = "barter" }},
		{"bad transaction type", func(r *dto.CreatePaymentRequest) { r.TransactionType = "credit" }},
		{"bad party type", func(r *dto.CreatePaymentRequest) { r.PartyType = "vendor" }},
		{"customer without id", func(r *dto.CreatePaymentRequest) { r.PartyID = "" }},
		{"reference without id", func(r *dto.CreatePaymentRequest) { r.ReferenceID = "" }},
		{"cheque without number", func(r *dto.CreatePaymentRequest) {
			r.PaymentMode = domain.ModeCheque
			r.Cheque = nil
		}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.receipt(100, domain.ModeCash)
			tt.mutate(&req)
			_, err := s.payments.CreatePayment(s.ctx, testShop, req, testActor)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	s.assertSummary(s.orderSummary(), 0, 10000, domain.SettlementUnpaid)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_TrailingZerosAreWholeCents() {
	req := s.receipt(0, domain.ModeCash)
	req.Amount = decimal.RequireFromString("1250.500")
	out := s.create(req)
	s.True(out.Payment.Amount.Equal(decimal.RequireFromString("1250.5")))

	sum := s.orderSummary()
	s.True(sum.PaidAmount.Equal(decimal.RequireFromString("1250.50")), sum.PaidAmount.String())
	s.True(sum.DueAmount.Equal(decimal.RequireFromString("8749.50")), sum.DueAmount.String())
}

func (s *PaymentServiceTestSuite) TestCreatePayment_MissingReferenceIsSkipped() {
	req := s.receipt(700, domain.ModeCash)
	req.ReferenceType = domain.ReferenceSale
	req.ReferenceID = "sale-does-not-exist"

	out := s.create(req)

	s.Require().Len(out.Effects, 2)
	s.True(out.Effects[0].Skipped)
	s.Equal("reference document not found", out.Effects[0].Reason)
	s.False(out.Payment.Effects.ReferenceApplied)
	s.True(out.Payment.Effects.BalanceApplied)
	s.True(out.HasSkippedEffects())
	s.Equal(domain.SeverityWarning, s.audit.lastEvent().Severity)

	// Cancelling must not try to reverse the reference it never applied.
	cancelled, err := s.payments.CancelPayment(s.ctx, testShop, out.Payment.PaymentID, "entered twice", testActor)
	s.Require().NoError(err)
	s.Require().Len(cancelled.Effects, 1)
	s.Equal(domain.EffectBalance, cancelled.Effects[0].Kind)
	s.assertDecimal(0, s.balance(domain.PartyCustomer, customerID), "customer balance")
}

func (s *PaymentServiceTestSuite) TestCreatePayment_MissingPartyIsSkipped() {
	req := s.receipt(500, domain.ModeCash)
	req.PartyID = "ghost"

	out := s.create(req)
	s.True(out.Payment.Effects.ReferenceApplied)
	s.False(out.Payment.Effects.BalanceApplied)
	s.Require().Len(out.Effects, 2)
	s.True(out.Effects[1].Skipped)
	s.assertSummary(s.orderSummary(), 500, 9500, domain.SettlementPartial)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_OtherPartyHasNoBalanceEffect() {
	req := s.receipt(300, domain.ModeCash)
	req.PartyType = domain.PartyOther
	req.PartyID = ""

	out := s.create(req)
	s.Require().Len(out.Effects, 1)
	s.Equal(domain.EffectReference, out.Effects[0].Kind)
	s.False(out.HasSkippedEffects())
}

func (s *PaymentServiceTestSuite) TestCreatePayment_UnprocessableReversalRollsBack() {
	// A payout against an unpaid sale would push paid below zero.
	sale, err := s.refs.CreateReference(s.ctx, testShop, dto.CreateReferenceRequest{DocumentID: "sale-1", ReferenceType: domain.ReferenceSale, Number: "INV-1", TotalAmount: dec(800)}, testActor)
	s.Require().NoError(err)

	req := s.receipt(200, domain.ModeCash)
	req.TransactionType = domain.Payout
	req.ReferenceType = domain.ReferenceSale
	req.ReferenceID = sale.DocumentID

	_, err = s.payments.CreatePayment(s.ctx, testShop, req, testActor)
	s.ErrorIs(err, apperrors.ErrUnprocessable)

	list, err := s.payments.ListPayments(s.ctx, testShop, dto.ListPaymentsParams{})
	s.Require().NoError(err)
	s.Empty(list.Payments, "nothing is persisted when an effect fails")
	s.assertDecimal(0, s.balance(domain.PartyCustomer, customerID), "customer balance")
}

// --- the order/cheque scenario ---

func (s *PaymentServiceTestSuite) scenarioPayments() (*domain.PaymentOutcome, *domain.PaymentOutcome) {
	a := s.create(s.receipt(4000, domain.ModeCash))
	s.assertSummary(s.orderSummary(), 4000, 6000, domain.SettlementPartial)
	s.assertDecimal(-4000, s.balance(domain.PartyCustomer, customerID), "after A")

	b := s.create(s.receipt(6000, domain.ModeCheque))
	s.Equal(domain.PaymentPending, b.Payment.Status)
	s.True(b.Payment.Effects.ReferenceApplied)
	s.False(b.Payment.Effects.BalanceApplied, "cheque balance waits for clearance")
	s.assertSummary(s.orderSummary(), 10000, 0, domain.SettlementPaid)
	s.assertDecimal(-4000, s.balance(domain.PartyCustomer, customerID), "after B")
	return a, b
}

func (s *PaymentServiceTestSuite) TestScenario_ChequeClears() {
	_, b := s.scenarioPayments()

	clearance := time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)
	out, err := s.payments.ClearCheque(s.ctx, testShop, b.Payment.PaymentID, &clearance, testActor)
	s.Require().NoError(err)
	s.Equal(domain.PaymentCompleted, out.Payment.Status)
	s.Equal(domain.ChequeCleared, out.Payment.Details.Cheque.ChequeStatus)
	s.Equal(clearance, *out.Payment.Details.Cheque.ClearanceDate)
	s.Require().Len(out.Effects, 1, "only the deferred balance is applied")
	s.Equal(domain.EffectBalance, out.Effects[0].Kind)

	s.assertSummary(s.orderSummary(), 10000, 0, domain.SettlementPaid)
	s.assertDecimal(-10000, s.balance(domain.PartyCustomer, customerID), "after clearance")

	_, err = s.payments.ClearCheque(s.ctx, testShop, b.Payment.PaymentID, nil, testActor)
	s.ErrorIs(err, apperrors.ErrConflict, "a cheque clears once")
	_, err = s.payments.BounceCheque(s.ctx, testShop, b.Payment.PaymentID, "late", testActor)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.assertDecimal(-10000, s.balance(domain.PartyCustomer, customerID), "unchanged")
}

func (s *PaymentServiceTestSuite) TestScenario_ChequeBounces() {
	_, b := s.scenarioPayments()

	out, err := s.payments.BounceCheque(s.ctx, testShop, b.Payment.PaymentID, "insufficient funds", testActor)
	s.Require().NoError(err)
	s.Equal(domain.PaymentFailed, out.Payment.Status)
	s.Equal(domain.ChequeBounced, out.Payment.Details.Cheque.ChequeStatus)
	s.Equal("insufficient funds", out.Payment.Details.Cheque.BounceReason)
	s.Require().Len(out.Effects, 1, "the balance was never applied, so only the reference is reversed")

	s.assertSummary(s.orderSummary(), 4000, 6000, domain.SettlementPartial)
	s.assertDecimal(-4000, s.balance(domain.PartyCustomer, customerID), "after bounce")

	ev := s.audit.lastEvent()
	s.Equal(services.ActionChequeBounced, ev.Action)
	s.Equal(domain.SeverityWarning, ev.Severity)

	_, err = s.payments.ClearCheque(s.ctx, testShop, b.Payment.PaymentID, nil, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *PaymentServiceTestSuite) TestCheque_Rules() {
	cash := s.create(s.receipt(100, domain.ModeCash))
	_, err := s.payments.ClearCheque(s.ctx, testShop, cash.Payment.PaymentID, nil, testActor)
	s.ErrorIs(err, apperrors.ErrValidation)

	cheque := s.create(s.receipt(100, domain.ModeCheque))
	_, err = s.payments.BounceCheque(s.ctx, testShop, cheque.Payment.PaymentID, "  ", testActor)
	s.ErrorIs(err, apperrors.ErrValidation, "bounce needs a reason")
}

func (s *PaymentServiceTestSuite) TestUpdateStatus_ChequeRoutesThroughClearAndBounce() {
	c1 := s.create(s.receipt(1000, domain.ModeCheque))
	out, err := s.payments.UpdatePaymentStatus(s.ctx, testShop, c1.Payment.PaymentID, domain.PaymentCompleted, testActor)
	s.Require().NoError(err)
	s.Equal(domain.ChequeCleared, out.Payment.Details.Cheque.ChequeStatus)
	s.True(out.Payment.Effects.BalanceApplied)

	c2 := s.create(s.receipt(1000, domain.ModeCheque))
	out, err = s.payments.UpdatePaymentStatus(s.ctx, testShop, c2.Payment.PaymentID, domain.PaymentFailed, testActor)
	s.Require().NoError(err)
	s.Equal(domain.ChequeBounced, out.Payment.Details.Cheque.ChequeStatus)
	s.False(out.Payment.Effects.ReferenceApplied)

	s.assertSummary(s.orderSummary(), 1000, 9000, domain.SettlementPartial)
	s.assertDecimal(-1000, s.balance(domain.PartyCustomer, customerID), "customer balance")
}

// --- round trip, cancel, delete ---

func (s *PaymentServiceTestSuite) TestRoundTrip_CreateThenCancelRestoresState() {
	for _, mode := range []domain.PaymentMode{domain.ModeCash, domain.ModeCard, domain.ModeCheque} {
		s.Run(string(mode), func() {
			beforeSummary := s.orderSummary()
			beforeBalance := s.balance(domain.PartyCustomer, customerID)

			out := s.create(s.receipt(2500, mode))
			cancelled, err := s.payments.CancelPayment(s.ctx, testShop, out.Payment.PaymentID, "customer changed mind", testActor)
			s.Require().NoError(err)
			s.Equal(domain.PaymentCancelled, cancelled.Payment.Status)
			s.Require().NotNil(cancelled.Payment.Cancellation)
			s.Equal(testActor, cancelled.Payment.Cancellation.CancelledBy)
			s.Equal(domain.AppliedEffects{}, cancelled.Payment.Effects)

			after := s.orderSummary()
			s.True(beforeSummary.PaidAmount.Equal(after.PaidAmount))
			s.True(beforeSummary.DueAmount.Equal(after.DueAmount))
			s.Equal(beforeSummary.PaymentStatus, after.PaymentStatus)
			s.True(beforeBalance.Equal(s.balance(domain.PartyCustomer, customerID)))
		})
	}
}

func (s *PaymentServiceTestSuite) TestCancel_Twice() {
	out := s.create(s.receipt(100, domain.ModeCash))
	_, err := s.payments.CancelPayment(s.ctx, testShop, out.Payment.PaymentID, "dup", testActor)
	s.Require().NoError(err)

	_, err = s.payments.CancelPayment(s.ctx, testShop, out.Payment.PaymentID, "dup", testActor)
	s.ErrorIs(err, apperrors.ErrConflict)
	var te *domain.InvalidTransitionError
	s.ErrorAs(err, &te)
	s.assertSummary(s.orderSummary(), 0, 10000, domain.SettlementUnpaid)
}

func (s *PaymentServiceTestSuite) TestCancel_RequiresReason() {
	out := s.create(s.receipt(100, domain.ModeCash))
	_, err := s.payments.CancelPayment(s.ctx, testShop, out.Payment.PaymentID, "", testActor)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PaymentServiceTestSuite) TestDelete() {
	card := s.create(s.receipt(1200, domain.ModeCard))
	s.assertSummary(s.orderSummary(), 1200, 8800, domain.SettlementPartial)

	out, err := s.payments.DeletePayment(s.ctx, testShop, card.Payment.PaymentID, testActor)
	s.Require().NoError(err)
	s.NotNil(out.Payment.DeletedAt)
	s.assertSummary(s.orderSummary(), 0, 10000, domain.SettlementUnpaid)
	s.assertDecimal(0, s.balance(domain.PartyCustomer, customerID), "customer balance")

	_, err = s.payments.GetPayment(s.ctx, testShop, card.Payment.PaymentID)
	s.ErrorIs(err, apperrors.ErrNotFound, "deleted payments are invisible")
	_, err = s.payments.DeletePayment(s.ctx, testShop, card.Payment.PaymentID, testActor)
	s.ErrorIs(err, apperrors.ErrNotFound)

	cash := s.create(s.receipt(100, domain.ModeCash))
	_, err = s.payments.DeletePayment(s.ctx, testShop, cash.Payment.PaymentID, testActor)
	s.ErrorIs(err, apperrors.ErrConflict, "completed payments cannot be deleted")
}

// --- status machine ---

func (s *PaymentServiceTestSuite) TestUpdateStatus() {
	card := s.create(s.receipt(1000, domain.ModeCard))

	out, err := s.payments.UpdatePaymentStatus(s.ctx, testShop, card.Payment.PaymentID, domain.PaymentCompleted, testActor)
	s.Require().NoError(err)
	s.Equal(domain.PaymentCompleted, out.Payment.Status)
	s.Empty(out.Effects, "effects were applied at creation")
	s.assertSummary(s.orderSummary(), 1000, 9000, domain.SettlementPartial)

	_, err = s.payments.UpdatePaymentStatus(s.ctx, testShop, card.Payment.PaymentID, domain.PaymentPending, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)

	_, err = s.payments.UpdatePaymentStatus(s.ctx, testShop, card.Payment.PaymentID, domain.PaymentRefunded, testActor)
	s.ErrorIs(err, apperrors.ErrConflict, "refunded is reached only through a refund")
	got, err := s.payments.GetPayment(s.ctx, testShop, card.Payment.PaymentID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentCompleted, got.Status)
	s.Nil(got.Refund)

	_, err = s.payments.UpdatePaymentStatus(s.ctx, testShop, card.Payment.PaymentID, "settled", testActor)
	s.ErrorIs(err, apperrors.ErrValidation)

	wallet := s.create(s.receipt(500, domain.ModeWallet))
	out, err = s.payments.UpdatePaymentStatus(s.ctx, testShop, wallet.Payment.PaymentID, domain.PaymentFailed, testActor)
	s.Require().NoError(err)
	s.Len(out.Effects, 2, "failing reverses both effects")
	s.assertSummary(s.orderSummary(), 1000, 9000, domain.SettlementPartial)

	_, err = s.payments.UpdatePaymentStatus(s.ctx, testShop, wallet.Payment.PaymentID, domain.PaymentCompleted, testActor)
	s.ErrorIs(err, apperrors.ErrConflict, "failed is terminal")

	ev := s.audit.lastEvent()
	s.Equal(services.ActionPaymentStatusUpdated, ev.Action)
	s.Equal("pending", ev.Metadata["from_status"])
}

func (s *PaymentServiceTestSuite) TestUpdateStatus_CancelledReversesEffects() {
	out := s.create(s.receipt(900, domain.ModeCash))
	cancelled, err := s.payments.UpdatePaymentStatus(s.ctx, testShop, out.Payment.PaymentID, domain.PaymentCancelled, testActor)
	s.Require().NoError(err)
	s.Equal(domain.PaymentCancelled, cancelled.Payment.Status)
	s.assertSummary(s.orderSummary(), 0, 10000, domain.SettlementUnpaid)
}

// --- refunds ---

func (s *PaymentServiceTestSuite) TestRefund_Partial() {
	a := s.create(s.receipt(4000, domain.ModeCash))

	res, err := s.payments.RefundPayment(s.ctx, testShop, a.Payment.PaymentID, dto.RefundPaymentRequest{Amount: dec(1500), Reason: "returned earrings"}, testActor)
	s.Require().NoError(err)

	refund := res.Refund.Payment
	s.Equal(domain.Payout, refund.TransactionType)
	s.Equal(domain.PaymentCompleted, refund.Status)
	s.Equal(domain.ModeCash, refund.PaymentMode)
	s.Equal("PAY000002", refund.PaymentNumber)
	s.Require().NotNil(refund.Refund)
	s.True(refund.Refund.IsRefund)
	s.Equal(a.Payment.PaymentID, refund.Refund.OriginalPaymentID)
	s.Equal(a.Payment.Party, refund.Party)
	s.Equal(domain.PaymentRefunded, res.Original.Status)

	s.assertSummary(s.orderSummary(), 2500, 7500, domain.SettlementPartial)
	s.assertDecimal(-2500, s.balance(domain.PartyCustomer, customerID), "net of receipt and refund")

	original, err := s.payments.GetPayment(s.ctx, testShop, a.Payment.PaymentID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentRefunded, original.Status)
	s.True(original.Effects.ReferenceApplied, "refunded payments keep their effects")
}

func (s *PaymentServiceTestSuite) TestRefund_Bounds() {
	a := s.create(s.receipt(4000, domain.ModeCash))

	_, err := s.payments.RefundPayment(s.ctx, testShop, a.Payment.PaymentID, dto.RefundPaymentRequest{Amount: dec(4001), Reason: "too much"}, testActor)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.payments.RefundPayment(s.ctx, testShop, a.Payment.PaymentID, dto.RefundPaymentRequest{Amount: decimal.Zero, Reason: "zero"}, testActor)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.payments.RefundPayment(s.ctx, testShop, a.Payment.PaymentID, dto.RefundPaymentRequest{Amount: dec(10)}, testActor)
	s.ErrorIs(err, apperrors.ErrValidation, "reason required")
	_, err = s.payments.RefundPayment(s.ctx, testShop, a.Payment.PaymentID, dto.RefundPaymentRequest{Amount: decimal.RequireFromString("10.005"), Reason: "sub-cent"}, testActor)
	s.ErrorIs(err, apperrors.ErrValidation)

	res, err := s.payments.RefundPayment(s.ctx, testShop, a.Payment.PaymentID, dto.RefundPaymentRequest{Amount: dec(4000), Reason: "full"}, testActor)
	s.Require().NoError(err)
	s.assertSummary(s.orderSummary(), 0, 10000, domain.SettlementUnpaid)

	_, err = s.payments.RefundPayment(s.ctx, testShop, a.Payment.PaymentID, dto.RefundPaymentRequest{Amount: dec(1), Reason: "again"}, testActor)
	s.ErrorIs(err, apperrors.ErrConflict, "original is no longer completed")
	_, err = s.payments.CancelPayment(s.ctx, testShop, a.Payment.PaymentID, "late cancel", testActor)
	s.ErrorIs(err, apperrors.ErrConflict, "refunded is terminal")
	_, err = s.payments.UpdatePaymentStatus(s.ctx, testShop, a.Payment.PaymentID, domain.PaymentCancelled, testActor)
	s.ErrorIs(err, apperrors.ErrConflict, "refunded is terminal")
	s.assertSummary(s.orderSummary(), 0, 10000, domain.SettlementUnpaid)

	_, err = s.payments.RefundPayment(s.ctx, testShop, res.Refund.Payment.PaymentID, dto.RefundPaymentRequest{Amount: dec(1), Reason: "refund of refund"}, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)

	pending := s.create(s.receipt(100, domain.ModeCard))
	_, err = s.payments.RefundPayment(s.ctx, testShop, pending.Payment.PaymentID, dto.RefundPaymentRequest{Amount: dec(50), Reason: "pending"}, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *PaymentServiceTestSuite) TestRefund_ClearedChequeByCheque() {
	c := s.create(s.receipt(3000, domain.ModeCheque))
	_, err := s.payments.ClearCheque(s.ctx, testShop, c.Payment.PaymentID, nil, testActor)
	s.Require().NoError(err)

	res, err := s.payments.RefundPayment(s.ctx, testShop, c.Payment.PaymentID, dto.RefundPaymentRequest{Amount: dec(3000), Reason: "cancelled order"}, testActor)
	s.Require().NoError(err)
	s.Equal(domain.ModeCheque, res.Refund.Payment.PaymentMode)
	s.True(res.Refund.Payment.Effects.BalanceApplied, "refunds settle immediately")
	s.assertDecimal(0, s.balance(domain.PartyCustomer, customerID), "customer balance")

	_, err = s.payments.ClearCheque(s.ctx, testShop, c.Payment.PaymentID, nil, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)
	_, err = s.payments.BounceCheque(s.ctx, testShop, c.Payment.PaymentID, "late bounce", testActor)
	s.ErrorIs(err, apperrors.ErrConflict)
	_, err = s.payments.UpdatePaymentStatus(s.ctx, testShop, c.Payment.PaymentID, domain.PaymentCompleted, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.assertDecimal(0, s.balance(domain.PartyCustomer, customerID), "customer balance unchanged")
}

func (s *PaymentServiceTestSuite) TestRefund_RefundPaymentCannotChangeStatus() {
	a := s.create(s.receipt(4000, domain.ModeCash))
	res, err := s.payments.RefundPayment(s.ctx, testShop, a.Payment.PaymentID, dto.RefundPaymentRequest{Amount: dec(1500), Reason: "returned ring"}, testActor)
	s.Require().NoError(err)
	refundID := res.Refund.Payment.PaymentID

	_, err = s.payments.CancelPayment(s.ctx, testShop, refundID, "undo refund", testActor)
	s.ErrorIs(err, apperrors.ErrConflict)
	for _, target := range []domain.PaymentStatus{domain.PaymentCancelled, domain.PaymentFailed, domain.PaymentCompleted} {
		_, err = s.payments.UpdatePaymentStatus(s.ctx, testShop, refundID, target, testActor)
		s.ErrorIs(err, apperrors.ErrConflict, string(target))
	}

	refund, err := s.payments.GetPayment(s.ctx, testShop, refundID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentCompleted, refund.Status)
	s.True(refund.Effects.ReferenceApplied)
	s.True(refund.Effects.BalanceApplied)

	original, err := s.payments.GetPayment(s.ctx, testShop, a.Payment.PaymentID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentRefunded, original.Status)
	s.assertSummary(s.orderSummary(), 2500, 7500, domain.SettlementPartial)
	s.assertDecimal(-2500, s.balance(domain.PartyCustomer, customerID), "net of receipt and refund")
}

// --- supplier scenario ---

func (s *PaymentServiceTestSuite) TestSupplierScenario() {
	purchase, err := s.refs.CreateReference(s.ctx, testShop, dto.CreateReferenceRequest{ReferenceType: domain.ReferencePurchase, Number: "PO-9", TotalAmount: dec(5000)}, testActor)
	s.Require().NoError(err)

	out := s.create(dto.CreatePaymentRequest{
		Amount:          dec(5000),
		TransactionType: domain.Payout,
		PaymentMode:     domain.ModeBankTransfer,
		PartyType:       domain.PartySupplier,
		PartyID:         supplierID,
		ReferenceType:   domain.ReferencePurchase,
		ReferenceID:     purchase.DocumentID,
		TransactionID:   "NEFT-1",
	})
	s.Equal(domain.PaymentPending, out.Payment.Status)

	doc, err := s.refs.GetReference(s.ctx, testShop, domain.ReferencePurchase, purchase.DocumentID)
	s.Require().NoError(err)
	s.assertSummary(doc.Payment, 5000, 0, domain.SettlementPaid)
	s.assertDecimal(0, s.balance(domain.PartySupplier, supplierID), "supplier settled")

	_, err = s.payments.CancelPayment(s.ctx, testShop, out.Payment.PaymentID, "wrong account", testActor)
	s.Require().NoError(err)
	doc, err = s.refs.GetReference(s.ctx, testShop, domain.ReferencePurchase, purchase.DocumentID)
	s.Require().NoError(err)
	s.assertSummary(doc.Payment, 0, 5000, domain.SettlementUnpaid)
	s.assertDecimal(-5000, s.balance(domain.PartySupplier, supplierID), "back to owing the supplier")
}

// --- reconciliation ---

func (s *PaymentServiceTestSuite) TestReconcile_Idempotence() {
	a := s.create(s.receipt(4000, domain.ModeCash))
	beforeBalance := s.balance(domain.PartyCustomer, customerID)

	p, err := s.payments.ReconcilePayment(s.ctx, testShop, a.Payment.PaymentID, dto.ReconcilePaymentRequest{ReconciledWith: "STMT-0410-7", Discrepancy: dec(5)}, testActor)
	s.Require().NoError(err)
	s.True(p.Reconciliation.IsReconciled)
	s.Equal(testActor, p.Reconciliation.ReconciledBy)
	s.Equal(fixedNow, *p.Reconciliation.ReconciledAt)
	s.assertDecimal(5, p.Reconciliation.Discrepancy, "discrepancy")

	_, err = s.payments.ReconcilePayment(s.ctx, testShop, a.Payment.PaymentID, dto.ReconcilePaymentRequest{ReconciledWith: "STMT-0410-7"}, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)

	s.True(beforeBalance.Equal(s.balance(domain.PartyCustomer, customerID)), "discrepancy never touches balances")
	s.assertSummary(s.orderSummary(), 4000, 6000, domain.SettlementPartial)

	p, err = s.payments.UnreconcilePayment(s.ctx, testShop, a.Payment.PaymentID, testActor)
	s.Require().NoError(err)
	s.False(p.Reconciliation.IsReconciled)
	_, err = s.payments.UnreconcilePayment(s.ctx, testShop, a.Payment.PaymentID, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *PaymentServiceTestSuite) TestReconcile_Rules() {
	pending := s.create(s.receipt(100, domain.ModeCard))
	_, err := s.payments.ReconcilePayment(s.ctx, testShop, pending.Payment.PaymentID, dto.ReconcilePaymentRequest{ReconciledWith: "X"}, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)

	cash := s.create(s.receipt(100, domain.ModeCash))
	_, err = s.payments.ReconcilePayment(s.ctx, testShop, cash.Payment.PaymentID, dto.ReconcilePaymentRequest{}, testActor)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.payments.ReconcilePayment(s.ctx, testShop, cash.Payment.PaymentID, dto.ReconcilePaymentRequest{ReconciledWith: "X", Discrepancy: decimal.RequireFromString("0.001")}, testActor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.payments.ReconcilePayment(s.ctx, testShop, "missing", dto.ReconcilePaymentRequest{ReconciledWith: "X"}, testActor)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PaymentServiceTestSuite) TestBulkReconcile() {
	a := s.create(s.receipt(100, domain.ModeCash))
	b := s.create(s.receipt(200, domain.ModeCash))
	pending := s.create(s.receipt(300, domain.ModeCard))
	_, err := s.payments.ReconcilePayment(s.ctx, testShop, b.Payment.PaymentID, dto.ReconcilePaymentRequest{ReconciledWith: "S-1"}, testActor)
	s.Require().NoError(err)

	item := func(id string) dto.BulkReconcileItem {
		return dto.BulkReconcileItem{PaymentID: id, ReconcilePaymentRequest: dto.ReconcilePaymentRequest{ReconciledWith: "S-2"}}
	}
	res, err := s.payments.BulkReconcile(s.ctx, testShop, dto.BulkReconcileRequest{Items: []dto.BulkReconcileItem{
		item(a.Payment.PaymentID), item(b.Payment.PaymentID), item(pending.Payment.PaymentID), item("missing"),
	}}, testActor)
	s.Require().NoError(err)

	s.Equal(1, res.ReconciledCount)
	s.Equal(3, res.SkippedCount)
	s.Require().Len(res.Skipped, 3)
	s.Equal(b.Payment.PaymentID, res.Skipped[0].PaymentID)
	s.Contains(res.Skipped[0].Reason, "already reconciled")
	s.Equal(pending.Payment.PaymentID, res.Skipped[1].PaymentID)
	s.Equal("missing", res.Skipped[2].PaymentID)
}

// --- approval ---

func (s *PaymentServiceTestSuite) TestApproval() {
	card := s.create(s.receipt(100, domain.ModeCard))

	_, err := s.payments.RejectPayment(s.ctx, testShop, card.Payment.PaymentID, "", testActor)
	s.ErrorIs(err, apperrors.ErrValidation)

	p, err := s.payments.ApprovePayment(s.ctx, testShop, card.Payment.PaymentID, testActor)
	s.Require().NoError(err)
	s.Equal(domain.ApprovalApproved, p.Approval.ApprovalStatus)
	s.Equal(testActor, p.Approval.ApprovedBy)
	s.Equal(domain.PaymentPending, p.Status, "approval does not change status")

	_, err = s.payments.ApprovePayment(s.ctx, testShop, card.Payment.PaymentID, testActor)
	s.ErrorIs(err, apperrors.ErrConflict)

	other := s.create(s.receipt(100, domain.ModeCard))
	p, err = s.payments.RejectPayment(s.ctx, testShop, other.Payment.PaymentID, "missing slip", testActor)
	s.Require().NoError(err)
	s.Equal(domain.ApprovalRejected, p.Approval.ApprovalStatus)
	s.Equal("missing slip", p.Approval.RejectionReason)

	cash := s.create(s.receipt(100, domain.ModeCash))
	_, err = s.payments.ApprovePayment(s.ctx, testShop, cash.Payment.PaymentID, testActor)
	s.ErrorIs(err, apperrors.ErrConflict, "only pending payments")
}

// --- reads ---

func (s *PaymentServiceTestSuite) TestListPayments() {
	for i := 0; i < 3; i++ {
		s.create(s.receipt(10, domain.ModeCash))
	}
	s.create(s.receipt(10, domain.ModeCard))

	all, err := s.payments.ListPayments(s.ctx, testShop, dto.ListPaymentsParams{Limit: 2})
	s.Require().NoError(err)
	s.Len(all.Payments, 2)
	s.Require().NotNil(all.NextToken)

	rest, err := s.payments.ListPayments(s.ctx, testShop, dto.ListPaymentsParams{Limit: 2, NextToken: all.NextToken})
	s.Require().NoError(err)
	s.Len(rest.Payments, 2)

	pending, err := s.payments.ListPayments(s.ctx, testShop, dto.ListPaymentsParams{Status: domain.PaymentPending})
	s.Require().NoError(err)
	s.Len(pending.Payments, 1)

	bad := "not-a-token"
	_, err = s.payments.ListPayments(s.ctx, testShop, dto.ListPaymentsParams{NextToken: &bad})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.payments.GetPayment(s.ctx, "another-shop", all.Payments[0].PaymentID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- concurrency ---

func (s *PaymentServiceTestSuite) TestConcurrentPaymentsAgainstOneOrder() {
	const n = 20
	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.payments.CreatePayment(s.ctx, testShop, s.receipt(250, domain.ModeCash), testActor)
			if err == nil {
				numbers <- out.Payment.PaymentNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := map[string]bool{}
	for num := range numbers {
		s.False(seen[num], "duplicate payment number %s", num)
		seen[num] = true
	}
	s.Len(seen, n)
	s.assertSummary(s.orderSummary(), 5000, 5000, domain.SettlementPartial)
	s.assertDecimal(-5000, s.balance(domain.PartyCustomer, customerID), "customer balance")
}

// --- audit and sequence failures ---

func TestCreatePayment_AuditFailureDoesNotFailCall(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	audit := new(MockAuditRecorder)
	audit.On("Record", mock.Anything, mock.Anything).Return(errors.New("sink down"))

	svc := services.NewPaymentService(store.Provider(memory.NewSequence()), services.WithPaymentAuditRecorder(audit))
	out, err := svc.CreatePayment(ctx, testShop, dto.CreatePaymentRequest{
		Amount: dec(10), TransactionType: domain.Receipt, PaymentMode: domain.ModeCash, PartyType: domain.PartyOther,
	}, testActor)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, out.Payment.Status)
	audit.AssertNumberOfCalls(t, "Record", 1)
}

func TestCreatePayment_SequenceFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seq := new(MockSequence)
	seq.On("NextPaymentSequence", mock.Anything, testShop).Return(int64(0), errors.New("redis unavailable"))

	svc := services.NewPaymentService(store.Provider(seq))
	_, err := svc.CreatePayment(ctx, testShop, dto.CreatePaymentRequest{
		Amount: dec(10), TransactionType: domain.Receipt, PaymentMode: domain.ModeCash, PartyType: domain.PartyOther,
	}, testActor)

	assert.ErrorContains(t, err, "redis unavailable")
	seq.AssertExpectations(t)
}

func TestCreatePayment_NumberPrefix(t *testing.T) {
	store := memory.NewStore()
	seq := new(MockSequence)
	seq.On("NextPaymentSequence", mock.Anything, testShop).Return(int64(42), nil)

	svc := services.NewPaymentService(store.Provider(seq), services.WithPaymentNumberPrefix("RCPT"))
	out, err := svc.CreatePayment(context.Background(), testShop, dto.CreatePaymentRequest{
		Amount: dec(10), TransactionType: domain.Receipt, PaymentMode: domain.ModeCash, PartyType: domain.PartyOther,
	}, testActor)

	require.NoError(t, err)
	assert.Equal(t, "RCPT000042", out.Payment.PaymentNumber)
}
