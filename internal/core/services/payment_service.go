package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/jewel_ledger/internal/apperrors"
	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/dto"
	"github.com/SscSPs/jewel_ledger/internal/utils/accounting"
	"github.com/SscSPs/jewel_ledger/internal/utils/pagination"
)

// Audit actions emitted by the payment service.
const (
	ActionPaymentCreated       = "payment.created"
	ActionPaymentCancelled     = "payment.cancelled"
	ActionPaymentDeleted       = "payment.deleted"
	ActionPaymentStatusUpdated = "payment.status_updated"
	ActionChequeCleared        = "payment.cheque_cleared"
	ActionChequeBounced        = "payment.cheque_bounced"
	ActionPaymentReconciled    = "payment.reconciled"
	ActionPaymentUnreconciled  = "payment.unreconciled"
	ActionPaymentRefunded      = "payment.refunded"
	ActionPaymentApproved      = "payment.approved"
	ActionPaymentRejected      = "payment.rejected"
)

// paymentService is the payment ledger. It orchestrates every payment state change together
// with the reference and party balance effects, one transaction per call.
type paymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryFacade
	sequence     portsrepo.PaymentNumberSequence
	txManager    portsrepo.TransactionManager
	references   *referenceUpdater
	parties      *partyBalanceStore
	numberPrefix string
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithPaymentNumberPrefix overrides the "PAY" prefix of payment numbers.
func WithPaymentNumberPrefix(prefix string) PaymentServiceOption {
	return func(s *paymentService) {
		if prefix != "" {
			s.numberPrefix = prefix
		}
	}
}

// WithPaymentAuditRecorder sets the audit sink.
func WithPaymentAuditRecorder(recorder portssvc.AuditRecorder) PaymentServiceOption {
	return func(s *paymentService) {
		s.Audit = recorder
	}
}

// WithPaymentClock replaces time.Now, for tests.
func WithPaymentClock(clock func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		s.Clock = clock
	}
}

// NewPaymentService creates a new payment service.
func NewPaymentService(repos portsrepo.RepositoryProvider, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	s := &paymentService{
		paymentRepo:  repos.PaymentRepo,
		sequence:     repos.Sequence,
		txManager:    repos.TxManager,
		references:   &referenceUpdater{},
		parties:      &partyBalanceStore{},
		numberPrefix: domain.DefaultPaymentNumberPrefix,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) nextPaymentNumber(ctx context.Context, shopID string) (string, error) {
	seq, err := s.sequence.NextPaymentSequence(ctx, shopID)
	if err != nil {
		return "", fmt.Errorf("failed to allocate payment number: %w", err)
	}
	return domain.FormatPaymentNumber(s.numberPrefix, seq), nil
}

// applyEffects applies every effect of p that is not yet in force. The balance effect of an
// uncleared cheque is left for clearance.
func (s *paymentService) applyEffects(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, actorID string, now time.Time) ([]domain.EffectOutcome, error) {
	var outcomes []domain.EffectOutcome

	if p.HasLiveReference() && !p.Effects.ReferenceApplied {
		out, err := s.references.apply(ctx, repos, p.ShopID, p.Reference, accounting.ReferenceDelta(p), actorID, now)
		if err != nil {
			return nil, err
		}
		p.Effects.ReferenceApplied = out.Applied
		outcomes = append(outcomes, out)
	}

	if p.Party.PartyType.HasBalance() && !p.Effects.BalanceApplied && !p.DefersBalance() {
		out, err := s.parties.adjust(ctx, repos, p.ShopID, p.Party, accounting.SignedBalanceDelta(p), actorID, now)
		if err != nil {
			return nil, err
		}
		p.Effects.BalanceApplied = out.Applied
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

// reverseEffects undoes every effect of p that is in force, each exactly once.
func (s *paymentService) reverseEffects(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, actorID string, now time.Time) ([]domain.EffectOutcome, error) {
	var outcomes []domain.EffectOutcome

	if p.Effects.ReferenceApplied {
		out, err := s.references.apply(ctx, repos, p.ShopID, p.Reference, accounting.ReferenceDelta(p).Neg(), actorID, now)
		if err != nil {
			return nil, err
		}
		if out.Applied {
			p.Effects.ReferenceApplied = false
		}
		outcomes = append(outcomes, out)
	}

	if p.Effects.BalanceApplied {
		out, err := s.parties.adjust(ctx, repos, p.ShopID, p.Party, accounting.SignedBalanceDelta(p).Neg(), actorID, now)
		if err != nil {
			return nil, err
		}
		if out.Applied {
			p.Effects.BalanceApplied = false
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

// paymentEvent builds the audit event for a committed payment change.
func paymentEvent(action, actorID, description string, p *domain.Payment, effects []domain.EffectOutcome) domain.AuditEvent {
	severity := domain.SeverityInfo
	for _, e := range effects {
		if e.Skipped {
			severity = domain.SeverityWarning
		}
	}
	return domain.AuditEvent{
		Actor:       actorID,
		Shop:        p.ShopID,
		Action:      action,
		Description: description,
		Severity:    severity,
		Metadata: map[string]any{
			"payment_id":       p.PaymentID,
			"payment_number":   p.PaymentNumber,
			"amount":           p.Amount.String(),
			"transaction_type": string(p.TransactionType),
			"payment_mode":     string(p.PaymentMode),
			"status":           string(p.Status),
			"effects":          effects,
		},
	}
}

// CreatePayment records a payment, assigns its number and initial status, and applies its effects.
func (s *paymentService) CreatePayment(ctx context.Context, shopID string, req dto.CreatePaymentRequest, actorID string) (*domain.PaymentOutcome, error) {
	logger := s.GetLogger(ctx).With(slog.String("shop_id", shopID))

	if err := validateCreatePayment(req); err != nil {
		logger.Warn("Invalid payment request", slog.String("error", err.Error()))
		return nil, err
	}

	number, err := s.nextPaymentNumber(ctx, shopID)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate payment number", slog.String("shop_id", shopID))
		return nil, err
	}

	now := s.Now()
	payment := newPaymentFromRequest(shopID, number, req, actorID, now)

	var outcome *domain.PaymentOutcome
	err = s.txManager.RunInTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		effects, err := s.applyEffects(ctx, repos, &payment, actorID, now)
		if err != nil {
			return err
		}
		if err := repos.Payments.SavePayment(ctx, payment); err != nil {
			return fmt.Errorf("failed to save payment: %w", err)
		}
		outcome = &domain.PaymentOutcome{Payment: &payment, Effects: effects}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment", slog.String("shop_id", shopID), slog.String("payment_number", number))
		return nil, err
	}

	logger.Info("Payment created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("payment_number", payment.PaymentNumber),
		slog.String("status", string(payment.Status)))
	s.Emit(ctx, paymentEvent(ActionPaymentCreated, actorID,
		fmt.Sprintf("Payment %s of %s created", payment.PaymentNumber, payment.Amount), &payment, outcome.Effects))

	return outcome, nil
}

func newPaymentFromRequest(shopID, number string, req dto.CreatePaymentRequest, actorID string, now time.Time) domain.Payment {
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}

	details := domain.PaymentDetails{
		TransactionID: strings.TrimSpace(req.TransactionID),
		BankName:      req.BankName,
		CardLast4:     req.CardLast4,
		UPIID:         req.UPIID,
		WalletName:    req.WalletName,
	}
	if req.PaymentMode == domain.ModeCheque {
		details.Cheque = &domain.ChequeDetails{
			ChequeNumber: strings.TrimSpace(req.Cheque.ChequeNumber),
			ChequeDate:   req.Cheque.ChequeDate,
			ChequeStatus: domain.ChequePending,
		}
	}

	var reference *domain.Reference
	if req.ReferenceType != "" {
		reference = &domain.Reference{
			ReferenceType:   req.ReferenceType,
			ReferenceID:     req.ReferenceID,
			ReferenceNumber: req.ReferenceNumber,
		}
	}

	return domain.Payment{
		PaymentID:       uuid.NewString(),
		ShopID:          shopID,
		PaymentNumber:   number,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		PaymentMode:     req.PaymentMode,
		PaymentDate:     paymentDate,
		Party: domain.Party{
			PartyType: req.PartyType,
			PartyID:   req.PartyID,
			PartyName: req.PartyName,
		},
		Reference:   reference,
		Details:     details,
		Status:      domain.InitialPaymentStatus(req.PaymentMode, details),
		Approval:    domain.Approval{ApprovalStatus: domain.ApprovalPending},
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(actorID, now),
	}
}

// GetPayment retrieves a payment of a shop.
func (s *paymentService) GetPayment(ctx context.Context, shopID, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, shopID, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get payment", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

// ListPayments retrieves a page of payments, newest first.
func (s *paymentService) ListPayments(ctx context.Context, shopID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	filter := portsrepo.PaymentListFilter{
		Status:      params.Status,
		Mode:        params.PaymentMode,
		PartyID:     params.PartyID,
		ReferenceID: params.ReferenceID,
	}
	if params.NextToken != nil && *params.NextToken != "" {
		if _, err := pagination.DecodeToken(*params.NextToken); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	payments, nextToken, err := s.paymentRepo.ListPayments(ctx, shopID, filter, pagination.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("shop_id", shopID))
		return nil, err
	}

	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: nextToken,
	}, nil
}

// CancelPayment cancels a pending or completed payment and reverses its applied effects.
func (s *paymentService) CancelPayment(ctx context.Context, shopID, paymentID, reason, actorID string) (*domain.PaymentOutcome, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", apperrors.ErrValidation)
	}

	outcome, err := s.mutate(ctx, shopID, paymentID, actorID, func(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, now time.Time) ([]domain.EffectOutcome, error) {
		return s.cancelInTx(ctx, repos, p, reason, actorID, now)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payment cancelled", slog.String("payment_id", paymentID))
	s.Emit(ctx, paymentEvent(ActionPaymentCancelled, actorID,
		fmt.Sprintf("Payment %s cancelled: %s", outcome.Payment.PaymentNumber, reason), outcome.Payment, outcome.Effects))
	return outcome, nil
}

func (s *paymentService) cancelInTx(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, reason, actorID string, now time.Time) ([]domain.EffectOutcome, error) {
	if err := requireNotRefund(p); err != nil {
		return nil, err
	}
	if err := p.TransitionTo(domain.PaymentCancelled); err != nil {
		return nil, err
	}
	effects, err := s.reverseEffects(ctx, repos, p, actorID, now)
	if err != nil {
		return nil, err
	}
	p.Cancellation = &domain.Cancellation{CancelledAt: now, CancelledBy: actorID, Reason: reason}
	return effects, nil
}

// DeletePayment soft-deletes a pending, unreconciled payment after reversing its effects.
func (s *paymentService) DeletePayment(ctx context.Context, shopID, paymentID, actorID string) (*domain.PaymentOutcome, error) {
	outcome, err := s.mutate(ctx, shopID, paymentID, actorID, func(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, now time.Time) ([]domain.EffectOutcome, error) {
		if p.Status != domain.PaymentPending {
			return nil, fmt.Errorf("%w: only pending payments can be deleted, payment is %s", apperrors.ErrConflict, p.Status)
		}
		if p.Reconciliation.IsReconciled {
			return nil, fmt.Errorf("%w: reconciled payments cannot be deleted", apperrors.ErrConflict)
		}
		effects, err := s.reverseEffects(ctx, repos, p, actorID, now)
		if err != nil {
			return nil, err
		}
		p.DeletedAt = &now
		return effects, nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	s.Emit(ctx, paymentEvent(ActionPaymentDeleted, actorID,
		fmt.Sprintf("Payment %s deleted", outcome.Payment.PaymentNumber), outcome.Payment, outcome.Effects))
	return outcome, nil
}

// UpdatePaymentStatus is the single mutation point for payment status. Cheque payments
// route completed and failed through clearance and bounce.
func (s *paymentService) UpdatePaymentStatus(ctx context.Context, shopID, paymentID string, target domain.PaymentStatus, actorID string) (*domain.PaymentOutcome, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment status %q", apperrors.ErrValidation, target)
	}
	if target == domain.PaymentRefunded {
		return nil, fmt.Errorf("%w: payments become refunded only through a refund", apperrors.ErrConflict)
	}

	var from domain.PaymentStatus
	outcome, err := s.mutate(ctx, shopID, paymentID, actorID, func(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, now time.Time) ([]domain.EffectOutcome, error) {
		from = p.Status
		if err := requireNotRefund(p); err != nil {
			return nil, err
		}
		switch {
		case p.IsCheque() && target == domain.PaymentCompleted:
			return s.clearInTx(ctx, repos, p, nil, actorID, now)
		case p.IsCheque() && target == domain.PaymentFailed:
			return s.bounceInTx(ctx, repos, p, "marked failed", actorID, now)
		case target == domain.PaymentCancelled:
			return s.cancelInTx(ctx, repos, p, "status set to cancelled", actorID, now)
		}

		if err := p.TransitionTo(target); err != nil {
			return nil, err
		}
		switch target {
		case domain.PaymentCompleted:
			return s.applyEffects(ctx, repos, p, actorID, now)
		case domain.PaymentFailed:
			return s.reverseEffects(ctx, repos, p, actorID, now)
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payment status updated",
		slog.String("payment_id", paymentID),
		slog.String("from", string(from)),
		slog.String("to", string(target)))
	event := paymentEvent(ActionPaymentStatusUpdated, actorID,
		fmt.Sprintf("Payment %s moved from %s to %s", outcome.Payment.PaymentNumber, from, target), outcome.Payment, outcome.Effects)
	event.Metadata["from_status"] = string(from)
	s.Emit(ctx, event)
	return outcome, nil
}

// mutateFunc changes a locked payment inside a transaction and returns the effects it produced.
type mutateFunc func(ctx context.Context, repos portsrepo.TxRepositories, p *domain.Payment, now time.Time) ([]domain.EffectOutcome, error)

// mutate locks the payment, runs fn, stamps the audit fields and persists the payment,
// all in one transaction.
func (s *paymentService) mutate(ctx context.Context, shopID, paymentID, actorID string, fn mutateFunc) (*domain.PaymentOutcome, error) {
	now := s.Now()
	var outcome *domain.PaymentOutcome

	err := s.txManager.RunInTx(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		payment, err := repos.Payments.FindPaymentByIDForUpdate(ctx, shopID, paymentID)
		if err != nil {
			return err
		}

		effects, err := fn(ctx, repos, payment, now)
		if err != nil {
			return err
		}

		payment.Touch(actorID, now)
		if err := repos.Payments.UpdatePayment(ctx, *payment); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}
		outcome = &domain.PaymentOutcome{Payment: payment, Effects: effects}
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Payment update failed", slog.String("payment_id", paymentID), slog.String("shop_id", shopID))
		} else {
			s.LogDebug(ctx, "Payment update rejected", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return outcome, nil
}

// requireNotRefund rejects status changes on refund payments.
func requireNotRefund(p *domain.Payment) error {
	if p.IsRefund() {
		return fmt.Errorf("%w: payment %s is a refund and its status cannot be changed", apperrors.ErrConflict, p.PaymentNumber)
	}
	return nil
}

// isClientError reports whether err is one of the expected rejections rather than a failure.
func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrUnprocessable)
}
