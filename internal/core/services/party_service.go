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
)

type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepository
}

// NewPartyService creates a new party service.
func NewPartyService(partyRepo portsrepo.PartyRepository, clock func() time.Time) portssvc.PartySvcFacade {
	return &partyService{BaseService: BaseService{Clock: clock}, partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, shopID string, req dto.CreatePartyRequest, actorID string) (*domain.PartyAccount, error) {
	if !req.PartyType.HasBalance() {
		return nil, fmt.Errorf("%w: only customers and suppliers carry a balance", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if err := validateMoney("openingBalance", req.OpeningBalance); err != nil {
		return nil, err
	}

	partyID := req.PartyID
	if partyID == "" {
		partyID = uuid.NewString()
	}
	party := domain.PartyAccount{
		PartyID:     partyID,
		ShopID:      shopID,
		PartyType:   req.PartyType,
		Name:        req.Name,
		Balance:     req.OpeningBalance,
		AuditFields: domain.NewAuditFields(actorID, s.Now()),
	}
	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save party", slog.String("party_id", partyID))
		}
		return nil, err
	}
	return &party, nil
}

func (s *partyService) GetParty(ctx context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error) {
	if !partyType.HasBalance() {
		return nil, fmt.Errorf("%w: party type %q has no balance", apperrors.ErrValidation, partyType)
	}
	return s.partyRepo.FindParty(ctx, shopID, partyType, partyID)
}

type referenceService struct {
	BaseService
	referenceRepo portsrepo.ReferenceRepository
}

// NewReferenceService creates a new reference document service.
func NewReferenceService(referenceRepo portsrepo.ReferenceRepository, clock func() time.Time) portssvc.ReferenceSvcFacade {
	return &referenceService{BaseService: BaseService{Clock: clock}, referenceRepo: referenceRepo}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

// CreateReference registers a sale or purchase. Orders are created through the order service.
func (s *referenceService) CreateReference(ctx context.Context, shopID string, req dto.CreateReferenceRequest, actorID string) (*domain.ReferenceDocument, error) {
	if req.ReferenceType != domain.ReferenceSale && req.ReferenceType != domain.ReferencePurchase {
		return nil, fmt.Errorf("%w: reference type must be sale or purchase", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Number) == "" {
		return nil, fmt.Errorf("%w: number is required", apperrors.ErrValidation)
	}
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: totalAmount cannot be negative", apperrors.ErrValidation)
	}
	if err := validateMoney("totalAmount", req.TotalAmount); err != nil {
		return nil, err
	}

	docID := req.DocumentID
	if docID == "" {
		docID = uuid.NewString()
	}
	doc := domain.ReferenceDocument{
		DocumentID:    docID,
		ShopID:        shopID,
		ReferenceType: req.ReferenceType,
		Number:        req.Number,
		Payment:       domain.NewPaymentSummary(req.TotalAmount),
		AuditFields:   domain.NewAuditFields(actorID, s.Now()),
	}
	if err := s.referenceRepo.SaveReference(ctx, doc); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save reference", slog.String("document_id", docID))
		}
		return nil, err
	}
	return &doc, nil
}

func (s *referenceService) GetReference(ctx context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error) {
	if !refType.IsValid() || refType == domain.ReferenceNone {
		return nil, fmt.Errorf("%w: invalid reference type %q", apperrors.ErrValidation, refType)
	}
	return s.referenceRepo.FindReference(ctx, shopID, refType, refID)
}
