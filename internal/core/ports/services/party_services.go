package services

import (
	"context"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	"github.com/SscSPs/jewel_ledger/internal/dto"
)

// PartySvcFacade defines customer and supplier balance operations.
type PartySvcFacade interface {
	CreateParty(ctx context.Context, shopID string, req dto.CreatePartyRequest, actorID string) (*domain.PartyAccount, error)
	GetParty(ctx context.Context, shopID string, partyType domain.PartyType, partyID string) (*domain.PartyAccount, error)
}

// ReferenceSvcFacade defines operations on sales and purchases as payment references.
type ReferenceSvcFacade interface {
	CreateReference(ctx context.Context, shopID string, req dto.CreateReferenceRequest, actorID string) (*domain.ReferenceDocument, error)
	GetReference(ctx context.Context, shopID string, refType domain.ReferenceType, refID string) (*domain.ReferenceDocument, error)
}

// AuditRecorder is the best-effort audit sink. Callers log and drop its errors.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
