package services

import (
	"time"

	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, audit portssvc.AuditRecorder) *portssvc.ServiceContainer {
	clock := time.Now

	return &portssvc.ServiceContainer{
		Payment: NewPaymentService(repos,
			WithPaymentNumberPrefix(cfg.PaymentNumberPrefix),
			WithPaymentAuditRecorder(audit),
			WithPaymentClock(clock),
		),
		Order:     NewOrderService(repos.OrderRepo, repos.TxManager, audit, clock),
		Party:     NewPartyService(repos.PartyRepo, clock),
		Reference: NewReferenceService(repos.ReferenceRepo, clock),
	}
}
