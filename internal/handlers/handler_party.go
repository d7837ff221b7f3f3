package handlers

import (
	"net/http"

	"github.com/SscSPs/jewel_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// partyHandler serves party balances and the sale/purchase documents payments settle.
type partyHandler struct {
	partyService     portssvc.PartySvcFacade
	referenceService portssvc.ReferenceSvcFacade
}

func newPartyHandler(partyService portssvc.PartySvcFacade, referenceService portssvc.ReferenceSvcFacade) *partyHandler {
	return &partyHandler{
		partyService:     partyService,
		referenceService: referenceService,
	}
}

// createParty godoc
// @Summary Register a customer or supplier
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Party already exists"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Security BearerAuth
// @Router /shops/{shopID}/parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	var req dto.CreatePartyRequest
	if !bindJSON(c, &req, "CreateParty") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), c.Param("shopID"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to create party")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// getParty godoc
// @Summary Get a party balance
// @Description Positive balances are owed to the shop, negative balances are owed by it
// @Tags parties
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   partyType path string true "customer or supplier"
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to get party"
// @Security BearerAuth
// @Router /shops/{shopID}/parties/{partyType}/{partyID} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	party, err := h.partyService.GetParty(c.Request.Context(), c.Param("shopID"), domain.PartyType(c.Param("partyType")), c.Param("partyID"))
	if err != nil {
		respondError(c, err, "Failed to get party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// createReference godoc
// @Summary Register a sale or purchase
// @Tags references
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   reference body dto.CreateReferenceRequest true "Document details"
// @Success 201 {object} dto.ReferenceResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Document already exists"
// @Failure 500 {object} map[string]string "Failed to create reference"
// @Security BearerAuth
// @Router /shops/{shopID}/references [post]
func (h *partyHandler) createReference(c *gin.Context) {
	var req dto.CreateReferenceRequest
	if !bindJSON(c, &req, "CreateReference") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	doc, err := h.referenceService.CreateReference(c.Request.Context(), c.Param("shopID"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to create reference")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReferenceResponse(doc))
}

// getReference godoc
// @Summary Get a reference document's settlement
// @Tags references
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   referenceType path string true "order, sale or purchase"
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.ReferenceResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to get reference"
// @Security BearerAuth
// @Router /shops/{shopID}/references/{referenceType}/{documentID} [get]
func (h *partyHandler) getReference(c *gin.Context) {
	doc, err := h.referenceService.GetReference(c.Request.Context(), c.Param("shopID"), domain.ReferenceType(c.Param("referenceType")), c.Param("documentID"))
	if err != nil {
		respondError(c, err, "Failed to get reference")
		return
	}
	c.JSON(http.StatusOK, dto.ToReferenceResponse(doc))
}

func registerPartyRoutes(shop *gin.RouterGroup, partyService portssvc.PartySvcFacade, referenceService portssvc.ReferenceSvcFacade) {
	h := newPartyHandler(partyService, referenceService)

	shop.POST("/parties", h.createParty)
	shop.GET("/parties/:partyType/:partyID", h.getParty)
	shop.POST("/references", h.createReference)
	shop.GET("/references/:referenceType/:documentID", h.getReference)
}
