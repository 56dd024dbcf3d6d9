package handler

import (
	"strconv"

	"monero-wallet-manager/internal/adapter/http/dto"
	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/pkg/apperror"
	"monero-wallet-manager/pkg/response"

	"github.com/gin-gonic/gin"
)

// AddressHandler handles address ledger endpoints.
type AddressHandler struct {
	addressSvc ports.AddressService
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(addressSvc ports.AddressService) *AddressHandler {
	return &AddressHandler{addressSvc: addressSvc}
}

// Create handles POST /addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("user_id is required"))
		return
	}

	rec, err := h.addressSvc.Create(c.Request.Context(), req.UserID, req.Label)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, rec)
}

// List handles GET /addresses with an optional user_id query filter.
func (h *AddressHandler) List(c *gin.Context) {
	var userID *int64
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, apperror.Validation("user_id must be an integer"))
			return
		}
		userID = &id
	}

	records, err := h.addressSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, records)
}

// GetByLabel handles GET /addresses/by-label/:label.
func (h *AddressHandler) GetByLabel(c *gin.Context) {
	rec, err := h.addressSvc.GetByLabel(c.Request.Context(), c.Param("label"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, rec)
}

// GetByAddress handles GET /addresses/by-address/:address. The ledger is
// consulted first; an address the ledger never recorded falls back to the
// wallet, so an address outside the wallet is still an RPC error.
func (h *AddressHandler) GetByAddress(c *gin.Context) {
	lookup, err := h.addressSvc.LookupByAddress(c.Request.Context(), c.Param("address"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, lookup)
}
