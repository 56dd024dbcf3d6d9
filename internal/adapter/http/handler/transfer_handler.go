package handler

import (
	"monero-wallet-manager/internal/adapter/http/dto"
	"monero-wallet-manager/internal/core/ports"
	"monero-wallet-manager/pkg/apperror"
	"monero-wallet-manager/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles the synchronous wallet operations: transfers,
// sweeps and balance queries.
type TransferHandler struct {
	transferSvc ports.TransferService
	addressSvc  ports.AddressService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService, addressSvc ports.AddressService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc, addressSvc: addressSvc}
}

// PrimaryAddress handles GET /primary_address.
func (h *TransferHandler) PrimaryAddress(c *gin.Context) {
	primary, err := h.transferSvc.PrimaryAddress(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, primary)
}

// Transfer handles POST /transfer.
func (h *TransferHandler) Transfer(c *gin.Context) {
	req, err := bindTransferRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.transferSvc.Transfer(c.Request.Context(), *req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// TransferSplit handles POST /transfer_split.
func (h *TransferHandler) TransferSplit(c *gin.Context) {
	req, err := bindTransferRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.transferSvc.TransferSplit(c.Request.Context(), *req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// SweepAll handles POST /sweep_all.
func (h *TransferHandler) SweepAll(c *gin.Context) {
	var body dto.SweepRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.transferSvc.SweepAll(c.Request.Context(), ports.SweepRequest{
		FromAddress: body.FromAddress,
		ToAddress:   body.ToAddress,
		Options: ports.TransferOptions{
			Priority:   body.Priority,
			RingSize:   body.RingSize,
			DoNotRelay: body.DoNotRelay,
			PaymentID:  body.PaymentID,
			UnlockTime: body.UnlockTime,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Balance handles GET /balance/:address.
func (h *TransferHandler) Balance(c *gin.Context) {
	info, err := h.transferSvc.BalanceByAddress(c.Request.Context(), c.Param("address"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, info)
}

// BalanceByLabel handles GET /balance/label/:label. The label resolves
// through the ledger to its address, then follows the address balance path.
func (h *TransferHandler) BalanceByLabel(c *gin.Context) {
	rec, err := h.addressSvc.GetByLabel(c.Request.Context(), c.Param("label"))
	if err != nil {
		response.Error(c, err)
		return
	}

	info, err := h.transferSvc.BalanceByAddress(c.Request.Context(), rec.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, info)
}

func bindTransferRequest(c *gin.Context) (*ports.TransferRequest, error) {
	var body dto.TransferRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	return &ports.TransferRequest{
		ToAddress:   body.ToAddress,
		AmountXMR:   body.AmountXMR,
		FromAddress: body.FromAddress,
		Options: ports.TransferOptions{
			Priority:   body.Priority,
			RingSize:   body.RingSize,
			DoNotRelay: body.DoNotRelay,
			PaymentID:  body.PaymentID,
			UnlockTime: body.UnlockTime,
		},
	}, nil
}
