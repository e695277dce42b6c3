package handler

import (
	"fmt"
	"net/http"

	"crypto-dashboard/internal/adapter/http/dto"
	"crypto-dashboard/internal/core/ports"
	"crypto-dashboard/pkg/apperror"
	"crypto-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles the wallet CRUD endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// List handles GET /api/v1/wallets/all.
func (h *WalletHandler) List(c *gin.Context) {
	wallets, err := h.walletSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletsResponse{Wallets: wallets})
}

// Get handles GET /api/v1/wallets?wallet_id=N.
func (h *WalletHandler) Get(c *gin.Context) {
	var req dto.GetWalletRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.Validation("wallet_id is required and must be an integer"))
		return
	}

	wallet, err := h.walletSvc.Get(c.Request.Context(), req.WalletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, wallet)
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := dto.BindStrictJSON(c, &req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.walletSvc.Create(c.Request.Context(), req.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.WalletCreatedResponse{Wallet: *wallet})
}

// Update handles PUT /api/v1/wallets.
func (h *WalletHandler) Update(c *gin.Context) {
	var req dto.UpdateWalletRequest
	if err := dto.BindStrictJSON(c, &req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if _, err := h.walletSvc.Update(c.Request.Context(), req.WalletID, req.ToWalletUpdate()); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, fmt.Sprintf("Wallet %d updated", req.WalletID))
}

// Delete handles DELETE /api/v1/wallets?wallet_id=N.
func (h *WalletHandler) Delete(c *gin.Context) {
	var req dto.GetWalletRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.Validation("wallet_id is required and must be an integer"))
		return
	}

	if err := h.walletSvc.Delete(c.Request.Context(), req.WalletID); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("Wallet %d deleted", req.WalletID))
}
