package wallet

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avelarde/recargas/internal/domain"
	"github.com/avelarde/recargas/internal/dto"
	"github.com/avelarde/recargas/internal/service/rateservice"
	"github.com/avelarde/recargas/pkg/auth"
	"github.com/avelarde/recargas/pkg/utils"
)

type Ledger interface {
	GetOrCreateWallet(ctx context.Context, userID, currencyID int) (*domain.Wallet, error)
	GetBalance(ctx context.Context, walletID int) (float64, error)
	ListMovements(ctx context.Context, walletID, limit, offset int) ([]domain.Movimiento, error)
}

type Rates interface {
	Convert(ctx context.Context, amount float64, fromCurrencyID, toCurrencyID int, asOf time.Time) (*rateservice.Conversion, error)
	GetCurrency(ctx context.Context, code string) (*domain.Currency, error)
}

type WalletHandler struct {
	ledger Ledger
	rates  Rates
}

func New(ledger Ledger, rates Rates) *WalletHandler {
	return &WalletHandler{
		ledger: ledger,
		rates:  rates,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Derived balance of the authenticated user's wallet in the given currency; committed movements only.
//	@Tags			Billetera
//	@Security		BearerAuth
//	@Produce		json
//	@Param			currency	path		string	true	"Currency code"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Unknown currency"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallets/{currency}/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	currency, ok := h.resolveCurrency(w, r)
	if !ok {
		return
	}

	wallet, err := h.ledger.GetOrCreateWallet(r.Context(), userID, currency.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	balance, err := h.ledger.GetBalance(r.Context(), wallet.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Currency: currency.Code,
		Balance:  balance,
	})
}

// GetMovements godoc
//
//	@Summary		List wallet movements
//	@Tags			Billetera
//	@Security		BearerAuth
//	@Produce		json
//	@Param			currency	path		string	true	"Currency code"
//	@Param			limit		query		int		false	"Page size"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{array}		dto.MovementResponseDTO
//	@Success		204			{object}	utils.Response	"No movements"
//	@Failure		400			{object}	utils.Response	"Unknown currency"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallets/{currency}/movimientos [get]
func (h *WalletHandler) GetMovements(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	currency, ok := h.resolveCurrency(w, r)
	if !ok {
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	wallet, err := h.ledger.GetOrCreateWallet(r.Context(), userID, currency.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	movements, err := h.ledger.ListMovements(r.Context(), wallet.ID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch movements")
		return
	}
	if len(movements) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No movements")
		return
	}

	response := make([]dto.MovementResponseDTO, len(movements))
	for i, mv := range movements {
		response[i] = dto.MovementResponseDTO{
			UUID:      mv.UUID,
			Type:      mv.Type,
			Amount:    mv.Amount,
			Rate:      mv.Rate,
			Status:    mv.Status,
			CreatedAt: mv.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Convert godoc
//
//	@Summary		Convert an amount between currencies
//	@Tags			Cotizaciones
//	@Produce		json
//	@Param			amount	query		number	true	"Amount to convert"
//	@Param			from	query		string	true	"Source currency code"
//	@Param			to		query		string	true	"Target currency code"
//	@Success		200		{object}	dto.ConvertResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid parameters"
//	@Failure		404		{object}	utils.Response	"No rate available"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rates/convert [get]
func (h *WalletHandler) Convert(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil || amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	from, err := h.rates.GetCurrency(r.Context(), r.URL.Query().Get("from"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	to, err := h.rates.GetCurrency(r.Context(), r.URL.Query().Get("to"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if from == nil || to == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown currency")
		return
	}

	conversion, err := h.rates.Convert(r.Context(), amount, from.ID, to.ID, time.Time{})
	if err != nil {
		if errors.Is(err, rateservice.ErrNoRateAvailable) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ConvertResponseDTO{
		Amount: conversion.Amount,
		Rate:   conversion.Rate,
	})
}

func (h *WalletHandler) resolveCurrency(w http.ResponseWriter, r *http.Request) (*domain.Currency, bool) {
	code := chi.URLParam(r, "currency")
	currency, err := h.rates.GetCurrency(r.Context(), code)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	if currency == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown currency")
		return nil, false
	}
	return currency, true
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}
