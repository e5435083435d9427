package recarga

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avelarde/recargas/internal/domain"
	"github.com/avelarde/recargas/internal/dto"
	"github.com/avelarde/recargas/internal/service/ledgerservice"
	"github.com/avelarde/recargas/internal/service/rateservice"
	"github.com/avelarde/recargas/internal/service/rechargeservice"
	"github.com/avelarde/recargas/pkg/auth"
	"github.com/avelarde/recargas/pkg/utils"
	"github.com/avelarde/recargas/pkg/validate"
)

type Service interface {
	Solicitar(ctx context.Context, userID, currencyID int, movType string, amount float64, reference, description string) (*domain.SolicitudRecarga, error)
	Verificar(ctx context.Context, solicitudID, verifierID int, montoConfirmado float64) error
	Rechazar(ctx context.Context, solicitudID, verifierID int, motivo string) error
	Rehabilitar(ctx context.Context, solicitudID, userID int, observacion string) error
	GetSolicitudes(ctx context.Context, userID int) ([]domain.SolicitudRecarga, error)
}

type Currencies interface {
	GetCurrency(ctx context.Context, code string) (*domain.Currency, error)
}

type RecargaHandler struct {
	rechargeService Service
	currencies      Currencies
}

func New(rechargeService Service, currencies Currencies) *RecargaHandler {
	return &RecargaHandler{
		rechargeService: rechargeService,
		currencies:      currencies,
	}
}

// Solicitar godoc
//
//	@Summary		Create a recharge request
//	@Description	Create a recharge request in pendiente state; a verifier is assigned when one is available.
//	@Tags			Recargas
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SolicitarRecargaRequestDTO	true	"Recharge request payload"
//	@Success		201		{object}	dto.SolicitudResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid deposit reference"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/recargas [post]
func (h *RecargaHandler) Solicitar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SolicitarRecargaRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Reference != "" && !validate.IsReference(req.Reference) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid deposit reference")
		return
	}

	currency, err := h.currencies.GetCurrency(r.Context(), req.Currency)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if currency == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown currency")
		return
	}

	solicitud, err := h.rechargeService.Solicitar(r.Context(), userID, currency.ID, req.Type, req.Amount, req.Reference, req.Description)
	if err != nil {
		if errors.Is(err, rechargeservice.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toSolicitudDTO(solicitud))
}

// GetSolicitudes godoc
//
//	@Summary		List own recharge requests
//	@Tags			Recargas
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SolicitudResponseDTO
//	@Success		204	{object}	utils.Response	"No requests found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/recargas [get]
func (h *RecargaHandler) GetSolicitudes(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	solicitudes, err := h.rechargeService.GetSolicitudes(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch solicitudes")
		return
	}
	if len(solicitudes) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No requests found")
		return
	}

	response := make([]dto.SolicitudResponseDTO, len(solicitudes))
	for i, s := range solicitudes {
		response[i] = *toSolicitudDTO(&s)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Verificar godoc
//
//	@Summary		Approve a recharge request
//	@Description	Commit the pending movement with the confirmed amount. Only the assigned verifier may call this.
//	@Tags			Recargas
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Solicitud ID"
//	@Param			request	body		dto.VerificarRequestDTO	true	"Confirmed amount"
//	@Success		200		{string}	string					"Verified"
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		409		{object}	utils.Response	"Invalid state or no rate available"
//	@Failure		422		{object}	utils.Response	"Amount outside tolerance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/recargas/{id}/verificar [post]
func (h *RecargaHandler) Verificar(w http.ResponseWriter, r *http.Request) {
	verifierID := r.Context().Value(auth.UserIDKey).(int)

	solicitudID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid solicitud id")
		return
	}

	var req dto.VerificarRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.rechargeService.Verificar(r.Context(), solicitudID, verifierID, req.Amount); err != nil {
		respondWorkflowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "verified")
}

// Rechazar godoc
//
//	@Summary		Reject a recharge request
//	@Description	Reject the request with a mandatory motivo; no funds move.
//	@Tags			Recargas
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Solicitud ID"
//	@Param			request	body		dto.RechazarRequestDTO	true	"Rejection reason"
//	@Success		200		{string}	string					"Rejected"
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Invalid state"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/recargas/{id}/rechazar [post]
func (h *RecargaHandler) Rechazar(w http.ResponseWriter, r *http.Request) {
	verifierID := r.Context().Value(auth.UserIDKey).(int)

	solicitudID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid solicitud id")
		return
	}

	var req dto.RechazarRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.rechargeService.Rechazar(r.Context(), solicitudID, verifierID, req.Motivo); err != nil {
		respondWorkflowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "rejected")
}

// Rehabilitar godoc
//
//	@Summary		Re-enable a rejected recharge request
//	@Description	Put a rejected request back in the queue with a new pending movement. Only the original requester may call this.
//	@Tags			Recargas
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Solicitud ID"
//	@Param			request	body		dto.RehabilitarRequestDTO	true	"Re-enablement note"
//	@Success		200		{string}	string						"Re-enabled"
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Invalid state"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/recargas/{id}/rehabilitar [post]
func (h *RecargaHandler) Rehabilitar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	solicitudID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid solicitud id")
		return
	}

	var req dto.RehabilitarRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.rechargeService.Rehabilitar(r.Context(), solicitudID, userID, req.Observacion); err != nil {
		respondWorkflowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "re-enabled")
}

func respondWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rechargeservice.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, rechargeservice.ErrInvalidState):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, rechargeservice.ErrAmountMismatch):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, rateservice.ErrNoRateAvailable):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledgerservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSolicitudDTO(s *domain.SolicitudRecarga) *dto.SolicitudResponseDTO {
	return &dto.SolicitudResponseDTO{
		ID:        s.ID,
		UUID:      s.UUID,
		Type:      s.Type,
		Amount:    s.Amount,
		State:     s.State,
		Motivo:    s.Motivo,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
