package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	pkgvalidator "github.com/ghuser/taskdeck/pkg/validator"
	appsvcs "github.com/ghuser/taskdeck/services/board/application/services"
	"github.com/ghuser/taskdeck/services/board/domain/models"
)

// PatchCardStatusRequest is the request body for PATCH /cards/{id}/status.
type PatchCardStatusRequest struct {
	Status string `json:"status" validate:"required" example:"done"`
} // @name PatchCardStatusRequest

// PatchCardStatusHandler handles PATCH /cards/{id}/status requests.
type PatchCardStatusHandler struct {
	svc *appsvcs.Services
}

// NewPatchCardStatusHandler returns a PatchCardStatusHandler backed by the given services.
func NewPatchCardStatusHandler(svc *appsvcs.Services) *PatchCardStatusHandler {
	return &PatchCardStatusHandler{svc: svc}
}

// Execute marks an owned card done or not done.
//
//	@Summary		Set card status
//	@Description	Marks a card done or not done
//	@Tags			boards
//	@Accept			json
//	@Param			id		path	string					true	"Card ID"	format(uuid)
//	@Param			request	body	PatchCardStatusRequest	true	"Status change request"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/cards/{id}/status [patch]
func (h *PatchCardStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "invalid card id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PatchCardStatusRequest](w, r)
	if !ok {
		return
	}

	status, err := models.ParseCardStatus(req.Status)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.svc.Card.SetStatus(r.Context(), owner, id, status); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
