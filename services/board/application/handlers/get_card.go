package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	appsvcs "github.com/ghuser/taskdeck/services/board/application/services"
)

// GetCardHandler handles GET /cards/{id} requests.
type GetCardHandler struct {
	svc *appsvcs.Services
}

// NewGetCardHandler returns a GetCardHandler backed by the given services.
func NewGetCardHandler(svc *appsvcs.Services) *GetCardHandler {
	return &GetCardHandler{svc: svc}
}

// Execute returns one of the acting user's cards, served from the read-model
// cache when warm.
//
//	@Summary		Get card
//	@Description	Returns a single owned card with all of its fields
//	@Tags			boards
//	@Produce		json
//	@Param			id	path		string	true	"Card ID"
//	@Success		200	{object}	CardResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/cards/{id} [get]
func (h *GetCardHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	card, err := h.svc.Card.GetByID(r.Context(), owner, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCardResponse(card))
}
