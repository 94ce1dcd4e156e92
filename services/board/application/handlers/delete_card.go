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

// DeleteCardHandler handles DELETE /cards/{id} requests.
type DeleteCardHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCardHandler returns a DeleteCardHandler backed by the given services.
func NewDeleteCardHandler(svc *appsvcs.Services) *DeleteCardHandler {
	return &DeleteCardHandler{svc: svc}
}

// Execute deletes one of the acting user's cards. All shares of the
// card are revoked first so recipients lose access atomically with the
// card itself.
//
//	@Summary		Delete card
//	@Description	Deletes an owned card and revokes all of its shares
//	@Tags			boards
//	@Param			id	path	string	true	"Card ID"	format(uuid)
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/cards/{id} [delete]
func (h *DeleteCardHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Card.Delete(r.Context(), owner, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
