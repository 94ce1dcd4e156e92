package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	"github.com/ghuser/taskdeck/pkg/logger"
	appsvcs "github.com/ghuser/taskdeck/services/user/application/services"
)

// DeleteUserHandler handles DELETE /users requests.
type DeleteUserHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

// NewDeleteUserHandler returns a DeleteUserHandler backed by the given services.
func NewDeleteUserHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *DeleteUserHandler {
	return &DeleteUserHandler{svc: svc, store: store, log: log}
}

// Execute deletes the acting user's account along with their cards and every
// share they are part of, then ends the session.
//
//	@Summary		Delete account
//	@Description	Removes the account, its cards, and all shares it is part of
//	@Tags			users
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Router			/users [delete]
func (h *DeleteUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	username, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.svc.User.Delete(r.Context(), username); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.Logout(h.store, w, r); err != nil {
		// The account is gone; a lingering cookie just fails auth next time.
		h.log.Warn("failed to clear session after account deletion", "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}
