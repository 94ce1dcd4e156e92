package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/httpx"
	"github.com/ghuser/taskdeck/pkg/logger"
)

// DeleteSessionHandler handles DELETE /sessions requests.
type DeleteSessionHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewDeleteSessionHandler returns a DeleteSessionHandler using the given session store.
func NewDeleteSessionHandler(store sessions.Store, log logger.Logger) *DeleteSessionHandler {
	return &DeleteSessionHandler{store: store, log: log}
}

// Execute ends the current session. Logging out without a session is a no-op.
//
//	@Summary		Log out
//	@Description	Clears the session cookie
//	@Tags			users
//	@Success		204
//	@Router			/sessions [delete]
func (h *DeleteSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.Logout(h.store, w, r); err != nil {
		h.log.Error("failed to clear session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
