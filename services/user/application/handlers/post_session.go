package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	"github.com/ghuser/taskdeck/pkg/logger"
	pkgvalidator "github.com/ghuser/taskdeck/pkg/validator"
	appsvcs "github.com/ghuser/taskdeck/services/user/application/services"
)

// LoginRequest is the request body for POST /sessions.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"hunter2hunter2"`
} // @name LoginRequest

// SessionResponse is returned after a successful login.
type SessionResponse struct {
	Username string `json:"username" example:"alice"`
} // @name SessionResponse

// PostSessionHandler handles POST /sessions requests.
type PostSessionHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

// NewPostSessionHandler returns a PostSessionHandler backed by the given services.
func NewPostSessionHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *PostSessionHandler {
	return &PostSessionHandler{svc: svc, store: store, log: log}
}

// Execute verifies credentials and opens a session for the user.
//
//	@Summary		Log in
//	@Description	Verifies credentials and sets a session cookie
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	SessionResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/sessions [post]
func (h *PostSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.User.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.Login(h.store, w, r, user.Username); err != nil {
		h.log.Error("failed to open session", "error", err, "username", user.Username)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to open session")
		return
	}

	httpx.JSON(w, http.StatusOK, SessionResponse{Username: user.Username})
}
