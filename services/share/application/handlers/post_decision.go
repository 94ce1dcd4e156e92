package handlers

import (
	"net/http"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	pkgvalidator "github.com/ghuser/taskdeck/pkg/validator"
	boardmodels "github.com/ghuser/taskdeck/services/board/domain/models"
	appsvcs "github.com/ghuser/taskdeck/services/share/application/services"
	sharemodels "github.com/ghuser/taskdeck/services/share/domain/models"
)

// DecideShareRequest is the request body for POST /invitations/decision.
type DecideShareRequest struct {
	Owner    string `json:"owner"    validate:"required,min=3,max=64" example:"alice"`
	Category string `json:"category" validate:"required" example:"work"`
	Title    string `json:"title"    validate:"required,min=1,max=255" example:"Quarterly report"`
	Decision string `json:"decision" validate:"required,oneof=ACCEPT REJECT" example:"ACCEPT"`
} // @name DecideShareRequest

// PostDecisionHandler handles POST /invitations/decision requests.
type PostDecisionHandler struct {
	svc *appsvcs.Services
}

// NewPostDecisionHandler returns a PostDecisionHandler backed by the given services.
func NewPostDecisionHandler(svc *appsvcs.Services) *PostDecisionHandler {
	return &PostDecisionHandler{svc: svc}
}

// Execute accepts or rejects a pending invitation addressed to the acting user.
//
//	@Summary		Decide invitation
//	@Description	Accepts (retains, visible on the board) or rejects (deletes) a pending share request
//	@Tags			shares
//	@Accept			json
//	@Produce		json
//	@Param			request	body	DecideShareRequest	true	"Decision"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/invitations/decision [post]
func (h *PostDecisionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	recipient, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[DecideShareRequest](w, r)
	if !ok {
		return
	}

	category, err := boardmodels.ParseCategory(req.Category)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	decision, err := sharemodels.ParseDecision(req.Decision)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.svc.Share.Decide(r.Context(), recipient, req.Owner, category, req.Title, decision); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
