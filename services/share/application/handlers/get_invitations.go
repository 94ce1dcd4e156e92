package handlers

import (
	"net/http"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	appsvcs "github.com/ghuser/taskdeck/services/share/application/services"
)

// InviteResponse is one pending invitation in the Invitations view.
type InviteResponse struct {
	Owner    string `json:"owner"    example:"alice"`
	Category string `json:"category" example:"work"`
	Title    string `json:"title"    example:"Quarterly report"`
} // @name InviteResponse

// GetInvitationsHandler handles GET /invitations requests.
type GetInvitationsHandler struct {
	svc *appsvcs.Services
}

// NewGetInvitationsHandler returns a GetInvitationsHandler backed by the given services.
func NewGetInvitationsHandler(svc *appsvcs.Services) *GetInvitationsHandler {
	return &GetInvitationsHandler{svc: svc}
}

// Execute lists the acting user's pending invitations.
//
//	@Summary		List invitations
//	@Description	Returns pending share requests addressed to the acting user, oldest first
//	@Tags			shares
//	@Produce		json
//	@Success		200	{array}		InviteResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/invitations [get]
func (h *GetInvitationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	recipient, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	invites, err := h.svc.Share.ListPending(r.Context(), recipient)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]InviteResponse, len(invites))
	for i, inv := range invites {
		resp[i] = InviteResponse{Owner: inv.Owner, Category: inv.Category, Title: inv.Title}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
