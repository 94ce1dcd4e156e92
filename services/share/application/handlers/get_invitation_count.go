package handlers

import (
	"context"
	"net/http"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	appsvcs "github.com/ghuser/taskdeck/services/share/application/services"
)

// InviteCountResponse is the pending-invitation counter for the badge in the
// navigation bar.
type InviteCountResponse struct {
	Count int64 `json:"count" example:"3"`
} // @name InviteCountResponse

// inviteCountReader reads the worker-maintained pending counter.
type inviteCountReader interface {
	Get(ctx context.Context, recipient string) (int64, error)
}

// GetInvitationCountHandler handles GET /invitations/count requests.
type GetInvitationCountHandler struct {
	svc    *appsvcs.Services
	counts inviteCountReader
}

// NewGetInvitationCountHandler returns a GetInvitationCountHandler backed by
// the given services and counter cache. counts may be nil, in which case
// every request counts against the store.
func NewGetInvitationCountHandler(svc *appsvcs.Services, counts inviteCountReader) *GetInvitationCountHandler {
	return &GetInvitationCountHandler{svc: svc, counts: counts}
}

// Execute returns how many pending invitations are addressed to the acting
// user. The counter comes from the worker-maintained cache when available;
// a cache failure falls back to counting the store directly.
//
//	@Summary		Count invitations
//	@Description	Returns the number of pending share requests addressed to the acting user
//	@Tags			shares
//	@Produce		json
//	@Success		200	{object}	InviteCountResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/invitations/count [get]
func (h *GetInvitationCountHandler) Execute(w http.ResponseWriter, r *http.Request) {
	recipient, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if h.counts != nil {
		if n, err := h.counts.Get(r.Context(), recipient); err == nil {
			httpx.JSON(w, http.StatusOK, InviteCountResponse{Count: n})
			return
		}
	}

	invites, err := h.svc.Share.ListPending(r.Context(), recipient)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, InviteCountResponse{Count: int64(len(invites))})
}
