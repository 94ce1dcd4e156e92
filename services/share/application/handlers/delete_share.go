package handlers

import (
	"net/http"
	"strings"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	pkgvalidator "github.com/ghuser/taskdeck/pkg/validator"
	boardmodels "github.com/ghuser/taskdeck/services/board/domain/models"
	appsvcs "github.com/ghuser/taskdeck/services/share/application/services"
)

// RevokeShareRequest is the request body for DELETE /shares.
// Recipient may be omitted when the acting user is removing their own access.
type RevokeShareRequest struct {
	Recipient string `json:"recipient,omitempty" validate:"omitempty,min=3,max=64" example:"bob"`
	Owner     string `json:"owner"    validate:"required,min=3,max=64" example:"alice"`
	Category  string `json:"category" validate:"required" example:"work"`
	Title     string `json:"title"    validate:"required,min=1,max=255" example:"Quarterly report"`
} // @name RevokeShareRequest

// DeleteShareHandler handles DELETE /shares requests.
type DeleteShareHandler struct {
	svc *appsvcs.Services
}

// NewDeleteShareHandler returns a DeleteShareHandler backed by the given services.
func NewDeleteShareHandler(svc *appsvcs.Services) *DeleteShareHandler {
	return &DeleteShareHandler{svc: svc}
}

// Execute revokes a share. The acting user must be either the recipient
// (dropping their own access) or the card's owner (managing collaborators);
// anyone else gets 403.
//
//	@Summary		Revoke share
//	@Description	Deletes a share regardless of status
//	@Tags			shares
//	@Accept			json
//	@Produce		json
//	@Param			request	body	RevokeShareRequest	true	"Share to revoke"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/shares [delete]
func (h *DeleteShareHandler) Execute(w http.ResponseWriter, r *http.Request) {
	acting, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[RevokeShareRequest](w, r)
	if !ok {
		return
	}

	recipient := req.Recipient
	if recipient == "" {
		recipient = acting
	}
	if !strings.EqualFold(acting, recipient) && !strings.EqualFold(acting, req.Owner) {
		httpx.JSON(w, http.StatusForbidden, ErrorResponse{Error: "not a party to this share"})
		return
	}

	category, err := boardmodels.ParseCategory(req.Category)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.svc.Share.Revoke(r.Context(), recipient, req.Owner, category, req.Title); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
