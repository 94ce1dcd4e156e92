package handlers

import (
	"net/http"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	boardmodels "github.com/ghuser/taskdeck/services/board/domain/models"
	appsvcs "github.com/ghuser/taskdeck/services/share/application/services"
)

// RecipientsResponse lists who a card is shared with, in either status.
type RecipientsResponse struct {
	Recipients []string `json:"recipients" example:"bob,carol"`
} // @name RecipientsResponse

// GetRecipientsHandler handles GET /shares/recipients requests.
type GetRecipientsHandler struct {
	svc *appsvcs.Services
}

// NewGetRecipientsHandler returns a GetRecipientsHandler backed by the given services.
func NewGetRecipientsHandler(svc *appsvcs.Services) *GetRecipientsHandler {
	return &GetRecipientsHandler{svc: svc}
}

// Execute lists all recipients sharing one of the acting user's cards.
// The card is addressed by category and title query parameters.
//
//	@Summary		List recipients
//	@Description	Returns every user the card is shared with, pending or accepted
//	@Tags			shares
//	@Produce		json
//	@Param			category	query	string	true	"Card category"
//	@Param			title		query	string	true	"Card title"
//	@Success		200	{object}	RecipientsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/shares/recipients [get]
func (h *GetRecipientsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	category, err := boardmodels.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	title := r.URL.Query().Get("title")
	if title == "" {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	recipients, err := h.svc.Share.ListRecipients(r.Context(), owner, category, title)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, RecipientsResponse{Recipients: recipients})
}
