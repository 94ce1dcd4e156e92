package handlers

import (
	"net/http"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	pkgvalidator "github.com/ghuser/taskdeck/pkg/validator"
	boardmodels "github.com/ghuser/taskdeck/services/board/domain/models"
	appsvcs "github.com/ghuser/taskdeck/services/share/application/services"
)

// ShareCardRequest is the request body for POST /shares.
type ShareCardRequest struct {
	Recipient string `json:"recipient" validate:"required,min=3,max=64" example:"bob"`
	Category  string `json:"category"  validate:"required" example:"work"`
	Title     string `json:"title"     validate:"required,min=1,max=255" example:"Quarterly report"`
} // @name ShareCardRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"card not found"`
} // @name ErrorResponse

// PostShareHandler handles POST /shares requests.
type PostShareHandler struct {
	svc *appsvcs.Services
}

// NewPostShareHandler returns a PostShareHandler backed by the given services.
func NewPostShareHandler(svc *appsvcs.Services) *PostShareHandler {
	return &PostShareHandler{svc: svc}
}

// Execute creates a pending share of one of the acting user's cards.
//
//	@Summary		Request share
//	@Description	Offers one of the acting user's cards to another user; the recipient must accept before seeing it
//	@Tags			shares
//	@Accept			json
//	@Produce		json
//	@Param			request	body	ShareCardRequest	true	"Share request"
//	@Success		201
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/shares [post]
func (h *PostShareHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ShareCardRequest](w, r)
	if !ok {
		return
	}

	category, err := boardmodels.ParseCategory(req.Category)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.svc.Share.RequestShare(r.Context(), req.Recipient, owner, category, req.Title); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
