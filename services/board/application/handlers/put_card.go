package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	pkgvalidator "github.com/ghuser/taskdeck/pkg/validator"
	appsvcs "github.com/ghuser/taskdeck/services/board/application/services"
)

// UpdateCardRequest is the request body for PUT /cards/{id}. Category is
// fixed at creation; an empty title keeps the current one. Existing shares
// survive a rename, they are bound to the card, not to its title.
type UpdateCardRequest struct {
	Title       string     `json:"title"       validate:"omitempty,min=1,max=255" example:"Quarterly report v2"`
	Description string     `json:"description" validate:"max=4096" example:"Draft Q3 numbers"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Color       string     `json:"color"       validate:"omitempty,len=6,hexadecimal" example:"FFAA00"`
	URL         string     `json:"url"         validate:"omitempty,url" example:"https://example.com/doc"`
	Image       []byte     `json:"image,omitempty" swaggertype:"string" format:"base64"`
} // @name UpdateCardRequest

// PutCardHandler handles PUT /cards/{id} requests.
type PutCardHandler struct {
	svc *appsvcs.Services
}

// NewPutCardHandler returns a PutCardHandler backed by the given services.
func NewPutCardHandler(svc *appsvcs.Services) *PutCardHandler {
	return &PutCardHandler{svc: svc}
}

// Execute replaces the descriptive fields of one of the acting user's cards.
//
//	@Summary		Update card
//	@Description	Replaces a card's title, description, due date, color, URL and image
//	@Tags			boards
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Card ID"
//	@Param			request	body		UpdateCardRequest	true	"Card update request"
//	@Success		200		{object}	CardResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/cards/{id} [put]
func (h *PutCardHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[UpdateCardRequest](w, r)
	if !ok {
		return
	}

	card, err := h.svc.Card.Update(r.Context(), owner, id, appsvcs.CardInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Color:       req.Color,
		URL:         req.URL,
		Image:       req.Image,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCardResponse(card))
}
