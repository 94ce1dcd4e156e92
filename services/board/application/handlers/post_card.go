package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	pkgvalidator "github.com/ghuser/taskdeck/pkg/validator"
	appsvcs "github.com/ghuser/taskdeck/services/board/application/services"
	"github.com/ghuser/taskdeck/services/board/domain/models"
)

// CreateCardRequest is the request body for POST /cards.
type CreateCardRequest struct {
	Category    string     `json:"category"    validate:"required" example:"work"`
	Title       string     `json:"title"       validate:"required,min=1,max=255" example:"Quarterly report"`
	Description string     `json:"description" validate:"max=4096" example:"Draft Q3 numbers"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Color       string     `json:"color"       validate:"omitempty,len=6,hexadecimal" example:"FFAA00"`
	URL         string     `json:"url"         validate:"omitempty,url" example:"https://example.com/doc"`
	Image       []byte     `json:"image,omitempty" swaggertype:"string" format:"base64"`
} // @name CreateCardRequest

// CardResponse is the card representation returned by board endpoints.
type CardResponse struct {
	ID          uuid.UUID  `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Owner       string     `json:"owner"       example:"alice"`
	Category    string     `json:"category"    example:"work"`
	Title       string     `json:"title"       example:"Quarterly report"`
	Description string     `json:"description" example:"Draft Q3 numbers"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Color       string     `json:"color"       example:"FFAA00"`
	URL         string     `json:"url"         example:"https://example.com/doc"`
	Position    int        `json:"position"    example:"1"`
	Status      string     `json:"status"      example:"not_done"`
	CreatedAt   time.Time  `json:"created_at"  example:"2024-01-15T10:30:00Z"`
} // @name CardResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"card already exists"`
} // @name BoardErrorResponse

// PostCardHandler handles POST /cards requests.
type PostCardHandler struct {
	svc *appsvcs.Services
}

// NewPostCardHandler returns a PostCardHandler backed by the given services.
func NewPostCardHandler(svc *appsvcs.Services) *PostCardHandler {
	return &PostCardHandler{svc: svc}
}

// Execute creates a new card on the acting user's board.
//
//	@Summary		Create card
//	@Description	Creates a card at the top of the given category board
//	@Tags			boards
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCardRequest	true	"Card creation request"
//	@Success		201		{object}	CardResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/cards [post]
func (h *PostCardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateCardRequest](w, r)
	if !ok {
		return
	}

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	card, err := h.svc.Card.Create(r.Context(), owner, category, req.Title, appsvcs.CardInput{
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

	httpx.JSON(w, http.StatusCreated, toCardResponse(card))
}

func toCardResponse(card *models.Card) CardResponse {
	return CardResponse{
		ID:          card.ID,
		Owner:       card.Owner,
		Category:    card.Category.String(),
		Title:       card.Title.String(),
		Description: card.Description,
		DueDate:     card.DueDate,
		Color:       card.Color,
		URL:         card.URL,
		Position:    card.Position,
		Status:      card.Status.String(),
		CreatedAt:   card.CreatedAt,
	}
}
