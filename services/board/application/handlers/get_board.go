package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/taskdeck/pkg/auth"
	"github.com/ghuser/taskdeck/pkg/errhttp"
	"github.com/ghuser/taskdeck/pkg/httpx"
	appsvcs "github.com/ghuser/taskdeck/services/board/application/services"
	"github.com/ghuser/taskdeck/services/board/domain/models"
)

// BoardResponse is the response body for GET /boards/{category}.
type BoardResponse struct {
	Category string         `json:"category" example:"work"`
	Cards    []CardResponse `json:"cards"`
} // @name BoardResponse

// GetBoardHandler handles GET /boards/{category} requests.
type GetBoardHandler struct {
	svc *appsvcs.Services
}

// NewGetBoardHandler returns a GetBoardHandler backed by the given services.
func NewGetBoardHandler(svc *appsvcs.Services) *GetBoardHandler {
	return &GetBoardHandler{svc: svc}
}

// Execute returns the acting user's effective board for a category:
// their own cards followed by cards shared with them and accepted.
//
//	@Summary		Get board
//	@Description	Returns owned cards plus accepted shared cards for one category
//	@Tags			boards
//	@Produce		json
//	@Param			category	path		string	true	"Board category"	Enums(work, university, free_time)
//	@Success		200			{object}	BoardResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/boards/{category} [get]
func (h *GetBoardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	user, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	category, err := models.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	cards, err := h.svc.Board.EffectiveCards(r.Context(), user, category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := BoardResponse{Category: category.String(), Cards: make([]CardResponse, 0, len(cards))}
	for _, card := range cards {
		resp.Cards = append(resp.Cards, toCardResponse(card))
	}

	httpx.JSON(w, http.StatusOK, resp)
}
