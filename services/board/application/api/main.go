package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/taskdeck/pkg/app"
	"github.com/ghuser/taskdeck/services/board/application/handlers"
	appsvcs "github.com/ghuser/taskdeck/services/board/application/services"
)

// BoardRoutes registers card and board endpoints on the provided chi router.
func BoardRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/cards", func(r chi.Router) {
			r.Post("/", handlers.NewPostCardHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetCardHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutCardHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteCardHandler(svcs).Execute)
			r.Patch("/{id}/status", handlers.NewPatchCardStatusHandler(svcs).Execute)
		})
		r.Get("/boards/{category}", handlers.NewGetBoardHandler(svcs).Execute)
	})
}
