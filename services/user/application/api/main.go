package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/taskdeck/pkg/app"
	"github.com/ghuser/taskdeck/services/user/application/handlers"
	appsvcs "github.com/ghuser/taskdeck/services/user/application/services"
)

// UserRoutes registers account and session endpoints on the provided chi
// router. These routes are public; everything else requires a session.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Post("/users", handlers.NewPostUserHandler(svcs).Execute)
		r.Post("/sessions", handlers.NewPostSessionHandler(svcs, a.SessionStore, a.Logger).Execute)
		r.Delete("/sessions", handlers.NewDeleteSessionHandler(a.SessionStore, a.Logger).Execute)
	})
}

// AccountRoutes registers the endpoints that act on the logged-in account.
// Mount behind RequireAuth.
func AccountRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Delete("/users", handlers.NewDeleteUserHandler(svcs, a.SessionStore, a.Logger).Execute)
}
