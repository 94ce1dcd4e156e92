package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/taskdeck/pkg/app"
	pkgcache "github.com/ghuser/taskdeck/pkg/cache"
	"github.com/ghuser/taskdeck/services/share/application/handlers"
	appsvcs "github.com/ghuser/taskdeck/services/share/application/services"
)

// ShareRoutes registers share and invitation endpoints on the provided chi router.
func ShareRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	counts := pkgcache.NewInviteCountCache(a.Redis)
	r.Group(func(r chi.Router) {
		r.Route("/shares", func(r chi.Router) {
			r.Post("/", handlers.NewPostShareHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteShareHandler(svcs).Execute)
			r.Get("/recipients", handlers.NewGetRecipientsHandler(svcs).Execute)
		})
		r.Route("/invitations", func(r chi.Router) {
			r.Get("/", handlers.NewGetInvitationsHandler(svcs).Execute)
			r.Get("/count", handlers.NewGetInvitationCountHandler(svcs, counts).Execute)
			r.Post("/decision", handlers.NewPostDecisionHandler(svcs).Execute)
		})
	})
}
