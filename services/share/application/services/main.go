package services

import (
	"github.com/ghuser/taskdeck/pkg/app"
	boardpg "github.com/ghuser/taskdeck/services/board/infrastructure/persistence/postgres"
	"github.com/ghuser/taskdeck/services/share/infrastructure/persistence/postgres"
	userpg "github.com/ghuser/taskdeck/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Share *ShareService
}

// New wires the share application services with infrastructure from the
// Application container. The board and user repositories double as the
// card/user directories the share protocol validates against.
func New(a *app.Application) *Services {
	repo := postgres.NewShareRepository(a.Db, a.EventBus)
	cards := boardpg.NewCardRepository(a.Db, a.EventBus)
	users := userpg.NewUserRepository(a.Db)
	return &Services{
		Share: NewShareService(repo, cards, users),
	}
}
