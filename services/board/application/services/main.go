package services

import (
	"github.com/ghuser/taskdeck/pkg/app"
	"github.com/ghuser/taskdeck/pkg/cache"
	"github.com/ghuser/taskdeck/services/board/infrastructure/persistence/postgres"
	sharesvcs "github.com/ghuser/taskdeck/services/share/application/services"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Card  *CardService
	Board *BoardService
}

// New wires the board application services with infrastructure from the
// Application container. The share registry is wired in as the cascade hook
// that card deletion runs before removing the row.
func New(a *app.Application) *Services {
	repo := postgres.NewCardRepository(a.Db, a.EventBus)
	cardCache := cache.NewCardCache(a.Redis)
	shares := sharesvcs.New(a).Share
	return &Services{
		Card:  NewCardService(repo, shares, cardCache),
		Board: NewBoardService(repo),
	}
}
