package services

import (
	"github.com/ghuser/taskdeck/pkg/app"
	boardsvcs "github.com/ghuser/taskdeck/services/board/application/services"
	sharesvcs "github.com/ghuser/taskdeck/services/share/application/services"
	"github.com/ghuser/taskdeck/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	User *UserService
}

// New wires the user application services with infrastructure from the
// Application container. The board and share services are wired in as the
// cascade hooks account deletion runs before removing the row.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db)
	boards := boardsvcs.New(a).Card
	shares := sharesvcs.New(a).Share
	return &Services{
		User: NewUserService(repo, boards, shares),
	}
}
