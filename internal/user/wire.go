//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/warungpos/pos-service/internal/user/delivery/http"
	"github.com/warungpos/pos-service/internal/user/domain"
	"github.com/warungpos/pos-service/internal/user/repository"
	"github.com/warungpos/pos-service/internal/user/usecase/command"
	"github.com/warungpos/pos-service/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var HandlerSet = wire.NewSet(
	command.NewRegisterUserHandler,
	command.NewLoginUserHandler,
	command.NewChangeRoleHandler,
	command.NewToggleActiveHandler,
	query.NewGetUserHandler,
	query.NewListUsersHandler,
	query.NewGetStatsHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewUserHandlerWithDI,
	)
	return nil, nil
}
