//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/warungpos/pos-service/internal/product/delivery/http"
	"github.com/warungpos/pos-service/internal/product/domain"
	"github.com/warungpos/pos-service/internal/product/repository"
	"github.com/warungpos/pos-service/internal/product/usecase/command"
	"github.com/warungpos/pos-service/internal/product/usecase/query"
)

// ProvideProductRepository provides the GORM-backed product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// RepositorySet is the Wire provider set for repositories
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

// HandlerSet is the Wire provider set for command and query handlers
var HandlerSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewUpdateStockHandler,
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewGetStatsHandler,
)

// InitializeHTTPHandler creates a fully wired ProductHandler
func InitializeHTTPHandler(db *gorm.DB) *http.ProductHandler {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewProductHandlerWithDI,
	)
	return nil
}
