//go:build wireinject
// +build wireinject

package sale

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/warungpos/pos-service/internal/sale/delivery/http"
	"github.com/warungpos/pos-service/internal/sale/domain"
	"github.com/warungpos/pos-service/internal/sale/repository"
	"github.com/warungpos/pos-service/internal/sale/usecase/command"
	"github.com/warungpos/pos-service/internal/sale/usecase/query"
	"github.com/warungpos/pos-service/kafka"
)

// ProvideSaleRepository provides the GORM-backed sale repository with tracing
func ProvideSaleRepository(db *gorm.DB) domain.SaleRepository {
	return repository.NewGormSaleRepositoryWithTracing(repository.NewGormSaleRepository(db))
}

// RepositorySet is the Wire provider set for repositories
var RepositorySet = wire.NewSet(
	ProvideSaleRepository,
)

// HandlerSet is the Wire provider set for command and query handlers
var HandlerSet = wire.NewSet(
	command.NewCreateSaleHandler,
	query.NewGetSaleHandler,
	query.NewGetSaleByInvoiceHandler,
	query.NewListSalesHandler,
)

// InitializeHTTPHandler creates a fully wired SaleHandler
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) *http.SaleHandler {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewSaleHandlerWithDI,
	)
	return nil
}
