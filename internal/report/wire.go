//go:build wireinject
// +build wireinject

package report

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/warungpos/pos-service/internal/report/delivery/http"
	"github.com/warungpos/pos-service/internal/report/domain"
	"github.com/warungpos/pos-service/internal/report/repository"
	"github.com/warungpos/pos-service/internal/report/usecase/query"
)

// ProvideReportRepository provides the GORM-backed report repository
func ProvideReportRepository(db *gorm.DB) domain.ReportRepository {
	return repository.NewGormReportRepository(db)
}

// RepositorySet is the Wire provider set for repositories
var RepositorySet = wire.NewSet(
	ProvideReportRepository,
)

// HandlerSet is the Wire provider set for query handlers
var HandlerSet = wire.NewSet(
	query.NewSalesSummaryHandler,
	query.NewTopProductsHandler,
	query.NewSalesByCashierHandler,
	query.NewDailySalesHandler,
	query.NewDashboardHandler,
)

// InitializeHTTPHandler creates a fully wired ReportHandler
func InitializeHTTPHandler(db *gorm.DB, redisClient *redis.Client) *http.ReportHandler {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewReportHandlerWithDI,
	)
	return nil
}
