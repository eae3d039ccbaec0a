package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/warungpos/pos-service/internal/sale/domain"
)

var tracer = otel.Tracer("sale-repository")

// GormSaleRepositoryWithTracing wraps GormSaleRepository with tracing
type GormSaleRepositoryWithTracing struct {
	*GormSaleRepository
}

// NewGormSaleRepositoryWithTracing creates a traced sale repository
func NewGormSaleRepositoryWithTracing(base *GormSaleRepository) *GormSaleRepositoryWithTracing {
	return &GormSaleRepositoryWithTracing{GormSaleRepository: base}
}

// Create with tracing
func (r *GormSaleRepositoryWithTracing) Create(ctx context.Context, sale *domain.Sale) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("sale.user_id", int(sale.UserID)),
			attribute.Int("sale.item_count", len(sale.Items)),
			attribute.String("sale.payment_method", sale.PaymentMethod),
		),
	)
	defer span.End()

	err := r.GormSaleRepository.Create(ctx, sale)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.String("sale.invoice_number", sale.InvoiceNumber),
		attribute.Float64("sale.total_amount", sale.TotalAmount),
	)
	return nil
}

// FindByID with tracing
func (r *GormSaleRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Sale, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("sale.id", int(id)),
		),
	)
	defer span.End()

	sale, err := r.GormSaleRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("sale.invoice_number", sale.InvoiceNumber))
	return sale, nil
}

// FindAll with tracing
func (r *GormSaleRepositoryWithTracing) FindAll(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", filter.Limit),
			attribute.Int("query.offset", filter.Offset),
		),
	)
	defer span.End()

	sales, err := r.GormSaleRepository.FindAll(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("query.result_count", len(sales)))
	return sales, nil
}
