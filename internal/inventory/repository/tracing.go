package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormItemRepositoryWithTracing wraps GormItemRepository with tracing spans
// on the hot paths. The repository contract carries no context, so the spans
// are roots correlated through their owner and item attributes.
type GormItemRepositoryWithTracing struct {
	*GormItemRepository
}

// NewGormItemRepositoryWithTracing creates a new repository with tracing.
func NewGormItemRepositoryWithTracing(db *gorm.DB) *GormItemRepositoryWithTracing {
	return &GormItemRepositoryWithTracing{
		GormItemRepository: NewGormItemRepository(db),
	}
}

// FindByID traces a single item load.
func (r *GormItemRepositoryWithTracing) FindByID(ownerID, id uint) (*domain.Item, error) {
	_, span := tracer.Start(context.Background(), "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("item.owner_id", int(ownerID)),
			attribute.Int("item.id", int(id)),
		),
	)
	defer span.End()

	item, err := r.GormItemRepository.FindByID(ownerID, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("item.sku", item.SKU),
		attribute.Int("item.quantity.current", item.Quantity.Current),
	)
	return item, nil
}

// FindAll traces a filtered listing.
func (r *GormItemRepositoryWithTracing) FindAll(ownerID uint, filter domain.ItemFilter) ([]domain.Item, error) {
	_, span := tracer.Start(context.Background(), "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("item.owner_id", int(ownerID)),
			attribute.Int("query.limit", filter.Limit),
			attribute.Int("query.offset", filter.Offset),
		),
	)
	defer span.End()

	items, err := r.GormItemRepository.FindAll(ownerID, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

// Mutate traces a locked quantity mutation.
func (r *GormItemRepositoryWithTracing) Mutate(ownerID, itemID uint, fn func(item *domain.Item) (*domain.Transaction, error)) (*domain.Item, *domain.Transaction, error) {
	_, span := tracer.Start(context.Background(), "repository.Mutate",
		trace.WithAttributes(
			attribute.Int("item.owner_id", int(ownerID)),
			attribute.Int("item.id", int(itemID)),
		),
	)
	defer span.End()

	item, entry, err := r.GormItemRepository.Mutate(ownerID, itemID, fn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	span.SetAttributes(attribute.Int("item.quantity.current", item.Quantity.Current))
	if entry != nil {
		span.SetAttributes(
			attribute.String("transaction.type", string(entry.Type)),
			attribute.Int("transaction.quantity", entry.Quantity),
		)
	}
	return item, entry, nil
}
