//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/vbms/inventory-service/internal/inventory/delivery/http"
	"github.com/vbms/inventory-service/internal/inventory/domain"
	"github.com/vbms/inventory-service/internal/inventory/repository"
	"github.com/vbms/inventory-service/internal/inventory/usecase/command"
	"github.com/vbms/inventory-service/internal/inventory/usecase/query"
)

// ProvideItemRepository provides the item repository with tracing spans
func ProvideItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewGormItemRepositoryWithTracing(db)
}

// ProvideTransactionRepository provides the ledger repository
func ProvideTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return repository.NewGormTransactionRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
	ProvideTransactionRepository,
)

var CommandSet = wire.NewSet(
	command.NewCreateItemHandler,
	command.NewUpdateItemHandler,
	command.NewDeleteItemHandler,
	command.NewAdjustStockHandler,
	command.NewTransferStockHandler,
	command.NewReserveStockHandler,
	command.NewReleaseStockHandler,
	command.NewReverseTransactionHandler,
	command.NewImportItemsHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetItemHandler,
	query.NewListItemsHandler,
	query.NewListTransactionsHandler,
	query.NewGetSummaryHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies.
// The alert dispatcher is passed in so main can choose Kafka or noop.
func InitializeHTTPHandler(db *gorm.DB, alerts command.AlertDispatcher) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
