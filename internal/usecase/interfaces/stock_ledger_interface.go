package interfaces

import "context"

//go:generate mockgen -source=stock_ledger_interface.go -destination=mocks/mock_stock_ledger.go -package=mock_interfaces

// IStockLedger deducts and restores on-hand quantity of stock items (insumos).
//
// A ledger handed out by a unit of work only stages the movements; nothing is
// applied before IUnitOfWork.Commit succeeds.
type IStockLedger interface {
	Deduct(ctx context.Context, stockItemID string, quantity int) error
	Restore(ctx context.Context, stockItemID string, quantity int) error
}
