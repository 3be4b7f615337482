package catalog

import "fmt"

// Stock badge severities for listing UIs.
const (
	StockOut = "out-of-stock"
	StockLow = "low-stock"
	StockIn  = "in-stock"
)

// lowStockMax is the highest stock level that still shows the low-stock
// badge.
const lowStockMax = 20

// StockStatus classifies a stock level into a badge severity.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return StockOut
	case stock <= lowStockMax:
		return StockLow
	default:
		return StockIn
	}
}

// StockText renders the customer-facing availability line for a stock level.
func StockText(stock int) string {
	switch StockStatus(stock) {
	case StockOut:
		return "Out of Stock"
	case StockLow:
		return fmt.Sprintf("Only %d left!", stock)
	default:
		return fmt.Sprintf("%d in stock", stock)
	}
}
