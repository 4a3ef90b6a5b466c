package services

import (
	"catalogo/internal/models"
)

// ReconcileStatus resolves the status to persist for a given stock quantity.
// Zero stock forces the out-of-stock status; the rule is one-directional, so
// a positive quantity never moves a product out of out-of-stock.
func ReconcileStatus(quantity int, status models.ProductStatus) models.ProductStatus {
	if quantity == 0 && status != models.StatusOutOfStock {
		return models.StatusOutOfStock
	}
	return status
}

// ReconcilePatch applies the stock rule to an update. The effective quantity
// and status are the submitted values when present, otherwise the existing
// record's. When the effective quantity is zero and the effective status is
// not out-of-stock, the returned patch carries the forced status even if the
// caller never submitted one; otherwise the patch is returned unchanged.
func ReconcilePatch(existing models.Product, patch models.ProductPatch) models.ProductPatch {
	quantity := existing.StockQuantity
	if patch.StockQuantity != nil {
		quantity = *patch.StockQuantity
	}
	status := existing.Status
	if patch.Status != nil {
		status = *patch.Status
	}

	if forced := ReconcileStatus(quantity, status); forced != status {
		patch.Status = &forced
	}
	return patch
}
