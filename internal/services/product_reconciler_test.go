package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"catalogo/internal/models"
	"catalogo/internal/services"
)

func TestReconcileStatus(t *testing.T) {
	testCases := []struct {
		name     string
		quantity int
		status   models.ProductStatus
		expected models.ProductStatus
	}{
		{"zero stock forces out of stock", 0, models.StatusInStock, models.StatusOutOfStock},
		{"zero stock with restocking forces out of stock", 0, models.StatusRestocking, models.StatusOutOfStock},
		{"zero stock already out of stock", 0, models.StatusOutOfStock, models.StatusOutOfStock},
		{"positive stock keeps in stock", 5, models.StatusInStock, models.StatusInStock},
		{"positive stock keeps restocking", 5, models.StatusRestocking, models.StatusRestocking},
		// the rule is one-directional: stock on hand never cancels out-of-stock
		{"positive stock keeps out of stock", 5, models.StatusOutOfStock, models.StatusOutOfStock},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, services.ReconcileStatus(tc.quantity, tc.status))
		})
	}
}

func TestReconcilePatch_SubmittedZeroStockForcesStatus(t *testing.T) {
	existing := models.Product{
		ID:            "1",
		Name:          "Mouse sem fio",
		Price:         decimal.RequireFromString("89.90"),
		Status:        models.StatusInStock,
		StockQuantity: 10,
	}
	patch := models.ProductPatch{StockQuantity: intPtr(0)}

	result := services.ReconcilePatch(existing, patch)

	assert.NotNil(t, result.Status)
	assert.Equal(t, models.StatusOutOfStock, *result.Status)
	assert.Equal(t, 0, *result.StockQuantity)
	// untouched fields never enter the patch
	assert.Nil(t, result.Name)
	assert.Nil(t, result.Description)
	assert.Nil(t, result.Price)
}

func TestReconcilePatch_SubmittedStatusOverridden(t *testing.T) {
	existing := models.Product{ID: "1", Status: models.StatusInStock, StockQuantity: 10}
	inStock := models.StatusInStock
	patch := models.ProductPatch{
		StockQuantity: intPtr(0),
		Status:        &inStock,
	}

	result := services.ReconcilePatch(existing, patch)

	assert.Equal(t, models.StatusOutOfStock, *result.Status)
}

func TestReconcilePatch_EmptyPatchOnConsistentRecord(t *testing.T) {
	existing := models.Product{ID: "1", Status: models.StatusInStock, StockQuantity: 10}

	result := services.ReconcilePatch(existing, models.ProductPatch{})

	assert.True(t, result.IsEmpty())
}

func TestReconcilePatch_EmptyPatchReappliesInvariant(t *testing.T) {
	// an inconsistent stored record gets corrected even by a no-op update
	existing := models.Product{ID: "1", Status: models.StatusInStock, StockQuantity: 0}

	result := services.ReconcilePatch(existing, models.ProductPatch{})

	assert.NotNil(t, result.Status)
	assert.Equal(t, models.StatusOutOfStock, *result.Status)
}

func TestReconcilePatch_PositiveStockNeverForcesInStock(t *testing.T) {
	existing := models.Product{ID: "1", Status: models.StatusOutOfStock, StockQuantity: 0}
	patch := models.ProductPatch{StockQuantity: intPtr(25)}

	result := services.ReconcilePatch(existing, patch)

	assert.Nil(t, result.Status)
}

func TestReconcilePatch_EffectiveValuesMergeFromExisting(t *testing.T) {
	// submitted status + existing zero quantity: the effective pair is
	// inconsistent, so the submitted status is replaced
	existing := models.Product{ID: "1", Status: models.StatusOutOfStock, StockQuantity: 0}
	restocking := models.StatusRestocking
	patch := models.ProductPatch{Status: &restocking}

	result := services.ReconcilePatch(existing, patch)

	assert.Equal(t, models.StatusOutOfStock, *result.Status)
}
