package repositories

import (
	"errors"

	"catalogo/internal/models"
)

// ErrProductNotFound is returned when the targeted product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	// Update merges only the fields present in the patch into the stored
	// record and returns the result.
	Update(id string, patch models.ProductPatch) (*models.Product, error)
	Delete(id string) error
	// ExistsWithName reports whether another product already uses the name.
	// excludeID, when non-empty, leaves the record being updated out of the
	// check so a product can keep its own name.
	ExistsWithName(name, excludeID string) (bool, error)
}
