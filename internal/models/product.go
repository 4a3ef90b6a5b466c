package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// price travels on the wire as a plain JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductStatus is the stock status of a product, stored as a small integer code.
type ProductStatus int

const (
	StatusInStock    ProductStatus = 1
	StatusRestocking ProductStatus = 2
	StatusOutOfStock ProductStatus = 3
)

// Label returns the human-readable label for the status code.
// Unknown codes fall back to the out-of-stock label.
func (s ProductStatus) Label() string {
	switch s {
	case StatusInStock:
		return "Em estoque"
	case StatusRestocking:
		return "Em reposição"
	default:
		return "Em falta"
	}
}

// Valid reports whether s is one of the known status codes.
func (s ProductStatus) Valid() bool {
	return s == StatusInStock || s == StatusRestocking || s == StatusOutOfStock
}

// Product represents a sellable item in the catalog.
type Product struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string          `json:"name" gorm:"type:varchar(255);uniqueIndex"`
	Description   string          `json:"description" gorm:"type:text"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Status        ProductStatus   `json:"status"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// ProductResponse is the wire representation of a product. The status label
// is derived from the integer code, never stored.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Status        int             `json:"status"`
	StatusString  string          `json:"status_string"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToResponse builds the wire representation of the product.
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Status:        int(p.Status),
		StatusString:  p.Status.Label(),
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// CreateProductInput carries the fields a client submits when creating a
// product. Pointers distinguish absent fields from zero values so that a
// submitted stock_quantity of 0 is not mistaken for a missing field.
type CreateProductInput struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Status        *int             `json:"status"`
	StockQuantity *int             `json:"stock_quantity"`
}

// Product materializes the input into a Product. Callers must validate the
// input first; nil fields fall back to zero values.
func (in CreateProductInput) Product() Product {
	var p Product
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Status != nil {
		p.Status = ProductStatus(*in.Status)
	}
	if in.StockQuantity != nil {
		p.StockQuantity = *in.StockQuantity
	}
	return p
}

// UpdateProductInput carries the fields a client submits when updating a
// product. Every field is optional; nil means "not submitted".
type UpdateProductInput struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Status        *int             `json:"status"`
	StockQuantity *int             `json:"stock_quantity"`
}

// Patch converts the input into the patch handed to the store.
func (in UpdateProductInput) Patch() ProductPatch {
	patch := ProductPatch{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
	}
	if in.Status != nil {
		status := ProductStatus(*in.Status)
		patch.Status = &status
	}
	return patch
}

// ProductPatch is the set of fields to persist on an update. Only non-nil
// fields are written, so an update never clobbers columns the client did not
// submit.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	Status        *ProductStatus
	StockQuantity *int
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Status == nil && p.StockQuantity == nil
}

// Columns returns the patch as a column map for the store.
func (p ProductPatch) Columns() map[string]interface{} {
	columns := make(map[string]interface{})
	if p.Name != nil {
		columns["name"] = *p.Name
	}
	if p.Description != nil {
		columns["description"] = *p.Description
	}
	if p.Price != nil {
		columns["price"] = *p.Price
	}
	if p.Status != nil {
		columns["status"] = *p.Status
	}
	if p.StockQuantity != nil {
		columns["stock_quantity"] = *p.StockQuantity
	}
	return columns
}
