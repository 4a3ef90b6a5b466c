package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"catalogo/internal/models"
	"catalogo/internal/repositories"
)

// Violation messages, one per rule. The set is fixed; which rule fired is the
// contract, the phrasing is presentation.
const (
	msgNameRequired   = "O campo nome é obrigatório."
	msgNameMax        = "O campo nome deve ter no máximo 255 caracteres."
	msgNameUnique     = "O nome do produto já está em uso."
	msgPriceRequired  = "O campo preço é obrigatório."
	msgPriceMin       = "O campo preço deve ser maior ou igual a 0."
	msgPriceScale     = "O campo preço deve ter no máximo duas casas decimais."
	msgStatusRequired = "O campo status é obrigatório."
	msgStatusIn       = "O campo status deve ser um dos seguintes valores: 1, 2, 3."
	msgStockRequired  = "O campo quantidade em estoque é obrigatório."
	msgStockMin       = "O campo quantidade em estoque deve ser maior ou igual a 0."
)

// ProductValidator checks submitted product fields against their constraints.
// All violated rules across all fields are collected before returning; it
// never stops at the first failure.
type ProductValidator struct {
	validate *validator.Validate
	repo     repositories.ProductRepository
}

// NewProductValidator creates a new ProductValidator. The repository is
// consulted for the name-uniqueness rule.
func NewProductValidator(repo repositories.ProductRepository) *ProductValidator {
	return &ProductValidator{
		validate: validator.New(),
		repo:     repo,
	}
}

// ValidateCreate checks a create payload, where every field except the
// description is required. It returns a *ValidationError listing every
// violation, or a plain error when the uniqueness lookup itself fails.
func (v *ProductValidator) ValidateCreate(in models.CreateProductInput) error {
	violations := &ValidationError{}

	if err := v.checkName(violations, in.Name, true, ""); err != nil {
		return err
	}
	v.checkPrice(violations, in.Price, true)
	v.checkStatus(violations, in.Status, true)
	v.checkStockQuantity(violations, in.StockQuantity, true)

	if violations.isEmpty() {
		return nil
	}
	return violations
}

// ValidateUpdate checks an update payload, where every field is optional.
// currentID is excluded from the uniqueness check so a product can keep its
// own name.
func (v *ProductValidator) ValidateUpdate(currentID string, in models.UpdateProductInput) error {
	violations := &ValidationError{}

	if err := v.checkName(violations, in.Name, false, currentID); err != nil {
		return err
	}
	v.checkPrice(violations, in.Price, false)
	v.checkStatus(violations, in.Status, false)
	v.checkStockQuantity(violations, in.StockQuantity, false)

	if violations.isEmpty() {
		return nil
	}
	return violations
}

func (v *ProductValidator) checkName(violations *ValidationError, name *string, required bool, excludeID string) error {
	if name == nil {
		if required {
			violations.add("name", msgNameRequired)
		}
		return nil
	}
	if err := v.validate.Var(*name, "required"); err != nil {
		violations.add("name", msgNameRequired)
		return nil
	}
	if err := v.validate.Var(*name, "max=255"); err != nil {
		violations.add("name", msgNameMax)
	}

	taken, err := v.repo.ExistsWithName(*name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to verify name uniqueness: %w", err)
	}
	if taken {
		violations.add("name", msgNameUnique)
	}
	return nil
}

func (v *ProductValidator) checkPrice(violations *ValidationError, price *decimal.Decimal, required bool) {
	if price == nil {
		if required {
			violations.add("price", msgPriceRequired)
		}
		return
	}
	if price.IsNegative() {
		violations.add("price", msgPriceMin)
	}
	// more than two significant fractional digits, e.g. 200.768
	if !price.Equal(price.Round(2)) {
		violations.add("price", msgPriceScale)
	}
}

func (v *ProductValidator) checkStatus(violations *ValidationError, status *int, required bool) {
	if status == nil {
		if required {
			violations.add("status", msgStatusRequired)
		}
		return
	}
	if err := v.validate.Var(*status, "oneof=1 2 3"); err != nil {
		violations.add("status", msgStatusIn)
	}
}

func (v *ProductValidator) checkStockQuantity(violations *ValidationError, quantity *int, required bool) {
	if quantity == nil {
		if required {
			violations.add("stock_quantity", msgStockRequired)
		}
		return
	}
	if err := v.validate.Var(*quantity, "gte=0"); err != nil {
		violations.add("stock_quantity", msgStockMin)
	}
}
