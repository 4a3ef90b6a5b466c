package services

import (
	"log"

	"catalogo/internal/models"
	"catalogo/internal/repositories"
)

// Product event names published after successful writes.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher publishes product lifecycle events to a message broker.
type EventPublisher interface {
	PublishProductEvent(event string, product *models.Product) error
}

// ProductService handles business logic related to products: field
// validation, stock/status reconciliation and persistence, in that order.
type ProductService struct {
	repo      repositories.ProductRepository
	validator *ProductValidator
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case no events are emitted.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: NewProductValidator(repo),
		publisher: publisher,
	}
}

// ListProducts retrieves all products. An empty catalog yields an empty
// slice, not an error.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// CreateProduct validates the payload, reconciles the stock status and
// persists the new product.
func (s *ProductService) CreateProduct(in models.CreateProductInput) (*models.Product, error) {
	if err := s.validator.ValidateCreate(in); err != nil {
		return nil, err
	}

	product := in.Product()
	product.Status = ReconcileStatus(product.StockQuantity, product.Status)

	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	s.publish(EventProductCreated, &product)
	return &product, nil
}

// UpdateProduct applies a partial update to an existing product. The target
// record is loaded first, so a missing id surfaces as not-found before any
// field rule runs; reconciliation then merges the patch against the loaded
// snapshot.
func (s *ProductService) UpdateProduct(id string, in models.UpdateProductInput) (*models.Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateUpdate(id, in); err != nil {
		return nil, err
	}

	patch := ReconcilePatch(*existing, in.Patch())

	updated, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.publish(EventProductUpdated, updated)
	return updated, nil
}

// DeleteProduct removes a product by its ID. Deletion is immediate and
// irreversible.
func (s *ProductService) DeleteProduct(id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(EventProductDeleted, product)
	return nil
}

// publish emits a product event. Publishing is best-effort: a broker failure
// is logged and never fails the write that triggered it.
func (s *ProductService) publish(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(event, product); err != nil {
		log.Printf("Failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}
