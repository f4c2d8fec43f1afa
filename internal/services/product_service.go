package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"katalog/internal/models"
	"katalog/internal/pricing"
	"katalog/internal/repositories"
)

var (
	// ErrIDMismatch is returned when an update's path ID and body ID disagree.
	ErrIDMismatch = errors.New("product ID in path and body must match")
	// ErrPriceOrdering is returned when sale or promotional price does not
	// exceed the computed price.
	ErrPriceOrdering = errors.New("SalePrice and PromotionalPrice must be greater than Price")
	// ErrProfitMargin is returned when the profit margin is below the minimum.
	ErrProfitMargin = errors.New("ProfitMargin must be at least 55%")
)

// ValidationError reports field-level constraint violations, keyed by field
// name. It is always detected before any persistence call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}

// ProductService handles business logic related to products: field
// validation, the pricing policy, and orchestration of the repository.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetAllProducts retrieves all products, in store order.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the candidate, computes its price, and inserts it.
// The store assigns the ID; any caller-supplied ID is discarded.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.validateFields(product); err != nil {
		return err
	}
	if err := applyPricingPolicy(product); err != nil {
		return err
	}
	product.ID = 0
	return s.repo.Create(product)
}

// UpdateProduct replaces every field of the product identified by id with
// the candidate's values. The candidate's body ID must match the path ID.
func (s *ProductService) UpdateProduct(id uint, product *models.Product) error {
	if err := s.validateFields(product); err != nil {
		return err
	}
	if product.ID != id {
		return ErrIDMismatch
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := applyPricingPolicy(product); err != nil {
		return err
	}

	err := s.repo.Replace(id, product)
	if errors.Is(err, repositories.ErrConflict) {
		// The record may have been deleted between the lookup and the write.
		exists, existsErr := s.repo.Exists(id)
		if existsErr != nil {
			return existsErr
		}
		if !exists {
			return repositories.ErrNotFound
		}
		// Still present: a genuine concurrent write. Not retried here.
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return err
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(product)
}

// validateFields runs the struct-tag constraints and converts violations
// into a ValidationError, independent of any request-binding mechanism.
func (s *ProductService) validateFields(product *models.Product) error {
	err := s.validate.Struct(product)
	if err == nil {
		return nil
	}
	validationErrors := err.(validator.ValidationErrors)
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return &ValidationError{Fields: fields}
}

// applyPricingPolicy computes the price and then checks price ordering and
// profit margin, in that order. The ordering check needs the fresh price;
// the margin check runs after computation as part of the service contract.
func applyPricingPolicy(product *models.Product) error {
	pricing.ComputePrice(product)
	if !pricing.ValidatePriceOrdering(product) {
		return ErrPriceOrdering
	}
	if !pricing.ValidateProfitMargin(product) {
		return ErrProfitMargin
	}
	return nil
}
