package repositories

import (
	"errors"

	"katalog/internal/models"
)

var (
	// ErrNotFound is returned when no product exists for the requested ID.
	ErrNotFound = errors.New("product not found")
	// ErrConflict is returned when a replace touches no row, meaning the
	// record was removed or modified concurrently.
	ErrConflict = errors.New("conflicting write detected")
)

// ProductRepository defines the interface for product data access.
// IDs are assigned by the store on Create; Replace overwrites every field of
// the record identified by id with the given value.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Replace(id uint, product *models.Product) error
	Delete(product *models.Product) error
	Exists(id uint) (bool, error)
}
