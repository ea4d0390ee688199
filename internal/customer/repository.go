package customer

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no customer matches.
var ErrNotFound = errors.New("customer not found")

// Repository handles customer data access.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new customer repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&Customer{})
}

// FindByID retrieves a customer by id.
func (r *Repository) FindByID(id uint) (*Customer, error) {
	var c Customer
	err := r.db.First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return &c, nil
}

// FindByEmail retrieves a customer by email.
func (r *Repository) FindByEmail(email string) (*Customer, error) {
	var c Customer
	err := r.db.Where("email = ?", email).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return &c, nil
}
