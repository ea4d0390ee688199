package customer

import (
	"time"

	"gorm.io/gorm"
)

// Customer is a VBMS tenant. Every inventory item and transaction is scoped
// to one customer via OwnerID.
type Customer struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	BusinessName  string         `json:"business_name" gorm:"not null"`
	Email         string         `json:"email" gorm:"not null;uniqueIndex"`
	Phone         string         `json:"phone"`
	NotifyByEmail bool           `json:"notify_by_email" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}
