package model

import "time"

// Product represents a catalog product. Every product belongs to exactly one
// seller; rows are deleted outright, there is no soft delete.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       int       `json:"price" gorm:"not null"`
	SellerID    uint      `json:"seller_id" gorm:"index;not null"`
	Seller      *Seller   `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
