package model

import "time"

// Seller represents a seller account stored in the database. The password
// column holds a bcrypt hash, never the plaintext, and is excluded from every
// JSON representation.
type Seller struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(100);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	Products  []Product `json:"products,omitempty" gorm:"foreignKey:SellerID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
