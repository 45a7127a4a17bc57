package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Keyed is implemented by every record kept in a store.
type Keyed interface {
	Key() int
}

type User struct {
	ID        int        `gorm:"primaryKey;autoIncrement:false"     json:"id"`
	Name      string     `gorm:"not null"                          json:"name"`
	Email     string     `gorm:"not null;uniqueIndex"              json:"email"`
	Role      string     `gorm:"not null;default:user"             json:"role"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false"     json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"              json:"updatedAt,omitempty"`
}

func (u User) Key() int { return u.ID }

type Product struct {
	ID          int        `gorm:"primaryKey;autoIncrement:false"  json:"id"`
	Name        string     `gorm:"not null"                       json:"name"`
	Price       float64    `gorm:"not null"                       json:"price"`
	Category    string     `gorm:"not null;index"                 json:"category"`
	InStock     bool       `gorm:"not null"                       json:"inStock"`
	Description string     `gorm:"not null"                       json:"description"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"  json:"createdAt"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"           json:"updatedAt,omitempty"`
}

func (p Product) Key() int { return p.ID }

// DeletedRecord is the summary returned after a delete.
type DeletedRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
