package repo

import (
	"time"

	"github.com/Skotchmaster/demo_api/internal/models"
)

func SeedUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: models.RoleAdmin, CreatedAt: mustTime("2024-01-15T10:30:00Z")},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: models.RoleUser, CreatedAt: mustTime("2024-02-10T14:20:00Z")},
		{ID: 3, Name: "Mike Johnson", Email: "mike@example.com", Role: models.RoleUser, CreatedAt: mustTime("2024-03-05T09:15:00Z")},
	}
}

// SeedProducts stamps the example products with createdAt.
func SeedProducts(createdAt time.Time) []models.Product {
	createdAt = createdAt.UTC()
	return []models.Product{
		{
			ID:          1,
			Name:        "Gaming Laptop",
			Price:       1299.99,
			Category:    "Electronics",
			InStock:     true,
			Description: "High-performance gaming laptop with RTX graphics",
			CreatedAt:   createdAt,
		},
		{
			ID:          2,
			Name:        "Coffee Maker",
			Price:       89.99,
			Category:    "Kitchen",
			InStock:     true,
			Description: "Automatic drip coffee maker with programmable timer",
			CreatedAt:   createdAt,
		},
		{
			ID:          3,
			Name:        "Wireless Headphones",
			Price:       199.99,
			Category:    "Electronics",
			InStock:     false,
			Description: "Noise-canceling wireless headphones with 30-hour battery",
			CreatedAt:   createdAt,
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
