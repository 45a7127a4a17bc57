package query

import (
	"errors"
	"net/url"
	"strings"

	"github.com/Skotchmaster/demo_api/internal/models"
	"github.com/Skotchmaster/demo_api/internal/util"
)

var ErrInvalidPriceRange = errors.New("invalid price range")

type UserFilter struct {
	Role   string
	Search string
}

func ParseUserFilter(q url.Values) UserFilter {
	return UserFilter{
		Role:   q.Get("role"),
		Search: q.Get("search"),
	}
}

// Apply narrows users by role first, then by a name/email substring.
func (f UserFilter) Apply(users []models.User) []models.User {
	if f.Role != "" {
		users = keep(users, func(u models.User) bool {
			return strings.EqualFold(u.Role, f.Role)
		})
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		users = keep(users, func(u models.User) bool {
			return contains(u.Name, needle) || contains(u.Email, needle)
		})
	}
	return users
}

type ProductFilter struct {
	Category string
	InStock  *bool
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

func ParseProductFilter(q url.Values) (ProductFilter, error) {
	f := ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	// Any value other than "true" selects out-of-stock products.
	if _, ok := q["inStock"]; ok {
		inStock := strings.EqualFold(q.Get("inStock"), "true")
		f.InStock = &inStock
	}

	var err error
	if f.MinPrice, err = util.ParseOptionalFloat(q.Get("minPrice")); err != nil {
		return ProductFilter{}, ErrInvalidPriceRange
	}
	if f.MaxPrice, err = util.ParseOptionalFloat(q.Get("maxPrice")); err != nil {
		return ProductFilter{}, ErrInvalidPriceRange
	}
	return f, nil
}

// Apply runs category, stock, price range and text search in that order.
func (f ProductFilter) Apply(products []models.Product) []models.Product {
	if f.Category != "" {
		products = keep(products, func(p models.Product) bool {
			return strings.EqualFold(p.Category, f.Category)
		})
	}
	if f.InStock != nil {
		products = keep(products, func(p models.Product) bool {
			return p.InStock == *f.InStock
		})
	}
	if f.MinPrice != nil {
		products = keep(products, func(p models.Product) bool {
			return p.Price >= *f.MinPrice
		})
	}
	if f.MaxPrice != nil {
		products = keep(products, func(p models.Product) bool {
			return p.Price <= *f.MaxPrice
		})
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		products = keep(products, func(p models.Product) bool {
			return contains(p.Name, needle) || contains(p.Description, needle)
		})
	}
	return products
}

func keep[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func contains(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
