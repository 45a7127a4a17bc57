package transport

import (
	"github.com/Skotchmaster/demo_api/internal/query"
)

const PriceMessage = "Price must be a valid positive number"

// UserRequest carries the fields of a create or update. Nil means not provided.
type UserRequest struct {
	Name  *string
	Email *string
	Role  *string
}

type ProductRequest struct {
	Name        *string
	Price       *float64
	Category    *string
	InStock     *bool
	Description *string
}

func DecodeUser(b Body) (UserRequest, error) {
	var (
		req UserRequest
		err error
	)
	if req.Name, err = b.String("name", "Name"); err != nil {
		return UserRequest{}, err
	}
	if req.Email, err = b.String("email", "Email"); err != nil {
		return UserRequest{}, err
	}
	if req.Role, err = b.String("role", "Role"); err != nil {
		return UserRequest{}, err
	}
	return req, nil
}

func DecodeProduct(b Body) (ProductRequest, error) {
	var (
		req ProductRequest
		err error
	)
	if req.Name, err = b.String("name", "Name"); err != nil {
		return ProductRequest{}, err
	}
	if req.Price, err = b.Float("price", PriceMessage); err != nil {
		return ProductRequest{}, err
	}
	if req.Category, err = b.String("category", "Category"); err != nil {
		return ProductRequest{}, err
	}
	if req.InStock, err = b.Bool("inStock"); err != nil {
		return ProductRequest{}, err
	}
	if req.Description, err = b.String("description", "Description"); err != nil {
		return ProductRequest{}, err
	}
	return req, nil
}

type Response struct {
	Success    bool              `json:"success"`
	Data       any               `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
	Error      string            `json:"error,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
}
