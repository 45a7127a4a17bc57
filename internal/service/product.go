package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Skotchmaster/demo_api/internal/models"
	"github.com/Skotchmaster/demo_api/internal/query"
	"github.com/Skotchmaster/demo_api/internal/repo"
	"github.com/Skotchmaster/demo_api/internal/transport"
	"github.com/Skotchmaster/demo_api/internal/validate"
)

const (
	msgProductNotFound = "Product not found"
	msgProductRequired = "Name, price, and category are required"
	msgEmptyCategory   = "Category cannot be empty"
)

type ProductService struct {
	Repo repo.Store[models.Product]
	Now  func() time.Time

	mu sync.RWMutex
}

func NewProductService(store repo.Store[models.Product]) *ProductService {
	return &ProductService{Repo: store, Now: time.Now}
}

func (s *ProductService) now() time.Time {
	return s.Now().UTC()
}

func (s *ProductService) ListProducts(ctx context.Context, f query.ProductFilter, p query.Page) ([]models.Product, query.Pagination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products, err := s.Repo.All(ctx)
	if err != nil {
		return nil, query.Pagination{}, err
	}
	items, meta := query.Paginate(f.Apply(products), p)
	return items, meta, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.find(ctx, id)
}

func (s *ProductService) find(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFoundError(msgProductNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, body transport.Body) (*models.Product, error) {
	req, err := decodeProduct(body)
	if err != nil {
		return nil, err
	}
	if !validate.Required(req.Name) || req.Price == nil || !validate.Required(req.Category) {
		return nil, validationError(msgProductRequired)
	}
	if !validate.Price(*req.Price) {
		return nil, validationError(transport.PriceMessage)
	}

	product := &models.Product{
		Name:     strings.TrimSpace(*req.Name),
		Price:    *req.Price,
		Category: strings.TrimSpace(*req.Category),
		InStock:  true,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID, err = s.Repo.NextID(ctx); err != nil {
		return nil, err
	}
	product.CreatedAt = s.now()
	if err := s.Repo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct merges the provided fields into the stored product.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, body transport.Body) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	req, err := decodeProduct(body)
	if err != nil {
		return nil, err
	}
	if req.Price != nil && !validate.Price(*req.Price) {
		return nil, validationError(transport.PriceMessage)
	}
	if req.Name != nil && !validate.Required(req.Name) {
		return nil, validationError(msgEmptyName)
	}
	if req.Category != nil && !validate.Required(req.Category) {
		return nil, validationError(msgEmptyCategory)
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = strings.TrimSpace(*req.Category)
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	updatedAt := s.now()
	product.UpdatedAt = &updatedAt

	if err := s.Repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.Repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFoundError(msgProductNotFound)
		}
		return nil, err
	}
	return product, nil
}

func decodeProduct(body transport.Body) (transport.ProductRequest, error) {
	req, err := transport.DecodeProduct(body)
	if err != nil {
		return transport.ProductRequest{}, asValidation(err)
	}
	return req, nil
}
