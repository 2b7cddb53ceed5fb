package application

import (
	"context"
	"errors"

	"github.com/flogin/flogin-api/internal/domain/entity"
	repo "github.com/flogin/flogin-api/internal/domain/repository"
)

// ProductService is catalog plumbing: CRUD over products with category
// resolution on writes.
type ProductService struct {
	Repo       repo.ProductRepository
	Categories repo.CategoryRepository
}

func NewProductService(products repo.ProductRepository, categories repo.CategoryRepository) *ProductService {
	return &ProductService{Repo: products, Categories: categories}
}

// ProductInput carries the validated fields of a create/update request.
type ProductInput struct {
	Name        string
	Price       float64
	Quantity    int
	Description string
	CategoryID  int64
}

// ProductDTO is the public shape of a product, category embedded.
type ProductDTO struct {
	ID          int64        `json:"id"`
	ProductName string       `json:"productName"`
	Price       float64      `json:"price"`
	Quantity    int          `json:"quantity"`
	Description string       `json:"description"`
	Category    *CategoryDTO `json:"category"`
}

func toProductDTO(p *entity.Product, c *entity.Category) *ProductDTO {
	return &ProductDTO{
		ID:          p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Description: p.Description,
		Category:    toCategoryDTO(c),
	}
}

func (s *ProductService) resolveCategory(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := s.Categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*ProductDTO, error) {
	cat, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		CategoryID:  cat.ID,
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return toProductDTO(p, cat), nil
}

func (s *ProductService) Update(ctx context.Context, id int64, in ProductInput) (*ProductDTO, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	cat, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Price = in.Price
	p.Quantity = in.Quantity
	p.Description = in.Description
	p.CategoryID = cat.ID
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductDTO(p, cat), nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	cat, err := s.resolveCategory(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	return toProductDTO(p, cat), nil
}

func (s *ProductService) GetAll(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	// Categories are few; cache lookups per request.
	cats := map[int64]*entity.Category{}
	out := make([]ProductDTO, 0, len(products))
	for i := range products {
		p := &products[i]
		cat, ok := cats[p.CategoryID]
		if !ok {
			cat, err = s.resolveCategory(ctx, p.CategoryID)
			if err != nil {
				return nil, err
			}
			cats[p.CategoryID] = cat
		}
		out = append(out, *toProductDTO(p, cat))
	}
	return out, nil
}

// Delete removes the product and returns its last known state.
func (s *ProductService) Delete(ctx context.Context, id int64) (*ProductDTO, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	cat, err := s.resolveCategory(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toProductDTO(p, cat), nil
}
