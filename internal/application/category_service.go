package application

import (
	"context"
	"errors"

	"github.com/flogin/flogin-api/internal/domain/entity"
	repo "github.com/flogin/flogin-api/internal/domain/repository"
)

// CategoryService is plain catalog plumbing over the category repository.
type CategoryService struct {
	Repo repo.CategoryRepository
}

func NewCategoryService(r repo.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: r}
}

// CategoryDTO is the public shape of a category.
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toCategoryDTO(c *entity.Category) *CategoryDTO {
	return &CategoryDTO{ID: c.ID, Name: c.Name}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*CategoryDTO, error) {
	c := &entity.Category{Name: name}
	if err := s.Repo.Save(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrCategoryNameTaken
		}
		return nil, err
	}
	return toCategoryDTO(c), nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*CategoryDTO, error) {
	c, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return toCategoryDTO(c), nil
}

func (s *CategoryService) GetAll(ctx context.Context) ([]CategoryDTO, error) {
	cats, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryDTO, 0, len(cats))
	for i := range cats {
		out = append(out, *toCategoryDTO(&cats[i]))
	}
	return out, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
