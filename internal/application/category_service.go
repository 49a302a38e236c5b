package application

import (
	"context"

	"github.com/oksasatya/recipe-app/internal/application/command"
	"github.com/oksasatya/recipe-app/internal/application/converter"
	repo "github.com/oksasatya/recipe-app/internal/domain/repository"
)

type CategoryService struct {
	Repo      repo.CategoryRepository
	Converter *converter.CategoryToCommand
}

func NewCategoryService(categories repo.CategoryRepository, conv *converter.CategoryToCommand) *CategoryService {
	return &CategoryService{Repo: categories, Converter: conv}
}

func (s *CategoryService) ListAll(ctx context.Context) ([]*command.CategoryCommand, error) {
	cats, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*command.CategoryCommand, 0, len(cats))
	for _, c := range cats {
		if cc := s.Converter.Convert(c); cc != nil {
			out = append(out, cc)
		}
	}
	return out, nil
}
