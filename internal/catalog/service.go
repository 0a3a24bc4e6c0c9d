// goudace | 2026
// service.go

package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goudace/shop-backend/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *Service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) ListSubcategories(
	ctx context.Context,
) ([]Subcategory, error) {
	return s.repo.ListSubcategories(ctx)
}

func (s *Service) CreateItem(
	ctx context.Context,
	identity *auth.Identity,
	req CreateItemRequest,
) (*Item, error) {
	if err := auth.RequirePermission(identity, auth.PermissionAdmin); err != nil {
		return nil, err
	}

	item := &Item{
		ID:            uuid.New().String(),
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Image:         req.Image,
		LargeImage:    req.LargeImage,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) UpdateItem(
	ctx context.Context,
	identity *auth.Identity,
	id string,
	req UpdateItemRequest,
) (*Item, error) {
	if err := auth.RequirePermission(identity, auth.PermissionAdmin); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.LargeImage != nil {
		item.LargeImage = *req.LargeImage
	}
	if req.CategoryID != nil {
		item.CategoryID = req.CategoryID
	}
	if req.SubcategoryID != nil {
		item.SubcategoryID = req.SubcategoryID
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) DeleteItem(
	ctx context.Context,
	identity *auth.Identity,
	id string,
) error {
	if err := auth.RequirePermission(identity, auth.PermissionAdmin); err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}

	return nil
}
