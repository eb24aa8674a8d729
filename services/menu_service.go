package services

import (
	"context"
	"strings"

	"littlelemon/entity"
	"littlelemon/repository"

	"github.com/shopspring/decimal"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	Category *repository.CategoryRepository
}

func NewMenuService(repo *repository.MenuRepository, cat *repository.CategoryRepository) *MenuService {
	return &MenuService{Repo: repo, Category: cat}
}

// MenuItemIn ใช้ทั้ง create และ PUT
type MenuItemIn struct {
	Title    string          `json:"title" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Featured bool            `json:"featured"`
	Category uint            `json:"category" binding:"required"`
}

type MenuPage struct {
	Items []entity.MenuItem `json:"items"`
	PageInfo
}

func (s *MenuService) List(ctx context.Context, f repository.MenuFilter) (*MenuPage, error) {
	if !repository.ValidOrdering(f.Ordering) {
		return nil, ErrInvalidOrdering.WithMessage("unsupported ordering %q", f.Ordering)
	}
	f.Page, f.PerPage = normalizePage(f.Page, f.PerPage)
	items, total, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &MenuPage{Items: items, PageInfo: PageInfo{Count: total, Page: f.Page, PerPage: f.PerPage}}, nil
}

func (s *MenuService) Get(ctx context.Context, id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrMenuItemNotFound)
	}
	return m, nil
}

func (s *MenuService) validate(ctx context.Context, in *MenuItemIn) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return ErrInvalidTitle
	}
	in.Price = in.Price.Round(2)
	if !in.Price.IsPositive() || in.Price.GreaterThan(MaxPrice) {
		return ErrInvalidPrice
	}
	if _, err := s.Category.FindByID(ctx, in.Category); err != nil {
		return notFound(err, ErrCategoryNotFound)
	}
	return nil
}

func (s *MenuService) Create(ctx context.Context, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	m := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.Category,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Update(ctx context.Context, id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	m.Title, m.Price, m.Featured, m.CategoryID = in.Title, in.Price, in.Featured, in.Category
	if err := s.Repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	cnt, err := s.Repo.CountOrderItems(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrMenuItemOrdered
	}
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// ToggleFeatured สลับ featured แล้วคืนค่าใหม่
func (s *MenuService) ToggleFeatured(ctx context.Context, id uint) (*entity.MenuItem, error) {
	n, err := s.Repo.ToggleFeatured(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrMenuItemNotFound
	}
	return s.Get(ctx, id)
}
