package services

import (
	"context"
	"strings"
	"unicode"

	"littlelemon/entity"
	"littlelemon/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryIn struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug"`
}

func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.Repo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, in *CategoryIn) (*entity.Category, error) {
	c := &entity.Category{}
	if err := fillCategory(c, in); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		if isDuplicate(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in *CategoryIn) (*entity.Category, error) {
	c, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	if err := fillCategory(c, in); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		if isDuplicate(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return c, nil
}

// Delete ลบได้เฉพาะ category ที่ไม่มีเมนูแล้ว
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return notFound(err, ErrCategoryNotFound)
	}
	cnt, err := s.Repo.CountMenuItems(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrCategoryInUse
	}
	_, err = s.Repo.Delete(ctx, id)
	return err
}

func fillCategory(c *entity.Category, in *CategoryIn) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return ErrInvalidTitle
	}
	slug := Slugify(in.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return ErrInvalidTitle
	}
	c.Title, c.Slug = title, slug
	return nil
}

// Slugify "Main Course!" -> "main-course"
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
