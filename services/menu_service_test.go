package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"littlelemon/entity"
	"littlelemon/internal/testdb"
	"littlelemon/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(repository.NewMenuRepository(db), repository.NewCategoryRepository(db))
}

func titles(items []entity.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, m := range items {
		out = append(out, m.Title)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func seedMenu(t *testing.T, db *gorm.DB) {
	t.Helper()
	mains := testdb.Category(t, db, "Mains")
	desserts := testdb.Category(t, db, "Desserts")
	testdb.MenuItem(t, db, "Greek salad", "12.00", mains)
	testdb.MenuItem(t, db, "Bruschetta", "7.99", mains)
	testdb.MenuItem(t, db, "Lemon dessert", "5.00", desserts)
}

func TestMenuListFilters(t *testing.T) {
	db := testdb.Open(t)
	seedMenu(t, db)
	svc := newMenuService(db)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter repository.MenuFilter
		want   []string
	}{
		{"default order by id", repository.MenuFilter{}, []string{"Greek salad", "Bruschetta", "Lemon dessert"}},
		{"price ascending", repository.MenuFilter{Ordering: "price"}, []string{"Lemon dessert", "Bruschetta", "Greek salad"}},
		{"price descending", repository.MenuFilter{Ordering: "-price"}, []string{"Greek salad", "Bruschetta", "Lemon dessert"}},
		{"title", repository.MenuFilter{Ordering: "title"}, []string{"Bruschetta", "Greek salad", "Lemon dessert"}},
		{"category slug", repository.MenuFilter{Category: "desserts"}, []string{"Lemon dessert"}},
		{"category title", repository.MenuFilter{Category: "Mains"}, []string{"Greek salad", "Bruschetta"}},
		{"search item title case-insensitive", repository.MenuFilter{Search: "LEMON"}, []string{"Lemon dessert"}},
		{"search matches category title", repository.MenuFilter{Search: "dessert"}, []string{"Lemon dessert"}},
		{"search no match", repository.MenuFilter{Search: "pizza"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if got := titles(page.Items); !equalStrings(got, tt.want) {
				t.Fatalf("titles = %v, want %v", got, tt.want)
			}
			if page.Count != int64(len(tt.want)) {
				t.Fatalf("count = %d, want %d", page.Count, len(tt.want))
			}
		})
	}
}

func TestMenuListPaging(t *testing.T) {
	db := testdb.Open(t)
	seedMenu(t, db)
	svc := newMenuService(db)
	ctx := context.Background()

	page, err := svc.List(ctx, repository.MenuFilter{Ordering: "title", Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Count != 3 || !equalStrings(titles(page.Items), []string{"Lemon dessert"}) {
		t.Fatalf("page 2 = %v (count %d)", titles(page.Items), page.Count)
	}

	// ค่าผิดถูกปรับเป็น default
	page, _ = svc.List(ctx, repository.MenuFilter{Page: -1, PerPage: 1000})
	if page.Page != 1 || page.PerPage != MaxPerPage {
		t.Fatalf("normalized page = %d/%d", page.Page, page.PerPage)
	}

	_, err = svc.List(ctx, repository.MenuFilter{Ordering: "calories"})
	if !errors.Is(err, ErrInvalidOrdering) {
		t.Fatalf("bad ordering = %v", err)
	}
	if !strings.Contains(err.Error(), `"calories"`) {
		t.Fatalf("message should name the ordering: %v", err)
	}
}

func TestMenuSearchIsLiteral(t *testing.T) {
	db := testdb.Open(t)
	cat := testdb.Category(t, db, "Drinks")
	testdb.MenuItem(t, db, "100% lemonade", "4.00", cat)
	testdb.MenuItem(t, db, "Iced_tea", "3.00", cat)
	testdb.MenuItem(t, db, "Lemon soda", "3.50", cat)
	svc := newMenuService(db)

	tests := []struct {
		search string
		want   []string
	}{
		{"%", []string{"100% lemonade"}},
		{"_", []string{"Iced_tea"}},
		{"0% l", []string{"100% lemonade"}},
		{"iced_", []string{"Iced_tea"}},
		{"!", []string{}},
		{"lemon", []string{"100% lemonade", "Lemon soda"}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			page, err := svc.List(context.Background(), repository.MenuFilter{Search: tt.search})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if got := titles(page.Items); !equalStrings(got, tt.want) {
				t.Fatalf("search %q = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestMenuCreateValidation(t *testing.T) {
	db := testdb.Open(t)
	cat := testdb.Category(t, db, "Mains")
	svc := newMenuService(db)
	ctx := context.Background()

	tests := []struct {
		name string
		in   MenuItemIn
		want error
	}{
		{"blank title", MenuItemIn{Title: "  ", Price: decimal.NewFromInt(5), Category: cat.ID}, ErrInvalidTitle},
		{"zero price", MenuItemIn{Title: "Soup", Price: decimal.Zero, Category: cat.ID}, ErrInvalidPrice},
		{"negative price", MenuItemIn{Title: "Soup", Price: decimal.NewFromInt(-1), Category: cat.ID}, ErrInvalidPrice},
		{"rounds to zero", MenuItemIn{Title: "Soup", Price: decimal.RequireFromString("0.004"), Category: cat.ID}, ErrInvalidPrice},
		{"above column range", MenuItemIn{Title: "Soup", Price: decimal.NewFromInt(10000), Category: cat.ID}, ErrInvalidPrice},
		{"unknown category", MenuItemIn{Title: "Soup", Price: decimal.NewFromInt(5), Category: 999}, ErrCategoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, &tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("Create() = %v, want %v", err, tt.want)
			}
		})
	}

	m, err := svc.Create(ctx, &MenuItemIn{Title: " Soup ", Price: decimal.RequireFromString("6.499"), Category: cat.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.Title != "Soup" || !m.Price.Equal(decimal.RequireFromString("6.50")) {
		t.Fatalf("created %+v", m)
	}
}

func TestMenuUpdateAndToggleFeatured(t *testing.T) {
	db := testdb.Open(t)
	mains := testdb.Category(t, db, "Mains")
	desserts := testdb.Category(t, db, "Desserts")
	item := testdb.MenuItem(t, db, "Greek salad", "12.00", mains)
	svc := newMenuService(db)
	ctx := context.Background()

	got, err := svc.Update(ctx, item.ID, &MenuItemIn{Title: "Fruit salad", Price: decimal.NewFromInt(9), Category: desserts.ID, Featured: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "Fruit salad" || got.CategoryID != desserts.ID || !got.Featured {
		t.Fatalf("updated %+v", got)
	}
	if _, err := svc.Update(ctx, 999, &MenuItemIn{Title: "x", Price: decimal.NewFromInt(1), Category: mains.ID}); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("update missing = %v", err)
	}

	toggled, err := svc.ToggleFeatured(ctx, item.ID)
	if err != nil {
		t.Fatalf("ToggleFeatured: %v", err)
	}
	if toggled.Featured {
		t.Fatal("toggle should clear featured")
	}
	toggled, _ = svc.ToggleFeatured(ctx, item.ID)
	if !toggled.Featured {
		t.Fatal("second toggle should set featured again")
	}
	if _, err := svc.ToggleFeatured(ctx, 999); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("toggle missing = %v", err)
	}
}

func TestMenuDelete(t *testing.T) {
	f := newOrderFixture(t)
	svc := newMenuService(f.db)
	ctx := context.Background()

	f.checkout(t, f.ana, map[uint]int{f.salad.ID: 1})
	if err := svc.Delete(ctx, f.salad.ID); !errors.Is(err, ErrMenuItemOrdered) {
		t.Fatalf("delete ordered item = %v, want ErrMenuItemOrdered", err)
	}
	if err := svc.Delete(ctx, f.soup.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, f.soup.ID); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("get deleted = %v", err)
	}
	if err := svc.Delete(ctx, f.soup.ID); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("delete twice = %v", err)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	db := testdb.Open(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	c, err := svc.Create(ctx, &CategoryIn{Title: "Main Course"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Slug != "main-course" {
		t.Fatalf("slug = %q", c.Slug)
	}
	if _, err := svc.Create(ctx, &CategoryIn{Title: "Main Course"}); !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("duplicate = %v, want ErrCategoryExists", err)
	}
	if _, err := svc.Create(ctx, &CategoryIn{Title: "   "}); !errors.Is(err, ErrInvalidTitle) {
		t.Fatalf("blank = %v", err)
	}

	up, err := svc.Update(ctx, c.ID, &CategoryIn{Title: "Mains", Slug: "mains"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if up.Title != "Mains" || up.Slug != "mains" {
		t.Fatalf("updated %+v", up)
	}

	testdb.MenuItem(t, db, "Greek salad", "12.00", up)
	if err := svc.Delete(ctx, c.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("delete in use = %v, want ErrCategoryInUse", err)
	}

	empty, _ := svc.Create(ctx, &CategoryIn{Title: "Drinks"})
	if err := svc.Delete(ctx, empty.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, empty.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("delete twice = %v", err)
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 || list[0].ID != c.ID {
		t.Fatalf("list = %+v", list)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Main Course!":    "main-course",
		"  Desserts  ":    "desserts",
		"Soup & Salad":    "soup-salad",
		"---":             "",
		"Drinks 2":        "drinks-2",
		"already-slugged": "already-slugged",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
