package services

import (
	"context"

	"littlelemon/entity"
	"littlelemon/repository"

	"github.com/shopspring/decimal"
)

type CartService struct {
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{CartRepo: cr, MenuRepo: mr}
}

// quantity ไม่ใส่ binding:"min=1,max=1000" เพื่อให้ service ตอบ INVALID_QUANTITY เอง
type AddToCartIn struct {
	MenuItem uint `json:"menuitem" binding:"required"`
	Quantity int  `json:"quantity"`
}

type CartMenuItem struct {
	ID    uint            `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

type CartLine struct {
	MenuItem  CartMenuItem    `json:"menuitem"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Price     decimal.Decimal `json:"price"`
}

type CartView struct {
	Items    []CartLine      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (s *CartService) List(ctx context.Context, userID uint) (*CartView, error) {
	rows, err := s.CartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &CartView{Items: make([]CartLine, 0, len(rows)), Subtotal: decimal.Zero}
	for _, it := range rows {
		out.Items = append(out.Items, CartLine{
			MenuItem:  CartMenuItem{ID: it.MenuItem.ID, Title: it.MenuItem.Title, Price: it.MenuItem.Price},
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Price:     it.Price,
		})
		out.Subtotal = out.Subtotal.Add(it.Price)
	}
	return out, nil
}

// Add ไม่รวมจำนวนกับบรรทัดเดิม; ถ้ามีอยู่แล้วให้ลบก่อนแล้วค่อยเพิ่มใหม่
func (s *CartService) Add(ctx context.Context, userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	if in.Quantity < 1 || in.Quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}
	m, err := s.MenuRepo.FindByID(ctx, in.MenuItem)
	if err != nil {
		return nil, notFound(err, ErrMenuItemNotFound)
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   in.Quantity,
		UnitPrice:  m.Price,
		Price:      m.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
	if err := s.CartRepo.Create(ctx, line); err != nil {
		if isDuplicate(err) {
			return nil, ErrCartItemExists
		}
		return nil, err
	}
	return line, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, menuItemID uint) error {
	n, err := s.CartRepo.RemoveItem(ctx, userID, menuItemID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Clear ตะกร้าว่างอยู่แล้วก็ไม่ error
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	_, err := s.CartRepo.ClearCart(ctx, userID)
	return err
}
