package services

import (
	"errors"

	"littlelemon/pkg/apperr"

	"gorm.io/gorm"
)

var (
	ErrMenuItemNotFound = apperr.NotFound("MENU_ITEM_NOT_FOUND", "menu item not found")
	ErrCategoryNotFound = apperr.NotFound("CATEGORY_NOT_FOUND", "category not found")
	ErrUserNotFound     = apperr.NotFound("USER_NOT_FOUND", "user not found")
	ErrOrderNotFound    = apperr.NotFound("ORDER_NOT_FOUND", "order not found")
	ErrCartItemNotFound = apperr.NotFound("CART_ITEM_NOT_FOUND", "item not in cart")
	ErrNotGroupMember   = apperr.NotFound("NOT_GROUP_MEMBER", "user is not a member of this group")

	ErrCartItemExists  = apperr.Conflict("CART_ITEM_EXISTS", "item already in cart")
	ErrCartChanged     = apperr.Conflict("CART_CHANGED", "cart changed during checkout")
	ErrCategoryExists  = apperr.Conflict("CATEGORY_EXISTS", "category with this title already exists")
	ErrCategoryInUse   = apperr.Conflict("CATEGORY_IN_USE", "category still has menu items")
	ErrMenuItemOrdered = apperr.Conflict("MENU_ITEM_ORDERED", "menu item is referenced by orders")
	ErrUserExists      = apperr.Conflict("USER_EXISTS", "username or email already registered")

	ErrInvalidQuantity = apperr.Validation("INVALID_QUANTITY", "quantity must be between 1 and 1000")
	ErrInvalidPrice    = apperr.Validation("INVALID_PRICE", "price must be between 0.01 and 9999.99")
	ErrOrderTooLarge   = apperr.Validation("ORDER_TOO_LARGE", "order total exceeds 99999999.99")
	ErrInvalidTitle    = apperr.Validation("INVALID_TITLE", "title is required")
	ErrEmptyCart       = apperr.Validation("EMPTY_CART", "cart is empty")
	ErrNotDeliveryCrew = apperr.Validation("NOT_DELIVERY_CREW", "user is not in the delivery crew")
	ErrUnknownGroup    = apperr.Validation("UNKNOWN_GROUP", "unknown group")
	ErrInvalidOrdering = apperr.Validation("INVALID_ORDERING", "unsupported ordering")

	ErrInvalidCredentials = apperr.New(apperr.KindUnauthenticated, "INVALID_CREDENTIALS", "invalid credentials")
	ErrNotAssigned        = apperr.Forbidden("ORDER_NOT_ASSIGNED", "order is not assigned to you")
)

// notFound แปลง gorm.ErrRecordNotFound เป็น sentinel ของ resource นั้น
func notFound(err error, sentinel *apperr.Error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
