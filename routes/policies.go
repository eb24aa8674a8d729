package routes

import (
	"net/http"

	"littlelemon/roles"
)

// ตารางสิทธิ์ต่อ resource: method -> rule
// method ที่ไม่อยู่ในตารางจะไม่ถูก mount
var (
	MenuItemsPolicy = roles.Policy{
		http.MethodGet:  roles.Open,
		http.MethodPost: roles.AnyOf(roles.Admin),
	}
	MenuItemPolicy = roles.Policy{
		http.MethodGet:    roles.Open,
		http.MethodPut:    roles.AnyOf(roles.Admin),
		http.MethodPatch:  roles.AnyOf(roles.Manager, roles.Admin), // toggle featured
		http.MethodDelete: roles.AnyOf(roles.Admin),
	}
	CategoriesPolicy = roles.Policy{
		http.MethodGet:  roles.Authenticated,
		http.MethodPost: roles.AnyOf(roles.Admin),
	}
	CategoryPolicy = roles.Policy{
		http.MethodPut:    roles.AnyOf(roles.Admin),
		http.MethodDelete: roles.AnyOf(roles.Admin),
	}
	GroupPolicy = roles.Policy{
		http.MethodGet:    roles.AnyOf(roles.Manager, roles.Admin),
		http.MethodPost:   roles.AnyOf(roles.Manager, roles.Admin),
		http.MethodDelete: roles.AnyOf(roles.Manager, roles.Admin),
	}
	CartPolicy = roles.Policy{
		http.MethodGet:    roles.Authenticated,
		http.MethodPost:   roles.Authenticated,
		http.MethodDelete: roles.Authenticated,
	}
	// scope ของ list อยู่ใน OrderService
	OrdersPolicy = roles.Policy{
		http.MethodGet:  roles.Authenticated,
		http.MethodPost: roles.Authenticated,
	}
	OrderPolicy = roles.Policy{
		http.MethodGet:    roles.Authenticated, // owner / assigned crew / staff ตรวจใน service
		http.MethodPatch:  roles.AnyOf(roles.DeliveryCrew, roles.Manager, roles.Admin),
		http.MethodPut:    roles.AnyOf(roles.Manager, roles.Admin),
		http.MethodDelete: roles.AnyOf(roles.Manager, roles.Admin),
	}
	DashboardPolicy = roles.Policy{
		http.MethodGet: roles.AnyOf(roles.Manager, roles.Admin),
	}
	PublicPolicy = roles.Policy{
		http.MethodGet:  roles.Open,
		http.MethodPost: roles.Open,
	}
	SessionPolicy = roles.Policy{
		http.MethodGet: roles.Authenticated,
	}
)
