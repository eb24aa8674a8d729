package routes

import (
	"fmt"
	"net/http"

	"littlelemon/configs"
	"littlelemon/controllers"
	"littlelemon/events"
	"littlelemon/logger"
	"littlelemon/middlewares"
	"littlelemon/pkg/apperr"
	"littlelemon/pkg/resp"
	"littlelemon/repository"
	"littlelemon/roles"
	"littlelemon/services"
	"littlelemon/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errRouteNotFound = apperr.NotFound("ROUTE_NOT_FOUND", "route not found")

type handlers map[string]gin.HandlerFunc

// mount ลงทะเบียนทุก method ของ path เดียวกันภายใต้ policy เดียว
// handler ที่ไม่มี rule ในตาราง = bug ตอน start
func mount(r gin.IRoutes, path string, p roles.Policy, h handlers) {
	for method, fn := range h {
		if _, ok := p[method]; !ok {
			panic(fmt.Sprintf("routes: no policy for %s %s", method, path))
		}
		r.Handle(method, path, middlewares.Guard(p), fn)
	}
}

// RegisterRoutes hub เป็น nil ได้ (ปิด websocket)
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *logger.Logger, pub events.Publisher, hub *ws.OrderHub) {
	r.HandleMethodNotAllowed = true
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.NoRoute(func(c *gin.Context) { resp.Error(c, errRouteNotFound) })
	r.NoMethod(resp.MethodNotAllowed)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, catRepo)
	catSvc := services.NewCategoryService(catRepo)
	staffSvc := services.NewStaffService(userRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, pub, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	catCtrl := controllers.NewCategoryController(catSvc)
	managers := controllers.NewStaffController(staffSvc, roles.ManagerGroup)
	crew := controllers.NewStaffController(staffSvc, roles.DeliveryCrewGroup)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(db)

	api := r.Group("/", middlewares.Authenticate(authSvc))

	// Auth
	mount(api, "/auth/users", PublicPolicy, handlers{http.MethodPost: authCtrl.Register})
	mount(api, "/auth/token/login", PublicPolicy, handlers{http.MethodPost: authCtrl.Login})
	mount(api, "/auth/users/me", SessionPolicy, handlers{http.MethodGet: authCtrl.Me})

	// Catalog
	mount(api, "/menu-items", MenuItemsPolicy, handlers{
		http.MethodGet:  menuCtrl.List,
		http.MethodPost: menuCtrl.Create,
	})
	mount(api, "/menu-items/:id", MenuItemPolicy, handlers{
		http.MethodGet:    menuCtrl.Get,
		http.MethodPut:    menuCtrl.Update,
		http.MethodPatch:  menuCtrl.ToggleFeatured,
		http.MethodDelete: menuCtrl.Delete,
	})
	mount(api, "/categories", CategoriesPolicy, handlers{
		http.MethodGet:  catCtrl.List,
		http.MethodPost: catCtrl.Create,
	})
	mount(api, "/categories/:id", CategoryPolicy, handlers{
		http.MethodPut:    catCtrl.Update,
		http.MethodDelete: catCtrl.Delete,
	})

	// Staff groups
	for path, h := range map[string]*controllers.StaffController{
		"/groups/managers/users":      managers,
		"/groups/delivery-crew/users": crew,
	} {
		mount(api, path, GroupPolicy, handlers{http.MethodGet: h.List, http.MethodPost: h.Add})
		mount(api, path+"/:id", GroupPolicy, handlers{http.MethodDelete: h.Remove})
	}

	// Cart
	mount(api, "/cart/menu-items", CartPolicy, handlers{
		http.MethodGet:    cartCtrl.List,
		http.MethodPost:   cartCtrl.Add,
		http.MethodDelete: cartCtrl.Delete,
	})

	// Orders
	mount(api, "/orders", OrdersPolicy, handlers{
		http.MethodGet:  orderCtrl.List,
		http.MethodPost: orderCtrl.Create,
	})
	mount(api, "/order/:id", OrderPolicy, handlers{
		http.MethodGet:    orderCtrl.Detail,
		http.MethodPatch:  orderCtrl.ToggleStatus,
		http.MethodPut:    orderCtrl.AssignCrew,
		http.MethodDelete: orderCtrl.Delete,
	})

	// Admin
	mount(api, "/admin/dashboard", DashboardPolicy, handlers{http.MethodGet: adminCtrl.Dashboard})

	if hub != nil {
		r.GET("/ws/orders", middlewares.WSAuthenticate(authSvc), middlewares.Guard(SessionPolicy), hub.HandleWebSocket)
	}
}
