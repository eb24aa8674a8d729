package services

import (
	"context"
	"time"

	"littlelemon/entity"
	"littlelemon/events"
	"littlelemon/logger"
	"littlelemon/repository"
	"littlelemon/roles"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Users    *repository.UserRepository
	Events   events.Publisher
	Log      *logger.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	users *repository.UserRepository,
	pub events.Publisher,
	log *logger.Logger,
) *OrderService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Users: users, Events: pub, Log: log}
}

// ----- DTOs -----

type OrderLine struct {
	MenuItem  CartMenuItem    `json:"menuitem"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Price     decimal.Decimal `json:"price"`
}

type OrderDetail struct {
	entity.Order
	Items []OrderLine `json:"items"`
}

type OrderFilter struct {
	Status  *bool
	Page    int
	PerPage int
}

type OrderPage struct {
	Items []entity.Order `json:"items"`
	PageInfo
}

// AssignCrewIn ส่ง deliveryCrew เป็น null เพื่อถอด crew ออก
type AssignCrewIn struct {
	DeliveryCrew *uint `json:"deliveryCrew"`
}

// ----- Create -----

// Create ย้ายตะกร้าทั้งหมดเป็น order ใน transaction เดียว
// ถ้าลบบรรทัดในตะกร้าได้ไม่ครบแปลว่ามี checkout ซ้อนกัน -> rollback ทั้งหมด
func (s *OrderService) Create(ctx context.Context, actor *roles.Actor) (*OrderDetail, error) {
	var out OrderDetail
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := s.CartRepo.WithTx(tx)
		orders := s.Repo.WithTx(tx)

		lines, err := carts.LockByUser(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		ids := make([]uint, 0, len(lines))
		for _, l := range lines {
			total = total.Add(l.Price)
			ids = append(ids, l.ID)
		}
		if total.GreaterThan(MaxTotal) {
			return ErrOrderTooLarge
		}

		order := entity.Order{
			UserID: actor.UserID,
			Status: false,
			Total:  total,
			Date:   time.Now().UTC(),
		}
		if err := orders.CreateOrder(ctx, &order); err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			})
		}
		if err := orders.CreateOrderItems(ctx, items); err != nil {
			return err
		}

		n, err := carts.DeleteIDs(ctx, actor.UserID, ids)
		if err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return ErrCartChanged
		}

		loaded, err := orders.GetOrderItems(ctx, order.ID)
		if err != nil {
			return err
		}
		out = OrderDetail{Order: order, Items: toLines(loaded)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.OrderCreated, &out.Order)
	return &out, nil
}

// ----- List & Detail -----

// List: admin/manager เห็นทั้งหมด, crew เห็นที่ assign ให้ตัวเอง, customer เห็นของตัวเอง
func (s *OrderService) List(ctx context.Context, actor *roles.Actor, f OrderFilter) (*OrderPage, error) {
	scope := repository.OrderScope{Status: f.Status}
	scope.Page, scope.PerPage = normalizePage(f.Page, f.PerPage)
	switch {
	case actor.Caps.IsStaff():
	case actor.Caps.Has(roles.DeliveryCrew):
		scope.CrewID = &actor.UserID
	default:
		scope.UserID = &actor.UserID
	}

	items, total, err := s.Repo.ListOrders(ctx, scope)
	if err != nil {
		return nil, err
	}
	return &OrderPage{Items: items, PageInfo: PageInfo{Count: total, Page: scope.Page, PerPage: scope.PerPage}}, nil
}

// CanView ใช้ร่วมกับ websocket hub ด้วย
func CanView(actor *roles.Actor, userID uint, crewID *uint) bool {
	if actor.Caps.IsStaff() || userID == actor.UserID {
		return true
	}
	return actor.Caps.Has(roles.DeliveryCrew) && crewID != nil && *crewID == actor.UserID
}

// Detail order ที่มองไม่เห็นจะตอบ not found เหมือนไม่มีอยู่
func (s *OrderService) Detail(ctx context.Context, actor *roles.Actor, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	if !CanView(actor, o.UserID, o.DeliveryCrewID) {
		return nil, ErrOrderNotFound
	}
	items, err := s.Repo.GetOrderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: toLines(items)}, nil
}

// ----- Mutations -----

// ToggleStatus สลับ placed <-> fulfilled; crew ทำได้เฉพาะ order ที่ assign ให้ตัวเอง
func (s *OrderService) ToggleStatus(ctx context.Context, actor *roles.Actor, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	var crewID *uint
	if !actor.Caps.IsStaff() {
		if o.DeliveryCrewID == nil || *o.DeliveryCrewID != actor.UserID {
			return nil, ErrNotAssigned
		}
		crewID = &actor.UserID
	}

	// เงื่อนไข crew อยู่ใน UPDATE ด้วย กัน reassign ระหว่างอ่านกับเขียน
	n, err := s.Repo.ToggleStatus(ctx, o.ID, crewID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if crewID != nil {
			return nil, ErrNotAssigned
		}
		return nil, ErrOrderNotFound
	}
	o, err = s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	s.publish(ctx, events.OrderStatusChanged, o)
	return o, nil
}

// AssignCrew ตรวจ order และ user ก่อนเขียน; ผิดตรงไหน order ไม่เปลี่ยน
func (s *OrderService) AssignCrew(ctx context.Context, orderID uint, crewID *uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}
	if crewID != nil {
		u, err := s.Users.FindByID(ctx, *crewID)
		if err != nil {
			return nil, notFound(err, ErrUserNotFound)
		}
		g, err := s.Users.FindGroup(ctx, roles.DeliveryCrewGroup)
		if err != nil {
			return nil, err
		}
		ok, err := s.Users.IsMember(ctx, u.ID, g.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotDeliveryCrew
		}
	}

	if _, err := s.Repo.SetDeliveryCrew(ctx, o.ID, crewID); err != nil {
		return nil, err
	}
	o.DeliveryCrewID = crewID
	s.publish(ctx, events.OrderCrewAssigned, o)
	return o, nil
}

func (s *OrderService) Delete(ctx context.Context, orderID uint) error {
	var deleted entity.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := s.Repo.WithTx(tx)
		o, err := orders.GetOrder(ctx, orderID)
		if err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		n, err := orders.DeleteOrder(ctx, o.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrOrderNotFound
		}
		deleted = *o
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(ctx, events.OrderDeleted, &deleted)
	return nil
}

// publish หลัง commit เท่านั้น; error แค่ log ไม่ทำให้ request fail
func (s *OrderService) publish(ctx context.Context, t events.Type, o *entity.Order) {
	e := events.Event{
		Type:           t,
		OrderID:        o.ID,
		UserID:         o.UserID,
		DeliveryCrewID: o.DeliveryCrewID,
		Status:         o.Status,
		Total:          o.Total,
		At:             time.Now().UTC(),
	}
	if err := s.Events.Publish(ctx, e); err != nil && s.Log != nil {
		s.Log.Error("order_event_publish", "", "publish order event failed", err)
	}
}

func toLines(items []entity.OrderItem) []OrderLine {
	out := make([]OrderLine, 0, len(items))
	for _, it := range items {
		out = append(out, OrderLine{
			MenuItem:  CartMenuItem{ID: it.MenuItem.ID, Title: it.MenuItem.Title, Price: it.MenuItem.Price},
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Price:     it.Price,
		})
	}
	return out
}
