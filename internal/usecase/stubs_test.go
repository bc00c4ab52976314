package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

// Hand-rolled in-memory repositories for usecase tests.

type stubProductRepo struct {
	products map[int64]entity.Product
	nextID   int64
	inOrders map[int64]bool
}

func newStubProductRepo(products ...entity.Product) *stubProductRepo {
	repo := &stubProductRepo{products: make(map[int64]entity.Product), inOrders: make(map[int64]bool)}
	for _, p := range products {
		if p.ID > repo.nextID {
			repo.nextID = p.ID
		}
		repo.products[p.ID] = p
	}
	return repo
}

func (r *stubProductRepo) Create(_ context.Context, p entity.Product) (int64, error) {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return p.ID, nil
}

func (r *stubProductRepo) SaveMany(_ context.Context, products []entity.Product) (int, error) {
	for _, p := range products {
		r.nextID++
		p.ID = r.nextID
		r.products[p.ID] = p
	}
	return len(products), nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) List(_ context.Context, _ entity.ProductFilter) ([]entity.ProductWithRating, error) {
	return r.all(), nil
}

func (r *stubProductRepo) Categories(context.Context) ([]string, error) { return nil, nil }

func (r *stubProductRepo) PriceRange(context.Context) (float64, float64, error) { return 0, 0, nil }

func (r *stubProductRepo) All(context.Context) ([]entity.ProductWithRating, error) {
	return r.all(), nil
}

func (r *stubProductRepo) Recent(context.Context, int) ([]entity.Product, error) { return nil, nil }

func (r *stubProductRepo) Count(context.Context) (int, error) { return len(r.products), nil }

func (r *stubProductRepo) FindByKeywordsAndMaxPrice(_ context.Context, keywords []string, maxPrice float64, limit int) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.Price > maxPrice {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(strings.ToLower(p.Name), kw) {
				out = append(out, p)
				break
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubProductRepo) ReferencedByOrders(_ context.Context, id int64) (bool, error) {
	return r.inOrders[id], nil
}

func (r *stubProductRepo) all() []entity.ProductWithRating {
	out := make([]entity.ProductWithRating, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, entity.ProductWithRating{Product: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type stubOrderRepo struct {
	orders    map[int64]*entity.Order
	items     map[int64][]entity.OrderItem
	purchased map[[2]int64]bool
	nextID    int64
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders:    make(map[int64]*entity.Order),
		items:     make(map[int64][]entity.OrderItem),
		purchased: make(map[[2]int64]bool),
	}
}

func (r *stubOrderRepo) Create(_ context.Context, order entity.Order, items []entity.OrderItem) (int64, error) {
	r.nextID++
	order.ID = r.nextID
	r.orders[order.ID] = &order
	r.items[order.ID] = items
	for _, it := range items {
		r.purchased[[2]int64{order.UserID, it.ProductID}] = true
	}
	return order.ID, nil
}

func (r *stubOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	if o, ok := r.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *stubOrderRepo) GetForUser(_ context.Context, id, userID int64) (*entity.Order, error) {
	if o, ok := r.orders[id]; ok && o.UserID == userID {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID int64) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubOrderRepo) ListAll(context.Context) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubOrderRepo) ItemsByOrder(_ context.Context, orderID int64) ([]entity.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *stubOrderRepo) UpdatePaymentStatus(_ context.Context, id int64, paymentStatus string) error {
	if o, ok := r.orders[id]; ok {
		o.PaymentStatus = paymentStatus
	}
	return nil
}

func (r *stubOrderRepo) Count(context.Context) (int, error) { return len(r.orders), nil }

func (r *stubOrderRepo) TotalRevenue(context.Context) (float64, error) {
	var total float64
	for _, o := range r.orders {
		total += o.Total
	}
	return total, nil
}

func (r *stubOrderRepo) Recent(context.Context, int) ([]entity.Order, error) { return nil, nil }

func (r *stubOrderRepo) CountByUser(_ context.Context, userID int64) (int, error) {
	n := 0
	for _, o := range r.orders {
		if o.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *stubOrderRepo) TotalSpentByUser(_ context.Context, userID int64) (float64, error) {
	var total float64
	for _, o := range r.orders {
		if o.UserID == userID {
			total += o.Total
		}
	}
	return total, nil
}

func (r *stubOrderRepo) RecentByUser(context.Context, int64, int) ([]entity.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) UserHasPurchased(_ context.Context, userID, productID int64) (bool, error) {
	return r.purchased[[2]int64{userID, productID}], nil
}

type stubCouponRepo struct {
	coupons map[string]entity.Coupon
	nextID  int64
}

func newStubCouponRepo(coupons ...entity.Coupon) *stubCouponRepo {
	repo := &stubCouponRepo{coupons: make(map[string]entity.Coupon)}
	for _, c := range coupons {
		repo.nextID++
		c.ID = repo.nextID
		repo.coupons[strings.ToUpper(c.Code)] = c
	}
	return repo
}

func (r *stubCouponRepo) Create(_ context.Context, c entity.Coupon) (int64, error) {
	r.nextID++
	c.ID = r.nextID
	r.coupons[strings.ToUpper(c.Code)] = c
	return c.ID, nil
}

func (r *stubCouponRepo) GetActiveByCode(_ context.Context, code string) (*entity.Coupon, error) {
	c, ok := r.coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok || !c.IsActive {
		return nil, nil
	}
	return &c, nil
}

func (r *stubCouponRepo) List(context.Context) ([]entity.Coupon, error) {
	var out []entity.Coupon
	for _, c := range r.coupons {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCouponRepo) SetActive(_ context.Context, id int64, active bool) error {
	for code, c := range r.coupons {
		if c.ID == id {
			c.IsActive = active
			r.coupons[code] = c
		}
	}
	return nil
}

func (r *stubCouponRepo) Delete(_ context.Context, id int64) error {
	for code, c := range r.coupons {
		if c.ID == id {
			delete(r.coupons, code)
		}
	}
	return nil
}

type stubReviewRepo struct {
	reviews []entity.Review
}

func (r *stubReviewRepo) Upsert(_ context.Context, review entity.Review) error {
	for i, existing := range r.reviews {
		if existing.UserID == review.UserID && existing.ProductID == review.ProductID {
			r.reviews[i] = review
			return nil
		}
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *stubReviewRepo) ListByProduct(_ context.Context, productID int64) ([]entity.Review, error) {
	var out []entity.Review
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

type stubWishlistRepo struct {
	pairs map[[2]int64]bool
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{pairs: make(map[[2]int64]bool)}
}

func (r *stubWishlistRepo) Add(_ context.Context, userID, productID int64) error {
	r.pairs[[2]int64{userID, productID}] = true
	return nil
}

func (r *stubWishlistRepo) Remove(_ context.Context, userID, productID int64) error {
	delete(r.pairs, [2]int64{userID, productID})
	return nil
}

func (r *stubWishlistRepo) ListByUser(context.Context, int64) ([]entity.ProductWithRating, error) {
	return nil, nil
}

func (r *stubWishlistRepo) IDsByUser(_ context.Context, userID int64) ([]int64, error) {
	var out []int64
	for pair := range r.pairs {
		if pair[0] == userID {
			out = append(out, pair[1])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *stubWishlistRepo) CountByUser(_ context.Context, userID int64) (int, error) {
	n := 0
	for pair := range r.pairs {
		if pair[0] == userID {
			n++
		}
	}
	return n, nil
}

type stubContactRepo struct {
	info *entity.ContactInfo
	qr   *entity.UPIQR
}

func (r *stubContactRepo) GetContact(context.Context) (*entity.ContactInfo, error) {
	return r.info, nil
}

func (r *stubContactRepo) SaveContact(_ context.Context, info entity.ContactInfo) error {
	r.info = &info
	return nil
}

func (r *stubContactRepo) GetUPIQR(context.Context) (*entity.UPIQR, error) { return r.qr, nil }

func (r *stubContactRepo) SaveUPIQR(_ context.Context, imageURL string) error {
	r.qr = &entity.UPIQR{ImageURL: imageURL}
	return nil
}

type stubUserRepo struct {
	users  map[int64]entity.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]entity.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u entity.User) (int64, error) {
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return u.ID, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *stubUserRepo) Count(context.Context) (int, error) { return len(r.users), nil }

type stubAdminRepo struct {
	admins map[string]entity.Admin
}

func (r *stubAdminRepo) GetByUsername(_ context.Context, username string) (*entity.Admin, error) {
	if a, ok := r.admins[username]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *stubAdminRepo) Count(context.Context) (int, error) { return len(r.admins), nil }

type stubNotifier struct {
	placed        []entity.Order
	statusChanges []string
}

func (n *stubNotifier) OrderPlaced(order entity.Order, _ []entity.OrderItem) {
	n.placed = append(n.placed, order)
}

func (n *stubNotifier) OrderStatusChanged(_ entity.Order, newStatus string) {
	n.statusChanges = append(n.statusChanges, newStatus)
}
