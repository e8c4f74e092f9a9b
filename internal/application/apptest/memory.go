// Package apptest provee repositorios en memoria para las pruebas de los casos de uso.
package apptest

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/serranotex/serrano-tex-ims/internal/application/ports"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

// Store guarda todas las entidades en mapas protegidos por un mutex.
type Store struct {
	mu         sync.Mutex
	Products   map[string]entity.Product
	Categories map[string]entity.Category
	Locations  map[string]entity.Location
	Customers  map[string]entity.Customer
	Lines      map[string]entity.InventoryLine // clave productID|locationID
	Movements  []entity.InventoryMovement
	Sales      map[string]entity.Sale
	Users      map[string]entity.User
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		Products:   map[string]entity.Product{},
		Categories: map[string]entity.Category{},
		Locations:  map[string]entity.Location{},
		Customers:  map[string]entity.Customer{},
		Lines:      map[string]entity.InventoryLine{},
		Sales:      map[string]entity.Sale{},
		Users:      map[string]entity.User{},
	}
}

func lineKey(productID, locationID string) string { return productID + "|" + locationID }

// Quantity devuelve la cantidad en stock (cero si no hay línea).
func (s *Store) Quantity(productID, locationID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Lines[lineKey(productID, locationID)].Quantity
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// Repos devuelve los repositorios de transacción respaldados por el Store.
func (s *Store) Repos() ports.TxRepos {
	return ports.TxRepos{
		Products:  ProductRepo{s},
		Inventory: InventoryRepo{s},
		Movements: MovementRepo{s},
		Sales:     SaleRepo{s},
	}
}

// TxRunner ejecuta fn sobre el Store y restaura el estado previo si fn devuelve error.
type TxRunner struct{ S *Store }

var _ ports.TxRunner = TxRunner{}

// Run implementa ports.TxRunner.
func (t TxRunner) Run(_ context.Context, fn func(ports.TxRepos) error) error {
	t.S.mu.Lock()
	products, lines, sales := maps.Clone(t.S.Products), maps.Clone(t.S.Lines), maps.Clone(t.S.Sales)
	movements := slices.Clone(t.S.Movements)
	t.S.mu.Unlock()

	if err := fn(t.S.Repos()); err != nil {
		t.S.mu.Lock()
		t.S.Products, t.S.Lines, t.S.Sales, t.S.Movements = products, lines, sales, movements
		t.S.mu.Unlock()
		return err
	}
	return nil
}

// ProductRepo implementa repository.ProductRepository.
type ProductRepo struct{ S *Store }

var _ repository.ProductRepository = ProductRepo{}

func (r ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, existing := range r.S.Products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.S.Products[p.ID] = *p
	return nil
}

func (r ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	p, ok := r.S.Products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r ProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, p := range r.S.Products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, nil
}

func (r ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.S.Products[p.ID] = *p
	return nil
}

func (r ProductRepo) UpdateCost(_ context.Context, id string, cost decimal.Decimal) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	p, ok := r.S.Products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Cost = cost
	r.S.Products[id] = p
	return nil
}

func (r ProductRepo) SoftDelete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	p, ok := r.S.Products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsActive = false
	r.S.Products[id] = p
	return nil
}

// List filtra por búsqueda, categoría y rango de precio; ordena siempre por nombre.
func (r ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.S.Products {
		switch {
		case !p.IsActive:
			continue
		case f.Search != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.SKU), strings.ToLower(f.Search)):
			continue
		case f.CategoryID != "" && p.CategoryID != f.CategoryID:
			continue
		case f.MinPrice != nil && p.Price.LessThan(*f.MinPrice):
			continue
		case f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice):
			continue
		}
		out = append(out, &p)
	}
	slices.SortFunc(out, func(a, b *entity.Product) int { return strings.Compare(a.Name, b.Name) })
	if f.SortDesc {
		slices.Reverse(out)
	}
	return page(out, f.Limit, f.Offset), len(out), nil
}

// CategoryRepo implementa repository.CategoryRepository.
type CategoryRepo struct{ S *Store }

var _ repository.CategoryRepository = CategoryRepo{}

func (r CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.Categories[c.ID] = *c
	return nil
}

func (r CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	c, ok := r.S.Categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.S.Categories))
	for _, c := range r.S.Categories {
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *entity.Category) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// LocationRepo implementa repository.LocationRepository.
type LocationRepo struct{ S *Store }

var _ repository.LocationRepository = LocationRepo{}

func (r LocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.Locations[l.ID] = *l
	return nil
}

func (r LocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	l, ok := r.S.Locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r LocationRepo) List(_ context.Context) ([]*entity.Location, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Location, 0, len(r.S.Locations))
	for _, l := range r.S.Locations {
		out = append(out, &l)
	}
	slices.SortFunc(out, func(a, b *entity.Location) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// CustomerRepo implementa repository.CustomerRepository.
type CustomerRepo struct{ S *Store }

var _ repository.CustomerRepository = CustomerRepo{}

// Create y Update replican el índice único parcial: emails no vacíos, sin distinguir mayúsculas.
func (r CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if r.emailTaken(c) {
		return domain.ErrDuplicate
	}
	r.S.Customers[c.ID] = *c
	return nil
}

func (r CustomerRepo) emailTaken(c *entity.Customer) bool {
	if c.Email == "" {
		return false
	}
	for id, other := range r.S.Customers {
		if id != c.ID && strings.EqualFold(other.Email, c.Email) {
			return true
		}
	}
	return false
}

func (r CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	c, ok := r.S.Customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r CustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, c := range r.S.Customers {
		if email != "" && strings.EqualFold(c.Email, email) {
			return &c, nil
		}
	}
	return nil, nil
}

func (r CustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(c) {
		return domain.ErrDuplicate
	}
	r.S.Customers[c.ID] = *c
	return nil
}

func (r CustomerRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Customers, id)
	return nil
}

func (r CustomerRepo) List(_ context.Context, search string, limit, offset int) ([]*entity.Customer, int, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var out []*entity.Customer
	for _, c := range r.S.Customers {
		if search != "" && !strings.Contains(strings.ToLower(c.Name+" "+c.Email+" "+c.Company), strings.ToLower(search)) {
			continue
		}
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *entity.Customer) int { return strings.Compare(a.Name, b.Name) })
	return page(out, limit, offset), len(out), nil
}

// InventoryRepo implementa repository.InventoryRepository.
type InventoryRepo struct{ S *Store }

var _ repository.InventoryRepository = InventoryRepo{}

func (r InventoryRepo) Get(_ context.Context, productID, locationID string) (*entity.InventoryLine, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	l, ok := r.S.Lines[lineKey(productID, locationID)]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r InventoryRepo) GetForUpdate(ctx context.Context, productID, locationID string) (*entity.InventoryLine, error) {
	return r.Get(ctx, productID, locationID)
}

func (r InventoryRepo) Upsert(_ context.Context, l *entity.InventoryLine) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.Lines[lineKey(l.ProductID, l.LocationID)] = *l
	return nil
}

func (r InventoryRepo) List(_ context.Context, f repository.InventoryFilter) ([]*entity.InventoryLine, int, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var out []*entity.InventoryLine
	for _, l := range r.S.Lines {
		if (f.ProductID != "" && l.ProductID != f.ProductID) ||
			(f.LocationID != "" && l.LocationID != f.LocationID) ||
			(f.Status != "" && l.Status() != f.Status) {
			continue
		}
		out = append(out, &l)
	}
	slices.SortFunc(out, func(a, b *entity.InventoryLine) int {
		return strings.Compare(lineKey(a.ProductID, a.LocationID), lineKey(b.ProductID, b.LocationID))
	})
	return page(out, f.Limit, f.Offset), len(out), nil
}

func (r InventoryRepo) ListLowStock(_ context.Context, locationID string) ([]*entity.InventoryLine, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var out []*entity.InventoryLine
	for _, l := range r.S.Lines {
		if l.ReorderPoint == nil || l.Quantity.GreaterThan(*l.ReorderPoint) {
			continue
		}
		if locationID != "" && l.LocationID != locationID {
			continue
		}
		out = append(out, &l)
	}
	return out, nil
}

// MovementRepo implementa repository.InventoryMovementRepository.
type MovementRepo struct{ S *Store }

var _ repository.InventoryMovementRepository = MovementRepo{}

func (r MovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	r.S.Movements = append(r.S.Movements, *m)
	return nil
}

// ListByProduct devuelve los movimientos del producto, el más reciente primero.
func (r MovementRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var out []*entity.InventoryMovement
	for i := len(r.S.Movements) - 1; i >= 0; i-- {
		if m := r.S.Movements[i]; m.ProductID == productID {
			out = append(out, &m)
		}
	}
	return page(out, limit, offset), nil
}

// SaleRepo implementa repository.SaleRepository.
type SaleRepo struct{ S *Store }

var _ repository.SaleRepository = SaleRepo{}

func (r SaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	c := *s
	c.Items = slices.Clone(s.Items)
	r.S.Sales[s.ID] = c
	return nil
}

func (r SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	s, ok := r.S.Sales[id]
	if !ok {
		return nil, nil
	}
	s.Items = slices.Clone(s.Items)
	return &s, nil
}

func (r SaleRepo) List(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, int, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var out []*entity.Sale
	for _, s := range r.S.Sales {
		switch {
		case f.CustomerID != "" && s.CustomerID != f.CustomerID,
			f.Status != "" && s.Status != f.Status,
			f.PaymentStatus != "" && s.PaymentStatus != f.PaymentStatus,
			f.From != nil && s.CreatedAt.Before(*f.From),
			f.To != nil && !s.CreatedAt.Before(*f.To):
			continue
		}
		s.Items = nil
		out = append(out, &s)
	}
	slices.SortFunc(out, func(a, b *entity.Sale) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return page(out, f.Limit, f.Offset), len(out), nil
}

func (r SaleRepo) UpdateStatus(_ context.Context, s *entity.Sale) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	cur, ok := r.S.Sales[s.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Status, cur.PaymentStatus, cur.Notes, cur.UpdatedAt = s.Status, s.PaymentStatus, s.Notes, s.UpdatedAt
	r.S.Sales[s.ID] = cur
	return nil
}

func (r SaleRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Sales, id)
	return nil
}

// UserRepo implementa repository.UserRepository.
type UserRepo struct{ S *Store }

var _ repository.UserRepository = UserRepo{}

func (r UserRepo) Create(_ context.Context, u *entity.User) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, existing := range r.S.Users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.S.Users[u.ID] = *u
	return nil
}

func (r UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	u, ok := r.S.Users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, u := range r.S.Users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r UserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.User, 0, len(r.S.Users))
	for _, u := range r.S.Users {
		out = append(out, &u)
	}
	slices.SortFunc(out, func(a, b *entity.User) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return page(out, limit, offset), nil
}
