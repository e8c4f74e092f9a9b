package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

var (
	_ repository.InventoryRepository         = (*InventoryRepo)(nil)
	_ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)
)

const inventoryColumns = `id, product_id, location_id, quantity, reserved_quantity, reorder_point, max_stock, updated_at`

// Condiciones SQL equivalentes a entity.InventoryLine.Status.
var inventoryStatusConds = map[string]string{
	entity.StockStatusOutOfStock: "quantity <= 0",
	entity.StockStatusLowStock:   "quantity > 0 AND reorder_point IS NOT NULL AND quantity <= reorder_point",
	entity.StockStatusInStock:    "quantity > 0 AND (reorder_point IS NULL OR quantity > reorder_point)",
}

// InventoryRepo stock por producto y ubicación (tabla inventory).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func scanInventoryLine(row pgx.Row) (*entity.InventoryLine, error) {
	var l entity.InventoryLine
	err := row.Scan(&l.ID, &l.ProductID, &l.LocationID, &l.Quantity, &l.ReservedQuantity,
		&l.ReorderPoint, &l.MaxStock, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *InventoryRepo) get(ctx context.Context, query, productID, locationID string) (*entity.InventoryLine, error) {
	l, err := scanInventoryLine(r.q.QueryRow(ctx, query, productID, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return l, nil
}

// Get obtiene la línea de inventario de un producto en una ubicación.
func (r *InventoryRepo) Get(ctx context.Context, productID, locationID string) (*entity.InventoryLine, error) {
	return r.get(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE product_id = $1 AND location_id = $2`,
		productID, locationID)
}

// GetForUpdate igual que Get pero bloquea la fila hasta el fin de la transacción.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, locationID string) (*entity.InventoryLine, error) {
	return r.get(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE product_id = $1 AND location_id = $2 FOR UPDATE`,
		productID, locationID)
}

// Upsert inserta o reemplaza la línea (product_id, location_id) y deja en line.ID el id persistido.
func (r *InventoryRepo) Upsert(ctx context.Context, l *entity.InventoryLine) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory (`+inventoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (product_id, location_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			reserved_quantity = EXCLUDED.reserved_quantity,
			reorder_point = EXCLUDED.reorder_point,
			max_stock = EXCLUDED.max_stock,
			updated_at = EXCLUDED.updated_at
		RETURNING id`,
		l.ID, l.ProductID, l.LocationID, l.Quantity, l.ReservedQuantity, l.ReorderPoint, l.MaxStock, l.UpdatedAt,
	).Scan(&l.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// List lista líneas de inventario con filtros y total.
func (r *InventoryRepo) List(ctx context.Context, f repository.InventoryFilter) ([]*entity.InventoryLine, int, error) {
	b := &sqlBuilder{}
	if f.ProductID != "" {
		b.add("product_id = ?", f.ProductID)
	}
	if f.LocationID != "" {
		b.add("location_id = ?", f.LocationID)
	}
	if cond, ok := inventoryStatusConds[f.Status]; ok {
		b.conds = append(b.conds, cond)
	}
	where := b.where()

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM inventory`+where, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}
	list, err := r.query(ctx, `SELECT `+inventoryColumns+` FROM inventory`+where+
		` ORDER BY updated_at DESC, id`+b.page(f.Limit, f.Offset), b.args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListLowStock líneas en o bajo su punto de reorden, mayor déficit primero.
func (r *InventoryRepo) ListLowStock(ctx context.Context, locationID string) ([]*entity.InventoryLine, error) {
	b := &sqlBuilder{conds: []string{"reorder_point IS NOT NULL", "quantity <= reorder_point"}}
	if locationID != "" {
		b.add("location_id = ?", locationID)
	}
	return r.query(ctx, `SELECT `+inventoryColumns+` FROM inventory`+b.where()+
		` ORDER BY (reorder_point - quantity) DESC, id`, b.args...)
}

func (r *InventoryRepo) query(ctx context.Context, sql string, args ...any) ([]*entity.InventoryLine, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLine
	for rows.Next() {
		l, err := scanInventoryLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// InventoryMovementRepo bitácora de movimientos (solo inserción y lectura).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create registra un movimiento.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_movements (id, product_id, location_id, type, quantity, unit_cost, reason, reference_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, NULLIF($9, '')::uuid, $10)`,
		m.ID, m.ProductID, m.LocationID, m.Type, m.Quantity, m.UnitCost, m.Reason, m.ReferenceID, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory movement: %w", err)
	}
	return nil
}

// ListByProduct movimientos de un producto, más recientes primero.
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, location_id, type, quantity, unit_cost, reason,
			COALESCE(reference_id::text, ''), COALESCE(created_by::text, ''), created_at
		FROM inventory_movements WHERE product_id = $1
		ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.LocationID, &m.Type, &m.Quantity, &m.UnitCost,
			&m.Reason, &m.ReferenceID, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
