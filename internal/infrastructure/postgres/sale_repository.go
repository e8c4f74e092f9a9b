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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, COALESCE(customer_id::text, ''), COALESCE(location_id::text, ''), discount, tax_rate,
	subtotal, discount_total, tax_total, total, notes, status, payment_status,
	COALESCE(created_by::text, ''), created_at, updated_at`

// SaleRepo implementación del puerto SaleRepository (cabecera + líneas).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Para Create con líneas usar una tx (ver TxRunner).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.CustomerID, &s.LocationID, &s.Discount, &s.TaxRate,
		&s.Subtotal, &s.DiscountTotal, &s.TaxTotal, &s.Total, &s.Notes, &s.Status, &s.PaymentStatus,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserta la cabecera y cada línea.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, customer_id, location_id, discount, tax_rate, subtotal, discount_total,
			tax_total, total, notes, status, payment_status, created_by, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			NULLIF($13, '')::uuid, $14, $15)`,
		s.ID, s.CustomerID, s.LocationID, s.Discount, s.TaxRate, s.Subtotal, s.DiscountTotal,
		s.TaxTotal, s.Total, s.Notes, s.Status, s.PaymentStatus, s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, it := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, s.ID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la venta con sus líneas.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	return s, rows.Err()
}

// List lista cabeceras de venta, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, int, error) {
	b := &sqlBuilder{}
	if f.CustomerID != "" {
		b.add("customer_id = ?", f.CustomerID)
	}
	if f.Status != "" {
		b.add("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		b.add("payment_status = ?", f.PaymentStatus)
	}
	if f.From != nil {
		b.add("created_at >= ?", *f.From)
	}
	if f.To != nil {
		b.add("created_at < ?", *f.To)
	}
	where := b.where()

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM sales`+where, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM sales`+where+
		` ORDER BY created_at DESC, id`+b.page(f.Limit, f.Offset), b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// UpdateStatus actualiza status, payment_status y notes.
func (r *SaleRepo) UpdateStatus(ctx context.Context, s *entity.Sale) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE sales SET status = $2, payment_status = $3, notes = $4, updated_at = $5 WHERE id = $1`,
		s.ID, s.Status, s.PaymentStatus, s.Notes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la venta; las líneas caen por ON DELETE CASCADE.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
