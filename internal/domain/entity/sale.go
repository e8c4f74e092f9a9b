package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pedido.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Estados de pago.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusPartial   = "partial"
	PaymentStatusOverdue   = "overdue"
	PaymentStatusCancelled = "cancelled"
)

// OrderStatuses y PaymentStatuses listan los valores aceptados.
var (
	OrderStatuses = []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	}
	PaymentStatuses = []string{
		PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartial,
		PaymentStatusOverdue, PaymentStatusCancelled,
	}
)

// Sale cabecera de una venta. Discount y TaxRate son porcentajes (0-100).
type Sale struct {
	ID            string
	CustomerID    string // opcional
	LocationID    string // opcional; si viene, la venta descuenta stock de esa ubicación
	Discount      decimal.Decimal
	TaxRate       decimal.Decimal
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	Notes         string
	Status        string
	PaymentStatus string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []SaleItem
}

// SaleItem línea de una venta.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
