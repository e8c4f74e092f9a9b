package validation

import "fmt"

// ProductInput datos de un producto tal como llegan del formulario.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Price       Number `json:"price"`
	Cost        Number `json:"cost"`
	CategoryID  string `json:"category_id"`
	Barcode     string `json:"barcode"`
}

// ValidateProduct concatena en una sola lista los errores de nombre, SKU, precio, costo,
// categoría y descripción.
func ValidateProduct(p ProductInput) Result {
	var c collector
	c.merge(ValidateField(p.Name, FieldRule{Required: true, MinLength: 2, MaxLength: 100}, "Product name"))
	c.merge(ValidateSKU(p.SKU))
	if !isNonNegative(p.Price) {
		c.add("Price must be a positive number")
	}
	if !isNonNegative(p.Cost) {
		c.add("Cost must be a positive number")
	}
	if p.CategoryID == "" {
		c.add("Category is required")
	}
	if p.Description != "" {
		c.merge(ValidateField(p.Description, FieldRule{MaxLength: 500}, "Description"))
	}
	return c.result()
}

// CustomerInput datos de un cliente.
type CustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

// ValidateCustomer: nombre obligatorio; email, teléfono y empresa solo se validan si vienen.
func ValidateCustomer(cu CustomerInput) Result {
	var c collector
	c.merge(ValidateField(cu.Name, FieldRule{Required: true, MinLength: 2, MaxLength: 100}, "Customer name"))
	if cu.Email != "" {
		c.merge(ValidateEmail(cu.Email))
	}
	if cu.Phone != "" {
		c.merge(ValidatePhone(cu.Phone))
	}
	if cu.Company != "" {
		c.merge(ValidateField(cu.Company, FieldRule{MaxLength: 100}, "Company"))
	}
	return c.result()
}

// InventoryInput una línea de inventario (producto en una ubicación).
type InventoryInput struct {
	ProductID    string `json:"product_id"`
	LocationID   string `json:"location_id"`
	Quantity     Number `json:"quantity"`
	ReorderPoint Number `json:"reorder_point"`
	MaxStock     Number `json:"max_stock"`
}

// ValidateInventory valida la línea y la restricción cruzada max_stock >= reorder_point.
func ValidateInventory(in InventoryInput) Result {
	var c collector
	if in.ProductID == "" {
		c.add("Product is required")
	}
	if in.LocationID == "" {
		c.add("Location is required")
	}
	if !isNonNegative(in.Quantity) {
		c.add("Quantity must be a non-negative number")
	}
	if in.ReorderPoint.IsSet() && !isNonNegative(in.ReorderPoint) {
		c.add("Reorder point must be a non-negative number")
	}
	if in.MaxStock.IsSet() {
		if !isNonNegative(in.MaxStock) {
			c.add("Max stock must be a non-negative number")
		}
		if in.ReorderPoint.IsNumber() && in.MaxStock.IsNumber() &&
			in.MaxStock.Decimal().LessThan(in.ReorderPoint.Decimal()) {
			c.add("Max stock must be greater than or equal to reorder point")
		}
	}
	return c.result()
}

// SaleItemInput una línea de venta.
type SaleItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  Number `json:"quantity"`
	Price     Number `json:"price"`
}

// SaleInput una venta con sus líneas. Discount y TaxRate son porcentajes.
type SaleInput struct {
	CustomerID string          `json:"customer_id"`
	LocationID string          `json:"location_id"`
	Items      []SaleItemInput `json:"items"`
	Discount   Number          `json:"discount"`
	TaxRate    Number          `json:"tax_rate"`
	Notes      string          `json:"notes"`
}

// ValidateSale exige al menos una línea; los errores de cada línea llevan el prefijo "Item N:".
func ValidateSale(s SaleInput) Result {
	var c collector
	if len(s.Items) == 0 {
		c.add("At least one item is required")
	}
	for i, item := range s.Items {
		n := i + 1
		if item.ProductID == "" {
			c.add(fmt.Sprintf("Item %d: Product is required", n))
		}
		if !isPositive(item.Quantity) {
			c.add(fmt.Sprintf("Item %d: Quantity must be a positive number", n))
		}
		if !isNonNegative(item.Price) {
			c.add(fmt.Sprintf("Item %d: Price must be a non-negative number", n))
		}
	}
	if s.Discount.IsSet() && !isPercent(s.Discount) {
		c.add("Discount must be between 0 and 100")
	}
	if s.TaxRate.IsSet() && !isPercent(s.TaxRate) {
		c.add("Tax rate must be between 0 and 100")
	}
	if s.Notes != "" {
		c.merge(ValidateField(s.Notes, FieldRule{MaxLength: 500}, "Notes"))
	}
	return c.result()
}
