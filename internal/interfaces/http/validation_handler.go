package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/serranotex/serrano-tex-ims/internal/application/auth"
	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/application/inventory"
	"github.com/serranotex/serrano-tex-ims/internal/application/usecase"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

// ValidationHandler valida formularios sin persistir (el front los usa mientras el usuario escribe).
// Siempre responde 200 con {isValid, errors}; solo un fallo inesperado produce otro código.
type ValidationHandler struct {
	products  *usecase.ProductUseCase
	customers *usecase.CustomerUseCase
	inventory *inventory.UseCase
	sales     *usecase.SaleUseCase
	auth      *auth.AuthUseCase
}

// NewValidationHandler construye el handler.
func NewValidationHandler(
	products *usecase.ProductUseCase,
	customers *usecase.CustomerUseCase,
	inv *inventory.UseCase,
	sales *usecase.SaleUseCase,
	authUC *auth.AuthUseCase,
) *ValidationHandler {
	return &ValidationHandler{products: products, customers: customers, inventory: inv, sales: sales, auth: authUC}
}

func dryRun[T any](c *fiber.Ctx, validate func(context.Context, T) error) error {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := validate(c.Context(), in)
	if err == nil {
		return c.JSON(validation.Valid())
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return respondError(c, err)
	}
	countRejected(c, "dry_run")
	if verr.Fields != nil {
		return c.JSON(validation.FormResult{IsValid: false, Errors: verr.Fields})
	}
	return c.JSON(validation.Invalid(verr.Errors...))
}

// Product godoc
// @Summary      Validar producto
// @Tags         validate
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  validation.ProductInput  true  "Producto"
// @Param        id    query string  false  "Producto que se edita (excluido de la unicidad del SKU)"
// @Success      200   {object}  validation.Result
// @Router       /api/validate/product [post]
func (h *ValidationHandler) Product(c *fiber.Ctx) error {
	selfID := c.Query("id")
	return dryRun(c, func(ctx context.Context, in validation.ProductInput) error {
		return h.products.Validate(ctx, selfID, in)
	})
}

// Customer godoc
// @Summary      Validar cliente
// @Tags         validate
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  validation.CustomerInput  true  "Cliente"
// @Param        id    query string  false  "Cliente que se edita"
// @Success      200   {object}  validation.Result
// @Router       /api/validate/customer [post]
func (h *ValidationHandler) Customer(c *fiber.Ctx) error {
	selfID := c.Query("id")
	return dryRun(c, func(ctx context.Context, in validation.CustomerInput) error {
		return h.customers.Validate(ctx, selfID, in)
	})
}

// Inventory godoc
// @Summary      Validar línea de inventario
// @Tags         validate
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  validation.InventoryInput  true  "Línea"
// @Success      200   {object}  validation.Result
// @Router       /api/validate/inventory [post]
func (h *ValidationHandler) Inventory(c *fiber.Ctx) error {
	return dryRun(c, h.inventory.Validate)
}

// Sale godoc
// @Summary      Validar venta
// @Tags         validate
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  validation.SaleInput  true  "Venta"
// @Success      200   {object}  validation.Result
// @Router       /api/validate/sale [post]
func (h *ValidationHandler) Sale(c *fiber.Ctx) error {
	return dryRun(c, h.sales.Validate)
}

// Password godoc
// @Summary      Validar contraseña contra la política vigente
// @Tags         validate
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PasswordCheckRequest  true  "Contraseña"
// @Success      200   {object}  validation.Result
// @Router       /api/validate/password [post]
func (h *ValidationHandler) Password(c *fiber.Ctx) error {
	var in dto.PasswordCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.auth.Policy().Validate(in.Password))
}

// Registration godoc
// @Summary      Validar formulario de alta de usuario (errores por campo)
// @Tags         validate
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Usuario"
// @Success      200   {object}  validation.FormResult
// @Router       /api/validate/registration [post]
func (h *ValidationHandler) Registration(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.auth.ValidateRegistration(in))
}
