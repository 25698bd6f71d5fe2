package handlers

import (
	"errors"
	"fmt"
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:term", h.HandleGetProduct)
}

// RegisterProtectedRoutes registers the mutating product routes; the caller
// wraps the router with the auth middleware.
func (h *ProductHandler) RegisterProtectedRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	productRoutes.Delete("/", h.HandleDeleteAllProducts)
}

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Price       float64  `json:"price" validate:"omitempty,gte=0"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images" validate:"omitempty,dive,required"`
}

// UpdateProductRequest is the request body for a partial update. Absent
// fields stay untouched; an explicit empty image list removes all images.
type UpdateProductRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Slug        *string   `json:"slug"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	Sizes       *[]string `json:"sizes"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        *[]string `json:"tags"`
	Images      *[]string `json:"images" validate:"omitempty,dive,required"`
}

// ProductResponse is the wire shape of a product: images flattened to URLs.
type ProductResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

func toProductResponse(p *models.Product) ProductResponse {
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       sizes,
		Gender:      p.Gender,
		Tags:        tags,
		Images:      p.ImageURLs(),
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}
	return responses
}

// HandleListProducts returns a page of products.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)

	products, err := h.service.ListProducts(limit, offset)
	if err != nil {
		return h.respondError(c, err, "Could not retrieve products")
	}
	return c.JSON(toProductResponses(products))
}

// HandleGetProduct retrieves one product by id, title or slug.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	term := c.Params("term")
	product, err := h.service.GetProductByTerm(term)
	if err != nil {
		return h.respondError(c, err, fmt.Sprintf("Could not retrieve product %q", term))
	}
	return c.JSON(toProductResponse(product))
}

// HandleCreateProduct creates a new product with its images.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if errs := h.validationErrors(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	product, err := h.service.CreateProduct(services.CreateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		Images:      req.Images,
	})
	if err != nil {
		return h.respondError(c, err, "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// HandleUpdateProduct applies a sparse update to an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if errs := h.validationErrors(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	product, err := h.service.UpdateProduct(id, services.UpdateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
		Images:      req.Images,
	})
	if err != nil {
		return h.respondError(c, err, fmt.Sprintf("Could not update product %s", id))
	}
	return c.JSON(toProductResponse(product))
}

// HandleDeleteProduct removes one product, returning the removed row.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.DeleteProduct(id)
	if err != nil {
		return h.respondError(c, err, fmt.Sprintf("Could not delete product %s", id))
	}
	return c.JSON(toProductResponse(product))
}

// HandleDeleteAllProducts wipes the catalog.
func (h *ProductHandler) HandleDeleteAllProducts(c *fiber.Ctx) error {
	count, removed, err := h.service.RemoveAllProducts()
	if err != nil {
		return h.respondError(c, err, "Could not delete products")
	}
	return c.JSON(fiber.Map{
		"message":  fmt.Sprintf("%d products deleted", count),
		"count":    count,
		"products": toProductResponses(removed),
	})
}

// validationErrors runs struct validation and returns a per-field error
// map, or nil when the request is valid.
func (h *ProductHandler) validationErrors(req interface{}) map[string]string {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return errorMessages
}

// respondError maps domain errors to HTTP statuses: NotFound to 404,
// Conflict to 409 with the constraint detail, anything else to an opaque
// 500.
func (h *ProductHandler) respondError(c *fiber.Ctx, err error, message string) error {
	var conflict *repositories.ConflictError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": message,
			"error":   conflict.Detail,
		})
	default:
		log.Printf("%s: %v", message, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": message,
			"error":   repositories.ErrUnexpected.Error(),
		})
	}
}
