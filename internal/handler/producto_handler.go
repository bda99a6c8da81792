package handler

import (
	"net/http"

	"gym-service/internal/model"
	"gym-service/pkg/logger"
	"gym-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductoHandler serves the /api/productos routes
type ProductoHandler struct {
	store ResourceStore
}

// NewProductoHandler builds the handler over the producto store
func NewProductoHandler(store ResourceStore) *ProductoHandler {
	return &ProductoHandler{store: store}
}

// List handles retrieving all products
func (h *ProductoHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing productos")

	productos, err := h.store.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list productos", zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("productos", "list")
	return c.JSON(http.StatusOK, productos)
}

// Get handles retrieving a single product by ID
func (h *ProductoHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El ID de producto proporcionado no es valido."})
	}
	log.Info("Getting producto by ID", zap.Int64("id_producto", id))

	producto, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Failed to get producto", zap.Int64("id_producto", id), zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("productos", "get")
	return c.JSON(http.StatusOK, producto)
}

// Create handles adding a new product
func (h *ProductoHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating producto")

	var req model.ProductoRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Se esperan datos en formato JSON"})
	}

	if req.Nombre == "" || req.Precio == nil || req.Stock == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan campos obligatorios (nombre, precio, stock)."})
	}

	precio, ok := parsePrecio(req.Precio)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El precio debe ser un número válido."})
	}

	producto, err := h.store.Create(c.Request().Context(),
		req.Nombre, req.Descripcion, precio.String(), *req.Stock, req.ImagenURL)
	if err != nil {
		log.Error("Failed to create producto", zap.String("nombre", req.Nombre), zap.Error(err))
		return writeDBError(c, err)
	}

	log.Info("Producto created", zap.String("nombre", req.Nombre))
	prometheus.RecordResourceOperation("productos", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"mensaje":  "Producto agregado con exito",
		"producto": producto,
	})
}

// Update handles updating an existing product
func (h *ProductoHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El ID de producto proporcionado no es valido."})
	}
	log.Info("Updating producto", zap.Int64("id_producto", id))

	var req model.ProductoRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Int64("id_producto", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Se esperan datos en formato JSON"})
	}

	if req.Nombre == "" || req.Precio == nil || req.Stock == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan campos obligatorios (nombre, precio, stock)."})
	}

	precio, ok := parsePrecio(req.Precio)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El precio debe ser un número válido."})
	}

	producto, err := h.store.Update(c.Request().Context(), id,
		req.Nombre, req.Descripcion, precio.String(), *req.Stock, req.ImagenURL)
	if err != nil {
		log.Error("Failed to update producto", zap.Int64("id_producto", id), zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("productos", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje":  "Producto actualizado con exito",
		"producto": producto,
	})
}

// Delete handles deleting a product by ID
func (h *ProductoHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El ID de producto proporcionado no es valido."})
	}
	log.Info("Deleting producto", zap.Int64("id_producto", id))

	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		log.Error("Failed to delete producto", zap.Int64("id_producto", id), zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("productos", "delete")
	return c.JSON(http.StatusOK, echo.Map{"mensaje": "Producto eliminado con exito"})
}
