package handler

import (
	"net/http"

	"gym-service/internal/model"
	"gym-service/pkg/logger"
	"gym-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ClaseHandler serves the /api/clases routes
type ClaseHandler struct {
	store ResourceStore
}

// NewClaseHandler builds the handler over the clase store
func NewClaseHandler(store ResourceStore) *ClaseHandler {
	return &ClaseHandler{store: store}
}

// List handles retrieving all classes
func (h *ClaseHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing clases")

	clases, err := h.store.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list clases", zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("clases", "list")
	return c.JSON(http.StatusOK, clases)
}

// Get handles retrieving a single class by ID
func (h *ClaseHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El ID de clase proporcionado no es valido."})
	}
	log.Info("Getting clase by ID", zap.Int64("id_clase", id))

	clase, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Failed to get clase", zap.Int64("id_clase", id), zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("clases", "get")
	return c.JSON(http.StatusOK, clase)
}

// Create handles adding a new class. Field-level rules (non-empty name,
// positive duration and capacity) are enforced by the stored procedure.
func (h *ClaseHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating clase")

	var req model.ClaseRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Se esperan datos en formato JSON"})
	}

	if req.Duracion == nil || req.CupoMaximo == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan campos obligatorios (nombre, instructor, horario, duracion, cupo_maximo)."})
	}

	clase, err := h.store.Create(c.Request().Context(),
		req.Nombre, req.Descripcion, req.Instructor, req.Horario, *req.Duracion, *req.CupoMaximo)
	if err != nil {
		log.Error("Failed to create clase", zap.String("nombre", req.Nombre), zap.Error(err))
		return writeDBError(c, err)
	}

	log.Info("Clase created", zap.String("nombre", req.Nombre))
	prometheus.RecordResourceOperation("clases", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"mensaje": "Clase agregada exitosamente.",
		"clase":   clase,
	})
}

// Update handles updating an existing class
func (h *ClaseHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El ID de clase proporcionado no es valido."})
	}
	log.Info("Updating clase", zap.Int64("id_clase", id))

	var req model.ClaseRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Int64("id_clase", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Se esperan datos en formato JSON"})
	}

	if req.Duracion == nil || req.CupoMaximo == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan campos obligatorios (nombre, instructor, horario, duracion, cupo_maximo)."})
	}

	clase, err := h.store.Update(c.Request().Context(), id,
		req.Nombre, req.Descripcion, req.Instructor, req.Horario, *req.Duracion, *req.CupoMaximo)
	if err != nil {
		log.Error("Failed to update clase", zap.Int64("id_clase", id), zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("clases", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": "Clase actualizada exitosamente.",
		"clase":   clase,
	})
}

// Delete handles deleting a class by ID
func (h *ClaseHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El ID de clase proporcionado no es valido."})
	}
	log.Info("Deleting clase", zap.Int64("id_clase", id))

	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		log.Error("Failed to delete clase", zap.Int64("id_clase", id), zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("clases", "delete")
	return c.JSON(http.StatusOK, echo.Map{"mensaje": "Clase eliminada exitosamente."})
}
