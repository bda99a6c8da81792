package handler

import (
	"net/http"

	"gym-service/internal/model"
	"gym-service/pkg/logger"
	"gym-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PlanHandler serves the /api/planes routes
type PlanHandler struct {
	store ResourceStore
}

// NewPlanHandler builds the handler over the plan store
func NewPlanHandler(store ResourceStore) *PlanHandler {
	return &PlanHandler{store: store}
}

// List handles retrieving all membership plans
func (h *PlanHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing planes")

	planes, err := h.store.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list planes", zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("planes", "list")
	return c.JSON(http.StatusOK, planes)
}

// Get handles retrieving a single plan by ID
func (h *PlanHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El ID de plan proporcionado no es valido."})
	}
	log.Info("Getting plan by ID", zap.Int64("id_plan", id))

	plan, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		log.Warn("Failed to get plan", zap.Int64("id_plan", id), zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("planes", "get")
	return c.JSON(http.StatusOK, plan)
}

// Create handles adding a new plan
func (h *PlanHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating plan")

	var req model.PlanRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Se esperan datos en formato JSON"})
	}

	if req.Nombre == "" || req.Precio == nil || req.DuracionDias == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan campos obligatorios (nombre, precio, duracion_dias)."})
	}

	precio, ok := parsePrecio(req.Precio)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El precio debe ser un número válido."})
	}

	plan, err := h.store.Create(c.Request().Context(),
		req.Nombre, req.Descripcion, precio.String(), *req.DuracionDias)
	if err != nil {
		log.Error("Failed to create plan", zap.String("nombre", req.Nombre), zap.Error(err))
		return writeDBError(c, err)
	}

	log.Info("Plan created", zap.String("nombre", req.Nombre))
	prometheus.RecordResourceOperation("planes", "create")
	return c.JSON(http.StatusCreated, echo.Map{
		"mensaje": "Plan agregado con exito",
		"plan":    plan,
	})
}

// Update handles updating an existing plan
func (h *PlanHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El ID de plan proporcionado no es valido."})
	}
	log.Info("Updating plan", zap.Int64("id_plan", id))

	var req model.PlanRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Int64("id_plan", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Se esperan datos en formato JSON"})
	}

	if req.Nombre == "" || req.Precio == nil || req.DuracionDias == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Faltan campos obligatorios (nombre, precio, duracion_dias)."})
	}

	precio, ok := parsePrecio(req.Precio)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El precio debe ser un número válido."})
	}

	plan, err := h.store.Update(c.Request().Context(), id,
		req.Nombre, req.Descripcion, precio.String(), *req.DuracionDias)
	if err != nil {
		log.Error("Failed to update plan", zap.Int64("id_plan", id), zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("planes", "update")
	return c.JSON(http.StatusOK, echo.Map{
		"mensaje": "Plan actualizado con exito",
		"plan":    plan,
	})
}

// Delete handles deleting a plan by ID
func (h *PlanHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "El ID de plan proporcionado no es valido."})
	}
	log.Info("Deleting plan", zap.Int64("id_plan", id))

	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		log.Error("Failed to delete plan", zap.Int64("id_plan", id), zap.Error(err))
		return writeDBError(c, err)
	}

	prometheus.RecordResourceOperation("planes", "delete")
	return c.JSON(http.StatusOK, echo.Map{"mensaje": "Plan eliminado con exito"})
}
