package handler

import (
	"net/http"
	"testing"

	"gym-service/internal/storedproc"

	"github.com/stretchr/testify/require"
)

func TestPlanCreate(t *testing.T) {
	store := &fakeStore{record: storedproc.Record{
		"id_plan":       int64(2),
		"nombre":        "Mensual",
		"precio":        "1500.00",
		"duracion_dias": int64(30),
	}}
	h := NewPlanHandler(store)

	c, rec := newTestContext(t, http.MethodPost, "/api/planes",
		`{"nombre":"Mensual","precio":1500,"duracion_dias":30}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Plan agregado con exito", body["mensaje"])
	require.Equal(t, []any{"Mensual", (*string)(nil), "1500", 30}, store.gotParams)
}

func TestPlanCreate_MissingFields(t *testing.T) {
	h := NewPlanHandler(&fakeStore{})

	c, rec := newTestContext(t, http.MethodPost, "/api/planes", `{"nombre":"Mensual"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Faltan campos obligatorios (nombre, precio, duracion_dias).", decodeBody(t, rec)["error"])
}

func TestPlanGet_NotFound(t *testing.T) {
	store := &fakeStore{err: storedproc.NotFound("Plan", 42)}
	h := NewPlanHandler(store)

	c, rec := newTestContext(t, http.MethodGet, "/api/planes/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Plan con ID 42 no encontrado.", decodeBody(t, rec)["message"])
}

func TestPlanDelete_IntegrityErrorIs500(t *testing.T) {
	// A plan referenced by memberships cannot be removed
	store := &fakeStore{err: &storedproc.Error{
		Kind:    storedproc.KindIntegrity,
		Message: "Cannot delete or update a parent row: a foreign key constraint fails",
	}}
	h := NewPlanHandler(store)

	c, rec := newTestContext(t, http.MethodDelete, "/api/planes/2", "")
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
