package storedproc

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestCallStatement(t *testing.T) {
	require.Equal(t, "CALL sp_ObtenerTodosProductos()", callStatement("sp_ObtenerTodosProductos", 0))
	require.Equal(t, "CALL sp_ObtenerProductoPorID(?)", callStatement("sp_ObtenerProductoPorID", 1))
	require.Equal(t, "CALL sp_AgregarProducto(?,?,?,?,?)", callStatement("sp_AgregarProducto", 5))
	require.Equal(t, "CALL sp_ActualizarClase(?,?,?,?,?,?,?)", callStatement("sp_ActualizarClase", 7))
}

// newMockGateway wires the gateway to an in-process driver so every statement,
// transaction boundary included, can be asserted in order.
func newMockGateway(t *testing.T) (*Gateway, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return NewGateway(db), mock, conn
}

func TestQuery_MaterializesResultBeforeRelease(t *testing.T) {
	gw, mock, conn := newMockGateway(t)

	mock.ExpectQuery("CALL sp_ObtenerTodosProductos()").WillReturnRows(
		sqlmock.NewRows([]string{"id_producto", "nombre", "precio"}).
			AddRow(int64(1), "Proteina", []byte("29.99")).
			AddRow(int64(2), "Shaker", []byte("9.90")))

	result, err := gw.Query(context.Background(), "sp_ObtenerTodosProductos")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	// The result must stay readable after the pool is gone
	mock.ExpectClose()
	require.NoError(t, conn.Close())

	require.Equal(t, []string{"id_producto", "nombre", "precio"}, result.Columns)
	require.Len(t, result.Rows, 2)
	require.Equal(t, int64(1), result.Rows[0][0])
	require.Equal(t, "Proteina", result.Rows[0][1])
	require.Equal(t, []byte("29.99"), result.Rows[0][2])
	require.Equal(t, []byte("9.90"), result.Rows[1][2])
}

func TestQuery_ProcedureErrorIsClassifiable(t *testing.T) {
	gw, mock, _ := newMockGateway(t)

	mock.ExpectQuery("CALL sp_ObtenerProductoPorID(?)").WithArgs(int64(7)).
		WillReturnError(signalErr("Se requiere un ID de producto valido."))

	result, err := gw.Query(context.Background(), "sp_ObtenerProductoPorID", int64(7))
	require.Nil(t, result)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	classified := Classify(err, []string{"Se requiere un ID de producto valido."})
	require.Equal(t, KindValidation, classified.Kind)
}

func TestExec_CommitsOnSuccess(t *testing.T) {
	gw, mock, _ := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("CALL sp_EliminarProducto(?)").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, gw.Exec(context.Background(), "sp_EliminarProducto", int64(5)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExec_RollsBackOnProcedureError(t *testing.T) {
	gw, mock, _ := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("CALL sp_EliminarClase(?)").WithArgs(int64(9)).
		WillReturnError(signalErr("La clase con el ID especificado no existe y no puede ser eliminada."))
	mock.ExpectRollback()

	err := gw.Exec(context.Background(), "sp_EliminarClase", int64(9))
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	classified := Classify(err, nil)
	require.Equal(t, KindValidation, classified.Kind)
}

func TestExecReturningID_ReadsIDInsideTransaction(t *testing.T) {
	gw, mock, _ := newMockGateway(t)

	// Ordered expectations: the id select has to land between the insert
	// and the commit, on the same transaction.
	mock.ExpectBegin()
	mock.ExpectExec("CALL sp_AgregarProducto(?,?,?,?,?)").
		WithArgs("Proteina", nil, "29.99", int64(10), nil).
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectQuery("SELECT LAST_INSERT_ID()").WillReturnRows(
		sqlmock.NewRows([]string{"LAST_INSERT_ID()"}).AddRow(int64(12)))
	mock.ExpectCommit()

	id, err := gw.ExecReturningID(context.Background(), "sp_AgregarProducto",
		"Proteina", nil, "29.99", int64(10), nil)
	require.NoError(t, err)
	require.EqualValues(t, 12, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecReturningID_RollsBackOnInsertError(t *testing.T) {
	gw, mock, _ := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("CALL sp_AgregarPlan(?,?,?,?)").
		WithArgs("", nil, "1500.00", int64(30)).
		WillReturnError(signalErr("El nombre del plan no puede estar vacío."))
	mock.ExpectRollback()

	id, err := gw.ExecReturningID(context.Background(), "sp_AgregarPlan",
		"", nil, "1500.00", int64(30))
	require.Zero(t, id)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
