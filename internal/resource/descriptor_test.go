package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescriptors(t *testing.T) {
	cases := []struct {
		desc     Descriptor
		plural   string
		idColumn string
		procAdd  string
	}{
		{Producto, "productos", "id_producto", "sp_AgregarProducto"},
		{Clase, "clases", "id_clase", "sp_AgregarClase"},
		{Plan, "planes", "id_plan", "sp_AgregarPlan"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.plural, tc.desc.Plural)
		require.Equal(t, tc.idColumn, tc.desc.IDColumn)
		require.Equal(t, tc.procAdd, tc.desc.ProcAdd)
		require.NotEmpty(t, tc.desc.ProcList)
		require.NotEmpty(t, tc.desc.ProcGet)
		require.NotEmpty(t, tc.desc.ProcUpdate)
		require.NotEmpty(t, tc.desc.ProcDelete)
	}
}

func TestDescriptors_PriceColumnsAreFixedScale(t *testing.T) {
	require.EqualValues(t, 2, Producto.DecimalScales["precio"])
	require.EqualValues(t, 2, Plan.DecimalScales["precio"])
	// Clase has no money columns; horario stays textual
	require.Empty(t, Clase.DecimalScales)
}
