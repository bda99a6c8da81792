package resource

// Descriptor declares everything the generic store needs to drive one
// resource through its stored procedures: procedure names, which result
// columns are fixed-scale decimals, and the literal SIGNAL messages the
// procedures raise for business-rule violations. The three gym resources
// differ only in these values.
type Descriptor struct {
	// Name is the singular, capitalized resource name used in client-facing
	// messages ("Producto con ID 3 no encontrado.").
	Name string
	// Plural is the route segment and metric label ("productos").
	Plural string
	// IDColumn is the primary key column the procedures return.
	IDColumn string

	ProcAdd    string
	ProcList   string
	ProcGet    string
	ProcUpdate string
	ProcDelete string

	// DecimalScales maps decimal result columns to their scale.
	DecimalScales map[string]int32
	// SignalPhrases are the exact messages the procedures SIGNAL. Matching is
	// by substring; the wording is part of the contract with the database.
	SignalPhrases []string
}

// Producto: gym shop articles. Parameter order for add:
// nombre, descripcion, precio, stock, imagen_url; update takes the id first.
var Producto = Descriptor{
	Name:       "Producto",
	Plural:     "productos",
	IDColumn:   "id_producto",
	ProcAdd:    "sp_AgregarProducto",
	ProcList:   "sp_ObtenerTodosProductos",
	ProcGet:    "sp_ObtenerProductoPorID",
	ProcUpdate: "sp_ActualizarProducto",
	ProcDelete: "sp_EliminarProducto",
	DecimalScales: map[string]int32{
		"precio": 2,
	},
	SignalPhrases: []string{
		"Se requiere un ID de producto valido.",
	},
}

// Clase: scheduled gym classes. Parameter order for add:
// nombre, descripcion, instructor, horario, duracion, cupo_maximo.
var Clase = Descriptor{
	Name:       "Clase",
	Plural:     "clases",
	IDColumn:   "id_clase",
	ProcAdd:    "sp_AgregarClase",
	ProcList:   "sp_ObtenerTodasClases",
	ProcGet:    "sp_ObtenerClasePorID",
	ProcUpdate: "sp_ActualizarClase",
	ProcDelete: "sp_EliminarClase",
	SignalPhrases: []string{
		"El nombre de la clase no puede estar vacío.",
		"El nombre del instructor no puede estar vacío.",
		"El horario de la clase no puede estar vacío.",
		"La duracion de la clase debe ser un numero positivo.",
		"La duración de la clase debe ser un número positivo.",
		"El cupo maximo de la clase debe ser un numero positivo.",
		"El cupo máximo de la clase debe ser un número positivo.",
		"La clase con el ID especificado no existe.",
		"La clase con el ID especificado no existe y no puede ser eliminada.",
		"Se requiere un ID de clase valido.",
		"Se requiere un ID de clase valido para eliminar.",
	},
}

// Plan: membership plans. Parameter order for add:
// nombre, descripcion, precio, duracion_dias.
var Plan = Descriptor{
	Name:       "Plan",
	Plural:     "planes",
	IDColumn:   "id_plan",
	ProcAdd:    "sp_AgregarPlan",
	ProcList:   "sp_ObtenerTodosPlanes",
	ProcGet:    "sp_ObtenerPlanPorID",
	ProcUpdate: "sp_ActualizarPlan",
	ProcDelete: "sp_EliminarPlan",
	DecimalScales: map[string]int32{
		"precio": 2,
	},
	SignalPhrases: []string{
		"Se requiere un ID de plan valido.",
	},
}
