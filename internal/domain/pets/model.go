package pets

// Pet representa una mascota registrada en el sistema.
// El ID lo asigna el store (autoincrement); nunca se reutiliza tras un delete.
type Pet struct {
	ID      int64
	Name    string
	Species string
}

// ListFilter restringe un listado a campos tipados explícitos.
// Species nil = sin filtro; seteado = match exacto.
type ListFilter struct {
	Species *string
}
