package pets

import "context"

// Repository es el contrato de persistencia de mascotas.
// Create asigna el ID y devuelve el registro persistido.
// List devuelve en orden de inserción (= orden de ID).
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context, f ListFilter) ([]Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, id int64) error
}
