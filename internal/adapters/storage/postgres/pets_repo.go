package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-registry/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

var _ pets.Repository = (*PetsRepo)(nil)

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	// El id lo asigna la secuencia; BIGSERIAL nunca reutiliza valores.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, species)
		VALUES ($1, $2)
		RETURNING id
	`, p.Name, p.Species).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	if err := row.Scan(&p.ID, &p.Name, &p.Species); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	var (
		rows *sql.Rows
		err  error
	)

	// Filtro tipado: una query por rama, sin armar SQL dinámico.
	if f.Species != nil {
		rows, err = r.db.QueryContext(ctx, `
			SELECT id, name, species
			FROM pets
			WHERE species = $1
			ORDER BY id ASC
		`, *f.Species)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT id, name, species
			FROM pets
			ORDER BY id ASC
		`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Species); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = $2, species = $3
		WHERE id = $1
	`, p.ID, p.Name, p.Species)
	if err != nil {
		return pets.Pet{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return pets.Pet{}, err
	}
	if n == 0 {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pets
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}
