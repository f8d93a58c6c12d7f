package repository

import (
	"context"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneTypeRepository interface {
	List(ctx context.Context) ([]domain.AirplaneType, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Create(ctx context.Context, t *domain.AirplaneType) error
	UpdateName(ctx context.Context, id int64, name string) (*domain.AirplaneType, error)
	UpdateImage(ctx context.Context, id int64, image string) (*domain.AirplaneType, error)
}

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, COALESCE(image, '') FROM airplane_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name, &t.Image); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, COALESCE(image, '') FROM airplane_types WHERE id=$1`, id)
	var t domain.AirplaneType
	if err := row.Scan(&t.ID, &t.Name, &t.Image); err != nil {
		return nil, mapNotFound(err)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, t *domain.AirplaneType) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
	if isUniqueViolation(err) {
		return domain.NewValidationError("name", "airplane type with this name already exists")
	}
	return err
}

func (r *PGAirplaneTypeRepository) UpdateName(ctx context.Context, id int64, name string) (*domain.AirplaneType, error) {
	row := r.db.QueryRow(ctx, `UPDATE airplane_types SET name=$1 WHERE id=$2 RETURNING id, name, COALESCE(image, '')`, name, id)
	var t domain.AirplaneType
	if err := row.Scan(&t.ID, &t.Name, &t.Image); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewValidationError("name", "airplane type with this name already exists")
		}
		return nil, mapNotFound(err)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) UpdateImage(ctx context.Context, id int64, image string) (*domain.AirplaneType, error) {
	row := r.db.QueryRow(ctx, `UPDATE airplane_types SET image=$1 WHERE id=$2 RETURNING id, name, COALESCE(image, '')`, image, id)
	var t domain.AirplaneType
	if err := row.Scan(&t.ID, &t.Name, &t.Image); err != nil {
		return nil, mapNotFound(err)
	}
	return &t, nil
}

var _ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)

type AirplaneRepository interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	Create(ctx context.Context, airplane *domain.Airplane) error
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

const airplaneSelect = `SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id,
	tp.id, tp.name, COALESCE(tp.image, '')
FROM airplanes a
JOIN airplane_types tp ON tp.id = a.airplane_type_id`

func scanAirplane(row interface{ Scan(...any) error }) (*domain.Airplane, error) {
	var (
		a domain.Airplane
		t domain.AirplaneType
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.TypeID, &t.ID, &t.Name, &t.Image); err != nil {
		return nil, err
	}
	a.Type = &t
	return &a, nil
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, airplaneSelect+` ORDER BY a.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		a, err := scanAirplane(rows)
		if err != nil {
			return nil, err
		}
		airplanes = append(airplanes, *a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	a, err := scanAirplane(r.db.QueryRow(ctx, airplaneSelect+` WHERE a.id=$1`, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.TypeID).Scan(&airplane.ID)
	switch {
	case isUniqueViolation(err):
		return domain.NewValidationError("name", "airplane with this name already exists")
	case isForeignKeyViolation(err):
		return domain.NewValidationError("airplane_type", "referenced airplane type does not exist")
	}
	return err
}

var _ AirplaneRepository = (*PGAirplaneRepository)(nil)
