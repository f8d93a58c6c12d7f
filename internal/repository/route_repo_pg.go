package repository

import (
	"context"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, route *domain.Route) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeSelect = `SELECT r.id, r.source_id, r.destination_id, r.distance,
	s.id, s.name, s.closest_city,
	d.id, d.name, d.closest_city
FROM routes r
JOIN airports s ON s.id = r.source_id
JOIN airports d ON d.id = r.destination_id`

func scanRoute(row interface{ Scan(...any) error }) (*domain.Route, error) {
	var (
		rt  domain.Route
		src domain.Airport
		dst domain.Airport
	)
	if err := row.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance,
		&src.ID, &src.Name, &src.ClosestCity,
		&dst.ID, &dst.Name, &dst.ClosestCity); err != nil {
		return nil, err
	}
	rt.Source = &src
	rt.Destination = &dst
	return &rt, nil
}

func (r *PGRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, routeSelect+` ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, *rt)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	rt, err := scanRoute(r.db.QueryRow(ctx, routeSelect+` WHERE r.id=$1`, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return rt, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	err := r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
	switch {
	case isUniqueViolation(err):
		return domain.NewValidationError("destination", "route for this source and destination already exists")
	case isForeignKeyViolation(err):
		return domain.NewValidationError("source", "referenced airport does not exist")
	}
	return err
}

var _ RouteRepository = (*PGRouteRepository)(nil)
