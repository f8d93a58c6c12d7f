package repository

import (
	"context"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.FlightListItem, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error)
	GetAirplaneForFlight(ctx context.Context, flightID int64) (*domain.Airplane, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// flightListQuery computes available seats in the same aggregated read that
// lists flights, so listings never fan out into per-flight count queries.
const flightListQuery = `SELECT f.id,
	tp.name, COALESCE(tp.image, ''),
	a.rows * a.seats_in_row,
	a.rows * a.seats_in_row - COUNT(t.id),
	sa.name, sa.closest_city, da.name, da.closest_city,
	f.departure_time, f.arrival_time
FROM flights f
JOIN routes r ON r.id = f.route_id
JOIN airports sa ON sa.id = r.source_id
JOIN airports da ON da.id = r.destination_id
JOIN airplanes a ON a.id = f.airplane_id
JOIN airplane_types tp ON tp.id = a.airplane_type_id
LEFT JOIN tickets t ON t.flight_id = f.id
WHERE (COALESCE(cardinality($1::text[]), 0) = 0 OR sa.closest_city = ANY($1))
  AND (COALESCE(cardinality($2::text[]), 0) = 0 OR da.closest_city = ANY($2))
  AND ($3::date IS NULL OR f.departure_time::date = $3::date)
GROUP BY f.id, tp.id, a.id, sa.id, da.id
ORDER BY f.departure_time`

func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter) ([]domain.FlightListItem, error) {
	rows, err := r.db.Query(ctx, flightListQuery,
		filter.SourceCities, filter.DestinationCities, filter.DepartureDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.FlightListItem, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var (
			item     domain.FlightListItem
			src, dst domain.Airport
		)
		if err := rows.Scan(&item.ID, &item.AirplaneType, &item.AirplaneTypeImage,
			&item.AirplaneCapacity, &item.AvailableSeats,
			&src.Name, &src.ClosestCity, &dst.Name, &dst.ClosestCity,
			&item.DepartureTime, &item.ArrivalTime); err != nil {
			return nil, err
		}
		item.Route = src.Label() + " -> " + dst.Label()
		item.Crew = make([]string, 0)
		flights = append(flights, item)
		ids = append(ids, item.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return flights, nil
	}

	crew, err := r.crewNamesByFlight(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range flights {
		if names, ok := crew[flights[i].ID]; ok {
			flights[i].Crew = names
		}
	}
	return flights, nil
}

const flightDetailQuery = `SELECT f.id, f.departure_time, f.arrival_time,
	a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id,
	tp.id, tp.name, COALESCE(tp.image, ''),
	sa.name, sa.closest_city, da.name, da.closest_city,
	a.rows * a.seats_in_row - COUNT(t.id)
FROM flights f
JOIN routes r ON r.id = f.route_id
JOIN airports sa ON sa.id = r.source_id
JOIN airports da ON da.id = r.destination_id
JOIN airplanes a ON a.id = f.airplane_id
JOIN airplane_types tp ON tp.id = a.airplane_type_id
LEFT JOIN tickets t ON t.flight_id = f.id
WHERE f.id=$1
GROUP BY f.id, a.id, tp.id, sa.id, da.id`

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	var (
		detail   domain.FlightDetail
		plane    domain.Airplane
		ptype    domain.AirplaneType
		src, dst domain.Airport
	)
	err := r.db.QueryRow(ctx, flightDetailQuery, id).Scan(
		&detail.ID, &detail.DepartureTime, &detail.ArrivalTime,
		&plane.ID, &plane.Name, &plane.Rows, &plane.SeatsInRow, &plane.TypeID,
		&ptype.ID, &ptype.Name, &ptype.Image,
		&src.Name, &src.ClosestCity, &dst.Name, &dst.ClosestCity,
		&detail.AvailableSeats)
	if err != nil {
		return nil, mapNotFound(err)
	}
	plane.Type = &ptype
	detail.Airplane = plane
	detail.Route = src.Label() + " -> " + dst.Label()

	crew, err := r.crewNamesByFlight(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	detail.Crew = crew[id]
	if detail.Crew == nil {
		detail.Crew = make([]string, 0)
	}

	sold, err := r.soldTickets(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.SoldTickets = sold
	return &detail, nil
}

func (r *PGFlightRepository) GetAirplaneForFlight(ctx context.Context, flightID int64) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id
FROM flights f
JOIN airplanes a ON a.id = f.airplane_id
WHERE f.id=$1`, flightID)
	var a domain.Airplane
	if err := row.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.TypeID); err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime).Scan(&flight.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("route", "referenced route or airplane does not exist")
		}
		return err
	}

	if err := insertFlightCrew(ctx, tx, flight.ID, flight.CrewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `UPDATE flights SET route_id=$1, airplane_id=$2, departure_time=$3, arrival_time=$4 WHERE id=$5`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime, flight.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("route", "referenced route or airplane does not exist")
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_crew WHERE flight_id=$1`, flight.ID); err != nil {
		return err
	}
	if err := insertFlightCrew(ctx, tx, flight.ID, flight.CrewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func insertFlightCrew(ctx context.Context, tx pgx.Tx, flightID int64, crewIDs []int64) error {
	for _, crewID := range crewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)`, flightID, crewID); err != nil {
			if isForeignKeyViolation(err) {
				return domain.NewValidationError("crew", "referenced crew member does not exist")
			}
			return err
		}
	}
	return nil
}

// crewNamesByFlight fetches crew for a batch of flights in one query.
func (r *PGFlightRepository) crewNamesByFlight(ctx context.Context, flightIDs []int64) (map[int64][]string, error) {
	rows, err := r.db.Query(ctx, `SELECT fc.flight_id, c.first_name, c.last_name
FROM flight_crew fc
JOIN crew c ON c.id = fc.crew_id
WHERE fc.flight_id = ANY($1)
ORDER BY c.first_name, c.last_name`, flightIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crew := make(map[int64][]string)
	for rows.Next() {
		var (
			flightID int64
			c        domain.Crew
		)
		if err := rows.Scan(&flightID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		crew[flightID] = append(crew[flightID], c.FullName())
	}
	return crew, rows.Err()
}

func (r *PGFlightRepository) soldTickets(ctx context.Context, flightID int64) ([]domain.SeatRef, error) {
	rows, err := r.db.Query(ctx, `SELECT "row", seat FROM tickets WHERE flight_id=$1 ORDER BY "row", seat`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sold := make([]domain.SeatRef, 0)
	for rows.Next() {
		var s domain.SeatRef
		if err := rows.Scan(&s.Row, &s.Seat); err != nil {
			return nil, err
		}
		sold = append(sold, s)
	}
	return sold, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
