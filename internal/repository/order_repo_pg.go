package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	// Create persists the order and all its tickets in one transaction.
	// Any ticket failure rolls the whole order back.
	Create(ctx context.Context, order *domain.Order) error
	ListForUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`,
		order.UserID).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Tickets {
		t := &order.Tickets[i]
		t.OrderID = order.ID
		err := tx.QueryRow(ctx, `INSERT INTO tickets ("row", seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID)
		switch {
		case isUniqueViolation(err):
			return domain.SeatConflictError(t.FlightID, t.Row, t.Seat)
		case isForeignKeyViolation(err):
			return domain.NewValidationError("flight", "referenced flight does not exist")
		case err != nil:
			return err
		}
	}
	return tx.Commit(ctx)
}

const orderTicketsQuery = `SELECT t.id, t."row", t.seat, t.flight_id, t.order_id,
	sa.name, sa.closest_city, da.name, da.closest_city,
	f.departure_time, f.arrival_time
FROM tickets t
JOIN flights f ON f.id = t.flight_id
JOIN routes r ON r.id = f.route_id
JOIN airports sa ON sa.id = r.source_id
JOIN airports da ON da.id = r.destination_id
WHERE t.order_id = ANY($1)
ORDER BY t.flight_id, t."row", t.seat`

func (r *PGOrderRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, created_at FROM orders WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Tickets = make([]domain.Ticket, 0)
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	tickets, err := r.ticketsByOrder(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if ts, ok := tickets[orders[i].ID]; ok {
			orders[i].Tickets = ts
		}
	}
	return orders, nil
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT o.id, o.user_id, u.email, o.created_at FROM orders o JOIN users u ON u.id = o.user_id WHERE o.id=$1`, id)
	var o domain.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.UserEmail, &o.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return r.withTickets(ctx, &o)
}

func (r *PGOrderRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT id, user_id, created_at FROM orders WHERE id=$1 AND user_id=$2`, id, userID)
	var o domain.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return r.withTickets(ctx, &o)
}

func (r *PGOrderRepository) withTickets(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	tickets, err := r.ticketsByOrder(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Tickets = tickets[o.ID]
	if o.Tickets == nil {
		o.Tickets = make([]domain.Ticket, 0)
	}
	return o, nil
}

// ticketsByOrder fetches tickets for a batch of orders in one query.
func (r *PGOrderRepository) ticketsByOrder(ctx context.Context, orderIDs []int64) (map[int64][]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, orderTicketsQuery, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make(map[int64][]domain.Ticket)
	for rows.Next() {
		var (
			t        domain.Ticket
			src, dst domain.Airport
			dep, arr time.Time
		)
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID,
			&src.Name, &src.ClosestCity, &dst.Name, &dst.ClosestCity,
			&dep, &arr); err != nil {
			return nil, err
		}
		t.Flight = fmt.Sprintf("%s -> %s (%s - %s)", src.Label(), dst.Label(),
			dep.Format("2006-01-02 15:04"), arr.Format("2006-01-02 15:04"))
		tickets[t.OrderID] = append(tickets[t.OrderID], t)
	}
	return tickets, rows.Err()
}

var _ OrderRepository = (*PGOrderRepository)(nil)
