package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronova/servicedesk/internal/types"
)

type Database struct {
	pool *pgxpool.Pool
}

func NewDatabase(connString string) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool: p,
	}, nil
}

func (d *Database) Close() {
	d.pool.Close()
}

func (d *Database) CreateOrder(ctx context.Context, customerName string, serviceType string, address string) (types.Order, error) {

	query := `
		INSERT INTO service_order (customer_name, service_type, address)
		VALUES ($1, $2, $3)
		RETURNING id, customer_name, service_type, address, status, payment_status
		`
	rows, err := d.pool.Query(ctx, query, customerName, serviceType, address)
	if err != nil {
		return types.Order{}, fmt.Errorf("failed inserting order %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		return types.Order{}, fmt.Errorf("failed unpacking row %w", err)
	}
	return order, nil
}

func (d *Database) GetOrder(ctx context.Context, orderID int) (types.Order, error) {

	query := `
		SELECT id, customer_name, service_type, address, status, payment_status
		FROM service_order
		WHERE id = $1
		`
	rows, err := d.pool.Query(ctx, query, orderID)
	if err != nil {
		return types.Order{}, fmt.Errorf("failed collecting rows %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Order{}, fmt.Errorf("%w", &OrderNotFoundError{OrderID: orderID})
		}
		return types.Order{}, fmt.Errorf("failed unpacking row %w", err)
	}
	return order, nil
}

func (d *Database) UpdateOrderStatus(ctx context.Context, orderID int, newStatus types.Status) error {

	query := `
		UPDATE service_order
		SET status = $1
		WHERE id = $2
		RETURNING id`

	row := d.pool.QueryRow(ctx, query, newStatus, orderID)

	var id int
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w", &OrderNotFoundError{OrderID: orderID})
		}
		return fmt.Errorf("unexpected DB error %w", err)
	}
	return nil
}

// MarkOrderPaid records the charge in the ledger and flips payment_status in
// one transaction. One charge per order: a second attempt hits the unique
// constraint on payment_charge.order_id.
func (d *Database) MarkOrderPaid(ctx context.Context, orderID int, amountCents int64, chargeID string) error {

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO payment_charge (order_id, amount_cents, charge_id)
		VALUES ($1, $2, $3)
	`
	_, err = tx.Exec(ctx, query, orderID, amountCents, chargeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			if pgErr.Code == pgerrcode.UniqueViolation {
				return fmt.Errorf("%w", &OrderAlreadyPaidError{OrderID: orderID})
			}
			return fmt.Errorf("%w", &OrderNotFoundError{OrderID: orderID})
		}
		return fmt.Errorf("unexpected DB error %w", err)
	}

	query = `
		UPDATE service_order
		SET payment_status = $1
		WHERE id = $2
		RETURNING id`

	row := tx.QueryRow(ctx, query, types.PaymentPaid, orderID)

	var id int
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w", &OrderNotFoundError{OrderID: orderID})
		}
		return fmt.Errorf("unexpected DB error %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
