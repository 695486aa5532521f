package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, equipment_id, name, phone, start_date, end_date,
	rental_price, delivery, delivery_address, delivery_price, delivery_cost,
	source, comment, status, created_at, updated_at`

// Create writes the rental row, its instance set and the availability
// decrements in one transaction. A failure anywhere rolls everything back so
// a rental can never exist with a partial equipment list.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO rentals (equipment_id, name, phone, start_date, end_date,
	          rental_price, delivery, delivery_address, delivery_price, delivery_cost,
	          source, comment, status, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, query, rt.EquipmentID, rt.Name, rt.Phone,
		rt.StartDate, rt.EndDate, rt.RentalPrice, rt.Delivery, rt.DeliveryAddress,
		rt.DeliveryPrice, rt.DeliveryCost, rt.Source, rt.Comment, rt.Status, now, now)
	if err != nil {
		return err
	}
	rt.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	if err := insertInstances(ctx, tx, rt.ID, rt.Instances); err != nil {
		return err
	}

	if rt.Status != domain.RentalStatusCompleted {
		if err := holdUnits(ctx, tx, heldUnits(rt), -1); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	rt.CreatedAt = now
	rt.UpdatedAt = now
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = ?`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	rt.Instances, err = r.loadInstances(ctx, id)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Update replaces the rental row and its whole instance set atomically:
// delete all prior associations, insert the new set, same transaction.
// Availability counters are rebalanced from the old holds to the new ones.
func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental, previousStatus domain.RentalStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	old, err := scanRental(tx.QueryRowContext(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = ?`, rt.ID))
	if err != nil {
		return err
	}
	old.Instances, err = loadInstancesTx(ctx, tx, rt.ID)
	if err != nil {
		return err
	}

	query := `UPDATE rentals SET equipment_id=?, name=?, phone=?, start_date=?, end_date=?,
	          rental_price=?, delivery=?, delivery_address=?, delivery_price=?, delivery_cost=?,
	          source=?, comment=?, status=?, updated_at=? WHERE id=?`
	res, err := tx.ExecContext(ctx, query, rt.EquipmentID, rt.Name, rt.Phone,
		rt.StartDate, rt.EndDate, rt.RentalPrice, rt.Delivery, rt.DeliveryAddress,
		rt.DeliveryPrice, rt.DeliveryCost, rt.Source, rt.Comment, rt.Status, time.Now(), rt.ID)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rental_equipment_items WHERE rental_id=?`, rt.ID); err != nil {
		return err
	}
	if err := insertInstances(ctx, tx, rt.ID, rt.Instances); err != nil {
		return err
	}

	// Release what the stored rental held, then take the new holds. A rental
	// stored as completed holds nothing.
	if previousStatus != domain.RentalStatusCompleted {
		if err := holdUnits(ctx, tx, heldUnits(old), +1); err != nil {
			return err
		}
	}
	if rt.Status != domain.RentalStatusCompleted {
		if err := holdUnits(ctx, tx, heldUnits(rt), -1); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rt, err := scanRental(tx.QueryRowContext(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = ?`, id))
	if err != nil {
		return err
	}
	rt.Instances, err = loadInstancesTx(ctx, tx, id)
	if err != nil {
		return err
	}

	if rt.Status != domain.RentalStatusCompleted {
		if err := holdUnits(ctx, tx, heldUnits(rt), +1); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rental_equipment_items WHERE rental_id=?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM rentals WHERE id=?`, id)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY start_date DESC, id DESC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByDateRange(ctx context.Context, from, to domain.Date) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE start_date <= ? AND end_date >= ?
	          ORDER BY start_date, id`
	return r.queryRentals(ctx, query, to, from)
}

func (r *rentalRepository) MonthlyRevenue(ctx context.Context, year, month int) (float64, float64, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	query := `SELECT COALESCE(SUM(rental_price + delivery_price), 0),
	                 COALESCE(SUM(delivery_cost), 0)
	          FROM rentals WHERE start_date LIKE ? || '%'`
	var revenue, deliveryCosts float64
	err := r.db.QueryRowContext(ctx, query, prefix).Scan(&revenue, &deliveryCosts)
	return revenue, deliveryCosts, err
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rentals {
		rentals[i].Instances, err = r.loadInstances(ctx, rentals[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return rentals, nil
}

func (r *rentalRepository) loadInstances(ctx context.Context, rentalID int64) ([]domain.EquipmentInstance, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT equipment_id, instance_number FROM rental_equipment_items
		 WHERE rental_id = ? ORDER BY equipment_id, instance_number`, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInstances(rows)
}

func loadInstancesTx(ctx context.Context, tx *sql.Tx, rentalID int64) ([]domain.EquipmentInstance, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT equipment_id, instance_number FROM rental_equipment_items
		 WHERE rental_id = ? ORDER BY equipment_id, instance_number`, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInstances(rows)
}

func collectInstances(rows *sql.Rows) ([]domain.EquipmentInstance, error) {
	instances := []domain.EquipmentInstance{}
	for rows.Next() {
		var inst domain.EquipmentInstance
		if err := rows.Scan(&inst.EquipmentID, &inst.InstanceNumber); err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	return instances, rows.Err()
}

func insertInstances(ctx context.Context, tx *sql.Tx, rentalID int64, instances []domain.EquipmentInstance) error {
	for _, inst := range instances {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO rental_equipment_items (rental_id, equipment_id, instance_number) VALUES (?, ?, ?)`,
			rentalID, inst.EquipmentID, inst.InstanceNumber)
		if err != nil {
			return err
		}
	}
	return nil
}

// heldUnits counts how many physical units of each equipment id the rental
// occupies: one for the primary item plus one per additional instance.
func heldUnits(rt *domain.Rental) map[int64]int {
	units := map[int64]int{rt.EquipmentID: 1}
	for _, inst := range rt.Instances {
		units[inst.EquipmentID]++
	}
	return units
}

// holdUnits applies availability deltas. direction -1 takes units (guarded so
// availability never goes negative), +1 releases them (capped at quantity).
func holdUnits(ctx context.Context, tx *sql.Tx, units map[int64]int, direction int) error {
	for equipmentID, count := range units {
		delta := count * direction
		var res sql.Result
		var err error
		if direction < 0 {
			res, err = tx.ExecContext(ctx,
				`UPDATE equipment SET available_quantity = available_quantity + ?
				 WHERE id = ? AND available_quantity + ? >= 0`, delta, equipmentID, delta)
		} else {
			res, err = tx.ExecContext(ctx,
				`UPDATE equipment SET available_quantity = MIN(available_quantity + ?, quantity)
				 WHERE id = ?`, delta, equipmentID)
		}
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			if direction < 0 {
				return fmt.Errorf("equipment %d: %w", equipmentID, repository.ErrNoAvailableUnits)
			}
			return fmt.Errorf("equipment %d not found", equipmentID)
		}
	}
	return nil
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.EquipmentID, &rt.Name, &rt.Phone,
		&rt.StartDate, &rt.EndDate, &rt.RentalPrice, &rt.Delivery, &rt.DeliveryAddress,
		&rt.DeliveryPrice, &rt.DeliveryCost, &rt.Source, &rt.Comment, &rt.Status,
		&rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}
