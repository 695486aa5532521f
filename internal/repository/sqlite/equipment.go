package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, name, category, description, price_per_day,
	price_1d, price_2d, price_3d, price_7d, price_14d, price_30d,
	quantity, available_quantity, images, specifications, created_at, updated_at`

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	images, specs, err := encodeEquipmentJSON(eq)
	if err != nil {
		return err
	}
	now := time.Now()
	query := `INSERT INTO equipment (name, category, description, price_per_day,
	          price_1d, price_2d, price_3d, price_7d, price_14d, price_30d,
	          quantity, available_quantity, images, specifications, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, eq.Name, eq.Category, eq.Description, eq.PricePerDay,
		eq.Tiers.Day1, eq.Tiers.Day2, eq.Tiers.Day3, eq.Tiers.Day7, eq.Tiers.Day14, eq.Tiers.Day30,
		eq.Quantity, eq.AvailableQuantity, images, specs, now, now)
	if err != nil {
		return err
	}
	eq.ID, err = res.LastInsertId()
	eq.CreatedAt = now
	eq.UpdatedAt = now
	return err
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = ?`
	return scanEquipment(r.db.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	images, specs, err := encodeEquipmentJSON(eq)
	if err != nil {
		return err
	}
	query := `UPDATE equipment SET name=?, category=?, description=?, price_per_day=?,
	          price_1d=?, price_2d=?, price_3d=?, price_7d=?, price_14d=?, price_30d=?,
	          quantity=?, available_quantity=?, images=?, specifications=?, updated_at=?
	          WHERE id=?`
	res, err := r.db.ExecContext(ctx, query, eq.Name, eq.Category, eq.Description, eq.PricePerDay,
		eq.Tiers.Day1, eq.Tiers.Day2, eq.Tiers.Day3, eq.Tiers.Day7, eq.Tiers.Day14, eq.Tiers.Day30,
		eq.Quantity, eq.AvailableQuantity, images, specs, time.Now(), eq.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *equipmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *equipmentRepository) List(ctx context.Context, category string) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *eq)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	var images, specs string
	err := row.Scan(&eq.ID, &eq.Name, &eq.Category, &eq.Description, &eq.PricePerDay,
		&eq.Tiers.Day1, &eq.Tiers.Day2, &eq.Tiers.Day3, &eq.Tiers.Day7, &eq.Tiers.Day14, &eq.Tiers.Day30,
		&eq.Quantity, &eq.AvailableQuantity, &images, &specs, &eq.CreatedAt, &eq.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(images), &eq.Images); err != nil {
		return nil, fmt.Errorf("corrupt images column for equipment %d: %w", eq.ID, err)
	}
	if err := json.Unmarshal([]byte(specs), &eq.Specifications); err != nil {
		return nil, fmt.Errorf("corrupt specifications column for equipment %d: %w", eq.ID, err)
	}
	return eq, nil
}

func encodeEquipmentJSON(eq *domain.Equipment) (images string, specs string, err error) {
	if eq.Images == nil {
		eq.Images = []string{}
	}
	if eq.Specifications == nil {
		eq.Specifications = map[string]string{}
	}
	imagesBytes, err := json.Marshal(eq.Images)
	if err != nil {
		return "", "", err
	}
	specsBytes, err := json.Marshal(eq.Specifications)
	if err != nil {
		return "", "", err
	}
	return string(imagesBytes), string(specsBytes), nil
}

// requireRow converts a zero-row update/delete into sql.ErrNoRows so services
// can report not-found distinctly from validation failures.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
