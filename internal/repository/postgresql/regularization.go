package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/neeraj5696/magnum-attendance-go/internal/domain/regularization"
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/database"
)

type regularizationRepository struct {
	db *database.DB
}

func NewRegularizationRepository(db *database.DB) regularization.Repository {
	return &regularizationRepository{db: db}
}

// Create implements regularization.Repository.
func (r *regularizationRepository) Create(ctx context.Context, reg regularization.Regularization) (regularization.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}

	query := `
		INSERT INTO regularizations (
			id, employee_id, date, in_time, out_time, reason, status, requested_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		reg.ID,
		reg.EmployeeID,
		reg.Date,
		reg.InTime,
		reg.OutTime,
		reg.Reason,
		reg.Status,
		reg.RequestedBy,
	).Scan(&reg.CreatedAt, &reg.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return regularization.Regularization{}, regularization.ErrAlreadyExists
		}
		return regularization.Regularization{}, fmt.Errorf("failed to create regularization: %w", err)
	}

	return reg, nil
}

// GetByID implements regularization.Repository.
func (r *regularizationRepository) GetByID(ctx context.Context, id string) (regularization.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.employee_id, r.date, r.in_time, r.out_time, r.reason, r.status,
			   r.requested_by, r.reviewed_by, r.reviewed_at, r.created_at, r.updated_at,
			   e.full_name AS employee_name
		FROM regularizations r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`

	var reg regularization.Regularization
	err := q.QueryRow(ctx, query, id).Scan(
		&reg.ID, &reg.EmployeeID, &reg.Date, &reg.InTime, &reg.OutTime, &reg.Reason, &reg.Status,
		&reg.RequestedBy, &reg.ReviewedBy, &reg.ReviewedAt, &reg.CreatedAt, &reg.UpdatedAt,
		&reg.EmployeeName,
	)
	if err != nil {
		if isNoRows(err) {
			return regularization.Regularization{}, regularization.ErrNotFound
		}
		return regularization.Regularization{}, fmt.Errorf("failed to get regularization by id: %w", err)
	}

	return reg, nil
}

// Update implements regularization.Repository.
func (r *regularizationRepository) Update(ctx context.Context, reg regularization.Regularization) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE regularizations
		SET in_time = $1, out_time = $2, reason = $3, status = $4,
			reviewed_by = $5, reviewed_at = $6, updated_at = $7
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		reg.InTime,
		reg.OutTime,
		reg.Reason,
		reg.Status,
		reg.ReviewedBy,
		reg.ReviewedAt,
		time.Now(),
		reg.ID,
	).Scan(&updatedID)

	if err != nil {
		if isNoRows(err) {
			return regularization.ErrNotFound
		}
		return fmt.Errorf("failed to update regularization: %w", err)
	}

	return nil
}

// List implements regularization.Repository.
func (r *regularizationRepository) List(ctx context.Context, filter regularization.ListFilter) ([]regularization.Regularization, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND r.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND r.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND r.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM regularizations r WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count regularizations: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT r.id, r.employee_id, r.date, r.in_time, r.out_time, r.reason, r.status,
			   r.requested_by, r.reviewed_by, r.reviewed_at, r.created_at, r.updated_at,
			   e.full_name AS employee_name
		FROM regularizations r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE %s
		ORDER BY r.date DESC, r.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query regularizations: %w", err)
	}
	defer rows.Close()

	var regs []regularization.Regularization
	for rows.Next() {
		var reg regularization.Regularization
		if err := rows.Scan(
			&reg.ID, &reg.EmployeeID, &reg.Date, &reg.InTime, &reg.OutTime, &reg.Reason, &reg.Status,
			&reg.RequestedBy, &reg.ReviewedBy, &reg.ReviewedAt, &reg.CreatedAt, &reg.UpdatedAt,
			&reg.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan regularization: %w", err)
		}
		regs = append(regs, reg)
	}

	return regs, total, rows.Err()
}

// ListDayKeysInRange implements regularization.Repository.
func (r *regularizationRepository) ListDayKeysInRange(ctx context.Context, startDate, endDate string) ([]regularization.DayKey, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, date
		FROM regularizations
		WHERE date >= $1 AND date <= $2
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query regularized day keys: %w", err)
	}
	defer rows.Close()

	var keys []regularization.DayKey
	for rows.Next() {
		var key regularization.DayKey
		if err := rows.Scan(&key.EmployeeID, &key.Date); err != nil {
			return nil, fmt.Errorf("failed to scan day key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}
