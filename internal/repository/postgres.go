package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeExclusionViolation  = "23P01"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

// integrityError maps constraint violations shared by every table.
// It returns nil when err is not one of them.
func integrityError(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case codeCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrConstraint, pgErr.Constraint)
	case codeExclusionViolation:
		return domain.ErrRoomAlreadyBooked
	}
	return nil
}

func checkAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// splitIDs removes duplicates and separates ids that are not valid uuids,
// which can never resolve and must not reach a uuid[] parameter.
func splitIDs(ids []string) (valid, malformed []string) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if _, err := uuid.Parse(id); err != nil {
			malformed = append(malformed, id)
			continue
		}
		valid = append(valid, id)
	}
	return valid, malformed
}

// resolveIDs verifies inside tx that every id exists in table.
// The unresolved ids are reported wrapped in invalid.
func resolveIDs(ctx context.Context, tx *sql.Tx, table string, ids []string, invalid error) ([]string, error) {
	valid, missing := splitIDs(ids)
	if len(valid) > 0 {
		rows, err := tx.QueryContext(ctx, `SELECT id FROM `+table+` WHERE id = ANY($1::uuid[])`, pq.Array(valid))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", table, err)
		}
		defer rows.Close()

		found := make(map[string]struct{}, len(valid))
		for rows.Next() {
			var id string
			if err = rows.Scan(&id); err != nil {
				return nil, fmt.Errorf("scan %s id: %w", table, err)
			}
			found[id] = struct{}{}
		}
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", table, err)
		}

		for _, id := range valid {
			if _, ok := found[id]; !ok {
				missing = append(missing, id)
			}
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v do not exist", invalid, missing)
	}
	return valid, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// nullCategory receives a LEFT JOINed category.
type nullCategory struct {
	ID        sql.NullString
	Name      sql.NullString
	Kind      sql.NullString
	CreatedAt sql.NullTime
	UpdatedAt sql.NullTime
}

func (n *nullCategory) dest() []any {
	return []any{&n.ID, &n.Name, &n.Kind, &n.CreatedAt, &n.UpdatedAt}
}

func (n *nullCategory) value() *domain.Category {
	if !n.ID.Valid {
		return nil
	}
	return &domain.Category{
		ID:        n.ID.String,
		Name:      n.Name.String,
		Kind:      domain.CategoryKind(n.Kind.String),
		CreatedAt: n.CreatedAt.Time,
		UpdatedAt: n.UpdatedAt.Time,
	}
}

func categoryID(c *domain.Category) *string {
	if c == nil {
		return nil
	}
	return &c.ID
}
