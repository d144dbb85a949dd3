package persistent

import (
	"errors"
	"fmt"

	"backoffice/services/admin/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

// translateError maps persistence-layer failures onto the domain taxonomy.
// Codes it does not recognize pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", entity.ErrNotFound, err)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", entity.ErrUniqueViolation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", entity.ErrUniqueViolation, pgErr.ConstraintName)
	}

	return err
}
