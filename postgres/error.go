package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xy-planning-network/enumfield"
)

// SQLSTATE codes raised for values outside an enum column's constraints.
//
// Cf., https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	// codeCheckViolation is raised by the CHECK constraints AddEnumColumn creates.
	codeCheckViolation = "23514"

	// codeStringTooLong is raised writing a value wider than the column.
	codeStringTooLong = "22001"
)

// TranslateError converts errors PostgreSQL raises for values outside an enum column's constraints
// into enumfield.ErrNotValid.
// Other errors are returned as is.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	// gorm returns the driver's *pgconn.PgError, possibly wrapped
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeCheckViolation, codeStringTooLong:
		return fmt.Errorf("%w: %s", enumfield.ErrNotValid, err)
	default:
		return err
	}
}
