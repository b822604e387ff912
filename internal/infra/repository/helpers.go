package repository

import (
	"errors"

	"hotel-admin/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// classifyWriteErr maps driver constraint violations onto repository error
// kinds so callers never match on PostgreSQL codes.
func classifyWriteErr(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}
