package repo

import (
	"errors"
	"math"

	"github.com/jackc/pgx/v5/pgconn"
)

// MaxQuantity is the largest stock or sale quantity, bounded by the INTEGER columns.
const MaxQuantity = math.MaxInt32

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrQuantityOverflow  = errors.New("quantity would exceed the maximum stock level")
)

// Postgres SQLSTATE codes the repositories translate.
const (
	pgCheckViolation    = "23514"
	pgNumericOutOfRange = "22003"
)

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isCheckViolation(err error) bool {
	return hasPgCode(err, pgCheckViolation)
}

func isNumericOutOfRange(err error) bool {
	return hasPgCode(err, pgNumericOutOfRange)
}
