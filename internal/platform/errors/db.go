package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

type dbClass struct {
	code      ErrorCode
	retryable bool
}

// SQLSTATE classes, unlisted states are plain DB errors
var pgStates = map[string]dbClass{
	"23505": {code: ErrorCodeDuplicateKey},
	"23503": {code: ErrorCodeInvalidArgument},
	"23502": {code: ErrorCodeValidation},
	"23514": {code: ErrorCodeValidation},
	"22001": {code: ErrorCodeInvalidArgument},
	"22P02": {code: ErrorCodeInvalidArgument},
	"40001": {code: ErrorCodeDB, retryable: true},
	"40P01": {code: ErrorCodeDB, retryable: true},
	"55P03": {code: ErrorCodeDB, retryable: true},
	"25006": {code: ErrorCodeUnavailable},
	"57P03": {code: ErrorCodeUnavailable},
	"57014": {code: ErrorCodeTimeout},
}

// ClickHouse server exception codes
var chCodes = map[int32]dbClass{
	6:   {code: ErrorCodeInvalidArgument},
	27:  {code: ErrorCodeInvalidArgument},
	53:  {code: ErrorCodeInvalidArgument},
	159: {code: ErrorCodeTimeout},
	202: {code: ErrorCodeUnavailable, retryable: true},
	209: {code: ErrorCodeUnavailable, retryable: true},
	210: {code: ErrorCodeUnavailable, retryable: true},
	241: {code: ErrorCodeUnavailable},
	242: {code: ErrorCodeUnavailable},
	252: {code: ErrorCodeUnavailable, retryable: true},
}

// driver text that means the transaction lost a race
var retryText = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"serialization failure",
	"canceling statement due to lock timeout",
	"could not obtain lock on row",
	"terminating connection due to administrator command",
}

func pgClass(err error) (*pgconn.PgError, dbClass, bool) {
	var pe *pgconn.PgError
	if !stderrs.As(err, &pe) {
		return nil, dbClass{}, false
	}
	c, ok := pgStates[pe.Code]
	if !ok {
		c = dbClass{code: ErrorCodeDB}
	}
	return pe, c, true
}

func chClass(err error) (dbClass, bool) {
	var ex *clickhouse.Exception
	if !stderrs.As(err, &ex) {
		return dbClass{}, false
	}
	c, ok := chCodes[ex.Code]
	if !ok {
		c = dbClass{code: ErrorCodeDB}
	}
	return c, true
}

// DBErrorCode maps a postgres error to a code, !ok when err carries no PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	_, c, ok := pgClass(err)
	return c.code, ok
}

// CHErrorCode maps a ClickHouse exception to a code, !ok when err carries none
func CHErrorCode(err error) (ErrorCode, bool) {
	c, ok := chClass(err)
	return c.code, ok
}

// FromPostgres wraps err with its SQLSTATE class, deadlines map to Timeout
func FromPostgres(err error, msg string) error {
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return FromContext(err, ErrorCodeDB, msg)
}

// FromClickHouse wraps err with its exception class, deadlines map to Timeout
func FromClickHouse(err error, msg string) error {
	if code, ok := CHErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return FromContext(err, ErrorCodeDB, msg)
}

// IsSQLState reports whether err carries a PgError with the given state
func IsSQLState(err error, state string) bool {
	pe, _, ok := pgClass(err)
	return ok && pe.Code == state
}

func IsDuplicateKey(err error) bool { return IsSQLState(err, "23505") }
func IsStatementTimeout(err error) bool { return IsSQLState(err, "57014") }

// Retryable reports whether err is a transient failure of either backend
// Local deadlines and cancellation never are
func Retryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if _, c, ok := pgClass(err); ok {
		return c.retryable
	}
	if c, ok := chClass(err); ok {
		return c.retryable
	}
	s := strings.ToLower(err.Error())
	for _, t := range retryText {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
