package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(state string) error { return &pgconn.PgError{Code: state} }

func chErr(code int32) error {
	return fmt.Errorf("send batch: %w", &clickhouse.Exception{Code: code, Name: "X", Message: "m"})
}

func TestFromPostgres(t *testing.T) {
	cases := []struct {
		in   error
		want ErrorCode
	}{
		{pgErr("23505"), ErrorCodeDuplicateKey},
		{pgErr("23503"), ErrorCodeInvalidArgument},
		{pgErr("23514"), ErrorCodeValidation},
		{pgErr("22P02"), ErrorCodeInvalidArgument},
		{pgErr("40001"), ErrorCodeDB},
		{pgErr("57P03"), ErrorCodeUnavailable},
		{pgErr("57014"), ErrorCodeTimeout},
		{pgErr("XX000"), ErrorCodeDB},
		{fmt.Errorf("acquire: %w", context.DeadlineExceeded), ErrorCodeTimeout},
		{stderrs.New("plain"), ErrorCodeDB},
	}
	for _, c := range cases {
		if got := CodeOf(FromPostgres(c.in, "insert records")); got != c.want {
			t.Fatalf("%v -> %v want %v", c.in, got, c.want)
		}
	}
	if FromPostgres(nil, "x") != nil {
		t.Fatal("nil should stay nil")
	}
	if _, ok := DBErrorCode(stderrs.New("x")); ok {
		t.Fatal("DBErrorCode ok for non pg error")
	}
}

func TestFromClickHouse(t *testing.T) {
	cases := []struct {
		in   error
		want ErrorCode
	}{
		{chErr(53), ErrorCodeInvalidArgument},
		{chErr(27), ErrorCodeInvalidArgument},
		{chErr(159), ErrorCodeTimeout},
		{chErr(241), ErrorCodeUnavailable},
		{chErr(60), ErrorCodeDB},
		{context.DeadlineExceeded, ErrorCodeTimeout},
	}
	for _, c := range cases {
		if got := CodeOf(FromClickHouse(c.in, "fetch records")); got != c.want {
			t.Fatalf("%v -> %v want %v", c.in, got, c.want)
		}
	}
	if FromClickHouse(nil, "x") != nil {
		t.Fatal("nil should stay nil")
	}
	if _, ok := CHErrorCode(stderrs.New("x")); ok {
		t.Fatal("CHErrorCode ok for plain error")
	}
}

func TestSQLStatePredicates(t *testing.T) {
	wrapped := Wrap(pgErr("23505"), ErrorCodeDB, "insert")
	if !IsDuplicateKey(wrapped) || IsStatementTimeout(wrapped) {
		t.Fatal("duplicate key predicate")
	}
	if !IsStatementTimeout(fmt.Errorf("select: %w", pgErr("57014"))) {
		t.Fatal("statement timeout predicate")
	}
	if IsDuplicateKey(stderrs.New("23505")) {
		t.Fatal("text is not a PgError")
	}
}

func TestRetryable(t *testing.T) {
	yes := []error{
		pgErr("40001"), pgErr("40P01"), pgErr("55P03"),
		chErr(202), chErr(209), chErr(252),
		stderrs.New("ERROR: deadlock detected"),
		stderrs.New("commit unexpectedly resulted in rollback"),
	}
	no := []error{
		nil, pgErr("23505"), pgErr("57014"), chErr(53), chErr(241),
		context.DeadlineExceeded, fmt.Errorf("tx: %w", context.Canceled),
		stderrs.New("nope"),
	}
	for _, err := range yes {
		if !Retryable(err) {
			t.Fatalf("%v should be retryable", err)
		}
	}
	for _, err := range no {
		if Retryable(err) {
			t.Fatalf("%v should not be retryable", err)
		}
	}
}
