package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"coworking-booking/internal/domain/calendar"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDateValue    = errors.New("invalid date value in pgtype.Date")
	ErrInvalidTimeValue    = errors.New("invalid time value in pgtype.Time")
	ErrInvalidNumericValue = errors.New("invalid numeric value in pgtype.Numeric")
)

const microsecondsPerMinute = int64(time.Minute / time.Microsecond)

// PostgreSQL error codes the repositories care about
const (
	PgErrUniqueViolation     = "23505"
	PgErrForeignKeyViolation = "23503"
	PgErrExclusionViolation  = "23P01"
	PgErrCheckViolation      = "23514"
)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// OptionalText maps the empty string to NULL.
func OptionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func DateToPgtype(d calendar.CivilDate) pgtype.Date {
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func DatePtrToPgtype(d *calendar.CivilDate) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*d)
}

// DateFromPgtype reads the components pgx decoded; no zone conversion happens.
func DateFromPgtype(pd pgtype.Date) (calendar.CivilDate, error) {
	if !pd.Valid || pd.InfinityModifier != pgtype.Finite {
		return calendar.CivilDate{}, ErrInvalidDateValue
	}
	return calendar.CivilDateOf(pd.Time), nil
}

func TimeOfDayToPgtype(t calendar.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Minutes()) * microsecondsPerMinute, Valid: true}
}

func TimeOfDayFromPgtype(pt pgtype.Time) (calendar.TimeOfDay, error) {
	if !pt.Valid || pt.Microseconds%microsecondsPerMinute != 0 {
		return calendar.TimeOfDay{}, ErrInvalidTimeValue
	}
	minutes := pt.Microseconds / microsecondsPerMinute
	tod, err := calendar.ParseTimeOfDay(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	if err != nil {
		return calendar.TimeOfDay{}, errors.Join(ErrInvalidTimeValue, err)
	}
	return tod, nil
}

func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func DecimalFromNumeric(pn pgtype.Numeric) (decimal.Decimal, error) {
	if !pn.Valid || pn.NaN || pn.InfinityModifier != pgtype.Finite || pn.Int == nil {
		return decimal.Decimal{}, ErrInvalidNumericValue
	}
	return decimal.NewFromBigInt(pn.Int, pn.Exp), nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// PgErrorCode returns the SQLSTATE of err, or "" when err is not a server error.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
