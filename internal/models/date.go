package models

import (
	"database/sql/driver"
	"errors"
	"strconv"
	"time"
)

// Date is a calendar date without a time component, serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, errors.New("date must be formatted YYYY-MM-DD")
	}
	return Date{t}, nil
}

// Period returns the (month, year) budget period the date falls into.
func (d Date) Period() Period {
	return Period{Month: int(d.Month()), Year: d.Year()}
}

func (d Date) String() string { return d.Format("2006-01-02") }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("date must be a string")
	}
	v, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) Value() (driver.Value, error) { return d.Time, nil }

func (d *Date) Scan(src any) error {
	t, ok := src.(time.Time)
	if !ok {
		return errors.New("date: unsupported scan source")
	}
	d.Time = t.UTC().Truncate(24 * time.Hour)
	return nil
}

// Period identifies one budget's scope: a (month, year) pair.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (p Period) Valid() bool { return p.Month >= 1 && p.Month <= 12 }

// Key formats the period as "YYYY-MM", the bucket label used by reports.
func (p Period) Key() string {
	m := strconv.Itoa(p.Month)
	if p.Month < 10 {
		m = "0" + m
	}
	return strconv.Itoa(p.Year) + "-" + m
}
