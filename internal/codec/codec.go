// Package codec translates between the domain model and the ledger backend's
// JSON schema.
//
// The backend names things differently (accountName, transactionDate), uses
// integer identifiers where the domain uses strings, capitalizes enum values
// and writes dates without a zone. Every one of those differences is absorbed
// here so that nothing above this package sees the wire format.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the backend's date literal: second precision, no zone suffix.
const DateLayout = "2006-01-02T15:04:05"

var ErrMissingField = errors.New("missing required field")

// EncodeID converts a domain identifier to its wire integer.
// A non-numeric identifier encodes as 0 instead of failing; callers that need
// a real identifier must validate before encoding.
func EncodeID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// DecodeID converts a wire integer identifier to its domain string.
func DecodeID(n int64) string {
	return strconv.FormatInt(n, 10)
}

// FormatDate renders t in UTC using DateLayout. Sub-second precision is dropped.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate reads a DateLayout literal, interpreting it as UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q want format %q: %w", s, DateLayout, err)
	}
	// time.Parse tolerates fractional seconds the layout does not mention.
	if t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("invalid date %q want format %q", s, DateLayout)
	}
	return t, nil
}

// wireDate is a time.Time that marshals as a DateLayout string.
type wireDate time.Time

func (d wireDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatDate(time.Time(d)))
}

func (d *wireDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = wireDate(t)
	return nil
}

// wireAmount carries a JSON number without going through float64.
func wireAmount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func parseAmount(field string, n json.Number) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("field %q: %w", field, err)
	}
	return d, nil
}

func missing(field string) error {
	return fmt.Errorf("%w %q", ErrMissingField, field)
}

func int64Ptr(n int64) *int64 { return &n }
