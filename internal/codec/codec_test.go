package codec

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// sameJSON compares two documents structurally so key order and number
// spelling (1000.5 vs 1000.50) do not matter.
func sameJSON(t *testing.T, got, want []byte) {
	t.Helper()
	var g, w any
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("unmarshal got: %v", err)
	}
	if err := json.Unmarshal(want, &w); err != nil {
		t.Fatalf("unmarshal want: %v", err)
	}
	if diff := cmp.Diff(w, g); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAccountScenario(t *testing.T) {
	body := `{"accountId":1,"accountName":"Ops","status":"ACTIVE","balance":1000.5,"lastUpdated":"2025-01-01T00:00:00"}`

	got, err := DecodeAccount([]byte(body))
	if err != nil {
		t.Fatalf("DecodeAccount() error = %v", err)
	}

	want := model.Account{
		ID:          "1",
		Name:        "Ops",
		Status:      model.StatusActive,
		Balance:     decimal.RequireFromString("1000.5"),
		LastUpdated: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
		t.Errorf("DecodeAccount() mismatch (-want +got):\n%s", diff)
	}
	if got.LastUpdated.Location() != time.UTC {
		t.Errorf("LastUpdated location = %v, want UTC", got.LastUpdated.Location())
	}
}

func TestAccountRoundTrip(t *testing.T) {
	bodies := []string{
		`{"accountId":1,"accountName":"Ops","status":"Active","balance":1000.5,"lastUpdated":"2025-01-01T00:00:00"}`,
		`{"accountId":42,"accountName":"Payroll Reserve","status":"Pending","balance":-12.34,"lastUpdated":"2024-12-30T14:30:00"}`,
		`{"accountId":7,"accountName":"Tax","status":"Inactive","balance":0,"lastUpdated":"1999-12-31T23:59:59"}`,
	}

	for _, body := range bodies {
		a, err := DecodeAccount([]byte(body))
		if err != nil {
			t.Fatalf("DecodeAccount(%s) error = %v", body, err)
		}
		out, err := EncodeAccount(a)
		if err != nil {
			t.Fatalf("EncodeAccount() error = %v", err)
		}
		sameJSON(t, out, []byte(body))
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	bodies := []string{
		`{"transactionId":10,"accountId":1,"description":"Client Payment","amount":45000,"type":"Credit","transactionDate":"2024-12-30T10:30:00"}`,
		`{"transactionId":11,"accountId":2,"description":"Office Lease","amount":15000.75,"type":"Debit","transactionDate":"2024-12-29T14:00:00"}`,
	}

	for _, body := range bodies {
		tx, err := DecodeTransaction([]byte(body))
		if err != nil {
			t.Fatalf("DecodeTransaction(%s) error = %v", body, err)
		}
		out, err := EncodeTransaction(tx)
		if err != nil {
			t.Fatalf("EncodeTransaction() error = %v", err)
		}
		sameJSON(t, out, []byte(body))
	}
}

func TestDraftsOmitIdentifier(t *testing.T) {
	a := model.Account{
		Name:        "New",
		Status:      model.StatusPending,
		Balance:     decimal.NewFromInt(10),
		LastUpdated: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	body, err := EncodeAccountDraft(a)
	if err != nil {
		t.Fatal(err)
	}
	sameJSON(t, body, []byte(`{"accountName":"New","status":"Pending","balance":10,"lastUpdated":"2025-03-01T08:00:00"}`))

	tx := model.Transaction{
		AccountID:   "5",
		Description: "x",
		Amount:      decimal.NewFromInt(10),
		Type:        model.TypeDebit,
		Date:        time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	body, err = EncodeTransactionDraft(tx)
	if err != nil {
		t.Fatal(err)
	}
	sameJSON(t, body, []byte(`{"accountId":5,"description":"x","amount":10,"type":"Debit","transactionDate":"2025-03-01T08:00:00"}`))
}

func TestIdentifierBijection(t *testing.T) {
	for _, s := range []string{"0", "1", "7", "42", "1000", "9223372036854775807"} {
		if got := DecodeID(EncodeID(s)); got != s {
			t.Errorf("DecodeID(EncodeID(%q)) = %q", s, got)
		}
	}
}

func TestNonNumericIdentifierEncodesAsZero(t *testing.T) {
	for _, s := range []string{"", "abc", "ACC-001", "1.5", "12a"} {
		if got := EncodeID(s); got != 0 {
			t.Errorf("EncodeID(%q) = %d, want 0", s, got)
		}
	}

	body, err := EncodeAccount(model.Account{ID: "abc", Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `"accountId":0`) {
		t.Errorf("EncodeAccount() = %s, want accountId 0", body)
	}
}

func TestLenientEnums(t *testing.T) {
	statusCases := []struct {
		raw  string
		want model.AccountStatus
	}{
		{"Active", model.StatusActive},
		{"Inactive", model.StatusInactive},
		{"Pending", model.StatusPending},
		{"ACTIVE", model.StatusActive},
		{"inactive", model.StatusInactive},
		{"pEnDiNg", model.StatusPending},
		{"weird", model.StatusActive},
		{"", model.StatusActive},
	}
	for _, tc := range statusCases {
		if got := DecodeStatus(tc.raw); got != tc.want {
			t.Errorf("DecodeStatus(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}

	typeCases := []struct {
		raw  string
		want model.TransactionType
	}{
		{"Credit", model.TypeCredit},
		{"Debit", model.TypeDebit},
		{"DEBIT", model.TypeDebit},
		{"debit", model.TypeDebit},
		{"weird", model.TypeCredit},
	}
	for _, tc := range typeCases {
		if got := DecodeType(tc.raw); got != tc.want {
			t.Errorf("DecodeType(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestUnknownEnumDoesNotFailDecoding(t *testing.T) {
	body := `{"transactionId":1,"accountId":1,"description":"d","amount":1,"type":"weird","transactionDate":"2025-01-01T00:00:00"}`
	tx, err := DecodeTransaction([]byte(body))
	if err != nil {
		t.Fatalf("DecodeTransaction() error = %v", err)
	}
	if tx.Type != model.TypeCredit {
		t.Errorf("Type = %v, want credit", tx.Type)
	}
}

func TestDateFormat(t *testing.T) {
	in := time.Date(2025, 12, 31, 17, 30, 0, 999_000_000, time.FixedZone("CET", 3600))
	if got, want := FormatDate(in), "2025-12-31T16:30:00"; got != want {
		t.Errorf("FormatDate() = %q, want %q", got, want)
	}

	got, err := ParseDate("2025-12-31T17:30:00")
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2025, 12, 31, 17, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}

	for _, bad := range []string{"2025-12-31T17:30:00Z", "2025-12-31", "2025-12-31T17:30:00.123", "31/12/2025"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", bad)
		}
	}
}

func TestDecodeMissingField(t *testing.T) {
	bodies := map[string]string{
		"accountId":   `{"accountName":"Ops","status":"Active","balance":1,"lastUpdated":"2025-01-01T00:00:00"}`,
		"accountName": `{"accountId":1,"status":"Active","balance":1,"lastUpdated":"2025-01-01T00:00:00"}`,
		"balance":     `{"accountId":1,"accountName":"Ops","status":"Active","lastUpdated":"2025-01-01T00:00:00"}`,
		"lastUpdated": `{"accountId":1,"accountName":"Ops","status":"Active","balance":1}`,
	}
	for field, body := range bodies {
		_, err := DecodeAccount([]byte(body))
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("missing %s: error = %v, want ErrMissingField", field, err)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		`not json`,
		`{"accountId":"one","accountName":"Ops","status":"Active","balance":1,"lastUpdated":"2025-01-01T00:00:00"}`,
		`{"accountId":1,"accountName":"Ops","status":"Active","balance":1,"lastUpdated":"2025-01-01"}`,
	}
	for _, body := range cases {
		if _, err := DecodeAccount([]byte(body)); err == nil {
			t.Errorf("DecodeAccount(%s) error = nil, want error", body)
		}
	}

	if _, err := DecodeAccounts([]byte(`{"accountId":1}`)); err == nil {
		t.Error("DecodeAccounts(object) error = nil, want error")
	}
}

func TestDecodeListsKeepOrder(t *testing.T) {
	body := `[
		{"transactionId":3,"accountId":5,"description":"c","amount":3,"type":"Credit","transactionDate":"2025-01-03T00:00:00"},
		{"transactionId":1,"accountId":5,"description":"a","amount":1,"type":"Debit","transactionDate":"2025-01-01T00:00:00"}
	]`
	txs, err := DecodeTransactions([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 2 || txs[0].ID != "3" || txs[1].ID != "1" {
		t.Fatalf("DecodeTransactions() = %+v", txs)
	}
	if txs[1].AccountID != "5" {
		t.Errorf("AccountID = %q, want 5", txs[1].AccountID)
	}
}
