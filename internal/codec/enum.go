package codec

import (
	"strings"

	"github.com/hance08/ledger/internal/model"
)

// enumEntry pairs a domain value with its canonical wire spelling.
type enumEntry[T ~int] struct {
	value T
	wire  string
}

// enumTable is the full mapping for one enumeration plus its fallback.
type enumTable[T interface {
	~int
	String() string
}] struct {
	entries  []enumEntry[T]
	fallback T
}

var statusTable = enumTable[model.AccountStatus]{
	entries: []enumEntry[model.AccountStatus]{
		{model.StatusActive, "Active"},
		{model.StatusInactive, "Inactive"},
		{model.StatusPending, "Pending"},
	},
	fallback: model.StatusActive,
}

var typeTable = enumTable[model.TransactionType]{
	entries: []enumEntry[model.TransactionType]{
		{model.TypeCredit, "Credit"},
		{model.TypeDebit, "Debit"},
	},
	fallback: model.TypeCredit,
}

// decode never fails: exact wire match first, then the lowercase domain
// literal, then the fallback.
func (t enumTable[T]) decode(raw string) T {
	for _, e := range t.entries {
		if e.wire == raw {
			return e.value
		}
	}
	lower := strings.ToLower(raw)
	for _, e := range t.entries {
		if e.value.String() == lower {
			return e.value
		}
	}
	return t.fallback
}

func (t enumTable[T]) encode(v T) string {
	for _, e := range t.entries {
		if e.value == v {
			return e.wire
		}
	}
	return t.encode(t.fallback)
}

// DecodeStatus leniently decodes a wire status. Unknown values become
// model.StatusActive.
func DecodeStatus(raw string) model.AccountStatus { return statusTable.decode(raw) }

func EncodeStatus(s model.AccountStatus) string { return statusTable.encode(s) }

// DecodeType leniently decodes a wire transaction type. Unknown values become
// model.TypeCredit.
func DecodeType(raw string) model.TransactionType { return typeTable.decode(raw) }

func EncodeType(t model.TransactionType) string { return typeTable.encode(t) }
