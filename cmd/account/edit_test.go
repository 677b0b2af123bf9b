package account

import (
	"testing"

	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

func parseEditFlags(t *testing.T, args ...string) (*EditCommandRunner, *pflag.FlagSet) {
	t.Helper()
	r := &EditCommandRunner{}
	fs := pflag.NewFlagSet("edit", pflag.ContinueOnError)
	r.bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return r, fs
}

func TestEditUpdateOnlyChangedFlags(t *testing.T) {
	r, fs := parseEditFlags(t, "--status", "PENDING", "-b", "12.50")

	upd, ok, err := r.Update(fs)
	if err != nil || !ok {
		t.Fatalf("Update ok=%v err=%v", ok, err)
	}
	if upd.Name != nil {
		t.Errorf("name=%q want unset", *upd.Name)
	}
	if upd.Status == nil || *upd.Status != model.StatusPending {
		t.Errorf("status=%v want pending", upd.Status)
	}
	if upd.Balance == nil || !upd.Balance.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("balance=%v want 12.5", upd.Balance)
	}
}

func TestEditUpdateNoFlags(t *testing.T) {
	r, fs := parseEditFlags(t)
	if _, ok, err := r.Update(fs); ok || err != nil {
		t.Errorf("ok=%v err=%v want false,nil", ok, err)
	}
}

func TestEditUpdateRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"--name", "  "},
		{"--status", "closed"},
		{"--balance", "-3"},
	} {
		r, fs := parseEditFlags(t, args...)
		if _, _, err := r.Update(fs); err == nil {
			t.Errorf("Update(%v) err=nil", args)
		}
	}
}

func TestCreateInput(t *testing.T) {
	r := &CreateCommandRunner{name: "Ops", status: "inactive", balance: "1250000.00"}
	in, err := r.Input()
	if err != nil {
		t.Fatal(err)
	}
	if in.Name != "Ops" || in.Status != model.StatusInactive || !in.Balance.Equal(decimal.NewFromInt(1250000)) {
		t.Errorf("input=%+v", in)
	}

	r.name = ""
	if _, err := r.Input(); err == nil {
		t.Error("empty name accepted")
	}
}
