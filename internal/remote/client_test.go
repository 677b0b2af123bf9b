package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/remote/remotetest"
	"github.com/shopspring/decimal"
)

// newTestClient starts a fake backend and returns a client pointed at it.
func newTestClient(t *testing.T) (*Client, *remotetest.Server) {
	t.Helper()
	srv := remotetest.NewServer()
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, srv.Client(), nil)
	if err != nil {
		t.Fatalf("NewClient() err=%v", err)
	}
	return c, srv
}

// countingTransport counts round trips and fails the test if any happens.
type countingTransport struct {
	calls int32
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	atomic.AddInt32(&c.calls, 1)
	return nil, errors.New("unexpected network call")
}

func offlineClient(t *testing.T) (*Client, *countingTransport) {
	t.Helper()
	rt := &countingTransport{}
	c, err := NewClient("http://ledger.invalid", &http.Client{Transport: rt}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return c, rt
}

func seedAccount(srv *remotetest.Server, name string) int64 {
	return srv.AddAccount(remotetest.Account{
		AccountName: name,
		Status:      "Active",
		Balance:     100,
		LastUpdated: "2025-01-01T00:00:00",
	})
}

func TestNewClientRejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "ftp://x", "://nope"} {
		if _, err := NewClient(u, nil, nil); err == nil {
			t.Errorf("NewClient(%q) err=nil, want error", u)
		}
	}
}

func TestListAccounts(t *testing.T) {
	c, srv := newTestClient(t)
	seedAccount(srv, "Ops")
	seedAccount(srv, "Payroll")

	accounts, err := c.ListAccounts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 2 {
		t.Fatalf("len=%d want=2", len(accounts))
	}
	if accounts[0].ID != "1" || accounts[0].Name != "Ops" || accounts[1].Name != "Payroll" {
		t.Fatalf("accounts=%+v", accounts)
	}

	req := srv.LastRequest()
	if req.Method != http.MethodGet || req.Path != "/accounts" {
		t.Errorf("request=%s %s want GET /accounts", req.Method, req.Path)
	}
	if req.Header.Get(RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestListAccountsStatusError(t *testing.T) {
	c, srv := newTestClient(t)

	for _, code := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusNoContent} {
		srv.Respond(code, "")
		_, err := c.ListAccounts(context.Background())
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.Code != code {
			t.Errorf("code %d: err=%v want StatusError(%d)", code, err, code)
		}
	}
}

func TestGetAccount(t *testing.T) {
	c, srv := newTestClient(t)
	id := seedAccount(srv, "Ops")

	a, err := c.GetAccount(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != "1" || a.Name != "Ops" || id != 1 {
		t.Fatalf("account=%+v", a)
	}

	if _, err := c.GetAccount(context.Background(), "99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing account err=%v want ErrNotFound", err)
	}

	srv.Respond(http.StatusServiceUnavailable, "")
	var statusErr *StatusError
	if _, err := c.GetAccount(context.Background(), "1"); !errors.As(err, &statusErr) || statusErr.Code != 503 {
		t.Errorf("err=%v want StatusError(503)", err)
	}
}

func TestInvalidIdentifiersMakeNoNetworkCall(t *testing.T) {
	c, rt := offlineClient(t)
	ctx := context.Background()

	checks := map[string]error{}
	_, checks["get account empty"] = c.GetAccount(ctx, "")
	_, checks["get account abc"] = c.GetAccount(ctx, "abc")
	_, checks["get account negative"] = c.GetAccount(ctx, "-1")
	checks["update account abc"] = c.UpdateAccount(ctx, model.Account{ID: "abc", Name: "x"})
	checks["update account zero"] = c.UpdateAccount(ctx, model.Account{ID: "0", Name: "x"})
	checks["update account blank"] = c.UpdateAccount(ctx, model.Account{Name: "x"})
	checks["delete account"] = c.DeleteAccount(ctx, "3a")
	_, checks["create account with id"] = c.CreateAccount(ctx, model.Account{ID: "4", Name: "x"})
	_, checks["list transactions"] = c.ListTransactions(ctx, "ACC-001")
	_, checks["get transaction"] = c.GetTransaction(ctx, "x")
	checks["delete transaction"] = c.DeleteTransaction(ctx, "")
	_, checks["create transaction bad account"] = c.CreateTransaction(ctx, model.Transaction{AccountID: "abc"})
	_, checks["create transaction with id"] = c.CreateTransaction(ctx, model.Transaction{ID: "1", AccountID: "1"})
	checks["update transaction bad id"] = c.UpdateTransaction(ctx, model.Transaction{ID: "abc", AccountID: "1"})

	for name, err := range checks {
		if !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("%s: err=%v want ErrInvalidRequest", name, err)
		}
	}
	if n := atomic.LoadInt32(&rt.calls); n != 0 {
		t.Errorf("network calls=%d want=0", n)
	}
}

func TestCreateAccountOmitsIdentifier(t *testing.T) {
	c, srv := newTestClient(t)

	draft := model.Account{
		Name:        "Ops",
		Status:      model.StatusPending,
		Balance:     decimal.RequireFromString("1250000.00"),
		LastUpdated: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	created, err := c.CreateAccount(context.Background(), draft)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.Name != "Ops" || created.Status != model.StatusPending {
		t.Fatalf("created=%+v", created)
	}
	if !created.Balance.Equal(draft.Balance) {
		t.Errorf("balance=%s want=%s", created.Balance, draft.Balance)
	}

	req := srv.LastRequest()
	if req.Method != http.MethodPost || req.Path != "/accounts" {
		t.Fatalf("request=%s %s", req.Method, req.Path)
	}
	var body map[string]any
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatal(err)
	}
	if _, ok := body["accountId"]; ok {
		t.Errorf("create body has accountId: %s", req.Body)
	}
	if body["accountName"] != "Ops" || body["status"] != "Pending" || body["lastUpdated"] != "2025-01-02T03:04:05" {
		t.Errorf("create body=%s", req.Body)
	}
}

func TestCreateAccountNon201(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(http.StatusOK, `{"accountId":1,"accountName":"x","status":"Active","balance":0,"lastUpdated":"2025-01-01T00:00:00"}`)

	_, err := c.CreateAccount(context.Background(), model.Account{Name: "x"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusOK {
		t.Fatalf("err=%v want StatusError(200)", err)
	}
}

func TestUpdateAccount(t *testing.T) {
	c, srv := newTestClient(t)
	id := seedAccount(srv, "Ops")

	err := c.UpdateAccount(context.Background(), model.Account{
		ID:      "1",
		Name:    "Operations",
		Status:  model.StatusInactive,
		Balance: decimal.NewFromInt(5),
	})
	if err != nil {
		t.Fatal(err)
	}
	got, _ := srv.Account(id)
	if got.AccountName != "Operations" || got.Status != "Inactive" || got.Balance != 5 {
		t.Errorf("server account=%+v", got)
	}
	if req := srv.LastRequest(); req.Method != http.MethodPut || req.Path != "/accounts/1" {
		t.Errorf("request=%s %s", req.Method, req.Path)
	}

	if err := c.UpdateAccount(context.Background(), model.Account{ID: "42", Name: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("err=%v want ErrNotFound", err)
	}

	srv.Respond(http.StatusInternalServerError, "")
	var statusErr *StatusError
	if err := c.UpdateAccount(context.Background(), model.Account{ID: "1", Name: "x"}); !errors.As(err, &statusErr) || statusErr.Code != 500 {
		t.Errorf("err=%v want StatusError(500)", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	c, srv := newTestClient(t)
	seedAccount(srv, "Ops")

	if err := c.DeleteAccount(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
	if _, ok := srv.Account(1); ok {
		t.Error("account still on server")
	}
	if err := c.DeleteAccount(context.Background(), "1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err=%v want ErrNotFound", err)
	}
}

func TestListTransactions(t *testing.T) {
	c, srv := newTestClient(t)
	acc := seedAccount(srv, "Ops")
	other := seedAccount(srv, "Other")
	srv.AddTransaction(remotetest.Transaction{AccountID: acc, Description: "a", Amount: 1, Type: "Credit", TransactionDate: "2025-01-01T00:00:00"})
	srv.AddTransaction(remotetest.Transaction{AccountID: other, Description: "b", Amount: 2, Type: "Debit", TransactionDate: "2025-01-02T00:00:00"})

	txs, err := c.ListTransactions(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 || txs[0].AccountID != "1" || txs[0].Description != "a" {
		t.Fatalf("txs=%+v", txs)
	}
	if req := srv.LastRequest(); req.Path != "/transactions" || req.Query != "accountId=1" {
		t.Errorf("request=%s?%s", req.Path, req.Query)
	}
}

func TestListTransactionsNotFoundIsEmpty(t *testing.T) {
	c, srv := newTestClient(t)
	seedAccount(srv, "Empty")

	txs, err := c.ListTransactions(context.Background(), "1")
	if err != nil {
		t.Fatalf("err=%v want nil", err)
	}
	if txs == nil || len(txs) != 0 {
		t.Fatalf("txs=%v want empty", txs)
	}

	srv.Respond(http.StatusInternalServerError, "")
	var statusErr *StatusError
	if _, err := c.ListTransactions(context.Background(), "1"); !errors.As(err, &statusErr) || statusErr.Code != 500 {
		t.Errorf("err=%v want StatusError(500)", err)
	}
}

func TestCreateTransactionUnknownAccount(t *testing.T) {
	c, srv := newTestClient(t)

	_, err := c.CreateTransaction(context.Background(), model.Transaction{
		AccountID:   "999",
		Description: "x",
		Amount:      decimal.NewFromInt(10),
		Type:        model.TypeCredit,
		Date:        time.Now(),
	})
	var badReq *BadRequestError
	if !errors.As(err, &badReq) || badReq.Message != "Account doesn't exist" {
		t.Fatalf("err=%v want BadRequest(Account doesn't exist)", err)
	}
	if len(srv.Requests()) != 1 {
		t.Errorf("requests=%d want=1", len(srv.Requests()))
	}
}

func TestTransactionLifecycle(t *testing.T) {
	c, srv := newTestClient(t)
	seedAccount(srv, "Ops")
	ctx := context.Background()

	created, err := c.CreateTransaction(ctx, model.Transaction{
		AccountID:   "1",
		Description: "Client Payment",
		Amount:      decimal.RequireFromString("45000.5"),
		Type:        model.TypeCredit,
		Date:        time.Date(2024, 12, 30, 10, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.AccountID != "1" {
		t.Fatalf("created=%+v", created)
	}
	var body map[string]any
	_ = json.Unmarshal(srv.LastRequest().Body, &body)
	if _, ok := body["transactionId"]; ok {
		t.Errorf("create body has transactionId: %v", body)
	}
	if body["transactionDate"] != "2024-12-30T10:30:00" || body["type"] != "Credit" {
		t.Errorf("create body=%v", body)
	}

	got, err := c.GetTransaction(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "Client Payment" || !got.Amount.Equal(created.Amount) {
		t.Errorf("got=%+v", got)
	}

	got.Type = model.TypeDebit
	if err := c.UpdateTransaction(ctx, got); err != nil {
		t.Fatal(err)
	}
	raw, _ := srv.Transaction(2)
	if raw.Type != "Debit" {
		t.Errorf("server type=%s want=Debit", raw.Type)
	}

	moved := got
	moved.AccountID = "77"
	var badReq *BadRequestError
	if err := c.UpdateTransaction(ctx, moved); !errors.As(err, &badReq) {
		t.Errorf("err=%v want BadRequestError", err)
	}

	if err := c.DeleteTransaction(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetTransaction(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err=%v want ErrNotFound", err)
	}
	if err := c.DeleteTransaction(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err=%v want ErrNotFound", err)
	}
	if err := c.UpdateTransaction(ctx, got); !errors.Is(err, ErrNotFound) {
		t.Errorf("err=%v want ErrNotFound", err)
	}
}

func TestUpdateTransactionNonNumericAccountSendsZero(t *testing.T) {
	c, srv := newTestClient(t)
	seedAccount(srv, "Ops")
	ctx := context.Background()

	created, err := c.CreateTransaction(ctx, model.Transaction{
		AccountID:   "1",
		Description: "Rent",
		Amount:      decimal.NewFromInt(900),
		Type:        model.TypeDebit,
		Date:        time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	before := len(srv.Requests())

	created.AccountID = "abc"
	err = c.UpdateTransaction(ctx, created)
	var badReq *BadRequestError
	if !errors.As(err, &badReq) || badReq.Message != MsgAccountMissing {
		t.Fatalf("err=%v want BadRequest(%s)", err, MsgAccountMissing)
	}
	if errors.Is(err, ErrInvalidRequest) {
		t.Errorf("err=%v is ErrInvalidRequest", err)
	}

	reqs := srv.Requests()
	if len(reqs)-before != 1 {
		t.Fatalf("requests sent=%d want=1", len(reqs)-before)
	}
	last := srv.LastRequest()
	if last.Method != http.MethodPut {
		t.Errorf("method=%s want=PUT", last.Method)
	}
	var body map[string]any
	if err := json.Unmarshal(last.Body, &body); err != nil {
		t.Fatal(err)
	}
	if body["accountId"] != float64(0) {
		t.Errorf("accountId=%v want=0", body["accountId"])
	}
}

func TestDecodingFailure(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	srv.Respond(http.StatusOK, `{"not":"a list"}`)
	if _, err := c.ListAccounts(ctx); !errors.Is(err, ErrDecoding) {
		t.Errorf("list err=%v want ErrDecoding", err)
	}

	srv.Respond(http.StatusOK, `{"accountId":1,"accountName":"x","status":"Active","balance":1,"lastUpdated":"yesterday"}`)
	if _, err := c.GetAccount(ctx, "1"); !errors.Is(err, ErrDecoding) {
		t.Errorf("get err=%v want ErrDecoding", err)
	}

	srv.Respond(http.StatusCreated, `garbage`)
	if _, err := c.CreateAccount(ctx, model.Account{Name: "x"}); !errors.Is(err, ErrDecoding) {
		t.Errorf("create err=%v want ErrDecoding", err)
	}

	srv.Respond(http.StatusOK, `[{"transactionId":1}]`)
	if _, err := c.ListTransactions(ctx, "1"); !errors.Is(err, ErrDecoding) {
		t.Errorf("list transactions err=%v want ErrDecoding", err)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := remotetest.NewServer()
	addr := srv.URL
	srv.Close()

	c, err := NewClient(addr, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListAccounts(context.Background()); !errors.Is(err, ErrTransport) {
		t.Errorf("err=%v want ErrTransport", err)
	}
	if err := c.DeleteAccount(context.Background(), "1"); !errors.Is(err, ErrTransport) {
		t.Errorf("err=%v want ErrTransport", err)
	}
}

func TestCancelledContextIsTransportFailure(t *testing.T) {
	c, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListAccounts(ctx)
	if !errors.Is(err, ErrTransport) || !errors.Is(err, context.Canceled) {
		t.Errorf("err=%v want ErrTransport wrapping context.Canceled", err)
	}
}

// statuslessTransport answers every request with a response that has no
// status code.
type statuslessTransport struct{}

func (statuslessTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return &http.Response{
		Request: req,
		Header:  make(http.Header),
		Body:    io.NopCloser(strings.NewReader("")),
	}, nil
}

func TestInvalidResponse(t *testing.T) {
	c, err := NewClient("http://ledger.invalid", &http.Client{Transport: statuslessTransport{}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.ListAccounts(context.Background()); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("err=%v want ErrInvalidResponse", err)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrNotFound, "Resource not found"},
		{invalidRequest("x"), "Invalid request"},
		{&StatusError{Code: 500}, "HTTP error: 500"},
		{&BadRequestError{Message: MsgAccountMissing}, "Bad request: Account doesn't exist"},
		{errors.New("boom"), "boom"},
	}
	for _, tc := range cases {
		if got := Describe(tc.err); got != tc.want {
			t.Errorf("Describe(%v)=%q want=%q", tc.err, got, tc.want)
		}
	}
}
