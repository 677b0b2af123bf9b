// Package remotetest provides an in-process ledger backend for tests.
//
// It speaks the same wire schema and status codes as the real service,
// including its quirks: listing the transactions of an account that has none
// answers 404, and transaction mutations referencing an unknown account
// answer 400.
package remotetest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
)

type Account struct {
	AccountID   int64   `json:"accountId"`
	AccountName string  `json:"accountName"`
	Status      string  `json:"status"`
	Balance     float64 `json:"balance"`
	LastUpdated string  `json:"lastUpdated"`
}

type Transaction struct {
	TransactionID   int64   `json:"transactionId"`
	AccountID       int64   `json:"accountId"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	TransactionDate string  `json:"transactionDate"`
}

// Request is a recorded incoming request.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// canned overrides the next response.
type canned struct {
	status int
	body   string
}

type Server struct {
	*httptest.Server

	mu           sync.Mutex
	nextID       int64
	accounts     map[int64]Account
	transactions map[int64]Transaction
	requests     []Request
	overrides    []canned
}

// NewServer starts a backend. Call Close when done.
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		accounts:     make(map[int64]Account),
		transactions: make(map[int64]Transaction),
	}

	r := gin.New()
	r.Use(s.record, s.override)

	r.GET("/accounts", s.listAccounts)
	r.GET("/accounts/:id", s.getAccount)
	r.POST("/accounts", s.createAccount)
	r.PUT("/accounts/:id", s.updateAccount)
	r.DELETE("/accounts/:id", s.deleteAccount)

	r.GET("/transactions", s.listTransactions)
	r.GET("/transactions/:id", s.getTransaction)
	r.POST("/transactions", s.createTransaction)
	r.PUT("/transactions/:id", s.updateTransaction)
	r.DELETE("/transactions/:id", s.deleteTransaction)

	s.Server = httptest.NewServer(r)
	return s
}

// AddAccount seeds an account and returns its id.
func (s *Server) AddAccount(a Account) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.AccountID = s.newID()
	s.accounts[a.AccountID] = a
	return a.AccountID
}

// AddTransaction seeds a transaction and returns its id. The account is not
// checked so tests can build inconsistent states on purpose.
func (s *Server) AddTransaction(t Transaction) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.TransactionID = s.newID()
	s.transactions[t.TransactionID] = t
	return t.TransactionID
}

func (s *Server) Account(id int64) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	return a, ok
}

func (s *Server) Transaction(id int64) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	return t, ok
}

// Respond makes the next request answer status with body, whatever it is.
// Calls queue up in order.
func (s *Server) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = append(s.overrides, canned{status: status, body: body})
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or the zero Request.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) newID() int64 {
	s.nextID++
	return s.nextID
}

func (s *Server) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.RawQuery,
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	s.mu.Unlock()

	c.Next()
}

func (s *Server) override(c *gin.Context) {
	s.mu.Lock()
	if len(s.overrides) == 0 {
		s.mu.Unlock()
		c.Next()
		return
	}
	o := s.overrides[0]
	s.overrides = s.overrides[1:]
	s.mu.Unlock()

	if o.body == "" {
		c.AbortWithStatus(o.status)
		return
	}
	c.Data(o.status, "application/json", []byte(o.body))
	c.Abort()
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func (s *Server) listAccounts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) getAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a, exists := s.accounts[id]
	if !exists {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) createAccount(c *gin.Context) {
	var a Account
	if err := c.ShouldBindJSON(&a); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a.AccountID = s.newID()
	s.accounts[a.AccountID] = a
	c.JSON(http.StatusCreated, a)
}

func (s *Server) updateAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var a Account
	if err := c.ShouldBindJSON(&a); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[id]; !exists {
		c.Status(http.StatusNotFound)
		return
	}
	a.AccountID = id
	s.accounts[id] = a
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[id]; !exists {
		c.Status(http.StatusNotFound)
		return
	}
	delete(s.accounts, id)
	for txID, t := range s.transactions {
		if t.AccountID == id {
			delete(s.transactions, txID)
		}
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listTransactions(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Query("accountId"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "accountId is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Transaction
	for _, t := range s.transactions {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		c.Status(http.StatusNotFound)
		return
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransactionID < out[j].TransactionID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) getTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t, exists := s.transactions[id]
	if !exists {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) createTransaction(c *gin.Context) {
	var t Transaction
	if err := c.ShouldBindJSON(&t); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[t.AccountID]; !exists {
		c.String(http.StatusBadRequest, "Account doesn't exist")
		return
	}
	t.TransactionID = s.newID()
	s.transactions[t.TransactionID] = t
	c.JSON(http.StatusCreated, t)
}

func (s *Server) updateTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var t Transaction
	if err := c.ShouldBindJSON(&t); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transactions[id]; !exists {
		c.Status(http.StatusNotFound)
		return
	}
	if _, exists := s.accounts[t.AccountID]; !exists {
		c.String(http.StatusBadRequest, "Account doesn't exist")
		return
	}
	t.TransactionID = id
	s.transactions[id] = t
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transactions[id]; !exists {
		c.Status(http.StatusNotFound)
		return
	}
	delete(s.transactions, id)
	c.Status(http.StatusNoContent)
}
