package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hance08/ledger/internal/codec"
	"github.com/hance08/ledger/internal/model"
)

const transactionsPath = "/transactions"

// ListTransactions fetches the transactions of one account.
// The backend answers 404 when an account has no transactions, so 404 is an
// empty result here, unlike every other endpoint.
func (c *Client) ListTransactions(ctx context.Context, accountID string) ([]model.Transaction, error) {
	numericID, err := integerID("account", accountID)
	if err != nil {
		return nil, err
	}

	query := url.Values{"accountId": []string{numericID}}
	resp, err := c.do(ctx, http.MethodGet, transactionsPath, query, nil)
	if err != nil {
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
	case http.StatusNotFound:
		return []model.Transaction{}, nil
	default:
		return nil, statusError(resp.status)
	}

	txs, err := codec.DecodeTransactions(resp.body)
	if err != nil {
		return nil, c.decodeFailure(transactionsPath, resp.body, err)
	}
	return txs, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	numericID, err := resourceID("transaction", id)
	if err != nil {
		return model.Transaction{}, err
	}

	path := transactionsPath + "/" + numericID
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return model.Transaction{}, err
	}

	switch resp.status {
	case http.StatusOK:
	case http.StatusNotFound:
		return model.Transaction{}, ErrNotFound
	default:
		return model.Transaction{}, statusError(resp.status)
	}

	tx, err := codec.DecodeTransaction(resp.body)
	if err != nil {
		return model.Transaction{}, c.decodeFailure(path, resp.body, err)
	}
	return tx, nil
}

// CreateTransaction posts a draft. A 400 means the referenced account does not
// exist; it is the only signal of a referential violation the backend gives.
func (c *Client) CreateTransaction(ctx context.Context, draft model.Transaction) (model.Transaction, error) {
	if draft.IsPersisted() {
		return model.Transaction{}, invalidRequest("transaction draft already has id %q", draft.ID)
	}
	if _, err := integerID("account", draft.AccountID); err != nil {
		return model.Transaction{}, err
	}

	body, err := codec.EncodeTransactionDraft(draft)
	if err != nil {
		return model.Transaction{}, invalidRequest("encode transaction: %v", err)
	}

	resp, err := c.do(ctx, http.MethodPost, transactionsPath, nil, body)
	if err != nil {
		return model.Transaction{}, err
	}

	switch resp.status {
	case http.StatusCreated:
	case http.StatusBadRequest:
		return model.Transaction{}, &BadRequestError{Message: MsgAccountMissing}
	default:
		return model.Transaction{}, statusError(resp.status)
	}

	created, err := codec.DecodeTransaction(resp.body)
	if err != nil {
		return model.Transaction{}, c.decodeFailure(transactionsPath, resp.body, err)
	}
	return created, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, tx model.Transaction) error {
	numericID, err := positiveID("transaction", tx.ID)
	if err != nil {
		return err
	}

	body, err := codec.EncodeTransaction(tx)
	if err != nil {
		return invalidRequest("encode transaction: %v", err)
	}

	resp, err := c.do(ctx, http.MethodPut, transactionsPath+"/"+numericID, nil, body)
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest:
		return &BadRequestError{Message: MsgAccountMissing}
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return statusError(resp.status)
	}
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	numericID, err := resourceID("transaction", id)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodDelete, transactionsPath+"/"+numericID, nil, nil)
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return statusError(resp.status)
	}
}
