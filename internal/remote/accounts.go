package remote

import (
	"context"
	"net/http"

	"github.com/hance08/ledger/internal/codec"
	"github.com/hance08/ledger/internal/model"
)

const accountsPath = "/accounts"

// ListAccounts fetches every account. Only 200 is a success.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	resp, err := c.do(ctx, http.MethodGet, accountsPath, nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK {
		return nil, statusError(resp.status)
	}

	accounts, err := codec.DecodeAccounts(resp.body)
	if err != nil {
		return nil, c.decodeFailure(accountsPath, resp.body, err)
	}
	return accounts, nil
}

// GetAccount fetches one account. id must be a decimal number.
func (c *Client) GetAccount(ctx context.Context, id string) (model.Account, error) {
	numericID, err := resourceID("account", id)
	if err != nil {
		return model.Account{}, err
	}

	path := accountsPath + "/" + numericID
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return model.Account{}, err
	}

	switch resp.status {
	case http.StatusOK:
	case http.StatusNotFound:
		return model.Account{}, ErrNotFound
	default:
		return model.Account{}, statusError(resp.status)
	}

	account, err := codec.DecodeAccount(resp.body)
	if err != nil {
		return model.Account{}, c.decodeFailure(path, resp.body, err)
	}
	return account, nil
}

// CreateAccount posts a draft and returns the persisted account carrying the
// server-assigned id. The draft must not have an id.
func (c *Client) CreateAccount(ctx context.Context, draft model.Account) (model.Account, error) {
	if draft.IsPersisted() {
		return model.Account{}, invalidRequest("account draft already has id %q", draft.ID)
	}

	body, err := codec.EncodeAccountDraft(draft)
	if err != nil {
		return model.Account{}, invalidRequest("encode account: %v", err)
	}

	resp, err := c.do(ctx, http.MethodPost, accountsPath, nil, body)
	if err != nil {
		return model.Account{}, err
	}
	if resp.status != http.StatusCreated {
		return model.Account{}, statusError(resp.status)
	}

	created, err := codec.DecodeAccount(resp.body)
	if err != nil {
		return model.Account{}, c.decodeFailure(accountsPath, resp.body, err)
	}
	return created, nil
}

// UpdateAccount replaces the remote account with a. Success is 204 with no body.
func (c *Client) UpdateAccount(ctx context.Context, a model.Account) error {
	numericID, err := positiveID("account", a.ID)
	if err != nil {
		return err
	}

	body, err := codec.EncodeAccount(a)
	if err != nil {
		return invalidRequest("encode account: %v", err)
	}

	resp, err := c.do(ctx, http.MethodPut, accountsPath+"/"+numericID, nil, body)
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

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	numericID, err := resourceID("account", id)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodDelete, accountsPath+"/"+numericID, nil, nil)
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
