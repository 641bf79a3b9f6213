package cashlink

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/cash-payments/cash-sdk/pkg/solana"
	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
)

// GetCashLink loads and decodes the escrow record for a reference. An absent
// account or undecodable data yields ErrCashLinkNotFound; an account owned
// by a different program yields ErrInvalidOwner.
func (c *Client) GetCashLink(reference Reference) (*CashLink, error) {
	address, bump, err := c.deriveCashLinkAddress(reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive cash link address")
	}

	info, err := c.getOwnedAccount(address)
	if err != nil {
		if err == solana.ErrNoAccountInfo {
			return nil, ErrCashLinkNotFound
		}
		return nil, err
	}

	if c.conf.Version == VersionLegacy {
		var account cash.CashLinkAccount
		if err := account.Unmarshal(info.Data); err != nil {
			return nil, ErrCashLinkNotFound
		}
		return newCashLinkFromLegacyAccount(address, bump, &account)
	}

	var account cash.CashAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, ErrCashLinkNotFound
	}
	return newCashLinkFromAccount(address, bump, &account), nil
}

// GetRedemption loads the redemption marker for a wallet against a link.
func (c *Client) GetRedemption(cashLink, wallet ed25519.PublicKey) (*cash.RedemptionAccount, error) {
	address, _, err := cash.GetRedemptionAccountAddress(c.conf.Program, cashLink, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive redemption address")
	}

	info, err := c.getOwnedAccount(address)
	if err != nil {
		if err == solana.ErrNoAccountInfo {
			return nil, ErrRedemptionNotFound
		}
		return nil, err
	}

	var account cash.RedemptionAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, ErrRedemptionNotFound
	}
	return &account, nil
}

// GetFingerprint loads the anti-replay marker for a fingerprint key. Its
// existence is the evidence the fingerprint has already redeemed.
func (c *Client) GetFingerprint(cashLink, fingerprint ed25519.PublicKey) (*cash.FingerprintAccount, error) {
	address, _, err := cash.GetFingerprintAccountAddress(c.conf.Program, cashLink, fingerprint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive fingerprint address")
	}

	info, err := c.getOwnedAccount(address)
	if err != nil {
		if err == solana.ErrNoAccountInfo {
			return nil, ErrFingerprintNotFound
		}
		return nil, err
	}

	var account cash.FingerprintAccount
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, ErrFingerprintNotFound
	}
	return &account, nil
}

// getOwnedAccount fetches account data, failing closed when an account at a
// derived address is owned by an unexpected program.
func (c *Client) getOwnedAccount(address ed25519.PublicKey) (solana.AccountInfo, error) {
	info, err := c.sc.GetAccountInfo(address, c.conf.Commitment)
	if err != nil {
		if err == solana.ErrNoAccountInfo {
			return info, err
		}
		return info, errors.Wrap(err, "failed to get account info")
	}

	if !bytes.Equal(info.Owner, c.conf.Program) {
		return info, ErrInvalidOwner
	}
	return info, nil
}
