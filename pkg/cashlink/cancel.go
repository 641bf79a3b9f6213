package cashlink

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/cash-payments/cash-sdk/pkg/solana"
	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
	"github.com/cash-payments/cash-sdk/pkg/solana/token"
)

// CancelParams describe a cancellation refunding the unredeemed balance.
type CancelParams struct {
	Reference Reference

	Authority ed25519.PublicKey
	FeePayer  ed25519.PublicKey
}

// CancelCashLink builds the operation refunding the remaining escrow to the
// owner. Canceling an already terminal link fails locally.
func (c *Client) CancelCashLink(params *CancelParams) (*Operation, error) {
	link, err := c.GetCashLink(params.Reference)
	if err != nil {
		return nil, err
	}

	op, _, err := c.buildCancel(link, params)
	return op, err
}

// CancelAndCloseCashLink cancels and, when no redemption record would be
// orphaned, closes the link in the same transaction so the rent comes back
// with the refund.
func (c *Client) CancelAndCloseCashLink(params *CancelParams) (*Operation, error) {
	link, err := c.GetCashLink(params.Reference)
	if err != nil {
		return nil, err
	}

	op, cleanup, err := c.buildCancel(link, params)
	if err != nil {
		return nil, err
	}

	if link.TotalRedemptions == 0 {
		op.Instructions = op.Instructions[:len(op.Instructions)-len(cleanup)]
		op.add(cash.NewCloseInstruction(
			c.conf.Program,
			&cash.CloseInstructionAccounts{
				Authority:   params.Authority,
				CashLink:    link.Address,
				Destination: params.FeePayer,
			},
		))
		op.add(cleanup...)
	}

	return op, nil
}

func (c *Client) buildCancel(link *CashLink, params *CancelParams) (*Operation, []solana.Instruction, error) {
	switch link.State {
	case cash.CashStateCanceled:
		return nil, nil, ErrAccountAlreadyCanceled
	case cash.CashStateRedeemed:
		return nil, nil, ErrAccountAlreadyRedeemed
	}

	c.log.WithFields(map[string]interface{}{
		"method":    "CancelCashLink",
		"remaining": link.RemainingAmount,
	}).Debug("building cancel operation")

	if link.Version == VersionLegacy {
		op, err := c.buildLegacyCancel(link, params)
		return op, nil, err
	}

	vaultToken, err := token.GetAssociatedAccount(link.Address, link.Mint)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive vault token account")
	}

	var op Operation

	ownerToken, cleanup, err := c.resolveRefundToken(&op, link, params.FeePayer)
	if err != nil {
		return nil, nil, err
	}

	op.add(cash.NewCancelInstruction(
		c.conf.Program,
		&cash.CancelInstructionAccounts{
			Authority:  params.Authority,
			CashLink:   link.Address,
			OwnerToken: ownerToken,
			FeePayer:   params.FeePayer,
			VaultToken: vaultToken,
			Mint:       link.Mint,
		},
		&cash.CancelInstructionArgs{
			CashBump:      link.Bump,
			CashReference: params.Reference.String,
		},
	))

	op.add(cleanup...)

	return &op, cleanup, nil
}

// resolveRefundToken returns the account the refund lands in. For the
// native asset an ephemeral wrapped account is closed in the same
// transaction, unwrapping the refund straight to the owner wallet.
func (c *Client) resolveRefundToken(op *Operation, link *CashLink, feePayer ed25519.PublicKey) (ed25519.PublicKey, []solana.Instruction, error) {
	if link.IsNative() {
		wrapped, err := c.newWrappedAccount(feePayer, feePayer, link.Owner, 0)
		if err != nil {
			return nil, nil, err
		}
		op.add(wrapped.Setup...)
		op.addSigner(wrapped.Signer)
		return wrapped.Account, wrapped.Cleanup, nil
	}

	ownerToken, err := token.GetAssociatedAccount(link.Owner, link.Mint)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive owner token account")
	}
	return ownerToken, nil, nil
}

func (c *Client) buildLegacyCancel(link *CashLink, params *CancelParams) (*Operation, error) {
	vaultToken, _, err := cash.GetLegacyVaultAddress(c.conf.Program, link.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive vault address")
	}
	payerToken, err := token.GetAssociatedAccount(link.Owner, link.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive payer token account")
	}

	var op Operation
	op.add(cash.NewLegacyCancelInstruction(
		c.conf.Program,
		&cash.LegacyCancelInstructionAccounts{
			Authority:  params.Authority,
			CashLink:   link.Address,
			PayerToken: payerToken,
			VaultToken: vaultToken,
			FeePayer:   params.FeePayer,
			Mint:       link.Mint,
		},
	))

	return &op, nil
}
