package cashlink

import (
	"crypto/ed25519"

	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
)

// CloseParams describe reclaiming a terminal link's rent.
type CloseParams struct {
	Reference Reference

	Authority ed25519.PublicKey

	// Destination receives the reclaimed rent lamports.
	Destination ed25519.PublicKey
}

// CloseCashLink builds the operation reclaiming rent from a terminal link.
// The current program revision only closes canceled links with no recorded
// redemptions; the legacy revision also closes settled ones.
func (c *Client) CloseCashLink(params *CloseParams) (*Operation, error) {
	link, err := c.GetCashLink(params.Reference)
	if err != nil {
		return nil, err
	}

	if !link.closeable() {
		return nil, ErrAccountNotCanceled
	}
	if link.Version != VersionLegacy && link.TotalRedemptions > 0 {
		return nil, ErrAccountHasRedemptions
	}

	var op Operation

	if link.Version == VersionLegacy {
		op.add(cash.NewLegacyCloseInstruction(
			c.conf.Program,
			&cash.LegacyCloseInstructionAccounts{
				Authority: params.Authority,
				CashLink:  link.Address,
				FeePayer:  params.Destination,
			},
		))
		return &op, nil
	}

	op.add(cash.NewCloseInstruction(
		c.conf.Program,
		&cash.CloseInstructionAccounts{
			Authority:   params.Authority,
			CashLink:    link.Address,
			Destination: params.Destination,
		},
	))

	return &op, nil
}
