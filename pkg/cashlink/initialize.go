package cashlink

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/cash-payments/cash-sdk/pkg/solana"
	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
	"github.com/cash-payments/cash-sdk/pkg/solana/token"
)

// InitializeParams describe a new claimable payment.
type InitializeParams struct {
	Reference Reference

	Authority ed25519.PublicKey
	Owner     ed25519.PublicKey
	FeePayer  ed25519.PublicKey
	Mint      ed25519.PublicKey

	Amount            uint64
	FeeBps            uint16
	NetworkFee        uint64
	BaseFeeToRedeem   uint64
	RentFeeToRedeem   uint64
	DistributionType  cash.DistributionType
	MaxNumRedemptions uint16
	MinAmount         *uint64

	// PassKey locks the link. Redeeming then requires this key as a signer.
	PassKey ed25519.PublicKey

	// FingerprintEnabled requires an anti-replay fingerprint per redemption.
	FingerprintEnabled bool
}

// InitializeCashLink builds the operation that creates and funds a link.
//
// All parameter validation happens locally before any account lookup. For
// the native asset the funding flows through an ephemeral wrapped account
// created ahead of the program instruction and closed after it, sweeping
// surplus rent back to the fee payer.
func (c *Client) InitializeCashLink(params *InitializeParams) (*Operation, error) {
	log := c.log.WithField("method", "InitializeCashLink")

	feeParams := &FeeParameters{
		Amount:            params.Amount,
		FeeBps:            params.FeeBps,
		NetworkFee:        params.NetworkFee,
		BaseFeeToRedeem:   params.BaseFeeToRedeem,
		RentFeeToRedeem:   params.RentFeeToRedeem,
		MaxNumRedemptions: params.MaxNumRedemptions,
		DistributionType:  params.DistributionType,
	}
	fees, err := CalculateFees(feeParams)
	if err != nil {
		return nil, err
	}
	if err := feeParams.validateDistribution(params.MinAmount); err != nil {
		return nil, err
	}

	if _, err := c.GetCashLink(params.Reference); err == nil {
		return nil, ErrCashLinkExists
	} else if err != ErrCashLinkNotFound {
		return nil, err
	}

	address, bump, err := c.deriveCashLinkAddress(params.Reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive cash link address")
	}

	log.WithFields(map[string]interface{}{
		"address": base58.Encode(address),
		"amount":  params.Amount,
		"funding": fees.TotalRequiredFunding,
	}).Debug("building initialize operation")

	if c.conf.Version == VersionLegacy {
		return c.buildLegacyInitialize(address, bump, params, fees)
	}
	return c.buildInitialize(address, bump, params, fees)
}

func (c *Client) buildInitialize(address ed25519.PublicKey, bump uint8, params *InitializeParams, fees *FeeBreakdown) (*Operation, error) {
	vaultToken, err := token.GetAssociatedAccount(address, params.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive vault token account")
	}

	var op Operation

	ownerToken, cleanup, err := c.resolveOwnerToken(&op, params, fees.TotalRequiredFunding)
	if err != nil {
		return nil, err
	}

	op.add(cash.NewInitCashLinkInstruction(
		c.conf.Program,
		&cash.InitCashLinkInstructionAccounts{
			Authority:  params.Authority,
			Owner:      params.Owner,
			FeePayer:   params.FeePayer,
			CashLink:   address,
			PassKey:    params.PassKey,
			Mint:       params.Mint,
			VaultToken: vaultToken,
			OwnerToken: ownerToken,
		},
		&cash.InitCashLinkInstructionArgs{
			Amount:             params.Amount,
			FeeBps:             params.FeeBps,
			NetworkFee:         params.NetworkFee,
			BaseFeeToRedeem:    params.BaseFeeToRedeem,
			RentFeeToRedeem:    params.RentFeeToRedeem,
			CashBump:           bump,
			CashReference:      params.Reference.String,
			DistributionType:   params.DistributionType,
			MaxNumRedemptions:  params.MaxNumRedemptions,
			MinAmount:          params.MinAmount,
			FingerprintEnabled: params.FingerprintEnabled,
		},
	))

	op.add(cleanup...)

	return &op, nil
}

// resolveOwnerToken returns the token account funding the escrow. Native
// asset funding goes through an ephemeral wrapped account: the wrap setup is
// appended to the operation here, while the close-and-sweep is returned for
// the caller to append after the program instruction.
func (c *Client) resolveOwnerToken(op *Operation, params *InitializeParams, funding uint64) (ed25519.PublicKey, []solana.Instruction, error) {
	if bytes.Equal(params.Mint, token.NativeMint) {
		wrapped, err := c.newWrappedAccount(params.Owner, params.FeePayer, params.FeePayer, funding)
		if err != nil {
			return nil, nil, err
		}
		op.add(wrapped.Setup...)
		op.addSigner(wrapped.Signer)
		return wrapped.Account, wrapped.Cleanup, nil
	}

	ownerToken, err := token.GetAssociatedAccount(params.Owner, params.Mint)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive owner token account")
	}
	return ownerToken, nil, nil
}

func (c *Client) buildLegacyInitialize(address ed25519.PublicKey, cashLinkBump uint8, params *InitializeParams, fees *FeeBreakdown) (*Operation, error) {
	vaultToken, vaultBump, err := cash.GetLegacyVaultAddress(c.conf.Program, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive vault address")
	}

	var op Operation
	op.add(cash.NewLegacyInitCashLinkInstruction(
		c.conf.Program,
		&cash.LegacyInitCashLinkInstructionAccounts{
			Authority:  params.Authority,
			Payer:      params.Owner,
			FeePayer:   params.FeePayer,
			CashLink:   address,
			VaultToken: vaultToken,
			Mint:       params.Mint,
		},
		&cash.LegacyInitCashLinkInstructionArgs{
			Amount:       params.Amount,
			Fee:          fees.PlatformFee,
			CashLinkBump: cashLinkBump,
			VaultBump:    vaultBump,
			Reference:    base58.Encode(params.Reference.Key),
		},
	))

	return &op, nil
}
