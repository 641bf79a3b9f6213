package cashlink

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/cash-payments/cash-sdk/pkg/solana"
	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
	"github.com/cash-payments/cash-sdk/pkg/solana/token"
)

// RedeemParams describe one claim against a link.
type RedeemParams struct {
	Reference Reference

	// Wallet is the claiming recipient.
	Wallet ed25519.PublicKey

	Authority ed25519.PublicKey
	FeePayer  ed25519.PublicKey

	// Fingerprint is the anti-replay key for fingerprint-enabled links.
	Fingerprint ed25519.PublicKey

	// PassKey unlocks a locked link. It co-signs the transaction.
	PassKey ed25519.PrivateKey

	// Referrer receives a referral fee share when ReferrerFeeBps is set.
	Referrer       ed25519.PublicKey
	ReferrerFeeBps *uint16
	RefereeFeeBps  *uint16

	// WeightPpm is this claim's share of the total amount, in parts per
	// million. Required by the weighted distribution, ignored otherwise.
	WeightPpm *uint32
}

// RedeemCashLink builds the operation claiming a share of a link's escrow.
//
// The link account is the single network read before all precondition
// checks; a redemption doomed by state or missing parameters fails here
// rather than on chain.
func (c *Client) RedeemCashLink(params *RedeemParams) (*Operation, error) {
	log := c.log.WithField("method", "RedeemCashLink")

	link, err := c.GetCashLink(params.Reference)
	if err != nil {
		return nil, err
	}

	if err := c.checkRedeemable(link, params); err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"reference": params.Reference.String,
		"remaining": link.RemainingAmount,
	}).Debug("building redeem operation")

	if link.Version == VersionLegacy {
		return c.buildLegacySettle(link, params)
	}
	return c.buildRedeem(link, params)
}

// checkRedeemable applies every local precondition the program would reject
// on, in a fixed order: terminal states, capacity, then parameter
// completeness against the link's configuration.
func (c *Client) checkRedeemable(link *CashLink, params *RedeemParams) error {
	switch link.State {
	case cash.CashStateCanceled:
		return ErrAccountAlreadyCanceled
	case cash.CashStateRedeemed:
		return ErrAccountAlreadyRedeemed
	}

	if link.TotalRedemptions >= link.MaxNumRedemptions {
		return ErrMaxRedemptionsReached
	}
	if link.RemainingAmount == 0 {
		return ErrNoRemainingAmount
	}

	if link.FingerprintEnabled && params.Fingerprint == nil {
		return ErrFingerprintRequired
	}
	if params.ReferrerFeeBps != nil && params.Referrer == nil {
		return ErrReferrerRequired
	}
	if link.IsLocked() && params.PassKey == nil {
		return ErrPassKeyRequired
	}
	if link.DistributionType == cash.DistributionTypeWeighted && params.WeightPpm == nil {
		return ErrWeightRequired
	}

	return nil
}

func (c *Client) buildRedeem(link *CashLink, params *RedeemParams) (*Operation, error) {
	redemption, redemptionBump, err := cash.GetRedemptionAccountAddress(c.conf.Program, link.Address, params.Wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive redemption address")
	}

	var fingerprint ed25519.PublicKey
	var fingerprintBump *uint8
	if link.FingerprintEnabled {
		address, bump, err := cash.GetFingerprintAccountAddress(c.conf.Program, link.Address, params.Fingerprint)
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive fingerprint address")
		}
		fingerprint = address
		fingerprintBump = &bump
	}

	vaultToken, err := token.GetAssociatedAccount(link.Address, link.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive vault token account")
	}
	feeToken, err := token.GetAssociatedAccount(c.conf.FeeWallet, link.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive fee token account")
	}
	ownerToken, err := token.GetAssociatedAccount(link.Owner, link.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive owner token account")
	}
	feePayerToken, err := token.GetAssociatedAccount(params.FeePayer, link.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive fee payer token account")
	}

	var referralToken ed25519.PublicKey
	if params.Referrer != nil {
		referralToken, err = token.GetAssociatedAccount(params.Referrer, link.Mint)
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive referral token account")
		}
	}

	var op Operation

	recipientToken, cleanup, err := c.resolveRecipientToken(&op, link, params)
	if err != nil {
		return nil, err
	}

	var passKey ed25519.PublicKey
	if params.PassKey != nil {
		passKey = params.PassKey.Public().(ed25519.PublicKey)
		op.addSigner(params.PassKey)
	}

	op.add(cash.NewRedeemInstruction(
		c.conf.Program,
		&cash.RedeemInstructionAccounts{
			Authority:      params.Authority,
			Wallet:         params.Wallet,
			FeeToken:       feeToken,
			CashLink:       link.Address,
			Redemption:     redemption,
			PassKey:        passKey,
			OwnerToken:     ownerToken,
			FeePayer:       params.FeePayer,
			FeePayerToken:  feePayerToken,
			VaultToken:     vaultToken,
			RecipientToken: recipientToken,
			Mint:           link.Mint,
			ReferralWallet: params.Referrer,
			ReferralToken:  referralToken,
			Fingerprint:    fingerprint,
		},
		&cash.RedeemInstructionArgs{
			CashBump:        link.Bump,
			CashReference:   params.Reference.String,
			RedemptionBump:  redemptionBump,
			FingerprintBump: fingerprintBump,
			ReferrerFeeBps:  params.ReferrerFeeBps,
			RefereeFeeBps:   params.RefereeFeeBps,
			WeightPpm:       params.WeightPpm,
		},
	))

	op.add(cleanup...)

	return &op, nil
}

// resolveRecipientToken returns the account claimed funds land in. For the
// native asset that is an ephemeral wrapped account closed in the same
// transaction, unwrapping the claim straight to the recipient wallet.
// Otherwise it is the wallet's associated account, created idempotently in
// case this is the wallet's first balance in the mint.
func (c *Client) resolveRecipientToken(op *Operation, link *CashLink, params *RedeemParams) (ed25519.PublicKey, []solana.Instruction, error) {
	if link.IsNative() {
		wrapped, err := c.newWrappedAccount(params.FeePayer, params.FeePayer, params.Wallet, 0)
		if err != nil {
			return nil, nil, err
		}
		op.add(wrapped.Setup...)
		op.addSigner(wrapped.Signer)
		return wrapped.Account, wrapped.Cleanup, nil
	}

	createInstruction, recipientToken, err := token.CreateAssociatedTokenAccountIdempotent(params.FeePayer, params.Wallet, link.Mint)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive recipient token account")
	}
	op.add(createInstruction)
	return recipientToken, nil, nil
}

func (c *Client) buildLegacySettle(link *CashLink, params *RedeemParams) (*Operation, error) {
	vaultToken, _, err := cash.GetLegacyVaultAddress(c.conf.Program, link.Address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive vault address")
	}
	feeToken, err := token.GetAssociatedAccount(c.conf.FeeWallet, link.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive fee token account")
	}
	payerToken, err := token.GetAssociatedAccount(link.Owner, link.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive payer token account")
	}

	var op Operation

	destinationToken, cleanup, err := c.resolveRecipientToken(&op, link, params)
	if err != nil {
		return nil, err
	}

	op.add(cash.NewLegacySettleInstruction(
		c.conf.Program,
		&cash.LegacySettleInstructionAccounts{
			Authority:        params.Authority,
			DestinationToken: destinationToken,
			FeeToken:         feeToken,
			VaultToken:       vaultToken,
			CashLink:         link.Address,
			PayerToken:       payerToken,
			FeePayer:         params.FeePayer,
			Mint:             link.Mint,
		},
	))

	op.add(cleanup...)

	return &op, nil
}
