package cashlink

import (
	"crypto/ed25519"
	"math/big"

	"github.com/pkg/errors"

	"github.com/cash-payments/cash-sdk/pkg/solana/cash"
	"github.com/cash-payments/cash-sdk/pkg/solana/token"
)

const (
	feeBpsDenominator = 10_000
	weightDenominator = 1_000_000
)

// FeeParameters are the protocol parameters fee math derives from.
type FeeParameters struct {
	Amount            uint64
	FeeBps            uint16
	NetworkFee        uint64
	BaseFeeToRedeem   uint64
	RentFeeToRedeem   uint64
	MaxNumRedemptions uint16
	DistributionType  cash.DistributionType
}

// FeeBreakdown is the fee math for one link. All products are computed
// through big.Int so amounts near the uint64 ceiling never silently wrap.
type FeeBreakdown struct {
	// PlatformFee is the bps fee on the full amount plus the flat network
	// fee.
	PlatformFee uint64

	// PlatformFeePerRedemption is the bps fee divided across redemptions.
	PlatformFeePerRedemption uint64

	// PerRedemptionAmount is the claim per redemption for the fixed and
	// equal distributions. Zero for random and weighted, where the split is
	// decided at redemption time.
	PerRedemptionAmount uint64

	// TotalRedemptionFee covers base and rent recovery fees across all
	// redemptions.
	TotalRedemptionFee uint64

	// TotalRequiredFunding is what the escrow must hold at initialize time.
	TotalRequiredFunding uint64
}

// CalculateFees derives the full fee breakdown for a link's parameters.
func CalculateFees(params *FeeParameters) (*FeeBreakdown, error) {
	if params.Amount == 0 {
		return nil, ErrInvalidAmount
	}
	if params.MaxNumRedemptions == 0 {
		return nil, ErrInvalidNumberOfRedemptions
	}

	amount := new(big.Int).SetUint64(params.Amount)
	numRedemptions := new(big.Int).SetUint64(uint64(params.MaxNumRedemptions))

	bpsFee := calculateBpsFee(amount, params.FeeBps)
	platformFee := new(big.Int).Add(bpsFee, new(big.Int).SetUint64(params.NetworkFee))
	platformFeePerRedemption := new(big.Int).Quo(bpsFee, numRedemptions)

	perRedemptionFee := new(big.Int).Add(
		new(big.Int).SetUint64(params.BaseFeeToRedeem),
		new(big.Int).SetUint64(params.RentFeeToRedeem),
	)
	totalRedemptionFee := new(big.Int).Mul(perRedemptionFee, numRedemptions)

	var perRedemptionAmount *big.Int
	switch params.DistributionType {
	case cash.DistributionTypeFixed, cash.DistributionTypeEqual:
		perRedemptionAmount = new(big.Int).Quo(amount, numRedemptions)
	default:
		perRedemptionAmount = new(big.Int)
	}

	totalRequiredFunding := new(big.Int).Add(amount, platformFee)
	totalRequiredFunding.Add(totalRequiredFunding, totalRedemptionFee)
	if !totalRequiredFunding.IsUint64() {
		return nil, errors.New("total required funding overflows uint64")
	}

	return &FeeBreakdown{
		PlatformFee:              platformFee.Uint64(),
		PlatformFeePerRedemption: platformFeePerRedemption.Uint64(),
		PerRedemptionAmount:      perRedemptionAmount.Uint64(),
		TotalRedemptionFee:       totalRedemptionFee.Uint64(),
		TotalRequiredFunding:     totalRequiredFunding.Uint64(),
	}, nil
}

// WeightedClaimAmount is the claim for one weighted redemption, expressed in
// parts per million of the total amount. Floor rounded, as on chain.
func WeightedClaimAmount(amount uint64, weightPpm uint32) uint64 {
	claim := new(big.Int).Mul(
		new(big.Int).SetUint64(amount),
		new(big.Int).SetUint64(uint64(weightPpm)),
	)
	claim.Quo(claim, big.NewInt(weightDenominator))
	return claim.Uint64()
}

func calculateBpsFee(amount *big.Int, bps uint16) *big.Int {
	fee := new(big.Int).Mul(amount, new(big.Int).SetUint64(uint64(bps)))
	return fee.Quo(fee, big.NewInt(feeBpsDenominator))
}

func (p *FeeParameters) validateDistribution(minAmount *uint64) error {
	switch p.DistributionType {
	case cash.DistributionTypeFixed:
		if p.Amount%uint64(p.MaxNumRedemptions) != 0 {
			return ErrInvalidAmount
		}
	case cash.DistributionTypeRandom:
		if minAmount == nil {
			return ErrMinAmountRequired
		}
		if *minAmount > p.Amount {
			return ErrMinAmountTooLarge
		}
	}
	return nil
}

// IsSufficientlyFunded compares the escrow's observed balance against the
// link's required funding. For the native asset, the balance is lamports
// minus the rent-exempt minimum the wrapped account must retain.
func (c *Client) IsSufficientlyFunded(link *CashLink) (bool, error) {
	fees, err := CalculateFees(&FeeParameters{
		Amount:            link.Amount,
		FeeBps:            link.FeeBps,
		NetworkFee:        link.NetworkFee,
		BaseFeeToRedeem:   link.BaseFeeToRedeem,
		RentFeeToRedeem:   link.RentFeeToRedeem,
		MaxNumRedemptions: link.MaxNumRedemptions,
		DistributionType:  link.DistributionType,
	})
	if err != nil {
		return false, err
	}

	vault, err := c.getVaultAddress(link)
	if err != nil {
		return false, err
	}

	var available uint64
	if link.IsNative() {
		balance, err := c.sc.GetBalance(vault)
		if err != nil {
			return false, errors.Wrap(err, "failed to get vault balance")
		}
		rent, err := c.sc.GetMinimumBalanceForRentExemption(token.AccountSize)
		if err != nil {
			return false, errors.Wrap(err, "failed to get rent exemption minimum")
		}
		if balance > rent {
			available = balance - rent
		}
	} else {
		account, err := token.NewClient(c.sc, link.Mint).GetAccount(vault, c.conf.Commitment)
		if err != nil {
			return false, errors.Wrap(err, "failed to get vault token account")
		}
		available = account.Amount
	}

	return available >= fees.TotalRequiredFunding, nil
}

func (c *Client) getVaultAddress(link *CashLink) (ed25519.PublicKey, error) {
	if link.Version == VersionLegacy {
		vault, _, err := cash.GetLegacyVaultAddress(c.conf.Program, link.Address)
		return vault, err
	}
	return token.GetAssociatedAccount(link.Address, link.Mint)
}
