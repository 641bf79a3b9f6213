package cashlink

import "github.com/pkg/errors"

var (
	// ErrCashLinkNotFound indicates the derived cash link account does not
	// exist on chain, or its data could not be decoded. Absent and garbled
	// are folded together so callers can treat "never created" and "not yet
	// visible" uniformly.
	ErrCashLinkNotFound = errors.New("cash link not found")

	// ErrRedemptionNotFound indicates no redemption marker exists for the
	// wallet.
	ErrRedemptionNotFound = errors.New("redemption not found")

	// ErrFingerprintNotFound indicates no fingerprint marker exists.
	ErrFingerprintNotFound = errors.New("fingerprint not found")

	// ErrCashLinkExists indicates initialize was attempted against a
	// reference that already has a live account.
	ErrCashLinkExists = errors.New("cash link already exists")

	// ErrInvalidOwner indicates an account exists at a derived address but
	// is not owned by the cash program.
	ErrInvalidOwner = errors.New("account not owned by the cash program")

	ErrAccountAlreadyCanceled = errors.New("cash link is already canceled")
	ErrAccountAlreadyRedeemed = errors.New("cash link is already redeemed")
	ErrAccountNotCanceled     = errors.New("cash link is not canceled")
	ErrAccountHasRedemptions  = errors.New("cash link has outstanding redemptions")
	ErrMaxRedemptionsReached  = errors.New("max redemptions reached")
	ErrNoRemainingAmount      = errors.New("no remaining amount to redeem")

	ErrFingerprintRequired = errors.New("fingerprint required")
	ErrReferrerRequired    = errors.New("referrer required")
	ErrPassKeyRequired     = errors.New("pass key required")
	ErrWeightRequired      = errors.New("weight required for weighted distribution")

	ErrInvalidAmount              = errors.New("invalid amount")
	ErrInvalidNumberOfRedemptions = errors.New("invalid number of redemptions")
	ErrMinAmountRequired          = errors.New("min amount required for random distribution")
	ErrMinAmountTooLarge          = errors.New("min amount exceeds total amount")

	// ErrInvalidSignature indicates a payload failed local signature
	// verification before submission.
	ErrInvalidSignature = errors.New("invalid transaction signature")
)
