package cash

import (
	"fmt"

	"github.com/cash-payments/cash-sdk/pkg/solana"
)

// CashError is a custom program error raised by the on-chain processors. The
// discriminant order mirrors the program's own error enum.
type CashError uint32

const (
	ErrorInvalidOwner CashError = iota
	ErrorInvalidMint
	ErrorInvalidInstruction
	ErrorNotRentExempt
	ErrorExpectedAmountMismatch
	ErrorInvalidAuthorityId
	ErrorAmountOverflow
	ErrorAccountAlreadySettled
	ErrorAccountAlreadyCanceled
	ErrorFeeOverflow
	ErrorAccountNotSettledOrInitialized
	ErrorAccountNotSettledOrCanceled
	ErrorAccountNotInitialized
	ErrorMathOverflow
	ErrorInvalidDepositKey
	ErrorInvalidWithdrawKey
	ErrorInvalidEscrowKey
	ErrorInvalidVaultOwner
	ErrorInvalidVaultTokenOwner
	ErrorInvalidSrcTokenOwner
	ErrorInvalidDstTokenOwner
	ErrorInvalidFeeTokenOwner
	ErrorInvalidDepositTokenOwner
	ErrorInvalidWithdrawTokenOwner
	ErrorAccountAlreadyClosed
	ErrorAccountInvalidState
	ErrorInsufficientSettlementFunds
	ErrorInvalidAmount
	ErrorInvalidNumberOfRedemptions
	ErrorMinAmountNotSet
	ErrorMinAmountMustBeLessThanAmount
	ErrorOverflow
	ErrorMaxRedemptionsReached
	ErrorNoRemainingAmount
	ErrorWeightNotProvided
	ErrorInvalidWeight
	ErrorTotalWeightExceeded
	ErrorInvalidPassKey
	ErrorInvalidReferralFees
	ErrorInvalidSlotHashProgram
	ErrorAccountAlreadyRedeemed
	ErrorAccountNotCanceled
)

// FromCustomError maps a custom error raised by a transaction back to the
// program's error enum, if the code falls inside it.
func FromCustomError(err solana.CustomError) (CashError, bool) {
	if uint32(err) > uint32(ErrorAccountNotCanceled) {
		return 0, false
	}
	return CashError(err), true
}

func (e CashError) Error() string {
	return e.String()
}

func (e CashError) String() string {
	switch e {
	case ErrorInvalidOwner:
		return "invalid owner"
	case ErrorInvalidMint:
		return "invalid mint"
	case ErrorInvalidInstruction:
		return "invalid instruction"
	case ErrorNotRentExempt:
		return "not rent exempt"
	case ErrorExpectedAmountMismatch:
		return "amount mismatch"
	case ErrorInvalidAuthorityId:
		return "authority is invalid"
	case ErrorAmountOverflow:
		return "amount overflow"
	case ErrorAccountAlreadySettled:
		return "account already settled"
	case ErrorAccountAlreadyCanceled:
		return "account already canceled"
	case ErrorFeeOverflow:
		return "fee overflow"
	case ErrorAccountNotSettledOrInitialized:
		return "account not settled or initialized"
	case ErrorAccountNotSettledOrCanceled:
		return "account not settled or canceled"
	case ErrorAccountNotInitialized:
		return "account not initialized"
	case ErrorMathOverflow:
		return "math overflow"
	case ErrorInvalidVaultOwner:
		return "invalid vault owner"
	case ErrorInvalidVaultTokenOwner:
		return "invalid vault token owner"
	case ErrorAccountAlreadyClosed:
		return "account is closed"
	case ErrorAccountInvalidState:
		return "account is in an invalid state"
	case ErrorInsufficientSettlementFunds:
		return "insufficient funds for settlement"
	case ErrorInvalidAmount:
		return "invalid amount"
	case ErrorInvalidNumberOfRedemptions:
		return "invalid number of redemptions"
	case ErrorMinAmountNotSet:
		return "min amount not set"
	case ErrorMinAmountMustBeLessThanAmount:
		return "min amount must be less than amount"
	case ErrorOverflow:
		return "overflow"
	case ErrorMaxRedemptionsReached:
		return "max redemptions reached"
	case ErrorNoRemainingAmount:
		return "no remaining amount"
	case ErrorWeightNotProvided:
		return "weight not provided"
	case ErrorInvalidWeight:
		return "invalid weight"
	case ErrorTotalWeightExceeded:
		return "total weight exceeded"
	case ErrorInvalidPassKey:
		return "invalid pass key"
	case ErrorInvalidReferralFees:
		return "invalid referral fees"
	case ErrorInvalidSlotHashProgram:
		return "invalid slot hashes sysvar"
	case ErrorAccountAlreadyRedeemed:
		return "account already redeemed"
	case ErrorAccountNotCanceled:
		return "account not canceled"
	}
	return fmt.Sprintf("cash error %d", uint32(e))
}
