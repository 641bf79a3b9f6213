package cash

type CashInstruction uint8

const (
	CashInstructionInitCashLink CashInstruction = iota
	CashInstructionRedeem
	CashInstructionCancel
	CashInstructionClose
)

// The single-vault revision shares the discriminant space but settles in one
// shot instead of tracking per-wallet redemptions.
const (
	LegacyInstructionInitCashLink CashInstruction = iota
	LegacyInstructionSettle
	LegacyInstructionCancel
	LegacyInstructionClose
)

func putCashInstruction(dst []byte, v CashInstruction, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}
