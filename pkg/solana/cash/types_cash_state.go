package cash

type CashState uint8

const (
	CashStateInitialized CashState = iota
	CashStateRedeemed
	CashStateRedeeming
	CashStateCanceled
)

func putCashState(dst []byte, v CashState, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getCashState(src []byte, dst *CashState, offset *int) {
	*dst = CashState(src[*offset])
	*offset += 1
}

func (s CashState) String() string {
	switch s {
	case CashStateInitialized:
		return "initialized"
	case CashStateRedeemed:
		return "redeemed"
	case CashStateRedeeming:
		return "redeeming"
	case CashStateCanceled:
		return "canceled"
	}
	return "unknown"
}
