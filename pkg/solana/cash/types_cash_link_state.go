package cash

// CashLinkState is the state enum of the original single-vault revision of the
// program. It differs from CashState by carrying an explicit uninitialized
// variant at discriminant zero.
type CashLinkState uint8

const (
	CashLinkStateUninitialized CashLinkState = iota
	CashLinkStateInitialized
	CashLinkStateRedeemed
	CashLinkStateRedeeming
	CashLinkStateCanceled
)

func putCashLinkState(dst []byte, v CashLinkState, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getCashLinkState(src []byte, dst *CashLinkState, offset *int) {
	*dst = CashLinkState(src[*offset])
	*offset += 1
}

func (s CashLinkState) String() string {
	switch s {
	case CashLinkStateInitialized:
		return "initialized"
	case CashLinkStateRedeemed:
		return "redeemed"
	case CashLinkStateRedeeming:
		return "redeeming"
	case CashLinkStateCanceled:
		return "canceled"
	}
	return "uninitialized"
}
