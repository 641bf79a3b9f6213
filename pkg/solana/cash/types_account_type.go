package cash

type AccountType uint8

const (
	AccountTypeUninitialized AccountType = iota
	AccountTypeCash
	AccountTypeRedemption
	AccountTypeFingerprint
)

func putAccountType(dst []byte, v AccountType, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getAccountType(src []byte, dst *AccountType, offset *int) {
	*dst = AccountType(src[*offset])
	*offset += 1
}

func (t AccountType) String() string {
	switch t {
	case AccountTypeCash:
		return "cash"
	case AccountTypeRedemption:
		return "redemption"
	case AccountTypeFingerprint:
		return "fingerprint"
	}
	return "uninitialized"
}
