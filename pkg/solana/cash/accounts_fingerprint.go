package cash

const (
	FingerprintAccountSize = (1 + // account_type
		1) // bump
)

// FingerprintAccount is a presence-only anti-replay marker.
type FingerprintAccount struct {
	AccountType AccountType
	Bump        uint8
}

func (obj *FingerprintAccount) Marshal() []byte {
	data := make([]byte, FingerprintAccountSize)

	var offset int

	putAccountType(data, obj.AccountType, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *FingerprintAccount) Unmarshal(data []byte) error {
	if len(data) != FingerprintAccountSize {
		return ErrInvalidAccountData
	}

	var offset int

	getAccountType(data, &obj.AccountType, &offset)
	if obj.AccountType != AccountTypeFingerprint {
		return ErrInvalidAccountType
	}

	getUint8(data, &obj.Bump, &offset)

	return nil
}
