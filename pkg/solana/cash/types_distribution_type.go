package cash

type DistributionType uint8

const (
	DistributionTypeFixed DistributionType = iota
	DistributionTypeRandom
	DistributionTypeWeighted
	DistributionTypeEqual
)

func putDistributionType(dst []byte, v DistributionType, offset *int) {
	dst[*offset] = uint8(v)
	*offset += 1
}

func getDistributionType(src []byte, dst *DistributionType, offset *int) {
	*dst = DistributionType(src[*offset])
	*offset += 1
}

func (t DistributionType) String() string {
	switch t {
	case DistributionTypeFixed:
		return "fixed"
	case DistributionTypeRandom:
		return "random"
	case DistributionTypeWeighted:
		return "weighted"
	case DistributionTypeEqual:
		return "equal"
	}
	return "unknown"
}
