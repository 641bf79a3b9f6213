package cash

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/mr-tron/base58"
)

func putKey(dst []byte, v ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], v)
	*offset += ed25519.PublicKeySize
}
func getKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
}

func putOptionalKey(dst []byte, v ed25519.PublicKey, offset *int) {
	if v == nil {
		putUint8(dst, 0, offset)
		return
	}
	putUint8(dst, 1, offset)
	putKey(dst, v, offset)
}
func getOptionalKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	var present uint8
	getUint8(src, &present, offset)
	if present == 0 {
		*dst = nil
		return
	}
	getKey(src, dst, offset)
}

func putBool(dst []byte, v bool, offset *int) {
	if v {
		dst[*offset] = 1
	} else {
		dst[*offset] = 0
	}
	*offset += 1
}
func getBool(src []byte, dst *bool, offset *int) {
	*dst = src[*offset] == 1
	*offset += 1
}

func putString(dst []byte, src string, offset *int) {
	putUint32(dst, uint32(len(src)), offset)
	copy(dst[*offset:], src)
	*offset += len(src)
}
func getString(src []byte, dst *string, offset *int) {
	var length uint32
	getUint32(src, &length, offset)
	*dst = string(src[*offset : *offset+int(length)])
	*offset += int(length)
}

func putUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}
func getUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[*offset]
	*offset += 1
}

func putUint16(dst []byte, v uint16, offset *int) {
	binary.LittleEndian.PutUint16(dst[*offset:], v)
	*offset += 2
}
func getUint16(src []byte, dst *uint16, offset *int) {
	*dst = binary.LittleEndian.Uint16(src[*offset:])
	*offset += 2
}

func putUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}
func getUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}
func getUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func putOptionalUint8(dst []byte, v *uint8, offset *int) {
	if v == nil {
		putUint8(dst, 0, offset)
		return
	}
	putUint8(dst, 1, offset)
	putUint8(dst, *v, offset)
}
func getOptionalUint8(src []byte, dst **uint8, offset *int) {
	var present uint8
	getUint8(src, &present, offset)
	if present == 0 {
		*dst = nil
		return
	}
	var v uint8
	getUint8(src, &v, offset)
	*dst = &v
}

func putOptionalUint16(dst []byte, v *uint16, offset *int) {
	if v == nil {
		putUint8(dst, 0, offset)
		return
	}
	putUint8(dst, 1, offset)
	putUint16(dst, *v, offset)
}
func getOptionalUint16(src []byte, dst **uint16, offset *int) {
	var present uint8
	getUint8(src, &present, offset)
	if present == 0 {
		*dst = nil
		return
	}
	var v uint16
	getUint16(src, &v, offset)
	*dst = &v
}

func putOptionalUint32(dst []byte, v *uint32, offset *int) {
	if v == nil {
		putUint8(dst, 0, offset)
		return
	}
	putUint8(dst, 1, offset)
	putUint32(dst, *v, offset)
}
func getOptionalUint32(src []byte, dst **uint32, offset *int) {
	var present uint8
	getUint8(src, &present, offset)
	if present == 0 {
		*dst = nil
		return
	}
	var v uint32
	getUint32(src, &v, offset)
	*dst = &v
}

func putOptionalUint64(dst []byte, v *uint64, offset *int) {
	if v == nil {
		putUint8(dst, 0, offset)
		return
	}
	putUint8(dst, 1, offset)
	putUint64(dst, *v, offset)
}
func getOptionalUint64(src []byte, dst **uint64, offset *int) {
	var present uint8
	getUint8(src, &present, offset)
	if present == 0 {
		*dst = nil
		return
	}
	var v uint64
	getUint64(src, &v, offset)
	*dst = &v
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
