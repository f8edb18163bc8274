package felt

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/dipdup-io/starknet-go-api/pkg/data"
	"github.com/pkg/errors"
)

// Size - length of the big-endian felt representation in bytes
const Size = 32

// errors
var (
	ErrInvalidFelt  = errors.New("invalid field element")
	ErrFeltOverflow = errors.New("field element does not fit into 32 bytes")
)

// Prime - StarkNet field prime: 2^251 + 17*2^192 + 1
var Prime, _ = new(big.Int).SetString("800000000000011000000000000000000000000000000000000000000000001", 16)

// Parse - parses hex string with or without 0x prefix into integer
func Parse(s string) (*big.Int, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if raw == "" {
		return nil, errors.Wrapf(ErrInvalidFelt, "empty value: %q", s)
	}
	value, ok := new(big.Int).SetString(raw, 16)
	if !ok || value.Sign() < 0 {
		return nil, errors.Wrapf(ErrInvalidFelt, "%q", s)
	}
	if value.BitLen() > Size*8 {
		return nil, errors.Wrapf(ErrFeltOverflow, "%q", s)
	}
	return value, nil
}

// Bytes - returns 32-byte big-endian representation of felt
func Bytes(fe data.Felt) ([Size]byte, error) {
	var result [Size]byte
	value, err := Parse(string(fe))
	if err != nil {
		return result, err
	}
	value.FillBytes(result[:])
	return result, nil
}

// Encode - returns lowercase hex of 32-byte big-endian representation of felt without prefix.
// The result is always 64 characters long.
func Encode(fe data.Felt) (string, error) {
	b, err := Bytes(fe)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// Decode - parses encoded hex back to felt in canonical 0x-prefixed form
func Decode(s string) (data.Felt, error) {
	value, err := Parse(s)
	if err != nil {
		return "", err
	}
	return FromBig(value), nil
}

// FromBig -
func FromBig(value *big.Int) data.Felt {
	return data.Felt("0x" + value.Text(16))
}

// IsValid - checks felt belongs to [0, P)
func IsValid(fe data.Felt) bool {
	value, err := Parse(string(fe))
	if err != nil {
		return false
	}
	return value.Cmp(Prime) < 0
}
