// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package codec

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// BigInt normalizes the numeric representations accepted as contract
// arguments into the arbitrary-precision form the ABI encoder expects.
// A native literal and a big.Int holding the same value produce the
// same on-wire encoding.
func BigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, errors.New("nil big.Int is not a valid numeric argument")
		}
		return v, nil
	case int:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case string:
		parsed, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, errors.Errorf("cannot parse '%s' as a base-10 integer", v)
		}
		return parsed, nil
	default:
		return nil, errors.Errorf("unsupported numeric argument of type %T", value)
	}
}

// Bytes normalizes byte-like arguments: a byte slice passes through
// unchanged, a 0x-prefixed string is decoded as hex (two characters per
// byte), any other string is taken as literal text (one character per
// byte). Byte order is never altered.
func Bytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		if strings.HasPrefix(v, "0x") {
			decoded, err := hexutil.Decode(v)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot decode '%s' as hex", v)
			}
			return decoded, nil
		}
		return []byte(v), nil
	default:
		return nil, errors.Errorf("unsupported byte argument of type %T", value)
	}
}

// DecimalString renders canonical base-10 digits, a single "0" for zero,
// no leading zeros otherwise.
func DecimalString(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return value.String()
}

// AddressString renders the canonical lowercase 0x-prefixed form.
func AddressString(address common.Address) string {
	return hexutil.Encode(address.Bytes())
}
