// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package codec

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestBigInt_AcceptsHeterogeneousRepresentations(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"native int", 5, "5"},
		{"native int64", int64(-12), "-12"},
		{"native uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"big.Int", big.NewInt(5), "5"},
		{"decimal string", "340282366920938463463374607431768211456", "340282366920938463463374607431768211456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := BigInt(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, value.String())
		})
	}
}

func TestBigInt_EqualValuesEncodeIdentically(t *testing.T) {
	fromLiteral, err := BigInt(5)
	require.NoError(t, err)
	fromWrapper, err := BigInt(big.NewInt(5))
	require.NoError(t, err)

	require.Zero(t, fromLiteral.Cmp(fromWrapper), "a literal and a wrapper holding the same value should be equal")
}

func TestBigInt_RejectsUnsupportedInput(t *testing.T) {
	_, err := BigInt(5.5)
	require.Error(t, err, "floating point input should be rejected, it loses precision")

	_, err = BigInt("not a number")
	require.Error(t, err)

	_, err = BigInt((*big.Int)(nil))
	require.Error(t, err)
}

func TestBytes_HexAndTextEncodings(t *testing.T) {
	fromHex, err := Bytes("0xdeadbeef01")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef, 0x01}, fromHex, "two hex characters should decode to one byte, in order")

	fromText, err := Bytes("Hello world!")
	require.NoError(t, err)
	require.Len(t, fromText, 12, "each text character should decode to one byte")
	require.Equal(t, []byte("Hello world!"), fromText)

	passthrough, err := Bytes([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, passthrough)
}

func TestBytes_RejectsMalformedHex(t *testing.T) {
	_, err := Bytes("0xzz")
	require.Error(t, err, "a 0x prefix promises valid hex")
}

func TestDecimalString_Canonical(t *testing.T) {
	require.Equal(t, "0", DecimalString(big.NewInt(0)))
	require.Equal(t, "0", DecimalString(nil))
	require.Equal(t, "42", DecimalString(big.NewInt(42)))
	require.Equal(t, "-7", DecimalString(big.NewInt(-7)))
}

func TestAddressString_CanonicalLowercaseHex(t *testing.T) {
	address := common.HexToAddress("0x80755fE3D774006c9A9563A09310a0909c42C786")
	require.Equal(t, "0x80755fe3d774006c9a9563a09310a0909c42c786", AddressString(address))
}
