// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/scribe/log"
)

func EthereumAddress(address common.Address) *log.Field {
	return log.String("ethereum-address", address.Hex())
}

func EthereumTxHash(txHash common.Hash) *log.Field {
	return log.String("ethereum-txhash", txHash.Hex())
}

func BlockNumber(value uint64) *log.Field {
	return log.Uint64("block-number", value)
}
