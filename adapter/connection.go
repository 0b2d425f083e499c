// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type ethereumAdapterConfig interface {
	EthereumEndpoint() string
	EthereumNtpEndpoint() string
	EthereumRequestsPerSecondLimit() float64
	EthereumConnectionStatusInterval() time.Duration
}

// EthereumCaller is the client surface this layer depends on: everything the
// generated bindings need plus receipt retrieval. Both ethclient.Client and
// the simulated backend satisfy it.
type EthereumCaller interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type EthereumConnection interface {
	GetClient() (EthereumCaller, error)
}
