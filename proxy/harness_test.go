// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package proxy_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/orbs-network/ethereum-contract-adapter-go/adapter"
	"github.com/orbs-network/ethereum-contract-adapter-go/config"
	"github.com/orbs-network/ethereum-contract-adapter-go/proxy"
	"github.com/orbs-network/ethereum-contract-adapter-go/test/with"
	"github.com/stretchr/testify/require"
)

type harness struct {
	simulator *adapter.EthereumSimulator
	handle    *proxy.Handle
}

func newHarness(ctx context.Context, t testing.TB, parent *with.LoggingHarness) *harness {
	simulator := adapter.NewEthereumSimulatorConnection(parent.Logger)

	address, _, err := simulator.DeployDumbContract(simulator.GetAuth(), big.NewInt(0))
	simulator.Commit()
	require.NoError(t, err, "failed deploying contract to simulator")

	handle, err := proxy.Connect(ctx, simulator, address, parent.Logger)
	require.NoError(t, err, "failed connecting to deployed contract")

	return &harness{
		simulator: simulator,
		handle:    handle,
	}
}

func (h *harness) auth() *bind.TransactOpts {
	return h.simulator.GetAuth()
}

// submits a countup transaction and mines it
func (h *harness) countup(ctx context.Context, t testing.TB, offset interface{}) {
	descriptor, err := h.handle.BuildCountup(offset)
	require.NoError(t, err, "failed building countup transaction")

	_, err = h.handle.Submit(ctx, descriptor, proxy.SubmitOptions{
		Auth:     h.auth(),
		GasLimit: config.DEFAULT_GAS_LIMIT,
	})
	require.NoError(t, err, "failed submitting countup transaction")
	h.simulator.Commit()
}

// submits a payable countupForEther transaction from the given account
// without mining it, returning the transaction hash
func (h *harness) submitDeposit(ctx context.Context, t testing.TB, auth *bind.TransactOpts, amount int64) string {
	descriptor, err := h.handle.BuildCountupForEther()
	require.NoError(t, err, "failed building countupForEther transaction")

	txHash, err := h.handle.Submit(ctx, descriptor, proxy.SubmitOptions{
		Auth:     auth,
		GasLimit: config.DEFAULT_GAS_LIMIT,
		Value:    big.NewInt(amount),
	})
	require.NoError(t, err, "failed submitting countupForEther transaction")

	return txHash.Hex()
}

// submits a payable countupForEther transaction and mines it
func (h *harness) deposit(ctx context.Context, t testing.TB, auth *bind.TransactOpts, amount int64) string {
	txHash := h.submitDeposit(ctx, t, auth, amount)
	h.simulator.Commit()
	return txHash
}
