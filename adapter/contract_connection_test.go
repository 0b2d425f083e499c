// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter_test

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/orbs-network/ethereum-contract-adapter-go/adapter"
	"github.com/orbs-network/ethereum-contract-adapter-go/contract"
	"github.com/orbs-network/ethereum-contract-adapter-go/test/with"
	"github.com/stretchr/testify/require"
)

func TestCallContract_ReturnsPackedOutput(t *testing.T) {
	with.Context(func(ctx context.Context) {
		with.Logging(t, func(parent *with.LoggingHarness) {
			h := newAdapterHarness(t, parent)

			parsedABI, err := abi.JSON(strings.NewReader(contract.DumbContractABI))
			require.NoError(t, err)

			packedInput, err := parsedABI.Pack("counter")
			require.NoError(t, err)

			packedOutput, err := h.simulator.CallContract(ctx, h.address.Bytes(), packedInput, nil)
			require.NoError(t, err, "call against deployed contract should succeed")

			counter := new(big.Int)
			require.NoError(t, parsedABI.Unpack(&counter, "counter", packedOutput))
			require.EqualValues(t, 25, counter.Int64())
		})
	})
}

func TestCallContract_FailsWithNoCodeOnUndeployedAddress(t *testing.T) {
	with.Context(func(ctx context.Context) {
		with.Logging(t, func(parent *with.LoggingHarness) {
			h := newAdapterHarness(t, parent)

			parsedABI, err := abi.JSON(strings.NewReader(contract.DumbContractABI))
			require.NoError(t, err)

			packedInput, err := parsedABI.Pack("counter")
			require.NoError(t, err)

			codelessAddress := common.HexToAddress("0x1234567890123456789012345678901234567890")
			_, err = h.simulator.CallContract(ctx, codelessAddress.Bytes(), packedInput, nil)
			require.Equal(t, bind.ErrNoCode, err, "call against an address holding no code should bail out")
		})
	})
}

func TestGetTransactionLogs_ReturnsMatchingEventEntry(t *testing.T) {
	with.Context(func(ctx context.Context) {
		with.Logging(t, func(parent *with.LoggingHarness) {
			h := newAdapterHarness(t, parent)

			auth := h.simulator.GetAuth()
			auth.Value = big.NewInt(7)
			tx, err := h.binding.CountupForEther(auth)
			auth.Value = nil
			require.NoError(t, err)
			h.simulator.Commit()

			depositTopic := crypto.Keccak256([]byte("Deposit(address,uint256)"))
			logs, err := h.simulator.GetTransactionLogs(ctx, tx.Hash(), depositTopic)
			require.NoError(t, err)
			require.Len(t, logs, 1)

			entry := logs[0]
			require.Equal(t, h.address.Bytes(), entry.ContractAddress)
			require.NotZero(t, entry.BlockNumber)
			require.Equal(t, depositTopic, entry.PackedTopics[0], "first topic should be the event signature")
		})
	})
}

func TestGetTransactionLogs_FailsOnUnknownTransaction(t *testing.T) {
	with.Context(func(ctx context.Context) {
		with.Logging(t, func(parent *with.LoggingHarness) {
			h := newAdapterHarness(t, parent)

			depositTopic := crypto.Keccak256([]byte("Deposit(address,uint256)"))
			_, err := h.simulator.GetTransactionLogs(ctx, common.HexToHash("0xdeadbeef"), depositTopic)
			require.Error(t, err, "a transaction the chain never saw has no receipt")
		})
	})
}

type adapterHarness struct {
	simulator *adapter.EthereumSimulator
	address   common.Address
	binding   *contract.DumbContract
}

func newAdapterHarness(t *testing.T, parent *with.LoggingHarness) *adapterHarness {
	simulator := adapter.NewEthereumSimulatorConnection(parent.Logger)
	address, binding, err := simulator.DeployDumbContract(simulator.GetAuth(), big.NewInt(25))
	require.NoError(t, err, "failed deploying contract to simulator")
	simulator.Commit()

	return &adapterHarness{
		simulator: simulator,
		address:   address,
		binding:   binding,
	}
}
