// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package contract

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// deploys the checked-in bytecode on a fresh simulated chain; a regression
// guard for the Bin constant itself, everything else builds on a working deploy
func deployOnSimulatedChain(t *testing.T, initialCounter int64) (*bind.TransactOpts, *backends.SimulatedBackend, *DumbContract) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	auth := bind.NewKeyedTransactor(key)

	genesis := core.GenesisAlloc{auth.From: {Balance: big.NewInt(0).Mul(big.NewInt(1000000), big.NewInt(1000000000000000000))}}
	backend := backends.NewSimulatedBackend(genesis, 900000000000)

	_, _, deployed, err := DeployDumbContract(auth, backend, big.NewInt(initialCounter))
	require.NoError(t, err, "deploying the checked-in bytecode failed")
	backend.Commit()

	return auth, backend, deployed
}

func TestDeployedBytecode_ConstructorState(t *testing.T) {
	auth, _, deployed := deployOnSimulatedChain(t, 25)

	counter, err := deployed.Counter(nil)
	require.NoError(t, err)
	require.EqualValues(t, 25, counter.Int64(), "constructor should store the initial counter")

	someAddress, err := deployed.SomeAddress(nil)
	require.NoError(t, err)
	require.Equal(t, auth.From, someAddress, "constructor should record the deployer")

	someValue, err := deployed.SOMEVALUE(nil)
	require.NoError(t, err)
	require.True(t, someValue)
}

func TestDeployedBytecode_CountupAndHistory(t *testing.T) {
	auth, backend, deployed := deployOnSimulatedChain(t, 0)

	_, err := deployed.Countup(auth, big.NewInt(3))
	require.NoError(t, err)
	backend.Commit()

	counter, err := deployed.Counter(nil)
	require.NoError(t, err)
	require.EqualValues(t, 3, counter.Int64())

	history, err := deployed.GetCounterArray(nil)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.EqualValues(t, 3, history[0].Int64())

	first, err := deployed.CounterArray(nil, big.NewInt(0))
	require.NoError(t, err)
	require.EqualValues(t, 3, first.Int64())

	counterAgain, countups, err := deployed.ReturnAll(nil)
	require.NoError(t, err)
	require.EqualValues(t, 3, counterAgain.Int64())
	require.EqualValues(t, 1, countups.Int64())
}

func TestDeployedBytecode_PureEchoes(t *testing.T) {
	_, _, deployed := deployOnSimulatedChain(t, 0)

	echoed, err := deployed.ReturnUint(nil, big.NewInt(5))
	require.NoError(t, err)
	require.EqualValues(t, 5, echoed.Int64())

	length, err := deployed.ByteLength(nil, []byte{0xde, 0xad, 0xbe, 0xef, 0x01})
	require.NoError(t, err)
	require.EqualValues(t, 5, length.Int64())
}

func TestDeployedBytecode_PayableCountupEmitsDeposit(t *testing.T) {
	auth, backend, deployed := deployOnSimulatedChain(t, 0)

	auth.Value = big.NewInt(17)
	_, err := deployed.CountupForEther(auth)
	auth.Value = nil
	require.NoError(t, err)
	backend.Commit()

	counter, err := deployed.Counter(nil)
	require.NoError(t, err)
	require.EqualValues(t, 17, counter.Int64(), "counter should accumulate the deposited value")

	iter, err := deployed.FilterDeposit(nil, nil)
	require.NoError(t, err)
	defer iter.Close()

	require.True(t, iter.Next(), "one Deposit entry should be on chain")
	require.Equal(t, auth.From, iter.Event.From)
	require.EqualValues(t, 17, iter.Event.Value.Int64())
	require.False(t, iter.Next())
}
