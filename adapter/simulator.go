// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/orbs-network/scribe/log"
)

const SIMULATOR_ACCOUNTS = 3
const simulatorGasLimit = 900000000000

var simulatorFunds = big.NewInt(0).Mul(big.NewInt(1000000), big.NewInt(1000000000000000000))

// EthereumSimulator runs a private in-process chain. Nothing is mined until
// Commit() is called, which lets tests control block boundaries precisely.
type EthereumSimulator struct {
	connectorCommon

	auths []*bind.TransactOpts
	mu    struct {
		sync.Mutex
		simClient *backends.SimulatedBackend
	}
}

func NewEthereumSimulatorConnection(logger log.Logger) *EthereumSimulator {
	e := &EthereumSimulator{}

	// generate a few random funded accounts so tests can transact from
	// distinct senders
	for i := 0; i < SIMULATOR_ACCOUNTS; i++ {
		key, err := crypto.GenerateKey()
		if err != nil {
			panic(err)
		}
		e.auths = append(e.auths, bind.NewKeyedTransactor(key))
	}

	e.logger = logger.WithTags(log.String("adapter", "ethereum-sim"))

	e.getContractCaller = func() (EthereumCaller, error) {
		return e.Backend(), nil
	}

	return e
}

func (es *EthereumSimulator) Backend() *backends.SimulatedBackend {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.mu.simClient == nil {
		genesisAllocation := make(map[common.Address]core.GenesisAccount)
		for _, auth := range es.auths {
			genesisAllocation[auth.From] = core.GenesisAccount{Balance: simulatorFunds}
		}

		es.mu.simClient = backends.NewSimulatedBackend(genesisAllocation, simulatorGasLimit)
	}
	return es.mu.simClient
}

// GetAuth returns the transactor for the primary funded account.
func (es *EthereumSimulator) GetAuth() *bind.TransactOpts {
	// this is used for test code, not protecting this
	return es.auths[0]
}

// GetAuthFor returns the transactor for one of the pre-funded accounts.
func (es *EthereumSimulator) GetAuthFor(i int) *bind.TransactOpts {
	return es.auths[i]
}

// Commit mines a single block containing all pending transactions.
func (es *EthereumSimulator) Commit() {
	es.Backend().Commit()
}
