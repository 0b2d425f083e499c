// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/ethereum-contract-adapter-go/contract"
)

type DeployingEthereumConnection interface {
	EthereumConnection
	DeployDumbContract(auth *bind.TransactOpts, initialCounter *big.Int) (common.Address, *contract.DumbContract, error)
	DeployEthereumContract(auth *bind.TransactOpts, abijson string, bytecode string, params ...interface{}) (*common.Address, *bind.BoundContract, error)
}

// this is a helper for integration test, not used in production code
func (c *connectorCommon) DeployDumbContract(auth *bind.TransactOpts, initialCounter *big.Int) (common.Address, *contract.DumbContract, error) {
	client, err := c.getContractCaller()
	if err != nil {
		return common.Address{}, nil, err
	}

	address, _, deployed, err := contract.DeployDumbContract(auth, client, initialCounter)
	return address, deployed, err
}

// this is a helper for integration test, not used in production code
func (c *connectorCommon) DeployEthereumContract(auth *bind.TransactOpts, abijson string, bytecode string, params ...interface{}) (*common.Address, *bind.BoundContract, error) {
	client, err := c.getContractCaller()
	if err != nil {
		return nil, nil, err
	}

	parsedAbi, err := abi.JSON(strings.NewReader(abijson))
	if err != nil {
		return nil, nil, err
	}

	address, _, deployed, err := bind.DeployContract(auth, parsedAbi, common.FromHex(bytecode), client, params...)
	if err != nil {
		return nil, nil, err
	}

	return &address, deployed, nil
}
