// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"bytes"
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/orbs-network/ethereum-contract-adapter-go/instrumentation/logfields"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

type connectorCommon struct {
	logger            log.Logger
	getContractCaller func() (EthereumCaller, error)
}

func (c *connectorCommon) GetClient() (EthereumCaller, error) {
	return c.getContractCaller()
}

// CallContract issues a stateless query against current chain state with
// pre-packed input. A nil blockNumber means latest. An empty output triggers a
// code lookup so that calls against a codeless address bail out with
// bind.ErrNoCode instead of silently decoding garbage.
func (c *connectorCommon) CallContract(ctx context.Context, contractAddress []byte, packedInput []byte, blockNumber *big.Int) (packedOutput []byte, err error) {
	client, err := c.getContractCaller()
	if err != nil {
		return nil, err
	}

	address := common.BytesToAddress(contractAddress)

	// we do not support pending calls, opts is always empty
	opts := new(bind.CallOpts)

	msg := ethereum.CallMsg{From: opts.From, To: &address, Data: packedInput}
	output, err := client.CallContract(ctx, msg, blockNumber)
	if err == nil && len(output) == 0 {
		// Make sure we have a contract to operate on, and bail out otherwise.
		if code, err := client.CodeAt(ctx, address, blockNumber); err != nil {
			return nil, err
		} else if len(code) == 0 {
			return nil, bind.ErrNoCode
		}
	}

	return output, err
}

type TransactionLog struct {
	ContractAddress []byte
	PackedTopics    [][]byte // indexed fields
	Data            []byte   // non-indexed fields
	BlockNumber     uint64
	TxIndex         uint32
}

func (c *connectorCommon) GetTransactionLogs(ctx context.Context, txHash common.Hash, eventSignature []byte) ([]*TransactionLog, error) {
	client, err := c.getContractCaller()
	if err != nil {
		return nil, err
	}

	receipt, err := client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, errors.Wrapf(err, "error getting receipt for transaction with hash %s", txHash.Hex())
	}
	if receipt == nil {
		return nil, errors.Errorf("got no receipt for transaction with hash %s", txHash.Hex())
	}

	var eventLogs []*TransactionLog
	for _, vmLog := range receipt.Logs {
		if matchesEvent(vmLog, eventSignature) {
			c.logger.Info("collected transaction log",
				logfields.EthereumTxHash(txHash),
				logfields.BlockNumber(vmLog.BlockNumber))
			var topics [][]byte
			for _, topic := range vmLog.Topics {
				topics = append(topics, topic.Bytes())
			}
			eventLogs = append(eventLogs, &TransactionLog{
				PackedTopics:    topics,
				Data:            vmLog.Data,
				BlockNumber:     vmLog.BlockNumber,
				TxIndex:         uint32(vmLog.TxIndex),
				ContractAddress: vmLog.Address.Bytes(),
			})
		}
	}

	return eventLogs, nil
}

func matchesEvent(vmLog *types.Log, eventSignature []byte) bool {
	for _, topic := range vmLog.Topics {
		if bytes.Equal(topic.Bytes(), eventSignature) {
			return true
		}
	}

	return false
}
