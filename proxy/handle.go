// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package proxy

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/orbs-network/ethereum-contract-adapter-go/adapter"
	"github.com/orbs-network/ethereum-contract-adapter-go/codec"
	"github.com/orbs-network/ethereum-contract-adapter-go/contract"
	"github.com/orbs-network/ethereum-contract-adapter-go/instrumentation/logfields"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var LogTag = log.Service("contract-proxy")

// Handle is a validated, immutable binding of a deployed DumbContract to a
// client connection. It is only obtainable through Connect, which performs the
// code existence check, so a Handle always points at real deployed code on its
// home chain.
type Handle struct {
	address common.Address
	conn    adapter.EthereumConnection
	binding *contract.DumbContract
	abi     abi.ABI
	logger  log.Logger
}

// Connect verifies a contract is actually deployed at address before
// returning a usable handle. Construction is the existence check: a handle
// for a codeless address is never observable, the factory fails instead.
func Connect(ctx context.Context, conn adapter.EthereumConnection, address common.Address, parent log.Logger) (*Handle, error) {
	logger := parent.WithTags(LogTag, logfields.EthereumAddress(address))

	client, err := conn.GetClient()
	if err != nil {
		return nil, err
	}

	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading code at address %s", address.Hex())
	}
	if len(code) == 0 {
		return nil, errors.Errorf("no contract code at address %s", address.Hex())
	}

	binding, err := contract.NewDumbContract(address, client)
	if err != nil {
		return nil, errors.Wrap(err, "failed binding contract")
	}

	parsedABI, err := abi.JSON(strings.NewReader(contract.DumbContractABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed parsing contract ABI")
	}

	logger.Info("connected to contract")

	return &Handle{
		address: address,
		conn:    conn,
		binding: binding,
		abi:     parsedABI,
		logger:  logger,
	}, nil
}

func (h *Handle) Address() common.Address {
	return h.address
}

// Counter reads the current counter value as an arbitrary-precision integer.
func (h *Handle) Counter(ctx context.Context) (*big.Int, error) {
	return h.binding.Counter(&bind.CallOpts{Context: ctx})
}

// SomeValue reads the contract's constant boolean field.
func (h *Handle) SomeValue(ctx context.Context) (bool, error) {
	return h.binding.SOMEVALUE(&bind.CallOpts{Context: ctx})
}

// SomeAddress reads the contract's address field as a canonical lowercase
// 0x-prefixed hex string.
func (h *Handle) SomeAddress(ctx context.Context) (string, error) {
	address, err := h.binding.SomeAddress(&bind.CallOpts{Context: ctx})
	if err != nil {
		return "", err
	}
	return codec.AddressString(address), nil
}

// CounterArray reads the full history of counter values recorded by countup.
func (h *Handle) CounterArray(ctx context.Context) ([]*big.Int, error) {
	return h.binding.GetCounterArray(&bind.CallOpts{Context: ctx})
}

// ReturnAll reads the counter together with the number of countup calls.
func (h *Handle) ReturnAll(ctx context.Context) (*big.Int, *big.Int, error) {
	return h.binding.ReturnAll(&bind.CallOpts{Context: ctx})
}

// ReturnUint echoes a numeric argument through the contract. The argument may
// be a native literal or a big.Int, both encode identically.
func (h *Handle) ReturnUint(ctx context.Context, value interface{}) (*big.Int, error) {
	normalized, err := codec.BigInt(value)
	if err != nil {
		return nil, err
	}
	return h.binding.ReturnUint(&bind.CallOpts{Context: ctx}, normalized)
}

// ByteLength passes a byte-like argument through the contract and reads back
// its length. Accepts raw bytes, 0x-prefixed hex or literal text.
func (h *Handle) ByteLength(ctx context.Context, data interface{}) (*big.Int, error) {
	normalized, err := codec.Bytes(data)
	if err != nil {
		return nil, err
	}
	return h.binding.ByteLength(&bind.CallOpts{Context: ctx}, normalized)
}

// TransactionDescriptor is an unsent call to a state-mutating method: the
// method name and its ABI-packed arguments. Building one has no side effects,
// submission is a separate explicit step.
type TransactionDescriptor struct {
	Method string
	Input  []byte
}

// SubmitOptions carries the submission-time parameters. Auth and GasLimit are
// required; Value defaults to zero. Via submits through an alternate
// connection without affecting the handle's own bound connection.
type SubmitOptions struct {
	Auth     *bind.TransactOpts
	GasLimit uint64
	Value    *big.Int
	Via      adapter.EthereumConnection
}

// BuildCountup packs a countup call. The offset may be a native literal or a
// big.Int.
func (h *Handle) BuildCountup(offset interface{}) (*TransactionDescriptor, error) {
	normalized, err := codec.BigInt(offset)
	if err != nil {
		return nil, err
	}

	packedInput, err := h.abi.Pack("countup", normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed packing countup arguments")
	}

	return &TransactionDescriptor{Method: "countup", Input: packedInput}, nil
}

// BuildCountupForEther packs a countupForEther call. The deposited amount is
// given at submission time as the transaction value.
func (h *Handle) BuildCountupForEther() (*TransactionDescriptor, error) {
	packedInput, err := h.abi.Pack("countupForEther")
	if err != nil {
		return nil, errors.Wrap(err, "failed packing countupForEther arguments")
	}

	return &TransactionDescriptor{Method: "countupForEther", Input: packedInput}, nil
}

// Submit signs and sends a previously built descriptor, returning the
// transaction hash immediately. Inclusion is up to the network; the caller
// reads state later to observe the effect. Submitting via a connection whose
// chain has no code at the target address succeeds here and fails on
// subsequent reads against that chain.
func (h *Handle) Submit(ctx context.Context, descriptor *TransactionDescriptor, opts SubmitOptions) (common.Hash, error) {
	if opts.Auth == nil || opts.Auth.Signer == nil {
		return common.Hash{}, errors.New("submission requires a sender with a signer")
	}
	if opts.GasLimit == 0 {
		return common.Hash{}, errors.New("submission requires an explicit gas limit")
	}

	conn := h.conn
	if opts.Via != nil {
		conn = opts.Via
	}

	client, err := conn.GetClient()
	if err != nil {
		return common.Hash{}, err
	}

	nonce, err := client.PendingNonceAt(ctx, opts.Auth.From)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed reading sender nonce")
	}

	gasPrice := opts.Auth.GasPrice
	if gasPrice == nil {
		if gasPrice, err = client.SuggestGasPrice(ctx); err != nil {
			return common.Hash{}, errors.Wrap(err, "failed suggesting gas price")
		}
	}

	value := opts.Value
	if value == nil {
		value = big.NewInt(0)
	}

	rawTx := types.NewTransaction(nonce, h.address, value, opts.GasLimit, gasPrice, descriptor.Input)
	signedTx, err := opts.Auth.Signer(types.HomesteadSigner{}, opts.Auth.From, rawTx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed signing transaction")
	}

	if err := client.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, errors.Wrapf(err, "failed submitting %s transaction", descriptor.Method)
	}

	h.logger.Info("submitted transaction",
		log.String("method", descriptor.Method),
		logfields.EthereumTxHash(signedTx.Hash()))

	return signedTx.Hash(), nil
}
