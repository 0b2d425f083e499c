// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package proxy

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/ethereum-contract-adapter-go/contract"
	"github.com/orbs-network/ethereum-contract-adapter-go/instrumentation/logfields"
	"github.com/orbs-network/govnr"
	"github.com/pkg/errors"
)

// DepositEvent is an immutable record of a past Deposit emission, decoded
// into the types the rest of this layer speaks: arbitrary-precision value,
// originating transaction hash, block context.
type DepositEvent struct {
	From        common.Address
	Value       *big.Int
	TxHash      common.Hash
	BlockNumber uint64
}

// DepositFilter narrows retrieval by sender. An empty From list matches all
// senders.
type DepositFilter struct {
	From []common.Address
}

func newDepositEvent(raw *contract.DumbContractDeposit) *DepositEvent {
	return &DepositEvent{
		From:        raw.From,
		Value:       raw.Value,
		TxHash:      raw.Raw.TxHash,
		BlockNumber: raw.Raw.BlockNumber,
	}
}

// WaitForDeposit blocks until the first matching entry observed after
// subscription start. There is no built-in timeout, cancellation comes from
// the caller's ctx.
func (h *Handle) WaitForDeposit(ctx context.Context, filter DepositFilter) (*DepositEvent, error) {
	sink := make(chan *contract.DumbContractDeposit)
	sub, err := h.binding.WatchDeposit(&bind.WatchOpts{Context: ctx}, sink, filter.From)
	if err != nil {
		return nil, errors.Wrap(err, "failed subscribing to Deposit events")
	}
	defer sub.Unsubscribe()

	select {
	case raw := <-sink:
		return newDepositEvent(raw), nil
	case err := <-sub.Err():
		return nil, errors.Wrap(err, "Deposit subscription failed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// WatchDeposits invokes callback once per matching entry as entries occur, in
// emission order, without deduplication, until ctx is cancelled. Subscription
// errors are delivered through the same callback with a nil event, after
// which the subscription is re-established from the current block. The
// returned waiter completes once the watch goroutine has fully stopped.
func (h *Handle) WatchDeposits(ctx context.Context, filter DepositFilter, callback func(err error, event *DepositEvent)) govnr.ShutdownWaiter {
	return govnr.Forever(ctx, "Deposit event watcher", logfields.GovnrErrorer(h.logger), func() {
		sink := make(chan *contract.DumbContractDeposit)
		sub, err := h.binding.WatchDeposit(&bind.WatchOpts{Context: ctx}, sink, filter.From)
		if err != nil {
			callback(errors.Wrap(err, "failed subscribing to Deposit events"), nil)
			select { // do not hot-loop when the node keeps refusing the subscription
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
			return
		}
		defer sub.Unsubscribe()

		for {
			select {
			case raw := <-sink:
				callback(nil, newDepositEvent(raw))
			case err := <-sub.Err():
				if err != nil {
					callback(errors.Wrap(err, "Deposit subscription failed"), nil)
				}
				return
			case <-ctx.Done():
				return
			}
		}
	})
}

// FilterDeposits returns the complete ordered list of matching past entries
// in the block range [fromBlock, toBlock]. A nil toBlock means latest. A
// range containing no qualifying blocks yields an empty list, not an error.
func (h *Handle) FilterDeposits(ctx context.Context, filter DepositFilter, fromBlock uint64, toBlock *uint64) ([]*DepositEvent, error) {
	opts := &bind.FilterOpts{Start: fromBlock, End: toBlock, Context: ctx}

	iter, err := h.binding.FilterDeposit(opts, filter.From)
	if err != nil {
		return nil, errors.Wrap(err, "failed querying past Deposit events")
	}
	defer iter.Close()

	events := []*DepositEvent{}
	for iter.Next() {
		events = append(events, newDepositEvent(iter.Event))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "failed iterating past Deposit events")
	}

	return events, nil
}
