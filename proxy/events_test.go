// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package proxy_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/orbs-network/ethereum-contract-adapter-go/codec"
	"github.com/orbs-network/ethereum-contract-adapter-go/proxy"
	"github.com/orbs-network/ethereum-contract-adapter-go/test"
	"github.com/orbs-network/ethereum-contract-adapter-go/test/with"
	"github.com/orbs-network/govnr"
	"github.com/stretchr/testify/require"
)

func TestWaitForDeposit_ResolvesWithFirstMatch(t *testing.T) {
	with.ContextWithTimeout(5*time.Second, func(ctx context.Context) {
		with.Logging(t, func(parent *with.LoggingHarness) {
			h := newHarness(ctx, t, parent)

			received := make(chan *proxy.DepositEvent, 1)
			failed := make(chan error, 1)
			go func() {
				event, err := h.handle.WaitForDeposit(ctx, proxy.DepositFilter{})
				if err != nil {
					failed <- err
					return
				}
				received <- event
			}()

			// give the subscription a moment to register before mining
			time.Sleep(100 * time.Millisecond)
			txHash := h.deposit(ctx, t, h.auth(), 42)

			select {
			case event := <-received:
				require.Equal(t, h.auth().From, event.From, "event attributed to wrong sender")
				require.Equal(t, "42", codec.DecimalString(event.Value), "event value mismatched")
				require.Equal(t, txHash, event.TxHash.Hex(), "event attributed to wrong transaction")
			case err := <-failed:
				t.Fatalf("wait for deposit failed: %s", err)
			case <-ctx.Done():
				t.Fatal("timed out waiting for deposit event")
			}
		})
	})
}

func TestWatchDeposits_DeliversEveryEntryExactlyOnce(t *testing.T) {
	with.ContextAndShutdown(func(ctx context.Context, supervisor *govnr.TreeSupervisor) {
		with.Logging(t, func(parent *with.LoggingHarness) {
			h := newHarness(ctx, t, parent)

			var mu sync.Mutex
			var received []*proxy.DepositEvent
			var failures []error

			supervisor.Supervise(h.handle.WatchDeposits(ctx, proxy.DepositFilter{}, func(err error, event *proxy.DepositEvent) {
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failures = append(failures, err)
					return
				}
				received = append(received, event)
			}))

			// give the subscription a moment to register before mining
			time.Sleep(100 * time.Millisecond)

			firstSender := h.simulator.GetAuthFor(0)
			secondSender := h.simulator.GetAuthFor(1)

			// three transactions from two distinct senders, one block each so
			// emission order is deterministic
			firstTxHash := h.deposit(ctx, t, firstSender, 10)
			secondTxHash := h.deposit(ctx, t, secondSender, 20)
			thirdTxHash := h.deposit(ctx, t, firstSender, 30)

			require.True(t, test.Eventually(test.EVENTUALLY_TIMEOUT, func() bool {
				mu.Lock()
				defer mu.Unlock()
				return len(received) == 3
			}), "watch did not deliver all three entries")

			mu.Lock()
			defer mu.Unlock()
			require.Empty(t, failures, "watch reported subscription errors")
			require.Len(t, received, 3, "watch delivered duplicates or omissions")

			require.Equal(t, firstTxHash, received[0].TxHash.Hex())
			require.Equal(t, firstSender.From, received[0].From)
			require.Equal(t, "10", codec.DecimalString(received[0].Value))

			require.Equal(t, secondTxHash, received[1].TxHash.Hex())
			require.Equal(t, secondSender.From, received[1].From)
			require.Equal(t, "20", codec.DecimalString(received[1].Value))

			require.Equal(t, thirdTxHash, received[2].TxHash.Hex())
			require.Equal(t, firstSender.From, received[2].From)
			require.Equal(t, "30", codec.DecimalString(received[2].Value))
		})
	})
}

func TestFilterDeposits_BoundedRange(t *testing.T) {
	with.Context(func(ctx context.Context) {
		with.Logging(t, func(parent *with.LoggingHarness) {
			h := newHarness(ctx, t, parent)

			// no qualifying blocks yet: an explicit empty range is not an error
			genesisOnly := uint64(0)
			events, err := h.handle.FilterDeposits(ctx, proxy.DepositFilter{}, 0, &genesisOnly)
			require.NoError(t, err, "empty range should not fail")
			require.Empty(t, events, "empty range should yield an empty list")

			sender := h.simulator.GetAuthFor(1)
			txHash := h.deposit(ctx, t, sender, 55)

			events, err = h.handle.FilterDeposits(ctx, proxy.DepositFilter{}, 0, nil)
			require.NoError(t, err, "failed querying past events")
			require.Len(t, events, 1, "range with one matching transaction should yield exactly one entry")
			require.Equal(t, sender.From, events[0].From, "entry attributed to wrong sender")
			require.Equal(t, txHash, events[0].TxHash.Hex(), "entry attributed to wrong transaction")
			require.Equal(t, "55", codec.DecimalString(events[0].Value))

			// filtering by a sender that never deposited matches nothing
			other := h.simulator.GetAuthFor(2)
			events, err = h.handle.FilterDeposits(ctx, proxy.DepositFilter{From: []common.Address{other.From}}, 0, nil)
			require.NoError(t, err)
			require.Empty(t, events, "filter by a non-depositing sender should yield an empty list")
		})
	})
}
