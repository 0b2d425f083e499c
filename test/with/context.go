// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package with

import (
	"context"
	"time"

	"github.com/orbs-network/govnr"
)

func Context(f func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f(ctx)
}

func ContextAndShutdown(f func(ctx context.Context, waiter *govnr.TreeSupervisor)) {
	supervisor := &govnr.TreeSupervisor{}
	ctx, cancel := context.WithCancel(context.Background())
	defer shutdown(supervisor)
	defer cancel()
	f(ctx, supervisor)
}

func shutdown(waiter govnr.ShutdownWaiter) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	waiter.WaitUntilShutdown(ctx)
}

func ContextWithTimeout(d time.Duration, f func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	f(ctx)
}
