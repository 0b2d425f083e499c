// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/orbs-network/ethereum-contract-adapter-go/instrumentation/metric"
	"github.com/orbs-network/ethereum-contract-adapter-go/synchronization"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type EthereumRpcConnection struct {
	govnr.TreeSupervisor
	connectorCommon

	config   ethereumAdapterConfig
	registry metric.Registry

	metrics struct {
		callLatency *metric.Histogram
		callRate    *metric.Rate
	}

	limiter *rate.Limiter
}

func NewEthereumRpcConnection(config ethereumAdapterConfig, logger log.Logger, registry metric.Registry) *EthereumRpcConnection {
	rpc := &EthereumRpcConnection{
		connectorCommon: connectorCommon{
			logger: logger.WithTags(log.String("adapter", "ethereum")),
		},
		config:   config,
		registry: registry,
	}

	rpc.metrics.callLatency = registry.NewLatency("Ethereum.Node.Call.Latency", 30*time.Second)
	rpc.metrics.callRate = registry.NewRate("Ethereum.Node.Call.Rate")

	if rps := config.EthereumRequestsPerSecondLimit(); rps > 0 {
		rpc.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	rpc.getContractCaller = func() (EthereumCaller, error) {
		return rpc.dial()
	}
	return rpc
}

func (rpc *EthereumRpcConnection) dial() (*ethclient.Client, error) {
	client, err := ethclient.Dial(rpc.config.EthereumEndpoint())
	if err != nil {
		return nil, errors.Wrapf(err, "failed dialing ethereum endpoint %s", rpc.config.EthereumEndpoint())
	}
	return client, nil
}

// CallContract shadows the common implementation to throttle outbound calls
// and record latency. The remote node is a shared resource, a runaway caller
// must not exhaust it.
func (rpc *EthereumRpcConnection) CallContract(ctx context.Context, contractAddress []byte, packedInput []byte, blockNumber *big.Int) ([]byte, error) {
	if rpc.limiter != nil {
		if err := rpc.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "ethereum call rate limiter interrupted")
		}
	}

	start := time.Now()
	defer rpc.metrics.callLatency.RecordSince(start)
	rpc.metrics.callRate.Measure(1)

	return rpc.connectorCommon.CallContract(ctx, contractAddress, packedInput, blockNumber)
}

// ReportConnectionStatus starts the periodic status probes: sync state and
// last block of the remote node, plus local clock drift when an NTP endpoint
// is configured.
func (rpc *EthereumRpcConnection) ReportConnectionStatus(ctx context.Context) {
	metrics := struct {
		syncStatus *metric.Text
		lastBlock  *metric.Gauge
	}{
		syncStatus: rpc.registry.NewText("Ethereum.Node.Sync.Status", "failed"),
		lastBlock:  rpc.registry.NewGauge("Ethereum.Node.LastBlock"),
	}

	rpc.Supervise(synchronization.NewPeriodicalTrigger(ctx, "Ethereum node status reporter", rpc.config.EthereumConnectionStatusInterval(), rpc.logger, func() {
		client, err := rpc.dial()
		if err != nil {
			rpc.logger.Info("ethereum rpc connection status check failed", log.Error(err))
			metrics.syncStatus.Update("failed")
			return
		}

		if progress, err := client.SyncProgress(ctx); err != nil {
			rpc.logger.Info("ethereum rpc connection status check failed", log.Error(err))
			metrics.syncStatus.Update("failed")
		} else if progress == nil {
			metrics.syncStatus.Update("success")
		} else {
			metrics.syncStatus.Update("in-progress")
		}

		if header, err := client.HeaderByNumber(ctx, nil); err != nil {
			rpc.logger.Info("ethereum rpc connection status check failed", log.Error(err))
			metrics.lastBlock.Update(0)
		} else {
			metrics.lastBlock.Update(header.Number.Int64())
		}
	}, nil))

	if ntpEndpoint := rpc.config.EthereumNtpEndpoint(); ntpEndpoint != "" {
		rpc.Supervise(metric.NewNtpReporter(ctx, rpc.registry, rpc.logger, ntpEndpoint))
	}
}
