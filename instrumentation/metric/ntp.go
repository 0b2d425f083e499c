// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"time"

	"github.com/beevik/ntp"
	"github.com/orbs-network/ethereum-contract-adapter-go/synchronization"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
)

const NTP_QUERY_INTERVAL = 30 * time.Second

type ntpReporter struct {
	drift   *Gauge
	address string
}

// Reports the drift between the local clock and an NTP server. Block timestamps
// coming back from an Ethereum node are compared against local time, so a
// drifting clock shows up as bogus finality measurements.
func NewNtpReporter(ctx context.Context, metricFactory Factory, logger log.Logger, ntpServerAddress string) govnr.ShutdownWaiter {
	r := &ntpReporter{
		drift:   metricFactory.NewGauge("OS.Time.Drift.Millis"),
		address: ntpServerAddress,
	}

	return synchronization.NewPeriodicalTrigger(ctx, "NTP metric reporter", NTP_QUERY_INTERVAL, logger, func() {
		response, err := ntp.Query(r.address)
		if err != nil {
			logger.Info("could not query ntp server", log.String("ntp-server", r.address))
			return
		}

		r.drift.Update(response.ClockOffset.Nanoseconds() / int64(time.Millisecond))
	}, nil)
}
