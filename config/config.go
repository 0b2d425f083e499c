// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// gas ceiling for write transactions when the caller does not specify one,
// high enough for any DumbContract method on any of the supported chains
const DEFAULT_GAS_LIMIT = uint64(300000)

const DEFAULT_CONNECTION_STATUS_INTERVAL = 30 * time.Second

type EthereumConnectorConfig struct {
	endpoint                 string
	privateKeyHex            string
	gasLimit                 uint64
	ntpEndpoint              string
	requestsPerSecondLimit   float64
	connectionStatusInterval time.Duration
}

func (c *EthereumConnectorConfig) EthereumEndpoint() string {
	return c.endpoint
}

func (c *EthereumConnectorConfig) EthereumGasLimit() uint64 {
	return c.gasLimit
}

func (c *EthereumConnectorConfig) EthereumNtpEndpoint() string {
	return c.ntpEndpoint
}

func (c *EthereumConnectorConfig) EthereumRequestsPerSecondLimit() float64 {
	return c.requestsPerSecondLimit
}

func (c *EthereumConnectorConfig) EthereumConnectionStatusInterval() time.Duration {
	return c.connectionStatusInterval
}

func (c *EthereumConnectorConfig) GetAuthFromConfig() (*bind.TransactOpts, error) {
	key, err := crypto.HexToECDSA(c.privateKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse Ethereum private key from config")
	}

	return bind.NewKeyedTransactor(key), nil
}

func ForEndpoint(endpoint string) *EthereumConnectorConfig {
	return &EthereumConnectorConfig{
		endpoint:                 endpoint,
		gasLimit:                 DEFAULT_GAS_LIMIT,
		connectionStatusInterval: DEFAULT_CONNECTION_STATUS_INTERVAL,
	}
}

// reads the connector configuration from the environment, the same variables
// our docker-based test environments export
func ForEnvironment() *EthereumConnectorConfig {
	cfg := &EthereumConnectorConfig{
		gasLimit:                 DEFAULT_GAS_LIMIT,
		connectionStatusInterval: DEFAULT_CONNECTION_STATUS_INTERVAL,
	}

	if endpoint := os.Getenv("ETHEREUM_ENDPOINT"); endpoint != "" {
		cfg.endpoint = endpoint
	}

	if privateKey := os.Getenv("ETHEREUM_PRIVATE_KEY"); privateKey != "" {
		cfg.privateKeyHex = privateKey
	}

	if ntpEndpoint := os.Getenv("ETHEREUM_NTP_ENDPOINT"); ntpEndpoint != "" {
		cfg.ntpEndpoint = ntpEndpoint
	}

	if gasLimit := os.Getenv("ETHEREUM_GAS_LIMIT"); gasLimit != "" {
		if parsed, err := strconv.ParseUint(gasLimit, 10, 64); err == nil {
			cfg.gasLimit = parsed
		}
	}

	if rps := os.Getenv("ETHEREUM_REQUESTS_PER_SECOND_LIMIT"); rps != "" {
		if parsed, err := strconv.ParseFloat(rps, 64); err == nil {
			cfg.requestsPerSecondLimit = parsed
		}
	}

	return cfg
}
