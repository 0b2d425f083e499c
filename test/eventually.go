// Copyright 2019 the ethereum-contract-adapter-go authors
// This file is part of the ethereum-contract-adapter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"time"

	"github.com/orbs-network/go-mock"
)

const EVENTUALLY_TIMEOUT = 2 * time.Second
const CONSISTENTLY_DURATION = 500 * time.Millisecond
const pollInterval = 5 * time.Millisecond

func Eventually(timeout time.Duration, f func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if f() {
			return true
		}
		time.Sleep(pollInterval)
	}
	return false
}

func Consistently(duration time.Duration, f func() bool) bool {
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		if !f() {
			return false
		}
		time.Sleep(pollInterval)
	}
	return true
}

func EventuallyVerify(timeout time.Duration, mocks ...mock.HasVerify) error {
	verified := make([]bool, len(mocks))
	numVerified := 0
	var errExample error
	Eventually(timeout, func() bool {
		for i, m := range mocks {
			if !verified[i] {
				ok, err := m.Verify()
				if ok {
					verified[i] = true
					numVerified++
				} else {
					errExample = err
				}
			}
		}
		return numVerified == len(mocks)
	})
	if numVerified == len(mocks) {
		return nil
	}
	return errExample
}
