// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// CurrencyNet represents which network a message belongs to.
type CurrencyNet uint32

// Constants used to indicate the message network. They can also be used to
// seed a cross-network reuse resistant hash, which is not implemented by
// this core.
const (
	// MainNet represents the main network.
	MainNet CurrencyNet = 0xd9b4bef9

	// TestNet3 represents the test network.
	TestNet3 CurrencyNet = 0x0709110b

	// RegNet represents the regression test network.
	RegNet CurrencyNet = 0xdab5bffa

	// SimNet represents the simulation test network.
	SimNet CurrencyNet = 0x12141c16
)

// String returns the CurrencyNet in human-readable form.
func (n CurrencyNet) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet3:
		return "testnet3"
	case RegNet:
		return "regnet"
	case SimNet:
		return "simnet"
	default:
		return "unknown"
	}
}
