// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "testing"

func TestCurrencyNetStringer(t *testing.T) {
	tests := []struct {
		in   CurrencyNet
		want string
	}{
		{MainNet, "mainnet"},
		{TestNet3, "testnet3"},
		{RegNet, "regnet"},
		{SimNet, "simnet"},
		{CurrencyNet(0xffffffff), "unknown"},
	}

	for _, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("CurrencyNet(%#08x).String() = %q, want %q", uint32(test.in), got, test.want)
		}
	}
}
