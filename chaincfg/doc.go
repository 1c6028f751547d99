// Package chaincfg defines the consensus parameters consumed by the
// proof-of-work core: the difficulty limits, retarget timing, and the
// height at which Cuckoo Cycle proof of work replaces double-SHA256.
//
// In addition to the main network, which is intended for the transfer of
// monetary value, there also exist testnet, regression test (regnet) and
// simulation test (simnet) networks. These networks are incompatible with
// each other and each defines its own Cuckoo Cycle hardfork height, so
// software should handle errors where input intended for one network is
// used on an application instance running on a different network.
//
// For main packages, a (typically global) var may be assigned the *Params
// returned by one of the standard network functions for use as the application's "active"
// network. When a network parameter is needed, it may then be looked up
// through this variable (either directly, or hidden in a library call).
//
//	package main
//
//	import (
//	        "flag"
//
//	        "github.com/cuckoonet/cuckood/blockchain"
//	        "github.com/cuckoonet/cuckood/chaincfg"
//	)
//
//	var testnet = flag.Bool("testnet", false, "operate on the test network")
//
//	// By default (without -testnet), use mainnet.
//	var chainParams = chaincfg.MainNetParams()
//
//	func main() {
//	        flag.Parse()
//
//	        if *testnet {
//	                chainParams = chaincfg.TestNet3Params()
//	        }
//
//	        // later...
//	        ok := blockchain.CheckProofOfWork(header, chainParams)
//	}
//
// If an application does not use one of the standard networks, a new Params
// struct may be created which defines the parameters for the non-standard
// network.
package chaincfg
