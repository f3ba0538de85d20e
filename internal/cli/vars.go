// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// root
	commonSet string
	// root
	guessRate float64
	// check, create
	inputFile string
	// create
	outFile string
	// create
	probability uint64
	// create
	indexGranularity uint64
	// create
	overwrite bool
	// check
	interactive bool
	// check, demo
	threads int
	// check, demo, criteria
	jsonOutput bool
	// check, demo
	showTips bool
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
	// serve
	maxConnections int
)
