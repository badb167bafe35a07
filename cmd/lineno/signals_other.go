//go:build !unix

package main

import "os"

var watchedSignals = []os.Signal{os.Interrupt}

func exitStatus(sig os.Signal) int {
	if sig == os.Interrupt {
		return 130
	}
	return 1
}
