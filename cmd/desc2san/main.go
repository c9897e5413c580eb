// desc2san converts chess games from descriptive notation ("P-K4") to
// standard algebraic notation ("e4").
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
