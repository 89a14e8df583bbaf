package main

import (
	"github.com/nethra567/PRODIGY-CS-02/cmd/internal"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		internal.Fatal("Error: %v", err)
	}
}
