// main is the entry point for the speedcheck CLI.
package main

import (
	"github.com/huangsam/speedcheck/cmd"
	"github.com/huangsam/speedcheck/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
