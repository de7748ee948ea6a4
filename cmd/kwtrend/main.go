// Package main is the entry point for the kwtrend CLI.
package main

import (
	"github.com/huangsam/kwtrend/cmd"
	"github.com/huangsam/kwtrend/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
}
