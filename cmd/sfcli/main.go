// Package main provides the entry point for the Salesforce CLI.
package main

import (
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/cli"
)

func main() {
	cli.Execute()
}
