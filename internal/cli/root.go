// Package cli implements the interactive shell for the Salesforce CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/api"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/auth"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/config"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/core"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/input"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/output"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/records"
)

// Global flags
var (
	verbose bool
	quiet   bool
)

// rootCmd launches the interactive session; there are no subcommands beyond
// cobra's built-ins.
var rootCmd = &cobra.Command{
	Use:          "sfcli",
	Short:        "Salesforce CLI – query and manage CRM records",
	Long:         `An interactive terminal client for querying and managing Salesforce Accounts, Contacts, Leads, and Opportunities.`,
	Version:      core.Version,
	RunE:         runShell,
	SilenceUsage: true,
}

// Execute runs the root command and exits 1 on any fatal error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress progress messages")
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Println(output.Banner("Salesforce CLI Tool"))

	prompter := input.NewTerminalPrompter()

	core.ProgressPrint("\n[*] Authenticating to Salesforce...", quiet)
	session, err := auth.Authenticate(cfg, prompter)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	core.ProgressPrint("    ✓ Connected successfully", quiet)

	client := api.NewClient(session, cfg.Timeout(), verbose)
	if cfg.HasClientCredentials() {
		// Client-credentials sessions can be rebuilt without user input, so
		// an expired token triggers a one-shot re-exchange.
		client.SetRefresh(func() (api.Session, error) {
			return auth.ClientCredentials(cfg)
		})
	}

	shell := NewShell(records.NewStore(client, prompter), prompter, os.Stdout)
	return shell.Run()
}
