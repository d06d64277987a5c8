package cmd

import (
	"fmt"
	"os"

	"github.com/shelfkv/shelf/cmd/menu"
	"github.com/shelfkv/shelf/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands.
	// Called bare it starts the interactive menu directly.
	RootCmd = &cobra.Command{
		Use:   "shelf",
		Short: "personal library catalog on Redis/KeyDB",
		Long: fmt.Sprintf(`shelf (v%s)

A single-user library catalog manager backed by a Redis/KeyDB
key-value store. Book records are JSON strings under record:<id>,
enumerated through the records:ids index set.`, Version),
		RunE:         menu.RunInteractive,
		SilenceUsage: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of shelf",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shelf v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(menu.MenuCmd)
	RootCmd.AddCommand(versionCmd)

	// The bare root runs the menu, so it carries the same flags
	util.SetupStoreFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
