package menu

import (
	"fmt"
	"os"

	"github.com/shelfkv/shelf/cmd/util"
	"github.com/shelfkv/shelf/lib/library"
	ui "github.com/shelfkv/shelf/lib/menu"
	"github.com/shelfkv/shelf/lib/store/redisstore"
	"github.com/spf13/cobra"
)

// MenuCmd starts the interactive catalog session. It is also what a bare
// invocation of the binary runs.
var MenuCmd = &cobra.Command{
	Use:          "menu",
	Short:        "Start the interactive library catalog",
	RunE:         RunInteractive,
	SilenceUsage: true,
}

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add the store connection flags
	util.SetupStoreFlags(MenuCmd)
}

// RunInteractive connects to the store (fail-fast, no retry), builds the
// repository and hands control to the menu loop on stdin/stdout. A failed
// connection is returned as an error, which makes the process exit with a
// non-zero status.
func RunInteractive(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	config := util.GetStoreConfig()

	st, err := redisstore.Connect(cmd.Context(), config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "CRITICAL: could not reach the key-value store.")
		fmt.Fprintf(os.Stderr, "Make sure a Redis or KeyDB server is running and that %s:%d (db %d) is correct.\n",
			config.Host, config.Port, config.DB)
		return err
	}
	defer st.Close()

	fmt.Printf("Connected to store at %s:%d (db %d).\n", config.Host, config.Port, config.DB)

	repo := library.NewRepository(st)
	m := ui.New(repo, os.Stdin, os.Stdout)
	m.ClearScreen = true

	return m.Run(cmd.Context())
}
