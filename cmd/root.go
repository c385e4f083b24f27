package cmd

import (
	"os"

	"qactl/pkg/logging"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qactl",
	Short: "Generate CI matrices and QA session plans for plugin collections",
	Long: `qactl computes the quality-assurance setup for a plugin-based
software collection: which test combinations CI has to run (the test matrix
per test kind), which named check sessions a run executes and in what order,
and whether the declared action groups are consistent with the plugin
inventory.`,
	// SilenceUsage is set to true to prevent printing usage message on
	// errors handled by us (e.g. invalid configuration, validation
	// failures)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if verbose {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "qactl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newMatrixCmd())
	rootCmd.AddCommand(newSessionsCmd())
	rootCmd.AddCommand(newCheckGroupsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
