package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studenthome_backend/internals/configs"
)

var (
	debugMode bool
	envFile   string
)

// NewRootCommand creates the root command. Without a subcommand it serves HTTP.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "studenthome",
		Short: "Student home dashboard backend",
		Long:  `studenthome serves the student dashboard view model and ships the tooling around it: seeding, rendering and dev tokens.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.SetupLogger(debugMode)
			if envFile != "" {
				configs.LoadEnv(envFile)
			} else {
				configs.LoadEnv()
			}
			// LOG_LEVEL / LOG_PRETTY may come from the env file
			configs.SetupLogger(debugMode)
		},
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment from this file instead of .env")
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewSeedCommand())
	rootCmd.AddCommand(NewRenderCommand())
	rootCmd.AddCommand(NewTokenCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
