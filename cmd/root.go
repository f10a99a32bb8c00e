package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := NewOptions()

	rootCmd := &cobra.Command{
		Use:   "ago [INPUT...]",
		Short: "Print how long ago things happened",
		Long: `A CLI tool that turns timestamps into coarse relative-time phrases
such as "5 minutes ago" or "3 days ago".`,
		// Positional args are inputs, not unknown subcommands.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Add format flags to root command so `ago` and `ago format` work identically
	addFormatFlags(rootCmd, opts)

	rootCmd.AddCommand(NewCmdFormat(opts))
	rootCmd.AddCommand(NewCmdWatch(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
