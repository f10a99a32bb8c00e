package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spiffcs/ago/config"
)

// NewCmdConfig creates the config command. Bare `ago config` behaves like
// `ago config show`.
func NewCmdConfig() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		Long: `Show the merged configuration, or manage the files it comes from.

Settings are read from the global file, then ./.ago.yaml; flags
override both.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, outputFormat)
		},
	}
	addOutputFlag(cmd, &outputFormat)

	cmd.AddCommand(
		NewCmdConfigInit(),
		NewCmdConfigPath(),
		NewCmdConfigDefaults(),
		NewCmdConfigShow(),
		NewCmdConfigSet(),
	)
	return cmd
}

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "yaml", "Print as yaml or json")
}

// NewCmdConfigInit creates the config init subcommand.
func NewCmdConfigInit() *cobra.Command {
	var global, local bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a commented starter config file.

--global writes the per-user file, --local writes ./.ago.yaml.
With neither flag you are asked which one to create.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, global, local)
		},
	}
	cmd.Flags().BoolVar(&global, "global", false, "Write the per-user config file")
	cmd.Flags().BoolVar(&local, "local", false, "Write ./.ago.yaml")
	return cmd
}

// NewCmdConfigPath creates the config path subcommand.
func NewCmdConfigPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "List config file locations and whether they exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigPath(cmd.OutOrStdout())
		},
	}
}

// NewCmdConfigDefaults creates the config defaults subcommand.
func NewCmdConfigDefaults() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print every setting with its default value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeConfig(cmd.OutOrStdout(), config.DefaultConfig(), outputFormat)
		},
	}
	addOutputFlag(cmd, &outputFormat)
	return cmd
}

// NewCmdConfigShow creates the config show subcommand.
func NewCmdConfigShow() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, outputFormat)
		},
	}
	addOutputFlag(cmd, &outputFormat)
	return cmd
}

// NewCmdConfigSet creates the config set subcommand.
func NewCmdConfigSet() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting in the global config file",
		Long: `Change one setting in the global config file.

Keys:
  format          text, table, json or markdown
  seconds_style   plural ("1 seconds ago") or singular ("1 second ago")
  future          pass, clamp or reject
  workers         concurrent workers for batch formatting`,
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	}
}

// configTarget is a config file location offered by `ago config init`.
type configTarget struct {
	scope  string
	path   string
	scoped string
}

func configTargets() []configTarget {
	paths := config.GetConfigPaths()
	return []configTarget{
		{scope: "global", path: paths.GlobalPath, scoped: "every directory"},
		{scope: "local", path: paths.LocalPath, scoped: "this directory only"},
	}
}

func runConfigInit(cmd *cobra.Command, global, local bool) error {
	if global && local {
		return fmt.Errorf("--global and --local are mutually exclusive")
	}

	out := cmd.OutOrStdout()
	targets := configTargets()

	var target configTarget
	switch {
	case global:
		target = targets[0]
	case local:
		target = targets[1]
	default:
		picked, err := promptTarget(cmd.InOrStdin(), out, targets)
		if err != nil {
			return err
		}
		target = picked
	}

	if _, err := os.Stat(target.path); err == nil {
		return fmt.Errorf("%s config already exists at %s (see 'ago config show')", target.scope, target.path)
	}
	if err := config.SaveTo(target.path, config.MinimalConfig()); err != nil {
		return err
	}

	fmt.Fprintf(out, "Created %s config file: %s\n", target.scope, target.path)
	fmt.Fprintln(out, "Every key is listed by 'ago config defaults'.")
	return nil
}

// promptTarget asks which of targets to write, by number.
func promptTarget(in io.Reader, out io.Writer, targets []configTarget) (configTarget, error) {
	fmt.Fprintln(out, "Which config file should be created?")
	for i, t := range targets {
		fmt.Fprintf(out, "  %d) %s: %s (applies to %s)\n", i+1, t.scope, t.path, t.scoped)
	}
	fmt.Fprintf(out, "Choice [1-%d]: ", len(targets))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return configTarget{}, fmt.Errorf("no choice read: %w", err)
	}
	fmt.Fprintln(out)

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(targets) {
		return configTarget{}, fmt.Errorf("invalid choice %q", strings.TrimSpace(line))
	}
	return targets[n-1], nil
}

func runConfigPath(out io.Writer) error {
	paths := config.GetConfigPaths()
	status := map[bool]string{true: "exists", false: "not found"}

	fmt.Fprintf(out, "Global: %s (%s)\n", paths.GlobalPath, status[paths.GlobalExists])
	fmt.Fprintf(out, "Local:  %s (%s)\n", paths.LocalPath, status[paths.LocalExists])
	fmt.Fprintln(out, "Precedence: flags > local > global > defaults")
	return nil
}

func runConfigShow(cmd *cobra.Command, format string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), cfg, format)
}

// writeConfig prints cfg as yaml or json.
func writeConfig(out io.Writer, cfg *config.Config, format string) error {
	var text string
	switch format {
	case "yaml":
		y, err := cfg.ToYAML()
		if err != nil {
			return err
		}
		text = y
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding config as json: %w", err)
		}
		text = string(data) + "\n"
	default:
		return fmt.Errorf("unsupported output %q: use yaml or json", format)
	}
	_, err := io.WriteString(out, text)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobal()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s in %s.\n", key, value, config.ConfigPath())
	return nil
}
