package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dongsukag/morse-code/am"
	"github.com/dongsukag/morse-code/display"
	"github.com/dongsukag/morse-code/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:     "am",
	Aliases: []string{"config"},
	Short:   "Manage morse configuration",
	Long: `Display and check morse configuration.

Configuration sources (later overrides earlier):
1. Default values
2. System config (/etc/morse/morse.toml)
3. User config (~/.morse/morse.toml)
4. Project config (./morse.toml, searched upward)
5. Environment variables (MORSE_* prefix)

Examples:
  morse am show                  # Show current configuration
  morse am show --format json    # Show configuration in JSON format
  morse am get cli.mode          # Get specific config value
  morse am check ./morse.toml    # Report unknown keys in a file`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the merged morse configuration from all sources",
	Args:  cobra.NoArgs,
	RunE:  runAmShow,
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., cli.mode, log.theme)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmGet,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Args:  cobra.NoArgs,
	RunE:  runAmValidate,
}

var amCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a config file for unknown keys",
	Long: `Decode a config file strictly and list keys morse does not recognize.
Misspelled keys are otherwise ignored silently.`,
	Args: cobra.ExactArgs(1),
	RunE: runAmCheck,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long: `Show the configuration cascade and which files were checked,
lowest precedence first.`,
	Args: cobra.NoArgs,
	RunE: runAmWhere,
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", display.FormatTOML, "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amCheckCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := display.Marshal(configFormat, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if configFormat != display.FormatJSON {
		fmt.Fprintln(out, "# morse configuration")
	}
	_, err = out.Write(data)
	return err
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !am.IsSet(key) {
		return errors.WithHint(
			errors.NewNotFoundError("config key %q", key),
			"run 'morse am show' to list available keys")
	}

	fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}

func runAmCheck(cmd *cobra.Command, args []string) error {
	unknown, err := am.CheckFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(unknown) == 0 {
		fmt.Fprintf(out, "✓ %s has no unknown keys\n", args[0])
		return nil
	}

	fmt.Fprintf(out, "%s has %d unknown key(s):\n", args[0], len(unknown))
	for _, key := range unknown {
		fmt.Fprintf(out, "  %s\n", key)
	}
	return errors.NewInvalidRequestError("unknown keys: %s", strings.Join(unknown, ", "))
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  [DEFAULT]  Built-in defaults")

	for _, f := range am.Files() {
		status := "missing"
		switch {
		case f.Loaded:
			status = "loaded"
		case f.Exists:
			status = "unreadable"
		}
		fmt.Fprintf(out, "  [%s]  %s (%s)\n", strings.ToUpper(f.Source), f.Path, status)
	}

	fmt.Fprintf(out, "  [ENV]      %s_* environment variables\n", am.EnvPrefix)
	return nil
}
