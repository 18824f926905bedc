package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/formcheck/internal/config"
	"github.com/thoreinstein/formcheck/internal/editor"
	"github.com/thoreinstein/formcheck/internal/errors"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage formcheck configuration",
	Long: `Manage formcheck configuration stored in ./config.yaml or
$XDG_CONFIG_HOME/formcheck/config.yaml.

Without a subcommand, lists the effective configuration.`,
	Example: `  formcheck config
  formcheck config get output
  formcheck config set empty_content validate

  See Also: formcheck config edit`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file. The value is
validated before anything is written.`,
	Example: `  formcheck config set initial_notification silent
  formcheck config set output json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective configuration",
	RunE:  runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	Long: `Open the configuration file in your editor, writing the defaults first if
no file exists yet.`,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	v, err := currentConfig().Get(args[0])
	if err != nil {
		return errors.NewUserError(err, fmt.Sprintf("Valid keys: %v", config.Keys()))
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg := *currentConfig()
	if err := cfg.Set(key, value); err != nil {
		return errors.NewUserError(err, fmt.Sprintf("Valid keys: %v", config.Keys()))
	}

	path := config.WritePath()
	if err := config.Save(&cfg, path); err != nil {
		if errors.Is(err, errors.ErrInvalidConfig) {
			return errors.NewUserError(err, "")
		}
		return errors.NewSystemError(err, "")
	}
	appConfig = &cfg

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, path)
	}
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(currentConfig())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	out := cmd.OutOrStdout()
	if used := config.FileUsed(); used != "" {
		fmt.Fprintf(out, "# %s\n", used)
	} else {
		fmt.Fprintln(out, "# defaults (no config file)")
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := config.WritePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.Save(currentConfig(), path); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	streams := editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := editor.Open(cmd.Context(), path, streams, os.Getenv); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your editor command")
	}

	config.Init()
	if _, err := config.Load(path); err != nil {
		return errors.NewConfigError(err)
	}
	return nil
}
