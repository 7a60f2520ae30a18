package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/astradev123/obsidian-focus-time/internal/application"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [show|set]",
	Short: "Show or change plugin settings",
	Long: `Show or change the settings stored in the plugin data blob. The
Obsidian plugin reads the same blob, so changes apply there too.

Settings:
  strict-mode   suspend tracking while the window is unfocused (true/false)
  language      display language tag (e.g. en, zh)

Examples:
  focustime-cli settings show
  focustime-cli settings set strict-mode false
  focustime-cli settings set language zh`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetPlugin().Store
		fmt.Printf("strict-mode  %t\n", store.StrictMode())
		lang := store.Language()
		if lang == "" {
			lang = "(unset)"
		}
		fmt.Printf("language     %s\n", lang)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, value := args[0], args[1]
		store := GetPlugin().Store

		switch name {
		case "strict-mode":
			strict, err := strconv.ParseBool(value)
			if err != nil {
				return &application.ValidationError{Field: "strict-mode", Message: "want true or false"}
			}
			if err := store.SetStrictMode(strict); err != nil {
				return err
			}
			fmt.Printf("strict-mode set to %t\n", strict)
			return nil

		case "language":
			if err := application.ValidateRequired("language", value); err != nil {
				return err
			}
			if err := store.SetLanguage(value); err != nil {
				return err
			}
			fmt.Printf("language set to %s\n", value)
			return nil

		default:
			return fmt.Errorf("unknown setting %q (want strict-mode or language)", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
