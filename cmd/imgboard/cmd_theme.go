package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			theme, err := a.store.Theme()
			if err != nil {
				return err
			}
			if theme == "" {
				theme = "default"
			}
			fmt.Println(theme)
			return nil
		}
		if err := a.store.SetTheme(args[0]); err != nil {
			return err
		}
		fmt.Printf("theme set to %s\n", args[0])
		return nil
	},
}
