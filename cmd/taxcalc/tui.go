package main

import (
	"github.com/spf13/cobra"

	"github.com/Toyfriendo/Tax-Calculator/internal/config"
	"github.com/Toyfriendo/Tax-Calculator/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive calculator form",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			store := config.NewProfileStore(settings.ProfilePath)
			return tui.Run(settings, store)
		},
	}
}
