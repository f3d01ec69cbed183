package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Toyfriendo/Tax-Calculator/internal/config"
	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
	"github.com/Toyfriendo/Tax-Calculator/internal/output"
)

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect saved rate profiles",
	}
	cmd.AddCommand(profilesListCmd())
	cmd.AddCommand(profilesShowCmd())
	return cmd
}

func profilesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := loadProfiles()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(profiles))
			for name := range profiles {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				p := profiles[name]
				switch p.Mode {
				case domain.ModeProgressive:
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (%d brackets)\n", name, p.Mode, len(p.Brackets))
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\n", name, p.Mode, output.FormatPercent(p.FlatRate))
				}
			}
			return nil
		},
	}
}

func profilesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one profile's rate schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := loadProfiles()
			if err != nil {
				return err
			}

			p, ok := profiles[args[0]]
			if !ok {
				return fmt.Errorf("no profile named %q", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\nMode: %s\n", p.Name, p.Mode)
			if p.Mode == domain.ModeProgressive {
				for _, b := range p.Brackets {
					if b.Unbounded() {
						fmt.Fprintf(cmd.OutOrStdout(), "  above all bounds\t%s\n", output.FormatPercent(b.Rate))
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  up to %s\t%s\n", b.UpTo.String(), output.FormatPercent(b.Rate))
				}
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Flat Rate: %s\n", output.FormatPercent(p.FlatRate))
			return nil
		},
	}
}

func loadProfiles() (map[string]domain.Profile, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	return config.NewProfileStore(settings.ProfilePath).Load()
}
