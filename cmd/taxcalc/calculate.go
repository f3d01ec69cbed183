package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Toyfriendo/Tax-Calculator/internal/calculation"
	"github.com/Toyfriendo/Tax-Calculator/internal/config"
	"github.com/Toyfriendo/Tax-Calculator/internal/domain"
	"github.com/Toyfriendo/Tax-Calculator/internal/output"
)

func calculateCmd() *cobra.Command {
	var (
		incomeFlag     string
		deductionsFlag string
		currencyFlag   string
		profileFlag    string
		flatRateFlag   string
		bracketFlags   []string
		formatFlag     string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute tax for a single income",
		Long: "Computes taxable income, total tax, net income, effective rate " +
			"and marginal rate. The rate policy comes from --profile, from " +
			"repeated --bracket flags (progressive), or from --flat-rate.",
		Example: `  taxcalc calculate --income 60000 --flat-rate 10
  taxcalc calculate --income 60000 --bracket 10000:5 --bracket 30000:10 --bracket 80000:20 --bracket :30
  taxcalc calculate --income 60000 --profile "Sample Progressive" --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			income, err := config.ParseAmount(incomeFlag)
			if err != nil {
				return err
			}
			deductions, err := config.ParseAmount(deductionsFlag)
			if err != nil {
				return err
			}

			schedule, err := resolveSchedule(settings, profileFlag, bracketFlags, flatRateFlag)
			if err != nil {
				return err
			}

			symbol := currencyFlag
			if symbol == "" {
				symbol = settings.CurrencySymbol
			}

			result := calculation.Calculate(domain.CalculationInput{
				GrossIncome:    income,
				Deductions:     deductions,
				CurrencySymbol: symbol,
				Schedule:       schedule,
			})

			f := output.GetFormatterByName(formatFlag)
			if f == nil {
				return fmt.Errorf("unknown output format %q", formatFlag)
			}
			data, err := f.Format(result, symbol)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&incomeFlag, "income", "", "gross income (required)")
	cmd.Flags().StringVar(&deductionsFlag, "deductions", "0", "deductions subtracted before tax")
	cmd.Flags().StringVar(&currencyFlag, "currency", "", "currency symbol for display")
	cmd.Flags().StringVar(&profileFlag, "profile", "", "compute under a saved profile")
	cmd.Flags().StringVar(&flatRateFlag, "flat-rate", "", "flat tax rate in percent")
	cmd.Flags().StringArrayVar(&bracketFlags, "bracket", nil,
		"progressive bracket as up_to:rate; blank up_to means unbounded (repeatable)")
	cmd.Flags().StringVar(&formatFlag, "format", "console", "output format: console or json")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}

// resolveSchedule picks the rate policy: a saved profile wins, then explicit
// brackets, then a flat rate
func resolveSchedule(settings config.Settings, profileName string, bracketFlags []string, flatRate string) (domain.Schedule, error) {
	if profileName != "" {
		store := config.NewProfileStore(settings.ProfilePath)
		profiles, err := store.Load()
		if err != nil {
			return nil, err
		}
		p, ok := profiles[profileName]
		if !ok {
			return nil, fmt.Errorf("no profile named %q", profileName)
		}
		return p.Schedule(), nil
	}

	if len(bracketFlags) > 0 {
		fields := make([]config.BracketField, 0, len(bracketFlags))
		for _, flag := range bracketFlags {
			upTo, rate, found := strings.Cut(flag, ":")
			if !found {
				return nil, fmt.Errorf("bracket %q must be up_to:rate", flag)
			}
			fields = append(fields, config.BracketField{UpTo: upTo, Rate: rate})
		}
		return config.ParseBrackets(fields)
	}

	if flatRate == "" {
		return nil, fmt.Errorf("no rate policy given: use --profile, --bracket, or --flat-rate")
	}
	return config.ParseFlatRate(flatRate)
}
