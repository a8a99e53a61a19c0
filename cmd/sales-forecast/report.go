package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-forecast/pkg/utils"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full sales report as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.forecaster.BuildReport(cmd.Context())
		if err != nil {
			return err
		}

		return utils.WritePrettyJSON(cmd.OutOrStdout(), report)
	},
}
