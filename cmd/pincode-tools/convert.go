package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pincode-tools/internal/pincode"
	"github.com/pdiddy/pincode-tools/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert postal-code tables into JSON lookup artifacts",
	Long: `Convert reads a government postal-code table (CSV or XLSX) and writes
pincodes.json (ordered array), index.json (pincode -> record), and, when a
bank serviceability table is supplied, bank_serviceability.json
(pincode -> ordered [{bank,status}]).

Rows whose pincode is empty after trimming are dropped. When several rows
share a pincode, the array keeps all of them in input order and the index
keeps the last.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("pincsv", "", "path to the postal-code table (CSV or XLSX)")
	convertCmd.Flags().String("bankcsv", "", "path to the bank serviceability table (optional)")
	convertCmd.Flags().String("outdir", "mock-api", "output directory for the artifacts")
	convertCmd.Flags().Bool("report", false, "also write convert_report.yaml summarizing the run")
	convertCmd.Flags().Bool("sqlite", false, "also write pincodes.db, a SQLite lookup artifact")
	convertCmd.MarkFlagRequired("pincsv")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	return pincode.Run(convertConfig(cmd), os.Stdout)
}

// convertConfig assembles the run configuration from flags, falling
// back to config-file values for flags the user did not set.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.ConvertConfig{}
	cfg.PincodePath, _ = cmd.Flags().GetString("pincsv")
	cfg.BankPath, _ = cmd.Flags().GetString("bankcsv")
	cfg.OutDir, _ = cmd.Flags().GetString("outdir")
	cfg.Report, _ = cmd.Flags().GetBool("report")
	cfg.SQLite, _ = cmd.Flags().GetBool("sqlite")

	if !cmd.Flags().Changed("outdir") && viper.IsSet("outdir") {
		cfg.OutDir = viper.GetString("outdir")
	}
	if !cmd.Flags().Changed("report") && viper.IsSet("report") {
		cfg.Report = viper.GetBool("report")
	}
	if !cmd.Flags().Changed("sqlite") && viper.IsSet("sqlite") {
		cfg.SQLite = viper.GetBool("sqlite")
	}
	return cfg
}
