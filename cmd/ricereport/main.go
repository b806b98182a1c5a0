// Ricereport is the offline companion to the server: it loads one price
// table and writes the derived views to disk.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ricepulse/internal/config"
	"ricepulse/internal/dataprocessing"
	"ricepulse/internal/exporter"
	"ricepulse/internal/infrastructure"
	"ricepulse/internal/services"
	"ricepulse/pkg/contracts"
)

var (
	inputPath string
	outDir    string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "ricereport",
	Short: "Generate rice-price reports from a commodity price table",
	Long: `ricereport ingests one "Tabel Harga Berdasarkan Komoditas" file
(Excel or CSV), cleans and reshapes it, and writes the long-form
observations, per-province descriptive statistics and province averages
into the output directory.`,
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Load a price table and write the derived reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(contracts.GetVersionString())
	},
}

func init() {
	processCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the Excel/CSV price table (required)")
	processCmd.Flags().StringVarP(&outDir, "out-dir", "o", "reports", "directory for the generated reports")
	_ = processCmd.MarkFlagRequired("input")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(versionCmd)
}

func runProcess(ctx context.Context) error {
	logger := infrastructure.NewLogger(config.LoggingConfig{
		Level:  logLevel,
		Format: "text",
		Output: "stderr",
	})

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	loader := dataprocessing.NewLoader(logger, dataprocessing.DefaultLoaderConfig())
	service := services.NewAnalysisService(loader, logger, nil)

	payload, err := service.Analyze(ctx, file)
	if err != nil {
		return err
	}

	writer := exporter.NewWriter(logger, outDir)
	if err := writer.WriteObservationsCSV("observations.csv", payload.Observations); err != nil {
		return err
	}
	if err := writer.WriteAveragesCSV("province_averages.csv", payload.ProvinceAverages); err != nil {
		return err
	}
	if err := writer.WriteStatsJSON("statistics.json", payload); err != nil {
		return err
	}

	fmt.Printf("wrote %d observations for %d provinces to %s\n",
		len(payload.Observations), len(payload.Provinces), outDir)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
