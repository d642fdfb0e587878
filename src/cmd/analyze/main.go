package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/strategy-analyzer/src/export"
	"github.com/jiaming2012/strategy-analyzer/src/optionmodels"
	"github.com/jiaming2012/strategy-analyzer/src/optionservices"
	"github.com/jiaming2012/strategy-analyzer/src/utils"
)

type RunArgs struct {
	StrategyFile string
	CsvOutFile   string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/analyze/main.go --file strategy.yaml",
	Short: "Analyze an options strategy file and print its risk/reward metrics",
	Run: func(cmd *cobra.Command, args []string) {
		strategyFile, err := cmd.Flags().GetString("file")
		if err != nil {
			log.Fatalf("error getting file: %v", err)
		}

		csvOutFile, err := cmd.Flags().GetString("csv-out")
		if err != nil {
			log.Fatalf("error getting csv-out: %v", err)
		}

		if err := Run(RunArgs{
			StrategyFile: strategyFile,
			CsvOutFile:   csvOutFile,
		}); err != nil {
			log.Errorf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	strategy, err := optionmodels.LoadStrategyYAML(args.StrategyFile)
	if err != nil {
		return fmt.Errorf("error loading strategy file: %v", err)
	}

	legs := optionmodels.ConvertToOptionLegs(strategy.Legs)
	metrics := optionservices.ComputeMetrics(legs, strategy.AssetPrice, strategy.MarginRequired)

	fmt.Println(renderMetrics(strategy.Name, metrics))

	if args.CsvOutFile != "" {
		if err := export.ExportMetricsToCsv(metrics, args.CsvOutFile); err != nil {
			return fmt.Errorf("error exporting metrics: %v", err)
		}
	}

	return nil
}

func renderMetrics(name string, metrics optionmodels.StrategyMetrics) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	if name != "" {
		display.WriteString(name + "\n")
	}

	table := tablewriter.NewWriter(display)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	breakevens := make([]string, 0, len(metrics.Breakevens))
	for _, breakeven := range metrics.Breakevens {
		breakevens = append(breakevens, p.Sprintf("$%.2f", breakeven))
	}

	table.Append([]string{"Strategy", metrics.Classification.Name})
	table.Append([]string{"Category", string(metrics.Classification.Category)})
	table.Append([]string{"Direction", string(metrics.Classification.Direction)})
	table.Append([]string{"Net Premium", p.Sprintf("$%.2f", metrics.NetPremium)})
	table.Append([]string{"Max Profit", formatBound(p, metrics.MaxProfit)})
	table.Append([]string{"Max Loss", formatBound(p, metrics.MaxLoss)})
	table.Append([]string{"Breakevens", strings.Join(breakevens, ", ")})
	table.Append([]string{"ROI", p.Sprintf("%.2f%%", metrics.Roi)})

	table.Render()

	if metrics.MaxProfitExplanation != "" {
		display.WriteString(metrics.MaxProfitExplanation + "\n")
	}
	if metrics.MaxLossExplanation != "" {
		display.WriteString(metrics.MaxLossExplanation + "\n")
	}

	return display.String()
}

func formatBound(p *message.Printer, bound optionmodels.ProfitBound) string {
	value, ok := bound.Value()
	if !ok {
		return "unbounded"
	}

	return p.Sprintf("$%.2f", value)
}

func main() {
	runCmd.PersistentFlags().String("file", "", "Path to the strategy yaml file.")
	runCmd.PersistentFlags().String("csv-out", "", "Optional path to export the metrics as CSV.")

	runCmd.MarkPersistentFlagRequired("file")

	runCmd.Execute()
}
