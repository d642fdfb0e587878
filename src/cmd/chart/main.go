package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/strategy-analyzer/src/export"
	"github.com/jiaming2012/strategy-analyzer/src/optionmodels"
	"github.com/jiaming2012/strategy-analyzer/src/optionservices"
	"github.com/jiaming2012/strategy-analyzer/src/utils"
)

type RunArgs struct {
	StrategyFile string
	CsvOutFile   string
	StartPrice   float64
	EndPrice     float64
	Step         float64
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/chart/main.go --file strategy.yaml --out curve.csv",
	Short: "Sample the payoff curve of an options strategy and export it as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		strategyFile, err := cmd.Flags().GetString("file")
		if err != nil {
			log.Fatalf("error getting file: %v", err)
		}

		csvOutFile, err := cmd.Flags().GetString("out")
		if err != nil {
			log.Fatalf("error getting out: %v", err)
		}

		startPrice, err := cmd.Flags().GetFloat64("start")
		if err != nil {
			log.Fatalf("error getting start: %v", err)
		}

		endPrice, err := cmd.Flags().GetFloat64("end")
		if err != nil {
			log.Fatalf("error getting end: %v", err)
		}

		step, err := cmd.Flags().GetFloat64("step")
		if err != nil {
			log.Fatalf("error getting step: %v", err)
		}

		if err := Run(RunArgs{
			StrategyFile: strategyFile,
			CsvOutFile:   csvOutFile,
			StartPrice:   startPrice,
			EndPrice:     endPrice,
			Step:         step,
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

	start, end := args.StartPrice, args.EndPrice
	if end <= start {
		start, end = optionservices.SamplingRange(legs)
	}

	step := args.Step
	if step <= 0 {
		step = (end - start) / 100
	}

	points := optionservices.BuildCurve(legs, start, end, step)
	annotations := optionservices.ExtractAnnotations(points)

	log.Infof("Sampled %d points over [%.2f, %.2f]; max payoff %.2f, min payoff %.2f",
		len(points), start, end, annotations.MaxPayoff, annotations.MinPayoff)

	if err := export.ExportCurveToCsv(points, args.CsvOutFile); err != nil {
		return fmt.Errorf("error exporting curve: %v", err)
	}

	return nil
}

func main() {
	runCmd.PersistentFlags().String("file", "", "Path to the strategy yaml file.")
	runCmd.PersistentFlags().String("out", "", "Path to write the sampled curve CSV.")
	runCmd.PersistentFlags().Float64("start", 0, "Start of the sampling range. Defaults to the metrics sampling range.")
	runCmd.PersistentFlags().Float64("end", 0, "End of the sampling range. Defaults to the metrics sampling range.")
	runCmd.PersistentFlags().Float64("step", 0, "Grid step. Defaults to a 100-point grid.")

	runCmd.MarkPersistentFlagRequired("file")
	runCmd.MarkPersistentFlagRequired("out")

	runCmd.Execute()
}
