package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/strategy-analyzer/src/optionmodels"
)

type MetricsCsvRowDTO struct {
	Strategy   string  `csv:"strategy"`
	Category   string  `csv:"category"`
	Direction  string  `csv:"direction"`
	NetPremium float64 `csv:"net_premium"`
	MaxProfit  string  `csv:"max_profit"`
	MaxLoss    string  `csv:"max_loss"`
	Breakevens string  `csv:"breakevens"`
	Roi        float64 `csv:"roi"`
}

type CurveCsvRowDTO struct {
	Price  float64 `csv:"price"`
	Payoff float64 `csv:"payoff"`
}

func NewMetricsCsvRowDTO(metrics optionmodels.StrategyMetrics) MetricsCsvRowDTO {
	breakevens := make([]string, 0, len(metrics.Breakevens))
	for _, breakeven := range metrics.Breakevens {
		breakevens = append(breakevens, fmt.Sprintf("%.2f", breakeven))
	}

	return MetricsCsvRowDTO{
		Strategy:   metrics.Classification.Name,
		Category:   string(metrics.Classification.Category),
		Direction:  string(metrics.Classification.Direction),
		NetPremium: metrics.NetPremium,
		MaxProfit:  metrics.MaxProfit.String(),
		MaxLoss:    metrics.MaxLoss.String(),
		Breakevens: strings.Join(breakevens, ";"),
		Roi:        metrics.Roi,
	}
}

func ExportMetricsToCsv(metrics optionmodels.StrategyMetrics, outFile string) error {
	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("ExportMetricsToCsv: error creating CSV file: %v", err)
	}

	defer file.Close()

	rows := []MetricsCsvRowDTO{NewMetricsCsvRowDTO(metrics)}
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("ExportMetricsToCsv: failed to marshal CSV: %v", err)
	}

	log.Infof("Exported %s metrics to %s", metrics.Classification.Name, outFile)

	return nil
}

func ExportCurveToCsv(points []optionmodels.ChartPoint, outFile string) error {
	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("ExportCurveToCsv: error creating CSV file: %v", err)
	}

	defer file.Close()

	rows := make([]CurveCsvRowDTO, 0, len(points))
	for _, point := range points {
		rows = append(rows, CurveCsvRowDTO{Price: point.Price, Payoff: point.Payoff})
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("ExportCurveToCsv: failed to marshal CSV: %v", err)
	}

	log.Infof("Exported %d curve points to %s", len(rows), outFile)

	return nil
}
