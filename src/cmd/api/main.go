package main

import (
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/strategy-analyzer/src/router"
	"github.com/jiaming2012/strategy-analyzer/src/utils"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/api/main.go",
	Short: "Serve the strategy analytics HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		port, err := cmd.Flags().GetString("port")
		if err != nil {
			log.Fatalf("error getting port: %v", err)
		}

		if err := Run(port); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(port string) error {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	r := router.Setup()

	log.Infof("Strategy analytics API listening on :%s", port)

	if err := http.ListenAndServe(fmt.Sprintf(":%s", port), r); err != nil {
		return fmt.Errorf("Run: server stopped: %w", err)
	}

	return nil
}

func main() {
	runCmd.PersistentFlags().String("port", "", "Port to listen on. Defaults to the PORT env var, then 8080.")

	runCmd.Execute()
}
