package router

import (
	"github.com/gorilla/mux"

	"github.com/jiaming2012/strategy-analyzer/src/handler"
)

func Setup() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", handler.HealthHandler).Methods("GET")
	r.HandleFunc("/strategies/analyze", handler.AnalyzeHandler).Methods("POST")
	r.HandleFunc("/strategies/chart", handler.ChartHandler).Methods("POST")
	r.HandleFunc("/strategies/classify", handler.ClassifyHandler).Methods("GET")

	return r
}
