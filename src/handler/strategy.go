package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/strategy-analyzer/src/optionmodels"
	"github.com/jiaming2012/strategy-analyzer/src/optionservices"
)

type AnalyzeRequest struct {
	Legs           []optionmodels.OptionLegDTO `json:"legs"`
	AssetPrice     *float64                    `json:"asset_price"`
	MarginRequired *float64                    `json:"margin_required"`
}

type ChartRequest struct {
	Legs       []optionmodels.OptionLegDTO `json:"legs"`
	StartPrice *float64                    `json:"start_price"`
	EndPrice   *float64                    `json:"end_price"`
	Step       *float64                    `json:"step"`
}

type ChartResponse struct {
	Points      []optionmodels.ChartPoint     `json:"points"`
	Annotations optionmodels.ChartAnnotations `json:"annotations"`
}

// ClassifyQueryDTO carries one leg per index across the parallel query
// params, e.g. ?action=buy&action=sell&strike=100&strike=105.
type ClassifyQueryDTO struct {
	Action     []string `schema:"action"`
	OptionType []string `schema:"option_type"`
	Strike     []string `schema:"strike"`
	Premium    []string `schema:"premium"`
	Contracts  []string `schema:"contracts"`
}

// AnalyzeFormDTO is the form-encoded shape of an analyze request: the same
// parallel leg params as the classify query plus the optional scalars.
type AnalyzeFormDTO struct {
	Action         []string `schema:"action"`
	OptionType     []string `schema:"option_type"`
	Strike         []string `schema:"strike"`
	Premium        []string `schema:"premium"`
	Contracts      []string `schema:"contracts"`
	AssetPrice     *float64 `schema:"asset_price"`
	MarginRequired *float64 `schema:"margin_required"`
}

func (f AnalyzeFormDTO) ToAnalyzeRequest() AnalyzeRequest {
	query := ClassifyQueryDTO{
		Action:     f.Action,
		OptionType: f.OptionType,
		Strike:     f.Strike,
		Premium:    f.Premium,
		Contracts:  f.Contracts,
	}

	return AnalyzeRequest{
		Legs:           query.ToOptionLegDTOs(),
		AssetPrice:     f.AssetPrice,
		MarginRequired: f.MarginRequired,
	}
}

type errorResponse struct {
	Type string `json:"type"`
	Msg  string `json:"message"`
}

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("setResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(errType string, statusCode int, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := errorResponse{Type: errType, Msg: err.Error()}
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		log.Errorf("setErrorResponse: encode: %v", encodeErr)
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := setResponse(map[string]interface{}{"status": "ok"}, w); err != nil {
		log.Errorf("HealthHandler: failed to set response: %v", err)
	}
}

func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New()

	var req AnalyzeRequest

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			log.Errorf("AnalyzeHandler: %s: failed to parse form: %v", requestID, err)
			setErrorResponse("AnalyzeHandler: failed to parse form", 400, err, w)
			return
		}

		var form AnalyzeFormDTO
		decoder := schema.NewDecoder()
		decoder.IgnoreUnknownKeys(true)
		if err := decoder.Decode(&form, r.PostForm); err != nil {
			log.Errorf("AnalyzeHandler: %s: failed to decode form: %v", requestID, err)
			setErrorResponse("AnalyzeHandler: failed to decode form", 400, err, w)
			return
		}

		req = form.ToAnalyzeRequest()
	default:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("AnalyzeHandler: %s: failed to decode request: %v", requestID, err)
			setErrorResponse("AnalyzeHandler: failed to decode request", 400, err, w)
			return
		}
	}

	legs := optionmodels.ConvertToOptionLegs(req.Legs)
	metrics := optionservices.ComputeMetrics(legs, req.AssetPrice, req.MarginRequired)

	log.Infof("AnalyzeHandler: %s: classified %d legs as %s", requestID, len(legs), metrics.Classification.Name)

	if err := setResponse(metrics, w); err != nil {
		log.Errorf("AnalyzeHandler: %s: failed to set response: %v", requestID, err)
	}
}

func ChartHandler(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New()

	var req ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("ChartHandler: %s: failed to decode request: %v", requestID, err)
		setErrorResponse("ChartHandler: failed to decode request", 400, err, w)
		return
	}

	legs := optionmodels.ConvertToOptionLegs(req.Legs)

	start, end := optionservices.SamplingRange(legs)
	if req.StartPrice != nil {
		start = *req.StartPrice
	}
	if req.EndPrice != nil {
		end = *req.EndPrice
	}

	step := (end - start) / 100
	if req.Step != nil && *req.Step > 0 {
		step = *req.Step
	}

	points := optionservices.BuildCurve(legs, start, end, step)

	log.Infof("ChartHandler: %s: sampled %d points over [%.2f, %.2f]", requestID, len(points), start, end)

	response := ChartResponse{
		Points:      points,
		Annotations: optionservices.ExtractAnnotations(points),
	}

	if err := setResponse(response, w); err != nil {
		log.Errorf("ChartHandler: %s: failed to set response: %v", requestID, err)
	}
}

func ClassifyHandler(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New()

	var query ClassifyQueryDTO
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		log.Errorf("ClassifyHandler: %s: failed to decode query: %v", requestID, err)
		setErrorResponse("ClassifyHandler: failed to decode query", 400, err, w)
		return
	}

	legs := optionmodels.ConvertToOptionLegs(query.ToOptionLegDTOs())
	classification := optionservices.ClassifyStrategy(legs)

	log.Infof("ClassifyHandler: %s: classified %d legs as %s", requestID, len(legs), classification.Name)

	if err := setResponse(classification, w); err != nil {
		log.Errorf("ClassifyHandler: %s: failed to set response: %v", requestID, err)
	}
}

// ToOptionLegDTOs zips the parallel query params into leg DTOs; missing
// fields at an index coerce to the usual defaults.
func (q ClassifyQueryDTO) ToOptionLegDTOs() []optionmodels.OptionLegDTO {
	count := len(q.Action)
	if len(q.OptionType) > count {
		count = len(q.OptionType)
	}
	if len(q.Strike) > count {
		count = len(q.Strike)
	}
	if len(q.Premium) > count {
		count = len(q.Premium)
	}
	if len(q.Contracts) > count {
		count = len(q.Contracts)
	}

	dtos := make([]optionmodels.OptionLegDTO, 0, count)
	for i := 0; i < count; i++ {
		dto := optionmodels.OptionLegDTO{}
		if i < len(q.Action) {
			dto.Action = q.Action[i]
		}
		if i < len(q.OptionType) {
			dto.OptionType = q.OptionType[i]
		}
		if i < len(q.Strike) {
			dto.Strike = q.Strike[i]
		}
		if i < len(q.Premium) {
			dto.Premium = q.Premium[i]
		}
		if i < len(q.Contracts) {
			dto.Contracts = q.Contracts[i]
		}

		dtos = append(dtos, dto)
	}

	return dtos
}
