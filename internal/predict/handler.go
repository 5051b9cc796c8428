package predict

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-sod/knn/internal/batch"
	"github.com/go-sod/knn/internal/evaluate"
	"github.com/go-sod/knn/internal/geom"
	"github.com/go-sod/knn/internal/httputil"
	"github.com/go-sod/knn/internal/logging"
	"github.com/go-sod/knn/internal/predictor"
	"github.com/google/uuid"
)

type classifyRequest struct {
	K     *int        `json:"k"`
	Chips [][]float64 `json:"chips"`
	Mesh  [][]float64 `json:"mesh"`
}

type classifyResponse struct {
	RequestID string `json:"requestId"`
	Labels    []int  `json:"labels"`
}

type errorsRequest struct {
	K     *int        `json:"k"`
	Chips [][]float64 `json:"chips"`
}

type errorsResponse struct {
	RequestID string  `json:"requestId"`
	Errors    int     `json:"errors"`
	Rate      float64 `json:"rate"`
}

type regressRequest struct {
	K       *int        `json:"k"`
	Samples [][]float64 `json:"samples"`
	Xs      []float64   `json:"xs,omitempty"`
}

type regressResponse struct {
	RequestID   string    `json:"requestId"`
	Predictions []float64 `json:"predictions"`
	MSE         *float64  `json:"mse,omitempty"`
}

// NewHandler serves /classify, /errors and /regress.
func NewHandler(cfg *Config, predictCfg *predictor.Config) (http.Handler, error) {
	distFn, err := predictCfg.DistanceFunc()
	if err != nil {
		return nil, fmt.Errorf("unable to create predict handler: %w", err)
	}
	h := &handler{
		cfg:     cfg,
		k:       predictCfg.KNum,
		workers: predictCfg.Workers,
		distFn:  distFn,
	}
	mux := http.NewServeMux()
	mux.Handle("/classify", h.wrap(h.classify))
	mux.Handle("/errors", h.wrap(h.countErrors))
	mux.Handle("/regress", h.wrap(h.regress))
	return mux, nil
}

type handler struct {
	cfg     *Config
	k       int
	workers int
	distFn  geom.DistanceFn
}

// wrap bounds the request by the configured timeout and tags its logger with a request id.
func (h *handler) wrap(fn func(ctx context.Context, reqID string, w http.ResponseWriter, r *http.Request)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
		defer cancel()
		reqID := uuid.New().String()
		logger := logging.FromContext(ctx).With("requestId", reqID, "path", r.URL.Path)
		ctx = logging.WithLogger(ctx, logger)
		fn(ctx, reqID, w, r)
	})
}

func (h *handler) kOrDefault(k *int) int {
	if k == nil {
		return h.k
	}
	return *k
}

func (h *handler) opts() []batch.Option {
	return []batch.Option{batch.WithWorkers(h.workers), batch.WithDistance(h.distFn)}
}

func (h *handler) tooLarge(ctx context.Context, w http.ResponseWriter, n int) bool {
	if n > h.cfg.MaxDataItemsLen {
		httputil.RespBadRequest(ctx, w, "data items is too large, max allowed len is %d", h.cfg.MaxDataItemsLen)
		return true
	}
	return false
}

func (h *handler) classify(ctx context.Context, reqID string, w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if !httputil.DecodeJSONBody(ctx, w, r, &req) {
		return
	}
	if h.tooLarge(ctx, w, len(req.Chips)+len(req.Mesh)) {
		return
	}
	chips, err := geom.ChipsFromRows(req.Chips)
	if err != nil {
		httputil.RespPredictErr(ctx, w, fmt.Errorf("chips: %w", err))
		return
	}
	mesh := make([]geom.Point, len(req.Mesh))
	for i := range req.Mesh {
		p, err := geom.PointFromRow(req.Mesh[i])
		if err != nil {
			httputil.RespPredictErr(ctx, w, fmt.Errorf("mesh row %d: %w", i, err))
			return
		}
		mesh[i] = p
	}

	labels, err := batch.ClassifyMesh(ctx, h.kOrDefault(req.K), chips, mesh, h.opts()...)
	if err != nil {
		httputil.RespPredictErr(ctx, w, err)
		return
	}
	resp := classifyResponse{RequestID: reqID, Labels: make([]int, len(labels))}
	for i := range labels {
		v, err := labels[i].Int()
		if err != nil {
			httputil.RespPredictErr(ctx, w, err)
			return
		}
		resp.Labels[i] = v
	}
	httputil.RespJSON(ctx, w, resp)
}

func (h *handler) countErrors(ctx context.Context, reqID string, w http.ResponseWriter, r *http.Request) {
	var req errorsRequest
	if !httputil.DecodeJSONBody(ctx, w, r, &req) {
		return
	}
	if h.tooLarge(ctx, w, len(req.Chips)) {
		return
	}
	chips, err := geom.ChipsFromRows(req.Chips)
	if err != nil {
		httputil.RespPredictErr(ctx, w, fmt.Errorf("chips: %w", err))
		return
	}
	report, err := evaluate.Report(h.kOrDefault(req.K), chips, h.distFn)
	if err != nil {
		httputil.RespPredictErr(ctx, w, err)
		return
	}
	httputil.RespJSON(ctx, w, errorsResponse{
		RequestID: reqID,
		Errors:    report.Count,
		Rate:      report.Rate,
	})
}

func (h *handler) regress(ctx context.Context, reqID string, w http.ResponseWriter, r *http.Request) {
	var req regressRequest
	if !httputil.DecodeJSONBody(ctx, w, r, &req) {
		return
	}
	if h.tooLarge(ctx, w, len(req.Samples)+len(req.Xs)) {
		return
	}
	samples, err := geom.SamplesFromRows(req.Samples)
	if err != nil {
		httputil.RespPredictErr(ctx, w, fmt.Errorf("samples: %w", err))
		return
	}
	k := h.kOrDefault(req.K)
	resp := regressResponse{RequestID: reqID}
	if req.Xs != nil {
		resp.Predictions, err = batch.PredictXs(ctx, k, samples, req.Xs, h.opts()...)
		if err != nil {
			httputil.RespPredictErr(ctx, w, err)
			return
		}
		httputil.RespJSON(ctx, w, resp)
		return
	}

	resp.Predictions, err = batch.PredictSet(ctx, k, samples, h.opts()...)
	if err != nil {
		httputil.RespPredictErr(ctx, w, err)
		return
	}
	actual := make([]float64, len(samples))
	for i := range samples {
		actual[i] = samples[i].Y
	}
	mse, err := evaluate.MSE(actual, resp.Predictions)
	if err != nil {
		httputil.RespPredictErr(ctx, w, err)
		return
	}
	resp.MSE = &mse
	httputil.RespJSON(ctx, w, resp)
}
