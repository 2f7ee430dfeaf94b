package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/koykov/distrib"
	"github.com/koykov/distrib/dice"
	"github.com/koykov/distrib/rng"
)

const defaultMaxDraws = 10000

// ErrTooManyDraws indicates request asks for more draws than allowed.
var ErrTooManyDraws = errors.New("too many draws requested")

// DistribHTTP serves distributions over HTTP.
type DistribHTTP struct {
	pool     *rng.Pool
	key      string
	maxDraws int
	log      *log.Logger
}

// NewDistribHTTP makes HTTP handler over providers of pool.
// Non-positive maxDraws means default limit.
func NewDistribHTTP(pool *rng.Pool, key string, maxDraws int, logger *log.Logger) *DistribHTTP {
	if logger == nil {
		logger = log.Default()
	}
	if maxDraws <= 0 {
		maxDraws = defaultMaxDraws
	}
	return &DistribHTTP{pool: pool, key: key, maxDraws: maxDraws, log: logger}
}

// Routes builds router of the service.
func (h *DistribHTTP) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/bernoulli", h.Bernoulli)
		r.Get("/int", h.UniformInt)
		r.Get("/uniform", h.Uniform)
		r.Get("/bates", h.Bates)
		r.Get("/dice/{notation}", h.Dice)
		r.Post("/shuffle", h.Shuffle)
		r.Post("/pick", h.Pick)
	})
	return r
}

func (h *DistribHTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]any{"status": "healthy"})
}

func (h *DistribHTTP) Bernoulli(w http.ResponseWriter, r *http.Request) {
	prob := .5
	if raw := r.URL.Query().Get("p"); len(raw) > 0 {
		var err error
		if prob, err = strconv.ParseFloat(raw, 64); err != nil {
			h.renderError(w, r, "bernoulli", http.StatusBadRequest, "invalid p", err)
			return
		}
	}
	p, release, err := h.provider(r)
	if err != nil {
		h.renderError(w, r, "bernoulli", http.StatusBadRequest, "invalid seed", err)
		return
	}
	defer release()
	h.renderValue(w, r, "bernoulli", p.Bernoulli(prob))
}

func (h *DistribHTTP) UniformInt(w http.ResponseWriter, r *http.Request) {
	args, err := rangeArgs(r.URL.Query(), "n", strconv.Atoi)
	if err != nil {
		h.renderError(w, r, "int", http.StatusBadRequest, "invalid arguments", err)
		return
	}
	p, release, err := h.provider(r)
	if err != nil {
		h.renderError(w, r, "int", http.StatusBadRequest, "invalid seed", err)
		return
	}
	defer release()
	x, err := p.UniformInt(args...)
	if err != nil {
		h.renderError(w, r, "int", http.StatusBadRequest, "invalid arguments", err)
		return
	}
	h.renderValue(w, r, "int", x)
}

func (h *DistribHTTP) Uniform(w http.ResponseWriter, r *http.Request) {
	args, err := rangeArgs(r.URL.Query(), "x", parseFloat)
	if err != nil {
		h.renderError(w, r, "uniform", http.StatusBadRequest, "invalid arguments", err)
		return
	}
	p, release, err := h.provider(r)
	if err != nil {
		h.renderError(w, r, "uniform", http.StatusBadRequest, "invalid seed", err)
		return
	}
	defer release()
	x, err := p.Uniform(args...)
	if err != nil {
		h.renderError(w, r, "uniform", http.StatusBadRequest, "invalid arguments", err)
		return
	}
	h.renderValue(w, r, "uniform", x)
}

func (h *DistribHTTP) Bates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		min, max = 0., 1.
		n        int
		err      error
	)
	if q.Has("min") || q.Has("max") {
		if !q.Has("min") || !q.Has("max") {
			h.renderError(w, r, "bates", http.StatusBadRequest, "invalid arguments", distrib.ErrInvalidArgument)
			return
		}
		if min, err = parseFloat(q.Get("min")); err == nil {
			max, err = parseFloat(q.Get("max"))
		}
		if err != nil {
			h.renderError(w, r, "bates", http.StatusBadRequest, "invalid range", err)
			return
		}
	}
	if q.Has("n") {
		if n, err = strconv.Atoi(q.Get("n")); err != nil {
			h.renderError(w, r, "bates", http.StatusBadRequest, "invalid n", err)
			return
		}
		if n > h.maxDraws {
			h.renderError(w, r, "bates", http.StatusBadRequest, "invalid n", fmt.Errorf("%w: %d > %d", ErrTooManyDraws, n, h.maxDraws))
			return
		}
	}
	p, release, err := h.provider(r)
	if err != nil {
		h.renderError(w, r, "bates", http.StatusBadRequest, "invalid seed", err)
		return
	}
	defer release()
	h.renderValue(w, r, "bates", p.BatesN(min, max, n))
}

func (h *DistribHTTP) Dice(w http.ResponseWriter, r *http.Request) {
	specs, err := dice.ParseSpecs(chi.URLParam(r, "notation"))
	if err != nil {
		h.renderError(w, r, "dice", http.StatusBadRequest, "invalid dice notation", err)
		return
	}
	var count int
	for _, spec := range specs {
		count += spec.Count
	}
	if count > h.maxDraws {
		h.renderError(w, r, "dice", http.StatusBadRequest, "invalid dice notation", fmt.Errorf("%w: %d > %d", ErrTooManyDraws, count, h.maxDraws))
		return
	}
	p, release, err := h.provider(r)
	if err != nil {
		h.renderError(w, r, "dice", http.StatusBadRequest, "invalid seed", err)
		return
	}
	defer release()
	result, err := dice.RollDice(p, specs...)
	if err != nil {
		h.renderError(w, r, "dice", http.StatusBadRequest, "invalid dice", err)
		return
	}
	requestMetric("dice", http.StatusOK)
	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

func (h *DistribHTTP) Shuffle(w http.ResponseWriter, r *http.Request) {
	var values []any
	if err := render.DecodeJSON(r.Body, &values); err != nil {
		h.renderError(w, r, "shuffle", http.StatusBadRequest, "invalid request body", err)
		return
	}
	p, release, err := h.provider(r)
	if err != nil {
		h.renderError(w, r, "shuffle", http.StatusBadRequest, "invalid seed", err)
		return
	}
	defer release()
	distrib.Shuffle(p, values)
	h.renderValue(w, r, "shuffle", values)
}

func (h *DistribHTTP) Pick(w http.ResponseWriter, r *http.Request) {
	var req RequestPick
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.renderError(w, r, "pick", http.StatusBadRequest, "invalid request body", err)
		return
	}
	p, release, err := h.provider(r)
	if err != nil {
		h.renderError(w, r, "pick", http.StatusBadRequest, "invalid seed", err)
		return
	}
	defer release()
	var x any
	if len(req.Weights) == 0 {
		x, err = distrib.Pick(p, req.Options)
	} else {
		x, err = distrib.PickWeighted(p, req.Options, req.Weights)
	}
	if err != nil {
		h.renderError(w, r, "pick", http.StatusBadRequest, "invalid options", err)
		return
	}
	h.renderValue(w, r, "pick", x)
}

// provider returns provider for the request: seeded one if seed param present, otherwise borrowed from the pool.
// Release func must be called after use.
func (h *DistribHTTP) provider(r *http.Request) (*distrib.Provider, func(), error) {
	if raw := r.URL.Query().Get("seed"); len(raw) > 0 {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, nil, err
		}
		conf := h.pool.Template()
		if len(conf.Key) == 0 {
			conf.Key = h.key
		}
		conf.Source = distrib.NewLCG(seed)
		return distrib.NewWithConfig(conf), func() {}, nil
	}
	p := h.pool.Get()
	return p, func() { h.pool.Put(p) }, nil
}

func (h *DistribHTTP) renderValue(w http.ResponseWriter, r *http.Request, route string, x any) {
	requestMetric(route, http.StatusOK)
	render.Status(r, http.StatusOK)
	render.JSON(w, r, ResponseValue{Value: x})
}

func (h *DistribHTTP) renderError(w http.ResponseWriter, r *http.Request, route string, status int, msg string, err error) {
	h.log.Debug("request failed", "route", route, "error", err, "request_id", middleware.GetReqID(r.Context()))
	requestMetric(route, status)
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	render.Status(r, status)
	render.JSON(w, r, ResponseError{Error: msg})
}

// rangeArgs collects arguments of (), (single) or (min, max) forms from query.
// Any other combination (e.g. max without min) is distrib.ErrInvalidArgument.
func rangeArgs[T any](q url.Values, single string, parse func(string) (T, error)) ([]T, error) {
	hasSingle, hasMin, hasMax := q.Has(single), q.Has("min"), q.Has("max")
	var keys []string
	switch {
	case !hasSingle && !hasMin && !hasMax:
		return nil, nil
	case hasSingle && !hasMin && !hasMax:
		keys = []string{single}
	case !hasSingle && hasMin && hasMax:
		keys = []string{"min", "max"}
	default:
		return nil, distrib.ErrInvalidArgument
	}
	args := make([]T, 0, len(keys))
	for _, k := range keys {
		x, err := parse(q.Get(k))
		if err != nil {
			return nil, errors.Join(distrib.ErrInvalidArgument, err)
		}
		args = append(args, x)
	}
	return args, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
