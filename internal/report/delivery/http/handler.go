package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/warungpos/pos-service/internal/middleware"
	"github.com/warungpos/pos-service/internal/report/domain"
	"github.com/warungpos/pos-service/internal/report/usecase/query"
	userdomain "github.com/warungpos/pos-service/internal/user/domain"
	"github.com/warungpos/pos-service/pkg/logger"
)

// ReportHandler handles HTTP requests for reports and the dashboard
type ReportHandler struct {
	summaryHandler   *query.SalesSummaryHandler
	topHandler       *query.TopProductsHandler
	cashierHandler   *query.SalesByCashierHandler
	dailyHandler     *query.DailySalesHandler
	dashboardHandler *query.DashboardHandler

	redisClient *redis.Client

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewReportHandler creates a new report handler (manual DI)
func NewReportHandler(repo domain.ReportRepository, redisClient *redis.Client) *ReportHandler {
	return NewReportHandlerWithDI(
		query.NewSalesSummaryHandler(repo),
		query.NewTopProductsHandler(repo),
		query.NewSalesByCashierHandler(repo),
		query.NewDailySalesHandler(repo),
		query.NewDashboardHandler(repo),
		redisClient,
	)
}

// NewReportHandlerWithDI creates a new report handler using dependency injection.
// This is used by Wire for automatic dependency injection.
// redisClient may be nil when Redis is not configured; responses are then uncached.
func NewReportHandlerWithDI(
	summaryHandler *query.SalesSummaryHandler,
	topHandler *query.TopProductsHandler,
	cashierHandler *query.SalesByCashierHandler,
	dailyHandler *query.DailySalesHandler,
	dashboardHandler *query.DashboardHandler,
	redisClient *redis.Client,
) *ReportHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_report_requests_total",
			Help: "Total number of requests to report endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pos_report_request_duration_seconds",
			Help:    "Duration of report endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ReportHandler{
		summaryHandler:   summaryHandler,
		topHandler:       topHandler,
		cashierHandler:   cashierHandler,
		dailyHandler:     dailyHandler,
		dashboardHandler: dashboardHandler,
		redisClient:      redisClient,
		requestCounter:   requestCounter,
		requestLatency:   requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ReportHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	cached := middleware.CacheMiddleware(h.redisClient, middleware.DefaultCacheConfig())

	// Reports are management views, admin only
	router.HandleFunc("/api/reports/summary", h.metricsMiddleware("/api/reports/summary", middleware.AdminMiddleware(cached(h.SalesSummary)))).Methods("GET")
	router.HandleFunc("/api/reports/top-products", h.metricsMiddleware("/api/reports/top-products", middleware.AdminMiddleware(cached(h.TopProducts)))).Methods("GET")
	router.HandleFunc("/api/reports/by-cashier", h.metricsMiddleware("/api/reports/by-cashier", middleware.AdminMiddleware(cached(h.SalesByCashier)))).Methods("GET")
	router.HandleFunc("/api/reports/daily", h.metricsMiddleware("/api/reports/daily", middleware.AdminMiddleware(cached(h.DailySales)))).Methods("GET")

	// The dashboard is for every authenticated user. The cache key
	// includes the auth header, so per-cashier scoping stays correct.
	router.HandleFunc("/api/dashboard", h.metricsMiddleware("/api/dashboard", middleware.AuthMiddleware(cached(h.Dashboard)))).Methods("GET")
}

// parseDateRange reads date_from and date_to query params, defaulting
// both to today when absent.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	from, to := now, now

	if s := r.URL.Query().Get("date_from"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, errors.New("date_from must be YYYY-MM-DD")
		}
		from = t
	}
	if s := r.URL.Query().Get("date_to"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, errors.New("date_to must be YYYY-MM-DD")
		}
		to = t
	}
	return from, to, nil
}

// SalesSummary handles GET /api/reports/summary
func (h *ReportHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	summary, err := h.summaryHandler.Handle(query.SalesSummaryQuery{From: from, To: to})
	if err != nil {
		h.respondReportError(w, r, err, "Failed to build sales summary")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: summary})
}

// TopProducts handles GET /api/reports/top-products
func (h *ReportHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.topHandler.Handle(query.TopProductsQuery{From: from, To: to, Limit: limit})
	if err != nil {
		h.respondReportError(w, r, err, "Failed to build top products report")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// SalesByCashier handles GET /api/reports/by-cashier
func (h *ReportHandler) SalesByCashier(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	cashiers, err := h.cashierHandler.Handle(query.SalesByCashierQuery{From: from, To: to})
	if err != nil {
		h.respondReportError(w, r, err, "Failed to build cashier report")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: cashiers})
}

// DailySales handles GET /api/reports/daily
func (h *ReportHandler) DailySales(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	// Trend defaults to the trailing week rather than a single day
	if r.URL.Query().Get("date_from") == "" {
		from = to.AddDate(0, 0, -6)
	}

	days, err := h.dailyHandler.Handle(query.DailySalesQuery{From: from, To: to})
	if err != nil {
		h.respondReportError(w, r, err, "Failed to build daily sales report")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: days})
}

// Dashboard handles GET /api/dashboard
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := query.DashboardQuery{}

	role, _ := middleware.RoleFromContext(r.Context())
	if role != userdomain.RoleAdmin {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Unauthorized"})
			return
		}
		q.UserID = userID
	}

	stats, err := h.dashboardHandler.Handle(q)
	if err != nil {
		h.respondReportError(w, r, err, "Failed to build dashboard")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

func (h *ReportHandler) respondReportError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, domain.ErrInvalidDateRange) {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	logger.WithContext(r.Context()).Error().Err(err).Msg(msg)
	respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: msg})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
