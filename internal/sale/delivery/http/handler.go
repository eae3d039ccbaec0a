package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/warungpos/pos-service/internal/middleware"
	"github.com/warungpos/pos-service/internal/sale/domain"
	"github.com/warungpos/pos-service/internal/sale/usecase/command"
	"github.com/warungpos/pos-service/internal/sale/usecase/query"
	userdomain "github.com/warungpos/pos-service/internal/user/domain"
	"github.com/warungpos/pos-service/kafka"
	"github.com/warungpos/pos-service/pkg/logger"
)

// SaleHandler handles HTTP requests for sales using CQRS pattern
type SaleHandler struct {
	// Command handlers
	createHandler *command.CreateSaleHandler

	// Query handlers
	getSaleHandler      *query.GetSaleHandler
	getByInvoiceHandler *query.GetSaleByInvoiceHandler
	listHandler         *query.ListSalesHandler

	publisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	salesCommitted *prometheus.CounterVec
	revenueTotal   prometheus.Counter
}

// NewSaleHandler creates a new sale handler (manual DI)
func NewSaleHandler(repo domain.SaleRepository, publisher *kafka.Publisher) *SaleHandler {
	return NewSaleHandlerWithDI(
		command.NewCreateSaleHandler(repo),
		query.NewGetSaleHandler(repo),
		query.NewGetSaleByInvoiceHandler(repo),
		query.NewListSalesHandler(repo),
		publisher,
	)
}

// NewSaleHandlerWithDI creates a new sale handler using dependency injection.
// This is used by Wire for automatic dependency injection.
// publisher may be nil when Kafka is not configured.
func NewSaleHandlerWithDI(
	createHandler *command.CreateSaleHandler,
	getSaleHandler *query.GetSaleHandler,
	getByInvoiceHandler *query.GetSaleByInvoiceHandler,
	listHandler *query.ListSalesHandler,
	publisher *kafka.Publisher,
) *SaleHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_sale_requests_total",
			Help: "Total number of requests to sale endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pos_sale_request_duration_seconds",
			Help:    "Duration of sale endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	salesCommitted := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_sale_committed_total",
			Help: "Total number of committed sales by payment method",
		},
		[]string{"payment_method"},
	)

	revenueTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_sale_revenue_total",
			Help: "Cumulative revenue from committed sales",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(salesCommitted)
	prometheus.MustRegister(revenueTotal)

	return &SaleHandler{
		createHandler:       createHandler,
		getSaleHandler:      getSaleHandler,
		getByInvoiceHandler: getByInvoiceHandler,
		listHandler:         listHandler,
		publisher:           publisher,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		salesCommitted:      salesCommitted,
		revenueTotal:        revenueTotal,
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
func (h *SaleHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *SaleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", middleware.AuthMiddleware(h.CreateSale))).Methods("POST")
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", middleware.AuthMiddleware(h.ListSales))).Methods("GET")
	router.HandleFunc("/api/sales/invoice/{invoice}", h.metricsMiddleware("/api/sales/invoice/{invoice}", middleware.AuthMiddleware(h.GetSaleByInvoice))).Methods("GET")
	router.HandleFunc("/api/sales/{id}", h.metricsMiddleware("/api/sales/{id}", middleware.AuthMiddleware(h.GetSale))).Methods("GET")
}

type createSaleRequest struct {
	Items             []command.SaleItemInput `json:"items"`
	DiscountAmount    float64                 `json:"discount_amount"`
	PaymentMethod     string                  `json:"payment_method"`
	TransferReference string                  `json:"transfer_reference"`
	Notes             string                  `json:"notes"`
}

// CreateSale handles POST /api/sales. The cashier is taken from the
// authenticated token, never from the request body.
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Unauthorized",
		})
		return
	}

	var req createSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateSaleCommand{
		UserID:            userID,
		Items:             req.Items,
		DiscountAmount:    req.DiscountAmount,
		PaymentMethod:     req.PaymentMethod,
		TransferReference: req.TransferReference,
		Notes:             req.Notes,
	}

	sale, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		status := saleErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to commit sale")
		} else {
			logger.WithContext(r.Context()).Warn().Err(err).Msg("Sale rejected")
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.salesCommitted.WithLabelValues(sale.PaymentMethod).Inc()
	h.revenueTotal.Add(sale.TotalAmount)

	logger.WithContext(r.Context()).Info().
		Str("invoice_number", sale.InvoiceNumber).
		Uint("user_id", sale.UserID).
		Float64("total_amount", sale.TotalAmount).
		Str("payment_method", sale.PaymentMethod).
		Msg("Sale committed")

	// Downstream consumers are informational only. A publish failure
	// must not fail a sale that already committed.
	if h.publisher != nil {
		items := make([]kafka.SaleCompletedEventItem, len(sale.Items))
		for i, it := range sale.Items {
			items[i] = kafka.SaleCompletedEventItem{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				TotalPrice:  it.TotalPrice,
			}
		}
		event := kafka.NewSaleCompletedEvent(sale.ID, sale.InvoiceNumber, sale.UserID, sale.TotalAmount, sale.PaymentMethod, items)
		if err := h.publisher.PublishSaleCompleted(r.Context(), event); err != nil {
			logger.WithContext(r.Context()).Error().Err(err).
				Str("invoice_number", sale.InvoiceNumber).
				Msg("Failed to publish sale completed event")
		}
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Sale completed successfully",
		Data:    sale,
	})
}

// ListSales handles GET /api/sales. Cashiers only see their own sales;
// admins see everything and may filter by user_id.
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListSalesQuery{
		Limit:         limit,
		Offset:        offset,
		PaymentMethod: r.URL.Query().Get("payment_method"),
		Status:        r.URL.Query().Get("status"),
	}

	if from := r.URL.Query().Get("date_from"); from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "date_from must be YYYY-MM-DD",
			})
			return
		}
		q.DateFrom = t
	}
	if to := r.URL.Query().Get("date_to"); to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "date_to must be YYYY-MM-DD",
			})
			return
		}
		q.DateTo = t
	}

	role, _ := middleware.RoleFromContext(r.Context())
	if role == userdomain.RoleAdmin {
		if userParam := r.URL.Query().Get("user_id"); userParam != "" {
			id, err := strconv.ParseUint(userParam, 10, 32)
			if err != nil {
				respondJSON(w, http.StatusBadRequest, Response{
					Success: false,
					Error:   "Invalid user_id",
				})
				return
			}
			q.UserID = uint(id)
		}
	} else {
		userID, _ := middleware.UserIDFromContext(r.Context())
		q.UserID = userID
	}

	result, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list sales")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list sales",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"sales":  result.Sales,
			"total":  result.Total,
			"limit":  q.Limit,
			"offset": q.Offset,
		},
	})
}

// GetSale handles GET /api/sales/{id}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid sale ID",
		})
		return
	}

	sale, err := h.getSaleHandler.Handle(r.Context(), query.GetSaleQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Sale not found",
		})
		return
	}

	if !h.canViewSale(r, sale) {
		respondJSON(w, http.StatusForbidden, Response{
			Success: false,
			Error:   "Forbidden",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sale,
	})
}

// GetSaleByInvoice handles GET /api/sales/invoice/{invoice}
func (h *SaleHandler) GetSaleByInvoice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	sale, err := h.getByInvoiceHandler.Handle(r.Context(), query.GetSaleByInvoiceQuery{InvoiceNumber: vars["invoice"]})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Sale not found",
		})
		return
	}

	if !h.canViewSale(r, sale) {
		respondJSON(w, http.StatusForbidden, Response{
			Success: false,
			Error:   "Forbidden",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sale,
	})
}

func (h *SaleHandler) canViewSale(r *http.Request, sale *domain.Sale) bool {
	role, _ := middleware.RoleFromContext(r.Context())
	if role == userdomain.RoleAdmin {
		return true
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	return sale.UserID == userID
}

// saleErrorStatus maps commit errors to HTTP status codes
func saleErrorStatus(err error) int {
	var notFound *domain.ProductNotFoundError
	var noStock *domain.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &noStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNoItems),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNegativeUnitPrice),
		errors.Is(err, domain.ErrNegativeDiscount),
		errors.Is(err, domain.ErrInvalidPaymentMethod),
		errors.Is(err, domain.ErrTransferReferenceRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
