package api

import (
	"net/http"

	"github.com/gorilla/mux"

	cancelBookingHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/create_booking"
	getAdminBookingHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/get_admin_booking"
	getAdminBookingsHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/get_admin_bookings"
	getAvailableSlotsHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/get_available_slots"
	getNextAvailableHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/get_next_available"
	getSettingsHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/get_settings"
	getSlotsRangeHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/get_slots_range"
	getStatsHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/get_stats"
	healthHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/health"
	reviewBookingHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/review_booking"
	trackBookingHandler "github.com/m04kA/curbside-pickup/internal/api/handlers/track_booking"
	"github.com/m04kA/curbside-pickup/internal/api/middleware"
	"github.com/m04kA/curbside-pickup/internal/service/bookings"
	configService "github.com/m04kA/curbside-pickup/internal/service/config"
	createBookingUC "github.com/m04kA/curbside-pickup/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/curbside-pickup/internal/usecase/get_available_slots"
	reviewBookingUC "github.com/m04kA/curbside-pickup/internal/usecase/review_booking"
	"github.com/m04kA/curbside-pickup/pkg/logger"
)

// Dependencies все, что нужно роутеру
type Dependencies struct {
	CreateBooking     *createBookingUC.UseCase
	GetAvailableSlots *getAvailableSlotsUC.UseCase
	ReviewBooking     *reviewBookingUC.UseCase
	Bookings          *bookings.Service
	Settings          *configService.Service
	DB                healthHandler.Pinger
	Logger            *logger.Logger

	// Metrics nil - метрики выключены
	Metrics        middleware.HTTPRecorder
	MetricsPath    string
	MetricsHandler http.Handler

	AllowedOrigins []string
	AdminAPIKey    string
}

// NewRouter собирает маршруты сервиса
func NewRouter(deps Dependencies) *mux.Router {
	log := deps.Logger

	createBooking := createBookingHandler.NewHandler(deps.CreateBooking, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(deps.GetAvailableSlots, log)
	getSlotsRange := getSlotsRangeHandler.NewHandler(deps.GetAvailableSlots, log)
	getNextAvailable := getNextAvailableHandler.NewHandler(deps.GetAvailableSlots, log)
	getSettings := getSettingsHandler.NewHandler(deps.Settings)
	trackBooking := trackBookingHandler.NewHandler(deps.Bookings, log)
	cancelBooking := cancelBookingHandler.NewHandler(deps.Bookings, log)
	reviewBooking := reviewBookingHandler.NewHandler(deps.ReviewBooking, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(deps.Bookings, log)
	getAdminBooking := getAdminBookingHandler.NewHandler(deps.Bookings, log)
	getStats := getStatsHandler.NewHandler(deps.Bookings, log)
	health := healthHandler.NewHandler(deps.DB, log)

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	r.Use(middleware.CORS(deps.AllowedOrigins))

	// Metrics endpoint (публичный)
	if deps.MetricsHandler != nil {
		r.Handle(deps.MetricsPath, deps.MetricsHandler).Methods(http.MethodGet)
	}
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix. OPTIONS нужен, чтобы preflight дошел до CORS middleware.
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/bookings/available-slots/{date}", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/track/{token}", trackBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/cancel/{token}", cancelBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// --- Слоты ---
	api.HandleFunc("/slots/available/{startDate}/{endDate}", getSlotsRange.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/next-available", getNextAvailable.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/settings", getSettings.Handle).Methods(http.MethodGet)

	// --- Действия персонала по токену из письма ---
	// Токен сам по себе является доступом, ключ персонала не нужен
	api.HandleFunc("/admin/{action:accept|decline}/{adminToken}", reviewBooking.Preview).Methods(http.MethodGet)
	api.HandleFunc("/admin/{action:accept|decline}/{adminToken}", reviewBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key, если ключ задан)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminKey(deps.AdminAPIKey))

	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/bookings/{id:[0-9]+}", getAdminBooking.Handle).Methods(http.MethodGet, http.MethodOptions)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet, http.MethodOptions)

	return r
}
