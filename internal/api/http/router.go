package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rentgear-backend/internal/security"
	"rentgear-backend/internal/service"
	"rentgear-backend/internal/storage"
)

// RouterDeps collects everything the HTTP surface needs
type RouterDeps struct {
	Auth      service.AuthService
	Equipment service.EquipmentService
	Bookings  service.BookingService
	Rentals   service.RentalService
	Expenses  service.ExpenseService
	Customers service.CustomerService
	Articles  service.ArticleService
	Lockers   service.LockerService
	Reports   service.ReportService
	Contact   service.ContactService

	Tokens      security.TokenManager
	Storage     *storage.LocalStorage
	MaxFileSize int64
}

// NewRouter builds the full route table: the public site API at /api and the
// token-guarded back office at /api/admin.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(observeMiddleware)

	authHandler := NewAuthHandler(deps.Auth)
	equipmentHandler := NewEquipmentHandler(deps.Equipment)
	bookingHandler := NewBookingHandler(deps.Bookings)
	rentalHandler := NewRentalHandler(deps.Rentals)
	expenseHandler := NewExpenseHandler(deps.Expenses)
	customerHandler := NewCustomerHandler(deps.Customers)
	articleHandler := NewArticleHandler(deps.Articles)
	lockerHandler := NewLockerHandler(deps.Lockers)
	reportHandler := NewReportHandler(deps.Reports)
	contactHandler := NewContactHandler(deps.Contact)
	fileHandler := NewFileHandler(deps.Storage, deps.MaxFileSize)

	r.HandleFunc("/health", handleHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public site
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/equipment", equipmentHandler.List).Methods("GET")
	api.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Get).Methods("GET")
	api.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	api.HandleFunc("/articles", articleHandler.ListPublished).Methods("GET")
	api.HandleFunc("/articles/{slug}", articleHandler.GetBySlug).Methods("GET")
	api.HandleFunc("/contact", contactHandler.Submit).Methods("POST")
	api.HandleFunc("/download/{key}", fileHandler.Download).Methods("GET")

	// Back office
	api.HandleFunc("/admin/login", authHandler.Login).Methods("POST")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware(deps.Tokens))

	admin.HandleFunc("/equipment", equipmentHandler.Create).Methods("POST")
	admin.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Update).Methods("PUT")
	admin.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/upload", fileHandler.Upload).Methods("POST")

	admin.HandleFunc("/bookings", bookingHandler.List).Methods("GET")
	admin.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Get).Methods("GET")
	admin.HandleFunc("/bookings/{id:[0-9]+}/status", bookingHandler.UpdateStatus).Methods("PUT")
	admin.HandleFunc("/bookings/{id:[0-9]+}/dates", bookingHandler.UpdateDates).Methods("PUT")
	admin.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	admin.HandleFunc("/rentals", rentalHandler.List).Methods("GET")
	admin.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods("GET")
	admin.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Update).Methods("PUT")
	admin.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/expenses", expenseHandler.Create).Methods("POST")
	admin.HandleFunc("/expenses", expenseHandler.List).Methods("GET")
	admin.HandleFunc("/expenses/{id:[0-9]+}", expenseHandler.Get).Methods("GET")
	admin.HandleFunc("/expenses/{id:[0-9]+}", expenseHandler.Update).Methods("PUT")
	admin.HandleFunc("/expenses/{id:[0-9]+}", expenseHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/customers", customerHandler.Create).Methods("POST")
	admin.HandleFunc("/customers", customerHandler.List).Methods("GET")
	admin.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Get).Methods("GET")
	admin.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Update).Methods("PUT")
	admin.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/articles", articleHandler.Create).Methods("POST")
	admin.HandleFunc("/articles", articleHandler.List).Methods("GET")
	admin.HandleFunc("/articles/{id:[0-9]+}", articleHandler.Get).Methods("GET")
	admin.HandleFunc("/articles/{id:[0-9]+}", articleHandler.Update).Methods("PUT")
	admin.HandleFunc("/articles/{id:[0-9]+}", articleHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/lockers", lockerHandler.Create).Methods("POST")
	admin.HandleFunc("/lockers", lockerHandler.List).Methods("GET")
	admin.HandleFunc("/lockers/{id:[0-9]+}", lockerHandler.Get).Methods("GET")
	admin.HandleFunc("/lockers/{id:[0-9]+}", lockerHandler.Update).Methods("PUT")
	admin.HandleFunc("/lockers/{id:[0-9]+}", lockerHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/reports/monthly", reportHandler.Monthly).Methods("GET")

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
