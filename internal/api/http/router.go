package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"crm-backend/internal/security"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Customers     *CustomerHandler
	Employees     *EmployeeHandler
	Products      *ProductHandler
	Contracts     *ContractHandler
	Campaigns     *CampaignHandler
	Tasks         *TaskHandler
	Analytics     *AnalyticsHandler
	Notifications *NotificationHandler
}

// NewRouter wires all routes. Everything except /auth/* and /healthz sits
// behind the JWT middleware.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	api := r.NewRoute().Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/customers", h.Customers.List).Methods(http.MethodGet)
	api.HandleFunc("/customers", h.Customers.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}", h.Customers.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customers.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", h.Customers.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/employees", h.Employees.List).Methods(http.MethodGet)
	api.HandleFunc("/employees", h.Employees.Create).Methods(http.MethodPost)
	api.HandleFunc("/employees/{id}", h.Employees.Get).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", h.Employees.Update).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id}", h.Employees.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/products", h.Products.List).Methods(http.MethodGet)
	api.HandleFunc("/products", h.Products.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", h.Products.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.Products.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", h.Products.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/contracts", h.Contracts.List).Methods(http.MethodGet)
	api.HandleFunc("/contracts", h.Contracts.Create).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}", h.Contracts.Get).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{id}/status", h.Contracts.UpdateStatus).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}", h.Contracts.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/campaigns", h.Campaigns.List).Methods(http.MethodGet)
	api.HandleFunc("/campaigns", h.Campaigns.Create).Methods(http.MethodPost)
	api.HandleFunc("/campaigns/{id}", h.Campaigns.Get).Methods(http.MethodGet)
	api.HandleFunc("/campaigns/{id}", h.Campaigns.Update).Methods(http.MethodPut)
	api.HandleFunc("/campaigns/{id}/launch", h.Campaigns.Launch).Methods(http.MethodPost)
	api.HandleFunc("/campaigns/{id}", h.Campaigns.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/tasks", h.Tasks.List).Methods(http.MethodGet)
	api.HandleFunc("/tasks", h.Tasks.Create).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{id}", h.Tasks.Get).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", h.Tasks.Update).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}/status", h.Tasks.UpdateStatus).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{id}", h.Tasks.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/analytics/dashboard", h.Analytics.Dashboard).Methods(http.MethodGet)

	api.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/mark-all-read", h.Notifications.MarkAllRead).Methods(http.MethodPost)
	api.HandleFunc("/notifications/stream", h.Notifications.Stream).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", h.Notifications.MarkRead).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{id}/unread", h.Notifications.MarkUnread).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{id}", h.Notifications.Delete).Methods(http.MethodDelete)

	return r
}
