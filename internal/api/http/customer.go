package http

import (
	"net/http"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, err)
		return
	}
	if err := h.customers.CreateCustomer(r.Context(), &c); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, c)
}

// List supports a free-text search over name and phone via ?q=
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	items, err := h.customers.ListCustomers(r.Context(), query)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, items)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	c, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, c)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var c domain.Customer
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, err)
		return
	}
	c.ID = id
	if err := h.customers.UpdateCustomer(r.Context(), &c); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, c)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}
