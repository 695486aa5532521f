package http

import (
	"net/http"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/service"
)

type ExpenseHandler struct {
	expenses service.ExpenseService
}

func NewExpenseHandler(expenses service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e domain.Expense
	if err := decodeJSON(r, &e); err != nil {
		respondError(w, err)
		return
	}
	if err := h.expenses.CreateExpense(r.Context(), &e); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, e)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.expenses.ListExpenses(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, items)
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	e, err := h.expenses.GetExpense(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, e)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var e domain.Expense
	if err := decodeJSON(r, &e); err != nil {
		respondError(w, err)
		return
	}
	e.ID = id
	if err := h.expenses.UpdateExpense(r.Context(), &e); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, e)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.expenses.DeleteExpense(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}
