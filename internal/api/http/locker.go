package http

import (
	"net/http"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/service"
)

type LockerHandler struct {
	lockers service.LockerService
}

func NewLockerHandler(lockers service.LockerService) *LockerHandler {
	return &LockerHandler{lockers: lockers}
}

func (h *LockerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var l domain.Locker
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, err)
		return
	}
	if err := h.lockers.CreateLocker(r.Context(), &l); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, l)
}

func (h *LockerHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.lockers.ListLockers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, items)
}

func (h *LockerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	l, err := h.lockers.GetLocker(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, l)
}

func (h *LockerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var l domain.Locker
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, err)
		return
	}
	l.ID = id
	if err := h.lockers.UpdateLocker(r.Context(), &l); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, l)
}

func (h *LockerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.lockers.DeleteLocker(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}
