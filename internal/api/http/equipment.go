package http

import (
	"net/http"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/service"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
}

func NewEquipmentHandler(equipment service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

// List serves the public catalog, optionally filtered by category
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	items, err := h.equipment.ListEquipment(r.Context(), category)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, items)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	eq, err := h.equipment.GetEquipment(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var eq domain.Equipment
	if err := decodeJSON(r, &eq); err != nil {
		respondError(w, err)
		return
	}
	if err := h.equipment.CreateEquipment(r.Context(), &eq); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var eq domain.Equipment
	if err := decodeJSON(r, &eq); err != nil {
		respondError(w, err)
		return
	}
	eq.ID = id
	if err := h.equipment.UpdateEquipment(r.Context(), &eq); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.equipment.DeleteEquipment(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}
