package http

import (
	"net/http"

	"rentgear-backend/internal/service"
)

type ContactHandler struct {
	contact service.ContactService
}

func NewContactHandler(contact service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.contact.SubmitContactRequest(r.Context(), req); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "contact request accepted")
}
