package http

import (
	"net/http"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/service"
)

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create accepts the public booking form
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	booking, err := h.bookings.CreateBooking(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	bookings, err := h.bookings.ListBookings(r.Context(), status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	booking, err := h.bookings.GetBooking(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, booking)
}

type bookingStatusRequest struct {
	Status string `json:"status"`
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req bookingStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	booking, err := h.bookings.UpdateBookingStatus(r.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, booking)
}

type bookingDatesRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *BookingHandler) UpdateDates(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req bookingDatesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	booking, err := h.bookings.UpdateBookingDates(r.Context(), id, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.bookings.DeleteBooking(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, nil)
}
