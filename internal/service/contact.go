package service

import (
	"context"
	"fmt"
	"strings"

	"rentgear-backend/internal/logger"
)

// ContactRequest is the public "call me back" form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type ContactService interface {
	SubmitContactRequest(ctx context.Context, req ContactRequest) error
}

type contactService struct {
	notifier Notifier
}

func NewContactService(notifier Notifier) ContactService {
	return &contactService{notifier: notifier}
}

// SubmitContactRequest validates the form and forwards it to the operator.
// Contact requests are not persisted; the notification is the product.
func (s *contactService) SubmitContactRequest(ctx context.Context, req ContactRequest) error {
	verr := &ValidationError{}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" {
		verr.add("name", "name is required")
	}
	if req.Phone == "" {
		verr.add("phone", "phone is required")
	}
	if err := verr.orNil(); err != nil {
		return err
	}

	text := fmt.Sprintf("Contact request\nName: %s\nPhone: %s", req.Name, req.Phone)
	if msg := strings.TrimSpace(req.Message); msg != "" {
		text += "\nMessage: " + msg
	}

	if s.notifier == nil {
		logger.Warn("contact request received but no notification channel is configured", "name", req.Name)
		return nil
	}
	if err := s.notifier.Send(ctx, text); err != nil {
		logger.Error("failed to deliver contact request notification", "error", err)
	}
	return nil
}
