package service

import (
	"context"
	"time"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

// ContactService persists visitor messages from the contact form.
type ContactService interface {
	Submit(ctx context.Context, name, email, phone, message string) (*model.Contact, error)
	Recent(ctx context.Context, limit int) ([]*model.Contact, error)
}

type contactService struct {
	contacts repository.ContactRepository
}

func NewContactService(contacts repository.ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) Submit(ctx context.Context, name, email, phone, message string) (*model.Contact, error) {
	entry := &model.Contact{
		Name:     name,
		Email:    email,
		PhoneNum: phone,
		Msg:      message,
		Date:     time.Now(),
	}
	if err := s.contacts.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *contactService) Recent(ctx context.Context, limit int) ([]*model.Contact, error) {
	if limit < 1 {
		limit = 10
	}
	return s.contacts.ListRecent(ctx, limit)
}
