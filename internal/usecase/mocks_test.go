package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/suagrafica/leads-api/internal/entity"
	"github.com/suagrafica/leads-api/internal/infra/mail"
	"github.com/suagrafica/leads-api/internal/infra/queue"
	"github.com/suagrafica/leads-api/internal/infra/webhook"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, data entity.LeadData, historico []entity.ChatMessage) (int, error) {
	args := m.Called(ctx, data, historico)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadRepository) UpdateData(ctx context.Context, id int, data entity.LeadData, historico []entity.ChatMessage) error {
	args := m.Called(ctx, id, data, historico)
	return args.Error(0)
}

func (m *MockLeadRepository) Finalize(ctx context.Context, id int, cnpj, statusLead string, historico []entity.ChatMessage) error {
	args := m.Called(ctx, id, cnpj, statusLead, historico)
	return args.Error(0)
}

func (m *MockLeadRepository) SaveIsca(ctx context.Context, id int, isca, status string) error {
	args := m.Called(ctx, id, isca, status)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) FindContact(ctx context.Context, id int) (*entity.LeadData, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadData), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

// MockQuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) Insert(ctx context.Context, q *entity.QuoteRequest) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

// MockAIClient
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) GenerateChat(ctx context.Context, systemInstruction string, history []entity.ChatMessage) (string, error) {
	args := m.Called(ctx, systemInstruction, history)
	return args.String(0), args.Error(1)
}

func (m *MockAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockWebhookNotifier
type MockWebhookNotifier struct {
	mock.Mock
}

func (m *MockWebhookNotifier) DispatchQuote(ctx context.Context, payload webhook.QuotePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendHotLeadAlert(to string, data mail.HotLeadAlertData) error {
	args := m.Called(to, data)
	return args.Error(0)
}
