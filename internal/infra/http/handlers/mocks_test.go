package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/suagrafica/leads-api/internal/entity"
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
