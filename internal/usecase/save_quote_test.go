package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/suagrafica/leads-api/internal/entity"
	"github.com/suagrafica/leads-api/internal/infra/queue"
	"github.com/suagrafica/leads-api/internal/infra/webhook"
)

func validQuoteInput() SaveQuoteInput {
	return SaveQuoteInput{
		LeadID: 5,
		QuoteData: QuoteData{
			ProdutoDesejado:    "Caneca personalizada",
			QuantidadeEstimada: "500",
			PrazoEntrega:       "30 dias",
			TipoDeGravacao:     "Serigrafia",
			CidadeEntrega:      "São Paulo",
			EstadoEntrega:      "SP",
		},
	}
}

func TestSaveQuoteValidation(t *testing.T) {
	uc := NewSaveQuoteUseCase(new(MockQuoteRepository), new(MockLeadRepository), nil, nil)

	for _, input := range []SaveQuoteInput{
		{},
		{LeadID: 5},
		{LeadID: 5, QuoteData: QuoteData{ProdutoDesejado: "Caneca"}},
		{QuoteData: QuoteData{ProdutoDesejado: "Caneca", QuantidadeEstimada: "500"}},
	} {
		output, err := uc.Execute(context.Background(), input)
		assert.Nil(t, output)
		assert.True(t, IsDomainError(err))
	}
}

func TestSaveQuoteSemWebhookConfigurado(t *testing.T) {
	mockQuoteRepo := new(MockQuoteRepository)
	mockLeadRepo := new(MockLeadRepository)

	mockQuoteRepo.On("Insert", mock.Anything, mock.Anything).Return(55, nil)
	mockLeadRepo.On("FindContact", mock.Anything, 5).Return(&entity.LeadData{Nome: "João"}, nil)

	uc := NewSaveQuoteUseCase(mockQuoteRepo, mockLeadRepo, nil, nil)

	output, err := uc.Execute(context.Background(), validQuoteInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, 55, output.OrcamentoID)
	assert.Equal(t, WebhookNaoConfigurado, output.WebhookStatus)
}

func TestSaveQuoteDisparaWebhookComDadosDoBanco(t *testing.T) {
	mockQuoteRepo := new(MockQuoteRepository)
	mockLeadRepo := new(MockLeadRepository)
	mockNotifier := new(MockWebhookNotifier)

	mockQuoteRepo.On("Insert", mock.Anything, mock.Anything).Return(56, nil)

	// O contato do payload vem do banco, não do corpo da requisição.
	mockLeadRepo.On("FindContact", mock.Anything, 5).Return(&entity.LeadData{
		Nome:     "Maria do Banco",
		Email:    "maria@banco.com",
		Whatsapp: "(11) 97777-6666",
	}, nil)

	mockNotifier.On("DispatchQuote", mock.Anything,
		mock.MatchedBy(func(p webhook.QuotePayload) bool {
			return p.Nome == "Maria do Banco" &&
				p.OrcamentoID == 56 &&
				p.ProdutoDesejado == "Caneca personalizada"
		}),
	).Return(nil)

	uc := NewSaveQuoteUseCase(mockQuoteRepo, mockLeadRepo, mockNotifier, nil)

	output, err := uc.Execute(context.Background(), validQuoteInput())

	assert.NoError(t, err)
	assert.Equal(t, WebhookDisparado, output.WebhookStatus)
	mockNotifier.AssertExpectations(t)
}

func TestSaveQuoteWebhookForaDoArAindaContaComoDisparado(t *testing.T) {
	mockQuoteRepo := new(MockQuoteRepository)
	mockLeadRepo := new(MockLeadRepository)
	mockNotifier := new(MockWebhookNotifier)

	mockQuoteRepo.On("Insert", mock.Anything, mock.Anything).Return(57, nil)
	mockLeadRepo.On("FindContact", mock.Anything, 5).Return(&entity.LeadData{Nome: "João"}, nil)
	mockNotifier.On("DispatchQuote", mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	uc := NewSaveQuoteUseCase(mockQuoteRepo, mockLeadRepo, mockNotifier, nil)

	output, err := uc.Execute(context.Background(), validQuoteInput())

	assert.NoError(t, err)
	assert.Equal(t, WebhookDisparado, output.WebhookStatus, "fire-and-forget: falha de entrega não muda o status")
}

func TestSaveQuoteLeadNaoEncontrado(t *testing.T) {
	mockQuoteRepo := new(MockQuoteRepository)
	mockLeadRepo := new(MockLeadRepository)
	mockNotifier := new(MockWebhookNotifier)

	mockQuoteRepo.On("Insert", mock.Anything, mock.Anything).Return(58, nil)
	mockLeadRepo.On("FindContact", mock.Anything, 5).Return(nil, entity.ErrLeadNotFound)

	uc := NewSaveQuoteUseCase(mockQuoteRepo, mockLeadRepo, mockNotifier, nil)

	output, err := uc.Execute(context.Background(), validQuoteInput())

	assert.NoError(t, err)
	assert.True(t, output.Success, "orçamento gravado conta como sucesso mesmo sem lead")
	assert.Equal(t, WebhookLeadNaoEncontrado, output.WebhookStatus)
	mockNotifier.AssertNotCalled(t, "DispatchQuote", mock.Anything, mock.Anything)
}

func TestSaveQuoteDatabaseError(t *testing.T) {
	mockQuoteRepo := new(MockQuoteRepository)
	mockQuoteRepo.On("Insert", mock.Anything, mock.Anything).Return(0, errors.New("deadlock"))

	uc := NewSaveQuoteUseCase(mockQuoteRepo, new(MockLeadRepository), nil, nil)

	output, err := uc.Execute(context.Background(), validQuoteInput())

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
}

func TestSaveQuotePublicaEventoNaFila(t *testing.T) {
	mockQuoteRepo := new(MockQuoteRepository)
	mockLeadRepo := new(MockLeadRepository)
	mockQueue := new(MockEventPublisher)

	mockQuoteRepo.On("Insert", mock.Anything, mock.Anything).Return(59, nil)
	mockLeadRepo.On("FindContact", mock.Anything, 5).Return(&entity.LeadData{Nome: "João"}, nil)

	mockQueue.On("PublishLeadEvent", mock.Anything,
		mock.MatchedBy(func(p queue.LeadEventPayload) bool {
			return p.Type == queue.EventQuoteSaved && p.LeadID == 5 && p.OrcamentoID == 59
		}),
	).Return(nil)

	uc := NewSaveQuoteUseCase(mockQuoteRepo, mockLeadRepo, nil, mockQueue)

	output, err := uc.Execute(context.Background(), validQuoteInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
	mockQueue.AssertExpectations(t)
}
