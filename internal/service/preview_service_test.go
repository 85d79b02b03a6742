package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
	"github.com/adilkhanov/hrdoc-backend/internal/pkg/apperror"
	"github.com/adilkhanov/hrdoc-backend/internal/render"
	"github.com/adilkhanov/hrdoc-backend/internal/repository"
)

type mockTemplateRepo struct {
	mock.Mock
}

func (m *mockTemplateRepo) GetBySection(ctx context.Context, sectionNumber string) (*models.ClauseTemplate, error) {
	args := m.Called(ctx, sectionNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClauseTemplate), args.Error(1)
}

func (m *mockTemplateRepo) List(ctx context.Context) ([]models.ClauseTemplate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ClauseTemplate), args.Error(1)
}

type mockContractRepo struct {
	mock.Mock
}

func (m *mockContractRepo) GetSnapshot(ctx context.Context, id uuid.UUID) (*models.ContractSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContractSnapshot), args.Error(1)
}

func previewSnapshot() *models.ContractSnapshot {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	salary := int64(250000)
	return &models.ContractSnapshot{
		ID:             uuid.New(),
		ContractNumber: "ТД-2026/7",
		StartDate:      &start,
		JobPositionRu:  "Бухгалтер",
		JobPositionKk:  "Бухгалтер",
		SalaryAmount:   &salary,
	}
}

func TestRenderClause_BothLanguages(t *testing.T) {
	templates := new(mockTemplateRepo)
	contracts := new(mockContractRepo)
	svc := NewPreviewService(templates, contracts)
	ctx := context.Background()

	snap := previewSnapshot()
	contracts.On("GetSnapshot", ctx, snap.ID).Return(snap, nil)
	templates.On("GetBySection", ctx, "3.1").Return(&models.ClauseTemplate{
		SectionNumber: "3.1",
		ContentRu:     "Оклад составляет {{salary_amount}} ({{salary_amount_text_ru}}) тенге.",
		ContentKk:     "Жалақы {{salary_amount}} ({{salary_amount_text_kk}}) теңгені құрайды.",
	}, nil)

	preview, err := svc.RenderClause(ctx, snap.ID, "3.1")
	require.NoError(t, err)

	assert.Equal(t, "Оклад составляет 250000 (двести пятьдесят тысяч) тенге.", preview.ContentRu)
	assert.Equal(t, "Жалақы 250000 (екі жүз елу мың) теңгені құрайды.", preview.ContentKk)
}

func TestRenderClause_UnknownTokenDegrades(t *testing.T) {
	templates := new(mockTemplateRepo)
	contracts := new(mockContractRepo)
	svc := NewPreviewService(templates, contracts)
	ctx := context.Background()

	snap := previewSnapshot()
	contracts.On("GetSnapshot", ctx, snap.ID).Return(snap, nil)
	templates.On("GetBySection", ctx, "9.9").Return(&models.ClauseTemplate{
		SectionNumber: "9.9",
		ContentRu:     "Поле: {{nonexistent_token}}.",
		ContentKk:     "Өріс: {{nonexistent_token}}.",
	}, nil)

	preview, err := svc.RenderClause(ctx, snap.ID, "9.9")
	require.NoError(t, err)
	assert.Equal(t, "Поле: "+render.FallbackMarker+".", preview.ContentRu)
}

func TestRenderClause_TemplateNotFound(t *testing.T) {
	templates := new(mockTemplateRepo)
	contracts := new(mockContractRepo)
	svc := NewPreviewService(templates, contracts)
	ctx := context.Background()

	snap := previewSnapshot()
	contracts.On("GetSnapshot", ctx, snap.ID).Return(snap, nil)
	templates.On("GetBySection", ctx, "8.8").Return(nil, repository.ErrTemplateNotFound)

	_, err := svc.RenderClause(ctx, snap.ID, "8.8")
	assert.True(t, apperror.IsNotFound(err))
}

func TestRenderAmendment_SalaryOverlay(t *testing.T) {
	templates := new(mockTemplateRepo)
	contracts := new(mockContractRepo)
	svc := NewPreviewService(templates, contracts)
	ctx := context.Background()

	snap := previewSnapshot()
	contractID := snap.ID
	section := "3.1"

	contracts.On("GetSnapshot", ctx, contractID).Return(snap, nil)
	templates.On("GetBySection", ctx, section).Return(&models.ClauseTemplate{
		SectionNumber: section,
		ContentRu:     "Оклад: {{salary_amount}} ({{salary_amount_text_ru}}) тенге.",
		ContentKk:     "Жалақы: {{salary_amount}} ({{salary_amount_text_kk}}) теңге.",
	}, nil)

	doc := &models.WorkflowDocument{
		Kind:          models.KindAmendment,
		ContractID:    &contractID,
		ClauseSection: &section,
		NewValues: &models.AmendmentValues{
			Type:   models.AmendmentSalary,
			Salary: &models.SalaryValues{SalaryAmount: 400000},
		},
	}

	preview, err := svc.RenderAmendment(ctx, doc)
	require.NoError(t, err)

	// В предпросмотре новый оклад, а не текущий из снимка.
	assert.Equal(t, "Оклад: 400000 (четыреста тысяч) тенге.", preview.ContentRu)
	// Снимок не мутирует.
	assert.Equal(t, int64(250000), *snap.SalaryAmount)
}

func TestRenderAmendment_OtherVariantUsesProvidedText(t *testing.T) {
	templates := new(mockTemplateRepo)
	contracts := new(mockContractRepo)
	svc := NewPreviewService(templates, contracts)
	ctx := context.Background()

	contractID := uuid.New()
	doc := &models.WorkflowDocument{
		Kind:       models.KindAmendment,
		ContractID: &contractID,
		NewValues: &models.AmendmentValues{
			Type: models.AmendmentOther,
			Other: &models.OtherValues{
				ClauseSection: "6.2",
				NewTextRu:     "Новый текст пункта.",
				NewTextKk:     "Тармақтың жаңа мәтіні.",
			},
		},
	}

	preview, err := svc.RenderAmendment(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, "6.2", preview.SectionNumber)
	assert.Equal(t, "Новый текст пункта.", preview.ContentRu)

	// Шаблон и снимок для варианта Other не запрашиваются.
	templates.AssertNotCalled(t, "GetBySection", mock.Anything, mock.Anything)
	contracts.AssertNotCalled(t, "GetSnapshot", mock.Anything, mock.Anything)
}
