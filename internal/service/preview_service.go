package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
	"github.com/adilkhanov/hrdoc-backend/internal/numerals"
	"github.com/adilkhanov/hrdoc-backend/internal/pkg/apperror"
	"github.com/adilkhanov/hrdoc-backend/internal/render"
	"github.com/adilkhanov/hrdoc-backend/internal/repository"
)

// TemplateRepo описывает источник шаблонов пунктов.
type TemplateRepo interface {
	GetBySection(ctx context.Context, sectionNumber string) (*models.ClauseTemplate, error)
	List(ctx context.Context) ([]models.ClauseTemplate, error)
}

// ContractRepo описывает источник снимков договоров.
type ContractRepo interface {
	GetSnapshot(ctx context.Context, id uuid.UUID) (*models.ContractSnapshot, error)
}

// PreviewService собирает предпросмотр юридического текста документа.
// Чистая композиция: шаблон + снимок договора → двуязычный текст.
type PreviewService struct {
	templates TemplateRepo
	contracts ContractRepo
}

// NewPreviewService создаёт сервис предпросмотра.
func NewPreviewService(templates TemplateRepo, contracts ContractRepo) *PreviewService {
	return &PreviewService{templates: templates, contracts: contracts}
}

// ClausePreview отрендеренный пункт на обоих языках.
type ClausePreview struct {
	SectionNumber string `json:"section_number"`
	ContentRu     string `json:"content_ru"`
	ContentKk     string `json:"content_kk"`
}

// RenderClause рендерит один пункт договора.
func (s *PreviewService) RenderClause(ctx context.Context, contractID uuid.UUID, sectionNumber string) (*ClausePreview, error) {
	snap, err := s.snapshot(ctx, contractID)
	if err != nil {
		return nil, err
	}

	template, err := s.templates.GetBySection(ctx, sectionNumber)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, apperror.ErrTemplateNotFound
		}
		return nil, err
	}

	return renderClause(template, snap), nil
}

// RenderContract рендерит все пункты договора по порядку.
func (s *PreviewService) RenderContract(ctx context.Context, contractID uuid.UUID) ([]ClausePreview, error) {
	snap, err := s.snapshot(ctx, contractID)
	if err != nil {
		return nil, err
	}

	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, err
	}

	previews := make([]ClausePreview, 0, len(templates))
	for i := range templates {
		previews = append(previews, *renderClause(&templates[i], snap))
	}
	return previews, nil
}

// RenderAmendment рендерит изменяемый пункт допсоглашения с учётом новых
// значений. Для варианта Other текст пункта задан напрямую и шаблон не
// используется.
func (s *PreviewService) RenderAmendment(ctx context.Context, doc *models.WorkflowDocument) (*ClausePreview, error) {
	if doc == nil || doc.Kind != models.KindAmendment || doc.NewValues == nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "предпросмотр доступен только для допсоглашения с новыми значениями")
	}
	if err := doc.NewValues.Validate(); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, "некорректные новые значения")
	}
	if doc.ContractID == nil {
		return nil, apperror.ErrContractNotFound
	}

	section := ""
	if doc.ClauseSection != nil {
		section = *doc.ClauseSection
	}

	// Исчерпывающий разбор вариантов изменения.
	switch doc.NewValues.Type {
	case models.AmendmentOther:
		other := doc.NewValues.Other
		return &ClausePreview{
			SectionNumber: other.ClauseSection,
			ContentRu:     other.NewTextRu,
			ContentKk:     other.NewTextKk,
		}, nil
	case models.AmendmentPosition, models.AmendmentSalary:
		snap, err := s.snapshot(ctx, *doc.ContractID)
		if err != nil {
			return nil, err
		}
		overlaid := overlayAmendment(snap, doc.NewValues)

		template, err := s.templates.GetBySection(ctx, section)
		if err != nil {
			if errors.Is(err, repository.ErrTemplateNotFound) {
				return nil, apperror.ErrTemplateNotFound
			}
			return nil, err
		}
		return renderClause(template, overlaid), nil
	default:
		return nil, apperror.Wrap(models.ErrAmendmentVariantMismatch, apperror.ErrCodeValidation, "неизвестный вариант изменения")
	}
}

func (s *PreviewService) snapshot(ctx context.Context, contractID uuid.UUID) (*models.ContractSnapshot, error) {
	snap, err := s.contracts.GetSnapshot(ctx, contractID)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, apperror.ErrContractNotFound
		}
		return nil, err
	}
	return snap, nil
}

func renderClause(template *models.ClauseTemplate, snap *models.ContractSnapshot) *ClausePreview {
	return &ClausePreview{
		SectionNumber: template.SectionNumber,
		ContentRu:     render.Render(template.ContentRu, snap, numerals.LangRu),
		ContentKk:     render.Render(template.ContentKk, snap, numerals.LangKk),
	}
}

// overlayAmendment накладывает новые значения допсоглашения на снимок
// договора. Исходный снимок не изменяется.
func overlayAmendment(snap *models.ContractSnapshot, values *models.AmendmentValues) *models.ContractSnapshot {
	overlaid := *snap

	switch values.Type {
	case models.AmendmentPosition:
		p := values.Position
		overlaid.JobPositionRu = p.JobPositionRu
		overlaid.JobPositionKk = p.JobPositionKk
		overlaid.JobDutiesRu = p.JobDutiesRu
		overlaid.JobDutiesKk = p.JobDutiesKk
		overlaid.TrialPeriod = p.TrialPeriod
		overlaid.TrialDurationMonths = p.TrialDurationMonths
	case models.AmendmentSalary:
		amount := values.Salary.SalaryAmount
		overlaid.SalaryAmount = &amount
	}

	return &overlaid
}
