package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/adilkhanov/hrdoc-backend/internal/logger"
	"github.com/adilkhanov/hrdoc-backend/internal/models"
	"github.com/adilkhanov/hrdoc-backend/internal/pkg/apperror"
	"github.com/adilkhanov/hrdoc-backend/internal/repository"
	"github.com/adilkhanov/hrdoc-backend/internal/workflow"
)

// DocumentRepo описывает зависимости сервиса от хранилища документов.
type DocumentRepo interface {
	Create(ctx context.Context, doc *models.WorkflowDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.WorkflowDocument, error)
	List(ctx context.Context, kind models.DocumentKind, status models.DocumentStatus, limit, offset int) ([]models.WorkflowDocument, error)
	ApplyTransition(ctx context.Context, id uuid.UUID, expected, next models.DocumentStatus, update repository.DocumentUpdate) (*models.WorkflowDocument, error)
	Delete(ctx context.Context, id uuid.UUID, expected models.DocumentStatus) error
}

// StatusBroadcaster рассылает события смены статуса подключённым операторам.
type StatusBroadcaster interface {
	BroadcastDocumentStatus(doc *models.WorkflowDocument) error
}

// FileRemover удаляет сканы из файлового хранилища.
type FileRemover interface {
	Delete(ctx context.Context, relativePath string) error
}

// DocumentService управляет жизненным циклом кадровых документов. Это
// авторитетная сторона переходов: совещательный список действий клиента
// перепроверяется здесь по той же таблице workflow.
type DocumentService struct {
	docs  DocumentRepo
	hub   StatusBroadcaster
	files FileRemover
}

// NewDocumentService создаёт сервис документов.
func NewDocumentService(docs DocumentRepo, hub StatusBroadcaster, files FileRemover) *DocumentService {
	return &DocumentService{docs: docs, hub: hub, files: files}
}

// DocumentWithActions документ вместе со списком доступных действий.
type DocumentWithActions struct {
	Document *models.WorkflowDocument `json:"document"`
	Actions  []workflow.Action        `json:"actions"`
}

// ActionInput данные выполняемого действия.
type ActionInput struct {
	Action        workflow.ActionName
	Resolution    *models.ApprovalResolution
	ReviewNote    *string
	PDFPath       *string
	EffectiveDate *time.Time
}

// CreateInput данные нового документа.
type CreateInput struct {
	Kind          models.DocumentKind
	WorkerID      uuid.UUID
	ContractID    *uuid.UUID
	EffectiveDate *time.Time
	ClauseSection *string
	OldValues     *models.AmendmentValues
	NewValues     *models.AmendmentValues
}

// Create создаёт документ в статусе draft.
func (s *DocumentService) Create(ctx context.Context, in CreateInput) (*models.WorkflowDocument, error) {
	if in.Kind != models.KindAmendment && in.Kind != models.KindResignation {
		return nil, apperror.New(apperror.ErrCodeValidation, "неизвестный вид документа")
	}

	if in.Kind == models.KindAmendment {
		if in.NewValues == nil {
			return nil, apperror.New(apperror.ErrCodeValidation, "для допсоглашения требуются новые значения")
		}
		if err := in.NewValues.Validate(); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeValidation, "некорректные новые значения")
		}
		if in.OldValues != nil {
			if err := in.OldValues.Validate(); err != nil {
				return nil, apperror.Wrap(err, apperror.ErrCodeValidation, "некорректные старые значения")
			}
			if in.OldValues.Type != in.NewValues.Type {
				return nil, apperror.New(apperror.ErrCodeValidation, "старые и новые значения должны быть одного варианта")
			}
		}
	}

	doc := &models.WorkflowDocument{
		Kind:          in.Kind,
		WorkerID:      in.WorkerID,
		ContractID:    in.ContractID,
		EffectiveDate: in.EffectiveDate,
		ClauseSection: in.ClauseSection,
		OldValues:     in.OldValues,
		NewValues:     in.NewValues,
	}

	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Get возвращает документ и его доступные действия.
func (s *DocumentService) Get(ctx context.Context, id uuid.UUID, inFlight workflow.InFlight) (*DocumentWithActions, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, apperror.ErrDocumentNotFound
		}
		return nil, err
	}

	return &DocumentWithActions{
		Document: doc,
		Actions:  workflow.AvailableActions(doc, inFlight),
	}, nil
}

// List возвращает документы с фильтрами.
func (s *DocumentService) List(ctx context.Context, kind models.DocumentKind, status models.DocumentStatus, limit, offset int) ([]models.WorkflowDocument, error) {
	return s.docs.List(ctx, kind, status, limit, offset)
}

// ApplyAction выполняет действие над документом. Действие вне допустимого
// набора — защитный no-op с ошибкой ACTION_NOT_ALLOWED; расхождение с
// уже изменившимся статусом — CONFLICT, после которого клиент обязан
// перечитать документ.
func (s *DocumentService) ApplyAction(ctx context.Context, id uuid.UUID, in ActionInput) (*models.WorkflowDocument, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, apperror.ErrDocumentNotFound
		}
		return nil, err
	}

	if in.Action == workflow.ActionDelete {
		return nil, s.deleteDocument(ctx, doc)
	}

	event, ok := actionEvent(in.Action)
	if !ok {
		return nil, apperror.ErrActionNotAllowed
	}

	next, ok := workflow.NextStatus(doc.Kind, doc.Status, event)
	if !ok {
		return nil, apperror.ErrActionNotAllowed
	}

	update, err := buildUpdate(in)
	if err != nil {
		return nil, err
	}

	replaced := replacedScan(doc, in)

	updated, err := s.docs.ApplyTransition(ctx, id, doc.Status, next, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStatusConflict):
			return nil, apperror.ErrStaleDocument
		case errors.Is(err, repository.ErrDocumentNotFound):
			return nil, apperror.ErrDocumentNotFound
		default:
			return nil, err
		}
	}

	s.removeScan(ctx, replaced)
	s.notifyStatus(updated)
	return updated, nil
}

// replacedScan возвращает путь прежнего скана, который после повторной
// загрузки перестаёт быть на что-либо сослан. Так происходит при загрузке
// заявления заново после доработки.
func replacedScan(doc *models.WorkflowDocument, in ActionInput) *string {
	if in.PDFPath == nil {
		return nil
	}

	var old *string
	switch in.Action {
	case workflow.ActionUploadApplication:
		old = doc.ApplicationPDF
	case workflow.ActionUploadOrder:
		old = doc.OrderPDF
	default:
		return nil
	}

	if old == nil || *old == *in.PDFPath {
		return nil
	}
	return old
}

// removeScan удаляет осиротевший скан из хранилища. Ошибка не прерывает
// переход: документ уже в новом статусе.
func (s *DocumentService) removeScan(ctx context.Context, path *string) {
	if s.files == nil || path == nil {
		return
	}
	if err := s.files.Delete(ctx, *path); err != nil && logger.Log != nil {
		logger.Log.WithError(err).WithField("path", *path).Warn("document service: не удалось удалить заменённый скан")
	}
}

func (s *DocumentService) deleteDocument(ctx context.Context, doc *models.WorkflowDocument) error {
	if !workflow.CanDelete(doc.Kind, doc.Status) {
		return apperror.ErrActionNotAllowed
	}

	if err := s.docs.Delete(ctx, doc.ID, doc.Status); err != nil {
		switch {
		case errors.Is(err, repository.ErrStatusConflict):
			return apperror.ErrStaleDocument
		case errors.Is(err, repository.ErrDocumentNotFound):
			return apperror.ErrDocumentNotFound
		default:
			return err
		}
	}
	return nil
}

func (s *DocumentService) notifyStatus(doc *models.WorkflowDocument) {
	if s.hub == nil {
		return
	}
	if err := s.hub.BroadcastDocumentStatus(doc); err != nil && logger.Log != nil {
		logger.Log.WithError(err).Warn("document service: не удалось разослать событие статуса")
	}
}

// actionEvent сопоставляет действие оператора с событием машины статусов.
// Действия скачивания бланков мутацией не являются и сюда не попадают.
func actionEvent(action workflow.ActionName) (workflow.Event, bool) {
	switch action {
	case workflow.ActionSubmitApplication:
		return workflow.EventSubmitApplication, true
	case workflow.ActionUploadApplication:
		return workflow.EventUploadApplication, true
	case workflow.ActionApprove:
		return workflow.EventApprove, true
	case workflow.ActionRevision:
		return workflow.EventRevision, true
	case workflow.ActionReject:
		return workflow.EventReject, true
	case workflow.ActionCreateOrder:
		return workflow.EventCreateOrder, true
	case workflow.ActionUploadOrder:
		return workflow.EventUploadOrder, true
	case workflow.ActionSubmitAgreement:
		return workflow.EventSubmitAgreement, true
	case workflow.ActionAgreementSigned:
		return workflow.EventAgreementSigned, true
	case workflow.ActionComplete:
		return workflow.EventComplete, true
	case workflow.ActionCancel:
		return workflow.EventCancel, true
	default:
		return "", false
	}
}

// buildUpdate собирает изменяемые поля по виду действия.
func buildUpdate(in ActionInput) (repository.DocumentUpdate, error) {
	var update repository.DocumentUpdate

	switch in.Action {
	case workflow.ActionUploadApplication:
		if in.PDFPath == nil {
			return update, apperror.New(apperror.ErrCodeValidation, "требуется скан подписанного заявления")
		}
		update.ApplicationPDF = in.PDFPath
	case workflow.ActionUploadOrder:
		if in.PDFPath == nil {
			return update, apperror.New(apperror.ErrCodeValidation, "требуется скан подписанного приказа")
		}
		update.OrderPDF = in.PDFPath
	case workflow.ActionAgreementSigned:
		update.AgreementPDF = in.PDFPath
	case workflow.ActionApprove:
		outcome := models.ReviewApproved
		update.ReviewOutcome = &outcome
		update.Resolution = in.Resolution
		update.EffectiveDate = in.EffectiveDate
	case workflow.ActionRevision:
		outcome := models.ReviewRevision
		update.ReviewOutcome = &outcome
		update.ReviewNote = in.ReviewNote
	case workflow.ActionReject:
		outcome := models.ReviewRejected
		update.ReviewOutcome = &outcome
		update.ReviewNote = in.ReviewNote
	}

	return update, nil
}
