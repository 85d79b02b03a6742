package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
	"github.com/adilkhanov/hrdoc-backend/internal/pkg/apperror"
	"github.com/adilkhanov/hrdoc-backend/internal/repository"
	"github.com/adilkhanov/hrdoc-backend/internal/workflow"
)

type mockDocumentRepo struct {
	mock.Mock
}

func (m *mockDocumentRepo) Create(ctx context.Context, doc *models.WorkflowDocument) error {
	args := m.Called(ctx, doc)
	if args.Error(0) == nil {
		doc.ID = uuid.New()
		doc.Status = models.StatusDraft
	}
	return args.Error(0)
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkflowDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkflowDocument), args.Error(1)
}

func (m *mockDocumentRepo) List(ctx context.Context, kind models.DocumentKind, status models.DocumentStatus, limit, offset int) ([]models.WorkflowDocument, error) {
	args := m.Called(ctx, kind, status, limit, offset)
	return args.Get(0).([]models.WorkflowDocument), args.Error(1)
}

func (m *mockDocumentRepo) ApplyTransition(ctx context.Context, id uuid.UUID, expected, next models.DocumentStatus, update repository.DocumentUpdate) (*models.WorkflowDocument, error) {
	args := m.Called(ctx, id, expected, next, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkflowDocument), args.Error(1)
}

func (m *mockDocumentRepo) Delete(ctx context.Context, id uuid.UUID, expected models.DocumentStatus) error {
	args := m.Called(ctx, id, expected)
	return args.Error(0)
}

type mockBroadcaster struct {
	mock.Mock
}

func (m *mockBroadcaster) BroadcastDocumentStatus(doc *models.WorkflowDocument) error {
	args := m.Called(doc)
	return args.Error(0)
}

type mockFileRemover struct {
	mock.Mock
}

func (m *mockFileRemover) Delete(ctx context.Context, relativePath string) error {
	args := m.Called(ctx, relativePath)
	return args.Error(0)
}

func reviewDoc(kind models.DocumentKind) *models.WorkflowDocument {
	return &models.WorkflowDocument{
		ID:            uuid.New(),
		Kind:          kind,
		WorkerID:      uuid.New(),
		Status:        models.StatusAppReview,
		ReviewOutcome: models.ReviewPending,
	}
}

func TestApplyAction_ApproveMovesToApproved(t *testing.T) {
	repo := new(mockDocumentRepo)
	hub := new(mockBroadcaster)
	svc := NewDocumentService(repo, hub, nil)
	ctx := context.Background()

	doc := reviewDoc(models.KindAmendment)
	approved := *doc
	approved.Status = models.StatusAppApproved
	approved.ReviewOutcome = models.ReviewApproved

	repo.On("GetByID", ctx, doc.ID).Return(doc, nil)
	repo.On("ApplyTransition", ctx, doc.ID, models.StatusAppReview, models.StatusAppApproved, mock.AnythingOfType("repository.DocumentUpdate")).Return(&approved, nil)
	hub.On("BroadcastDocumentStatus", &approved).Return(nil)

	got, err := svc.ApplyAction(ctx, doc.ID, ActionInput{Action: workflow.ActionApprove})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAppApproved, got.Status)

	repo.AssertExpectations(t)
	hub.AssertExpectations(t)
}

func TestApplyAction_OutsideAllowedSetIsRejected(t *testing.T) {
	repo := new(mockDocumentRepo)
	svc := NewDocumentService(repo, nil, nil)
	ctx := context.Background()

	// Приказ нельзя создать, пока заявление на проверке.
	doc := reviewDoc(models.KindAmendment)
	repo.On("GetByID", ctx, doc.ID).Return(doc, nil)

	_, err := svc.ApplyAction(ctx, doc.ID, ActionInput{Action: workflow.ActionCreateOrder})
	assert.True(t, apperror.IsNotAllowed(err))

	// Репозиторий не трогается: защитный no-op.
	repo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyAction_StaleStatusSurfacesAsConflict(t *testing.T) {
	repo := new(mockDocumentRepo)
	svc := NewDocumentService(repo, nil, nil)
	ctx := context.Background()

	doc := reviewDoc(models.KindAmendment)
	repo.On("GetByID", ctx, doc.ID).Return(doc, nil)
	// Другой оператор уже согласовал документ: guard по статусу не прошёл.
	repo.On("ApplyTransition", ctx, doc.ID, models.StatusAppReview, models.StatusAppApproved, mock.AnythingOfType("repository.DocumentUpdate")).Return(nil, repository.ErrStatusConflict)

	_, err := svc.ApplyAction(ctx, doc.ID, ActionInput{Action: workflow.ActionApprove})
	assert.True(t, apperror.IsConflict(err))
	assert.False(t, apperror.IsValidation(err))
}

func TestApplyAction_UploadRequiresPDF(t *testing.T) {
	repo := new(mockDocumentRepo)
	svc := NewDocumentService(repo, nil, nil)
	ctx := context.Background()

	doc := reviewDoc(models.KindAmendment)
	doc.Status = models.StatusAppPending
	repo.On("GetByID", ctx, doc.ID).Return(doc, nil)

	_, err := svc.ApplyAction(ctx, doc.ID, ActionInput{Action: workflow.ActionUploadApplication})
	assert.True(t, apperror.IsValidation(err))
}

func TestApplyAction_DeleteOnlyFromDraft(t *testing.T) {
	repo := new(mockDocumentRepo)
	svc := NewDocumentService(repo, nil, nil)
	ctx := context.Background()

	draft := reviewDoc(models.KindResignation)
	draft.Status = models.StatusDraft
	repo.On("GetByID", ctx, draft.ID).Return(draft, nil)
	repo.On("Delete", ctx, draft.ID, models.StatusDraft).Return(nil)

	got, err := svc.ApplyAction(ctx, draft.ID, ActionInput{Action: workflow.ActionDelete})
	require.NoError(t, err)
	assert.Nil(t, got)

	submitted := reviewDoc(models.KindResignation)
	submitted.Status = models.StatusAppPending
	repo.On("GetByID", ctx, submitted.ID).Return(submitted, nil)

	_, err = svc.ApplyAction(ctx, submitted.ID, ActionInput{Action: workflow.ActionDelete})
	assert.True(t, apperror.IsNotAllowed(err))
}

func TestApplyAction_ReuploadRemovesReplacedScan(t *testing.T) {
	repo := new(mockDocumentRepo)
	files := new(mockFileRemover)
	svc := NewDocumentService(repo, nil, files)
	ctx := context.Background()

	// Заявление вернули на доработку, прежний скан уже загружен.
	oldPath := "doc/application_1.pdf"
	newPath := "doc/application_2.pdf"
	doc := reviewDoc(models.KindAmendment)
	doc.Status = models.StatusAppPending
	doc.ReviewOutcome = models.ReviewRevision
	doc.ApplicationPDF = &oldPath

	uploaded := *doc
	uploaded.Status = models.StatusAppReview
	uploaded.ApplicationPDF = &newPath

	repo.On("GetByID", ctx, doc.ID).Return(doc, nil)
	repo.On("ApplyTransition", ctx, doc.ID, models.StatusAppPending, models.StatusAppReview, mock.AnythingOfType("repository.DocumentUpdate")).Return(&uploaded, nil)
	files.On("Delete", ctx, oldPath).Return(nil)

	got, err := svc.ApplyAction(ctx, doc.ID, ActionInput{Action: workflow.ActionUploadApplication, PDFPath: &newPath})
	require.NoError(t, err)
	assert.Equal(t, &newPath, got.ApplicationPDF)

	files.AssertExpectations(t)
}

func TestApplyAction_FirstUploadRemovesNothing(t *testing.T) {
	repo := new(mockDocumentRepo)
	files := new(mockFileRemover)
	svc := NewDocumentService(repo, nil, files)
	ctx := context.Background()

	path := "doc/application_1.pdf"
	doc := reviewDoc(models.KindAmendment)
	doc.Status = models.StatusAppPending

	uploaded := *doc
	uploaded.Status = models.StatusAppReview
	uploaded.ApplicationPDF = &path

	repo.On("GetByID", ctx, doc.ID).Return(doc, nil)
	repo.On("ApplyTransition", ctx, doc.ID, models.StatusAppPending, models.StatusAppReview, mock.AnythingOfType("repository.DocumentUpdate")).Return(&uploaded, nil)

	_, err := svc.ApplyAction(ctx, doc.ID, ActionInput{Action: workflow.ActionUploadApplication, PDFPath: &path})
	require.NoError(t, err)

	files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestApplyAction_DocumentNotFound(t *testing.T) {
	repo := new(mockDocumentRepo)
	svc := NewDocumentService(repo, nil, nil)
	ctx := context.Background()

	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, repository.ErrDocumentNotFound)

	_, err := svc.ApplyAction(ctx, id, ActionInput{Action: workflow.ActionApprove})
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreate_AmendmentRequiresMatchingVariants(t *testing.T) {
	repo := new(mockDocumentRepo)
	svc := NewDocumentService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{
		Kind:     models.KindAmendment,
		WorkerID: uuid.New(),
	})
	assert.True(t, apperror.IsValidation(err))

	salary := &models.AmendmentValues{
		Type:   models.AmendmentSalary,
		Salary: &models.SalaryValues{SalaryAmount: 400000},
	}
	position := &models.AmendmentValues{
		Type:     models.AmendmentPosition,
		Position: &models.PositionValues{JobPositionRu: "Инженер"},
	}

	_, err = svc.Create(ctx, CreateInput{
		Kind:      models.KindAmendment,
		WorkerID:  uuid.New(),
		OldValues: position,
		NewValues: salary,
	})
	assert.True(t, apperror.IsValidation(err))

	repo.On("Create", ctx, mock.AnythingOfType("*models.WorkflowDocument")).Return(nil)
	doc, err := svc.Create(ctx, CreateInput{
		Kind:      models.KindAmendment,
		WorkerID:  uuid.New(),
		NewValues: salary,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, doc.Status)
}

func TestGet_ReturnsDocumentWithActions(t *testing.T) {
	repo := new(mockDocumentRepo)
	svc := NewDocumentService(repo, nil, nil)
	ctx := context.Background()

	doc := reviewDoc(models.KindAmendment)
	repo.On("GetByID", ctx, doc.ID).Return(doc, nil)

	got, err := svc.Get(ctx, doc.ID, nil)
	require.NoError(t, err)
	require.Len(t, got.Actions, 3)
	assert.Equal(t, workflow.ActionApprove, got.Actions[0].Name)
}
