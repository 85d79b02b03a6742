package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
)

func amendmentAt(status models.DocumentStatus) *models.WorkflowDocument {
	return &models.WorkflowDocument{
		Kind:          models.KindAmendment,
		Status:        status,
		ReviewOutcome: models.ReviewPending,
	}
}

func resignationAt(status models.DocumentStatus) *models.WorkflowDocument {
	return &models.WorkflowDocument{
		Kind:          models.KindResignation,
		Status:        status,
		ReviewOutcome: models.ReviewPending,
	}
}

func names(actions []Action) []ActionName {
	out := make([]ActionName, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Name)
	}
	return out
}

func TestAvailableActions_AppPendingWithoutPDF(t *testing.T) {
	doc := amendmentAt(models.StatusAppPending)

	got := AvailableActions(doc, nil)
	assert.Equal(t, []ActionName{ActionUploadApplication, ActionDownloadApplicationDocx}, names(got))
}

func TestAvailableActions_AppPendingWithPDF(t *testing.T) {
	doc := amendmentAt(models.StatusAppPending)
	pdf := "documents/app.pdf"
	doc.ApplicationPDF = &pdf

	got := AvailableActions(doc, nil)
	assert.Equal(t, []ActionName{ActionUploadApplication}, names(got))

	// После возврата на доработку бланк снова доступен.
	doc.ReviewOutcome = models.ReviewRevision
	got = AvailableActions(doc, nil)
	assert.Equal(t, []ActionName{ActionUploadApplication, ActionDownloadApplicationDocx}, names(got))
}

func TestAvailableActions_ReviewTriple(t *testing.T) {
	doc := amendmentAt(models.StatusAppReview)

	// Тройка проверки не зависит от остальных полей документа.
	pdf := "documents/app.pdf"
	doc.ApplicationPDF = &pdf
	doc.ReviewOutcome = models.ReviewRevision

	got := AvailableActions(doc, nil)
	require.Equal(t, []ActionName{ActionApprove, ActionRevision, ActionReject}, names(got))
	assert.Equal(t, VariantPrimary, got[0].Variant)
	assert.Equal(t, VariantDefault, got[1].Variant)
	assert.Equal(t, VariantDanger, got[2].Variant)
}

func TestAvailableActions_OrderStages(t *testing.T) {
	doc := amendmentAt(models.StatusAppApproved)
	assert.Equal(t, []ActionName{ActionCreateOrder}, names(AvailableActions(doc, nil)))

	doc.Status = models.StatusOrderPending
	assert.Equal(t, []ActionName{ActionUploadOrder, ActionDownloadOrderDocx}, names(AvailableActions(doc, nil)))

	// Скачивание бланка приказа исчезает после загрузки подписанного скана.
	pdf := "documents/order.pdf"
	doc.OrderPDF = &pdf
	assert.Equal(t, []ActionName{ActionUploadOrder}, names(AvailableActions(doc, nil)))

	doc.OrderPDF = nil
	doc.Status = models.StatusOrderUploaded
	assert.Equal(t, []ActionName{ActionSubmitAgreement}, names(AvailableActions(doc, nil)))

	doc.Status = models.StatusAgrPending
	assert.Equal(t, []ActionName{ActionDownloadOrderDocx}, names(AvailableActions(doc, nil)))
}

func TestAvailableActions_TerminalStatuses(t *testing.T) {
	applied := amendmentAt(models.StatusApplied)
	pdf := "documents/order.pdf"
	applied.OrderPDF = &pdf
	assert.Empty(t, AvailableActions(applied, nil))

	cancelled := amendmentAt(models.StatusCancelled)
	assert.Empty(t, AvailableActions(cancelled, nil))

	completed := resignationAt(models.StatusCompleted)
	completed.OrderPDF = &pdf
	assert.Empty(t, AvailableActions(completed, nil))

	// Финальный статус без скана приказа: остаётся только скачивание бланка.
	withoutScan := resignationAt(models.StatusCompleted)
	assert.Equal(t, []ActionName{ActionDownloadOrderDocx}, names(AvailableActions(withoutScan, nil)))
}

func TestAvailableActions_ResignationCancelAndDelete(t *testing.T) {
	doc := resignationAt(models.StatusDraft)
	assert.Equal(t, []ActionName{ActionSubmitApplication, ActionDelete}, names(AvailableActions(doc, nil)))

	doc.Status = models.StatusAppPending
	assert.Equal(t, []ActionName{ActionUploadApplication, ActionDownloadApplicationDocx, ActionCancel}, names(AvailableActions(doc, nil)))

	doc.Status = models.StatusAppReview
	assert.Equal(t, []ActionName{ActionApprove, ActionRevision, ActionReject, ActionCancel}, names(AvailableActions(doc, nil)))

	doc.Status = models.StatusOrderUploaded
	assert.Equal(t, []ActionName{ActionComplete}, names(AvailableActions(doc, nil)))
}

func TestAvailableActions_InFlightDisables(t *testing.T) {
	doc := amendmentAt(models.StatusAppReview)

	got := AvailableActions(doc, InFlight{ActionApprove: true})
	require.Len(t, got, 3)
	assert.False(t, got[0].Enabled)
	assert.True(t, got[1].Enabled)
	assert.True(t, got[2].Enabled)
}

func TestAvailableActions_MalformedDocument(t *testing.T) {
	assert.NotNil(t, AvailableActions(nil, nil))
	assert.Empty(t, AvailableActions(nil, nil))

	// Статус другого вида документа — пустой список, а не паника.
	bad := resignationAt(models.StatusAgrPending)
	got := AvailableActions(bad, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	unknownKind := &models.WorkflowDocument{Kind: "vacation", Status: models.StatusDraft}
	assert.Empty(t, AvailableActions(unknownKind, nil))
}
