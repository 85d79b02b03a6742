package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
)

func TestAmendmentHappyPath(t *testing.T) {
	steps := []struct {
		from  models.DocumentStatus
		event Event
		to    models.DocumentStatus
	}{
		{models.StatusDraft, EventSubmitApplication, models.StatusAppPending},
		{models.StatusAppPending, EventUploadApplication, models.StatusAppReview},
		{models.StatusAppReview, EventApprove, models.StatusAppApproved},
		{models.StatusAppApproved, EventCreateOrder, models.StatusOrderPending},
		{models.StatusOrderPending, EventUploadOrder, models.StatusOrderUploaded},
		{models.StatusOrderUploaded, EventSubmitAgreement, models.StatusAgrPending},
		{models.StatusAgrPending, EventAgreementSigned, models.StatusApplied},
	}

	for _, s := range steps {
		next, ok := NextStatus(models.KindAmendment, s.from, s.event)
		require.True(t, ok, "%s + %s", s.from, s.event)
		assert.Equal(t, s.to, next)
	}
}

func TestAmendmentReviewBranches(t *testing.T) {
	next, ok := NextStatus(models.KindAmendment, models.StatusAppReview, EventRevision)
	require.True(t, ok)
	assert.Equal(t, models.StatusAppPending, next)

	next, ok = NextStatus(models.KindAmendment, models.StatusAppReview, EventReject)
	require.True(t, ok)
	assert.Equal(t, models.StatusCancelled, next)
}

func TestResignationPathEndsAtCompleted(t *testing.T) {
	next, ok := NextStatus(models.KindResignation, models.StatusOrderUploaded, EventComplete)
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, next)

	// У увольнения нет этапа доп. соглашения.
	_, ok = NextStatus(models.KindResignation, models.StatusOrderUploaded, EventSubmitAgreement)
	assert.False(t, ok)
}

func TestResignationCancelBranch(t *testing.T) {
	cancellable := []models.DocumentStatus{
		models.StatusAppPending,
		models.StatusAppReview,
		models.StatusAppApproved,
		models.StatusOrderPending,
	}

	for _, status := range cancellable {
		next, ok := NextStatus(models.KindResignation, status, EventCancel)
		require.True(t, ok, "cancel из %s", status)
		assert.Equal(t, models.StatusCancelled, next)
	}

	_, ok := NextStatus(models.KindResignation, models.StatusDraft, EventCancel)
	assert.False(t, ok)
	_, ok = NextStatus(models.KindResignation, models.StatusOrderUploaded, EventCancel)
	assert.False(t, ok)

	// У допсоглашения отдельной отмены нет: только reject на проверке.
	_, ok = NextStatus(models.KindAmendment, models.StatusAppPending, EventCancel)
	assert.False(t, ok)
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	terminal := []struct {
		kind   models.DocumentKind
		status models.DocumentStatus
	}{
		{models.KindAmendment, models.StatusApplied},
		{models.KindAmendment, models.StatusCancelled},
		{models.KindResignation, models.StatusCompleted},
		{models.KindResignation, models.StatusCancelled},
	}

	for _, tc := range terminal {
		assert.Empty(t, AllowedEvents(tc.kind, tc.status), "%s/%s", tc.kind, tc.status)
		assert.True(t, tc.status.IsTerminal())
	}
}

func TestDeleteOnlyFromDraft(t *testing.T) {
	assert.True(t, CanDelete(models.KindResignation, models.StatusDraft))
	assert.True(t, CanDelete(models.KindAmendment, models.StatusDraft))

	assert.False(t, CanDelete(models.KindResignation, models.StatusAppPending))
	assert.False(t, CanDelete(models.KindResignation, models.StatusCancelled))
	assert.False(t, CanDelete("unknown", models.StatusDraft))
}

func TestAllowedNextStatuses(t *testing.T) {
	set := AllowedNextStatuses(models.KindAmendment, models.StatusAppReview, EventApprove)
	assert.Equal(t, []models.DocumentStatus{models.StatusAppApproved}, set)

	assert.Empty(t, AllowedNextStatuses(models.KindAmendment, models.StatusApplied, EventApprove))
	assert.Empty(t, AllowedNextStatuses("unknown", models.StatusDraft, EventSubmitApplication))
}
