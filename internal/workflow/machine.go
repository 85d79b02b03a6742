// Package workflow содержит таблицу переходов статусов кадровых документов
// и вычисление доступных оператору действий. Логика совещательная: тот же
// граф переходов применяет серверная сторона хранилища записей, поэтому
// таблицы обязаны совпадать с ней до бита.
package workflow

import "github.com/adilkhanov/hrdoc-backend/internal/models"

// Event событие процесса согласования.
type Event string

const (
	EventSubmitApplication Event = "submit_application"
	EventUploadApplication Event = "upload_application"
	EventApprove           Event = "approve"
	EventRevision          Event = "revision"
	EventReject            Event = "reject"
	EventCreateOrder       Event = "create_order"
	EventUploadOrder       Event = "upload_order"
	EventSubmitAgreement   Event = "submit_agreement"
	EventAgreementSigned   Event = "agreement_signed"
	EventComplete          Event = "complete"
	EventCancel            Event = "cancel"
	EventDelete            Event = "delete"
)

// transitions граф переходов по виду документа: статус → событие → новый статус.
// Машина линейная с боковыми ветками доработки и отклонения.
var transitions = map[models.DocumentKind]map[models.DocumentStatus]map[Event]models.DocumentStatus{
	models.KindAmendment: {
		models.StatusDraft: {
			EventSubmitApplication: models.StatusAppPending,
		},
		models.StatusAppPending: {
			EventUploadApplication: models.StatusAppReview,
		},
		models.StatusAppReview: {
			EventApprove:  models.StatusAppApproved,
			EventRevision: models.StatusAppPending,
			EventReject:   models.StatusCancelled,
		},
		models.StatusAppApproved: {
			EventCreateOrder: models.StatusOrderPending,
		},
		models.StatusOrderPending: {
			EventUploadOrder: models.StatusOrderUploaded,
		},
		models.StatusOrderUploaded: {
			EventSubmitAgreement: models.StatusAgrPending,
		},
		models.StatusAgrPending: {
			// Подписание соглашения происходит во внешней системе.
			EventAgreementSigned: models.StatusApplied,
		},
	},
	models.KindResignation: {
		models.StatusDraft: {
			EventSubmitApplication: models.StatusAppPending,
		},
		models.StatusAppPending: {
			EventUploadApplication: models.StatusAppReview,
			EventCancel:            models.StatusCancelled,
		},
		models.StatusAppReview: {
			EventApprove:  models.StatusAppApproved,
			EventRevision: models.StatusAppPending,
			EventReject:   models.StatusCancelled,
			EventCancel:   models.StatusCancelled,
		},
		models.StatusAppApproved: {
			EventCreateOrder: models.StatusOrderPending,
			EventCancel:      models.StatusCancelled,
		},
		models.StatusOrderPending: {
			EventUploadOrder: models.StatusOrderUploaded,
			EventCancel:      models.StatusCancelled,
		},
		models.StatusOrderUploaded: {
			EventComplete: models.StatusCompleted,
		},
	},
}

// deletableFrom статусы, из которых документ можно удалить целиком.
var deletableFrom = map[models.DocumentStatus]struct{}{
	models.StatusDraft: {},
}

// AllowedNextStatuses возвращает множество статусов, достижимых из текущего
// по данному событию. Для линейной машины это ноль или один статус.
func AllowedNextStatuses(kind models.DocumentKind, status models.DocumentStatus, event Event) []models.DocumentStatus {
	next, ok := NextStatus(kind, status, event)
	if !ok {
		return nil
	}
	return []models.DocumentStatus{next}
}

// NextStatus возвращает статус после события, если переход разрешён.
func NextStatus(kind models.DocumentKind, status models.DocumentStatus, event Event) (models.DocumentStatus, bool) {
	byStatus, ok := transitions[kind]
	if !ok {
		return "", false
	}
	byEvent, ok := byStatus[status]
	if !ok {
		return "", false
	}
	next, ok := byEvent[event]
	return next, ok
}

// CanDelete сообщает, можно ли удалить документ в текущем статусе.
func CanDelete(kind models.DocumentKind, status models.DocumentStatus) bool {
	if _, ok := transitions[kind]; !ok {
		return false
	}
	_, ok := deletableFrom[status]
	return ok
}

// AllowedEvents возвращает события, допустимые в текущем статусе,
// в стабильном порядке.
func AllowedEvents(kind models.DocumentKind, status models.DocumentStatus) []Event {
	byStatus, ok := transitions[kind]
	if !ok {
		return nil
	}
	byEvent, ok := byStatus[status]
	if !ok {
		return nil
	}

	ordered := []Event{
		EventSubmitApplication, EventUploadApplication,
		EventApprove, EventRevision, EventReject,
		EventCreateOrder, EventUploadOrder,
		EventSubmitAgreement, EventAgreementSigned,
		EventComplete, EventCancel,
	}

	var events []Event
	for _, e := range ordered {
		if _, ok := byEvent[e]; ok {
			events = append(events, e)
		}
	}
	return events
}
