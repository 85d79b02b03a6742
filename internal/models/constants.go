package models

// DocumentKind вид кадрового документа.
type DocumentKind string

const (
	KindAmendment   DocumentKind = "amendment"
	KindResignation DocumentKind = "resignation"
)

// DocumentStatus статус документа в процессе согласования.
type DocumentStatus string

const (
	StatusDraft         DocumentStatus = "draft"
	StatusAppPending    DocumentStatus = "app_pending"
	StatusAppReview     DocumentStatus = "app_review"
	StatusAppApproved   DocumentStatus = "app_approved"
	StatusOrderPending  DocumentStatus = "order_pending"
	StatusOrderUploaded DocumentStatus = "order_uploaded"
	StatusAgrPending    DocumentStatus = "agr_pending"
	StatusApplied       DocumentStatus = "applied"
	StatusCompleted     DocumentStatus = "completed"
	StatusCancelled     DocumentStatus = "cancelled"
)

// ReviewOutcome результат проверки заявления проверяющим.
type ReviewOutcome string

const (
	ReviewPending  ReviewOutcome = "pending"
	ReviewApproved ReviewOutcome = "approved"
	ReviewRejected ReviewOutcome = "rejected"
	ReviewRevision ReviewOutcome = "revision"
)

// ApprovalResolution резолюция руководителя на заявлении.
type ApprovalResolution string

const (
	ResolutionApproved     ApprovalResolution = "approved"
	ResolutionWithOneMonth ApprovalResolution = "approved_with_1month"
	ResolutionNoObjection  ApprovalResolution = "no_objection"
)

// ValidStatuses допустимые статусы по виду документа.
var ValidStatuses = map[DocumentKind]map[DocumentStatus]struct{}{
	KindAmendment: {
		StatusDraft:         {},
		StatusAppPending:    {},
		StatusAppReview:     {},
		StatusAppApproved:   {},
		StatusOrderPending:  {},
		StatusOrderUploaded: {},
		StatusAgrPending:    {},
		StatusApplied:       {},
		StatusCancelled:     {},
	},
	KindResignation: {
		StatusDraft:         {},
		StatusAppPending:    {},
		StatusAppReview:     {},
		StatusAppApproved:   {},
		StatusOrderPending:  {},
		StatusOrderUploaded: {},
		StatusCompleted:     {},
		StatusCancelled:     {},
	},
}

// TerminalStatuses статусы, из которых нет переходов.
var TerminalStatuses = map[DocumentStatus]struct{}{
	StatusApplied:   {},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsTerminal сообщает, является ли статус финальным.
func (s DocumentStatus) IsTerminal() bool {
	_, ok := TerminalStatuses[s]
	return ok
}

// IsValidFor проверяет принадлежность статуса виду документа.
func (s DocumentStatus) IsValidFor(kind DocumentKind) bool {
	statuses, ok := ValidStatuses[kind]
	if !ok {
		return false
	}
	_, ok = statuses[s]
	return ok
}
