package workflow

import "github.com/adilkhanov/hrdoc-backend/internal/models"

// ActionName действие, отображаемое оператору.
type ActionName string

const (
	ActionSubmitApplication       ActionName = "submit_application"
	ActionUploadApplication       ActionName = "upload_application"
	ActionDownloadApplicationDocx ActionName = "download_application_docx"
	ActionApprove                 ActionName = "approve"
	ActionRevision                ActionName = "revision"
	ActionReject                  ActionName = "reject"
	ActionCreateOrder             ActionName = "create_order"
	ActionUploadOrder             ActionName = "upload_order"
	ActionDownloadOrderDocx       ActionName = "download_order_docx"
	ActionSubmitAgreement         ActionName = "submit_agreement"
	ActionComplete                ActionName = "complete"
	ActionCancel                  ActionName = "cancel"
	ActionDelete                  ActionName = "delete"

	// Инициируется внешней системой подписания; в список действий
	// оператора не попадает.
	ActionAgreementSigned ActionName = "agreement_signed"
)

// Variant вариант отображения кнопки действия.
type Variant string

const (
	VariantPrimary Variant = "primary"
	VariantDefault Variant = "default"
	VariantDanger  Variant = "danger"
)

// Action элемент списка доступных действий.
type Action struct {
	Name    ActionName `json:"name"`
	Enabled bool       `json:"enabled"`
	Variant Variant    `json:"variant"`
}

// InFlight отмечает действия, мутация которых сейчас выполняется.
// Такое действие остаётся в списке, но выключено — защита от повторной отправки.
type InFlight map[ActionName]bool

// AvailableActions вычисляет упорядоченный список действий, доступных по
// текущему статусу и полям документа. Список совещательный: авторитетный
// статус живёт на стороне хранилища записей, и попытка действия может быть
// отклонена, если состояние уже сдвинулось.
//
// Для испорченного документа (nil, статус не из перечисления вида)
// возвращается пустой валидный список, а не ошибка.
func AvailableActions(doc *models.WorkflowDocument, inFlight InFlight) []Action {
	actions := []Action{}
	if doc == nil || !doc.Status.IsValidFor(doc.Kind) {
		return actions
	}

	add := func(name ActionName, variant Variant) {
		actions = append(actions, Action{
			Name:    name,
			Enabled: !inFlight[name],
			Variant: variant,
		})
	}

	// Правила проверяются в фиксированном порядке; порядок определяет
	// порядок кнопок в интерфейсе.
	if doc.Status == models.StatusDraft {
		add(ActionSubmitApplication, VariantPrimary)
	}

	if doc.Status == models.StatusAppPending {
		add(ActionUploadApplication, VariantPrimary)
		if !doc.HasApplicationPDF() || doc.ReviewOutcome == models.ReviewRevision {
			add(ActionDownloadApplicationDocx, VariantDefault)
		}
	}

	if doc.Status == models.StatusAppReview {
		add(ActionApprove, VariantPrimary)
		add(ActionRevision, VariantDefault)
		add(ActionReject, VariantDanger)
	}

	if doc.Status == models.StatusAppApproved {
		add(ActionCreateOrder, VariantPrimary)
	}

	if doc.Status == models.StatusOrderPending {
		add(ActionUploadOrder, VariantPrimary)
	}

	if orderDocxAvailable(doc) {
		add(ActionDownloadOrderDocx, VariantDefault)
	}

	if doc.Kind == models.KindAmendment && doc.Status == models.StatusOrderUploaded {
		add(ActionSubmitAgreement, VariantPrimary)
	}

	if doc.Kind == models.KindResignation && doc.Status == models.StatusOrderUploaded {
		add(ActionComplete, VariantPrimary)
	}

	if doc.Kind == models.KindResignation {
		if _, ok := NextStatus(doc.Kind, doc.Status, EventCancel); ok {
			add(ActionCancel, VariantDanger)
		}
	}

	if CanDelete(doc.Kind, doc.Status) {
		add(ActionDelete, VariantDanger)
	}

	return actions
}

// orderDocxAvailable: бланк приказа можно скачать, пока не загружен
// подписанный скан; набор статусов зависит от вида документа.
func orderDocxAvailable(doc *models.WorkflowDocument) bool {
	if doc.HasOrderPDF() {
		return false
	}

	switch doc.Kind {
	case models.KindAmendment:
		return doc.Status == models.StatusOrderPending ||
			doc.Status == models.StatusAgrPending ||
			doc.Status == models.StatusApplied
	case models.KindResignation:
		return doc.Status == models.StatusOrderPending ||
			doc.Status == models.StatusCompleted
	default:
		return false
	}
}
