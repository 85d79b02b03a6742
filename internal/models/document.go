package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkflowDocument описывает документ кадрового изменения: допсоглашение
// к трудовому договору или заявление об увольнении.
type WorkflowDocument struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	Kind       DocumentKind   `db:"kind" json:"kind"`
	WorkerID   uuid.UUID      `db:"worker_id" json:"worker_id"`
	ContractID *uuid.UUID     `db:"contract_id" json:"contract_id,omitempty"`
	Status     DocumentStatus `db:"status" json:"status"`

	// Дата вступления в силу (для допсоглашения) либо последний рабочий день
	// (для увольнения).
	EffectiveDate *time.Time `db:"effective_date" json:"effective_date,omitempty"`

	Resolution *ApprovalResolution `db:"resolution" json:"resolution,omitempty"`

	// Пути подписанных PDF в файловом хранилище. Заполняются только после
	// успешной загрузки соответствующего скана.
	ApplicationPDF *string `db:"application_pdf" json:"application_pdf,omitempty"`
	OrderPDF       *string `db:"order_pdf" json:"order_pdf,omitempty"`
	AgreementPDF   *string `db:"agreement_pdf" json:"agreement_pdf,omitempty"`

	ReviewOutcome ReviewOutcome `db:"review_outcome" json:"review_outcome"`
	ReviewNote    *string       `db:"review_note" json:"review_note,omitempty"`

	// Изменяемый пункт договора (только для допсоглашений).
	ClauseSection *string          `db:"clause_section" json:"clause_section,omitempty"`
	OldValues     *AmendmentValues `db:"-" json:"old_values,omitempty"`
	NewValues     *AmendmentValues `db:"-" json:"new_values,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HasApplicationPDF сообщает, загружен ли скан подписанного заявления.
func (d *WorkflowDocument) HasApplicationPDF() bool {
	return d.ApplicationPDF != nil && *d.ApplicationPDF != ""
}

// HasOrderPDF сообщает, загружен ли скан подписанного приказа.
func (d *WorkflowDocument) HasOrderPDF() bool {
	return d.OrderPDF != nil && *d.OrderPDF != ""
}
