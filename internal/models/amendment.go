package models

import "errors"

// AmendmentValueType дискриминатор варианта изменяемых значений.
type AmendmentValueType string

const (
	AmendmentPosition AmendmentValueType = "position"
	AmendmentSalary   AmendmentValueType = "salary"
	AmendmentOther    AmendmentValueType = "other"
)

// ErrAmendmentVariantMismatch возвращается, когда заполненный вариант
// не соответствует дискриминатору.
var ErrAmendmentVariantMismatch = errors.New("amendment values: variant does not match type tag")

// PositionValues изменение должности.
type PositionValues struct {
	JobPositionRu       string   `json:"job_position_ru"`
	JobPositionKk       string   `json:"job_position_kk"`
	JobDutiesRu         []string `json:"job_duties_ru"`
	JobDutiesKk         []string `json:"job_duties_kk"`
	TrialPeriod         bool     `json:"trial_period"`
	TrialDurationMonths *int     `json:"trial_duration_months,omitempty"`
}

// SalaryValues изменение оклада.
type SalaryValues struct {
	SalaryAmount int64 `json:"salary_amount"`
}

// OtherValues изменение произвольного пункта договора.
type OtherValues struct {
	ClauseSection string `json:"clause_section"`
	NewTextRu     string `json:"new_text_ru"`
	NewTextKk     string `json:"new_text_kk"`
}

// AmendmentValues размеченное объединение: ровно один вариант заполнен,
// дискриминатор Type указывает какой. Заполнение нескольких вариантов или
// расхождение с тегом считается ошибкой данных, а не поводом угадывать.
type AmendmentValues struct {
	Type     AmendmentValueType `json:"type"`
	Position *PositionValues    `json:"position,omitempty"`
	Salary   *SalaryValues      `json:"salary,omitempty"`
	Other    *OtherValues       `json:"other,omitempty"`
}

// Validate проверяет, что заполнен ровно тот вариант, который объявлен тегом.
func (v *AmendmentValues) Validate() error {
	switch v.Type {
	case AmendmentPosition:
		if v.Position == nil || v.Salary != nil || v.Other != nil {
			return ErrAmendmentVariantMismatch
		}
	case AmendmentSalary:
		if v.Salary == nil || v.Position != nil || v.Other != nil {
			return ErrAmendmentVariantMismatch
		}
	case AmendmentOther:
		if v.Other == nil || v.Position != nil || v.Salary != nil {
			return ErrAmendmentVariantMismatch
		}
	default:
		return ErrAmendmentVariantMismatch
	}
	return nil
}
