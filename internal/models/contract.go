package models

import (
	"time"

	"github.com/google/uuid"
)

// Weekday день недели, понедельник = 1.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekdays дни недели в фиксированном порядке (Пн..Вс).
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ContractSnapshot неизменяемая проекция текущих значений трудового договора.
// Служит источником данных при подстановке в шаблоны пунктов; рендеринг
// никогда её не изменяет.
type ContractSnapshot struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	ContractNumber string     `db:"contract_number" json:"contract_number"`
	StartDate      *time.Time `db:"start_date" json:"start_date,omitempty"`

	WorkerNameRu   string `db:"worker_name_ru" json:"worker_name_ru"`
	WorkerNameKk   string `db:"worker_name_kk" json:"worker_name_kk"`
	EmployerNameRu string `db:"employer_name_ru" json:"employer_name_ru"`
	EmployerNameKk string `db:"employer_name_kk" json:"employer_name_kk"`

	JobPositionRu string   `db:"job_position_ru" json:"job_position_ru"`
	JobPositionKk string   `db:"job_position_kk" json:"job_position_kk"`
	JobDutiesRu   []string `db:"-" json:"job_duties_ru"`
	JobDutiesKk   []string `db:"-" json:"job_duties_kk"`

	SalaryAmount *int64 `db:"salary_amount" json:"salary_amount,omitempty"`

	TrialPeriod         bool `db:"trial_period" json:"trial_period"`
	TrialDurationMonths *int `db:"trial_duration_months" json:"trial_duration_months,omitempty"`

	// График работы. Времена в формате "HH:MM"; пустая строка — граница не задана.
	WorkStart   string    `db:"work_start" json:"work_start"`
	WorkEnd     string    `db:"work_end" json:"work_end"`
	BreakStart  string    `db:"break_start" json:"break_start"`
	BreakEnd    string    `db:"break_end" json:"break_end"`
	WorkingDays []Weekday `db:"-" json:"working_days"`

	CityRu string `db:"city_ru" json:"city_ru"`
	CityKk string `db:"city_kk" json:"city_kk"`

	// При дистанционной работе местом работы считается адрес работника,
	// иначе — адрес организации.
	IsOnline          bool   `db:"is_online" json:"is_online"`
	WorkerAddressRu   string `db:"worker_address_ru" json:"worker_address_ru"`
	WorkerAddressKk   string `db:"worker_address_kk" json:"worker_address_kk"`
	EmployerAddressRu string `db:"employer_address_ru" json:"employer_address_ru"`
	EmployerAddressKk string `db:"employer_address_kk" json:"employer_address_kk"`
}

// ClauseTemplate двуязычный шаблон пункта договора с плейсхолдерами {{token}}.
type ClauseTemplate struct {
	ID            uuid.UUID `db:"id" json:"id"`
	SectionNumber string    `db:"section_number" json:"section_number"`
	ContentRu     string    `db:"content_ru" json:"content_ru"`
	ContentKk     string    `db:"content_kk" json:"content_kk"`
}
