package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
)

// ErrContractNotFound возвращается, когда договор не найден.
var ErrContractNotFound = errors.New("contract not found")

// ContractRepository читает снимки трудовых договоров. Снимок — источник
// данных для рендеринга, записи сюда не идут.
type ContractRepository struct {
	db *sqlx.DB
}

// NewContractRepository создаёт экземпляр репозитория.
func NewContractRepository(db *sqlx.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// contractRow строка таблицы contracts; массивы хранятся в колонках text[] и int[].
type contractRow struct {
	ID             uuid.UUID  `db:"id"`
	ContractNumber string     `db:"contract_number"`
	StartDate      *time.Time `db:"start_date"`

	WorkerNameRu   string `db:"worker_name_ru"`
	WorkerNameKk   string `db:"worker_name_kk"`
	EmployerNameRu string `db:"employer_name_ru"`
	EmployerNameKk string `db:"employer_name_kk"`

	JobPositionRu string         `db:"job_position_ru"`
	JobPositionKk string         `db:"job_position_kk"`
	JobDutiesRu   pq.StringArray `db:"job_duties_ru"`
	JobDutiesKk   pq.StringArray `db:"job_duties_kk"`

	SalaryAmount *int64 `db:"salary_amount"`

	TrialPeriod         bool `db:"trial_period"`
	TrialDurationMonths *int `db:"trial_duration_months"`

	WorkStart   string        `db:"work_start"`
	WorkEnd     string        `db:"work_end"`
	BreakStart  string        `db:"break_start"`
	BreakEnd    string        `db:"break_end"`
	WorkingDays pq.Int64Array `db:"working_days"`

	CityRu string `db:"city_ru"`
	CityKk string `db:"city_kk"`

	IsOnline          bool   `db:"is_online"`
	WorkerAddressRu   string `db:"worker_address_ru"`
	WorkerAddressKk   string `db:"worker_address_kk"`
	EmployerAddressRu string `db:"employer_address_ru"`
	EmployerAddressKk string `db:"employer_address_kk"`
}

func (r contractRow) toSnapshot() *models.ContractSnapshot {
	days := make([]models.Weekday, 0, len(r.WorkingDays))
	for _, d := range r.WorkingDays {
		days = append(days, models.Weekday(d))
	}

	return &models.ContractSnapshot{
		ID:                  r.ID,
		ContractNumber:      r.ContractNumber,
		StartDate:           r.StartDate,
		WorkerNameRu:        r.WorkerNameRu,
		WorkerNameKk:        r.WorkerNameKk,
		EmployerNameRu:      r.EmployerNameRu,
		EmployerNameKk:      r.EmployerNameKk,
		JobPositionRu:       r.JobPositionRu,
		JobPositionKk:       r.JobPositionKk,
		JobDutiesRu:         r.JobDutiesRu,
		JobDutiesKk:         r.JobDutiesKk,
		SalaryAmount:        r.SalaryAmount,
		TrialPeriod:         r.TrialPeriod,
		TrialDurationMonths: r.TrialDurationMonths,
		WorkStart:           r.WorkStart,
		WorkEnd:             r.WorkEnd,
		BreakStart:          r.BreakStart,
		BreakEnd:            r.BreakEnd,
		WorkingDays:         days,
		CityRu:              r.CityRu,
		CityKk:              r.CityKk,
		IsOnline:            r.IsOnline,
		WorkerAddressRu:     r.WorkerAddressRu,
		WorkerAddressKk:     r.WorkerAddressKk,
		EmployerAddressRu:   r.EmployerAddressRu,
		EmployerAddressKk:   r.EmployerAddressKk,
	}
}

// GetSnapshot возвращает снимок договора по идентификатору.
func (r *ContractRepository) GetSnapshot(ctx context.Context, id uuid.UUID) (*models.ContractSnapshot, error) {
	var row contractRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM contracts WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("contract repository: get snapshot %w", err)
	}
	return row.toSnapshot(), nil
}
