package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
)

// ErrDocumentNotFound возвращается, когда документ не найден.
var ErrDocumentNotFound = errors.New("document not found")

// ErrStatusConflict возвращается, когда ожидаемый статус не совпал с
// фактическим: документ уже изменён другим оператором.
var ErrStatusConflict = errors.New("document status conflict")

// DocumentRepository отвечает за хранение кадровых документов.
// Это авторитетный источник статуса: переход применяется только если
// текущий статус в базе совпадает с ожидаемым.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository создаёт экземпляр репозитория.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// documentRow строка таблицы documents; значения вариантов хранятся в JSONB.
type documentRow struct {
	ID            uuid.UUID                  `db:"id"`
	Kind          models.DocumentKind        `db:"kind"`
	WorkerID      uuid.UUID                  `db:"worker_id"`
	ContractID    *uuid.UUID                 `db:"contract_id"`
	Status        models.DocumentStatus      `db:"status"`
	EffectiveDate *time.Time                 `db:"effective_date"`
	Resolution    *models.ApprovalResolution `db:"resolution"`

	ApplicationPDF *string `db:"application_pdf"`
	OrderPDF       *string `db:"order_pdf"`
	AgreementPDF   *string `db:"agreement_pdf"`

	ReviewOutcome models.ReviewOutcome `db:"review_outcome"`
	ReviewNote    *string              `db:"review_note"`

	ClauseSection *string `db:"clause_section"`
	OldValues     []byte  `db:"old_values"`
	NewValues     []byte  `db:"new_values"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r documentRow) toModel() (*models.WorkflowDocument, error) {
	doc := &models.WorkflowDocument{
		ID:             r.ID,
		Kind:           r.Kind,
		WorkerID:       r.WorkerID,
		ContractID:     r.ContractID,
		Status:         r.Status,
		EffectiveDate:  r.EffectiveDate,
		Resolution:     r.Resolution,
		ApplicationPDF: r.ApplicationPDF,
		OrderPDF:       r.OrderPDF,
		AgreementPDF:   r.AgreementPDF,
		ReviewOutcome:  r.ReviewOutcome,
		ReviewNote:     r.ReviewNote,
		ClauseSection:  r.ClauseSection,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}

	if len(r.OldValues) > 0 {
		doc.OldValues = &models.AmendmentValues{}
		if err := json.Unmarshal(r.OldValues, doc.OldValues); err != nil {
			return nil, fmt.Errorf("document repository: old_values %w", err)
		}
	}
	if len(r.NewValues) > 0 {
		doc.NewValues = &models.AmendmentValues{}
		if err := json.Unmarshal(r.NewValues, doc.NewValues); err != nil {
			return nil, fmt.Errorf("document repository: new_values %w", err)
		}
	}

	return doc, nil
}

// Create создаёт документ в статусе draft.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.WorkflowDocument) error {
	oldValues, newValues, err := marshalValues(doc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (kind, worker_id, contract_id, status, effective_date, review_outcome, clause_section, old_values, new_values)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		doc.Kind,
		doc.WorkerID,
		doc.ContractID,
		models.StatusDraft,
		doc.EffectiveDate,
		models.ReviewPending,
		doc.ClauseSection,
		oldValues,
		newValues,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return fmt.Errorf("document repository: create %w", err)
	}

	doc.Status = models.StatusDraft
	doc.ReviewOutcome = models.ReviewPending
	return nil
}

// GetByID возвращает документ по идентификатору.
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkflowDocument, error) {
	var row documentRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM documents WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("document repository: get by id %w", err)
	}
	return row.toModel()
}

// List возвращает документы с фильтрами по виду и статусу.
func (r *DocumentRepository) List(ctx context.Context, kind models.DocumentKind, status models.DocumentStatus, limit, offset int) ([]models.WorkflowDocument, error) {
	query := `SELECT * FROM documents WHERE TRUE`
	args := []interface{}{}
	argIndex := 1

	if kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argIndex)
		args = append(args, kind)
		argIndex++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
		argIndex++
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, offset)
	}

	var rows []documentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("document repository: list %w", err)
	}

	docs := make([]models.WorkflowDocument, 0, len(rows))
	for _, row := range rows {
		doc, err := row.toModel()
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// DocumentUpdate изменяемые при переходе поля; nil означает «не трогать».
type DocumentUpdate struct {
	Resolution     *models.ApprovalResolution
	ReviewOutcome  *models.ReviewOutcome
	ReviewNote     *string
	ApplicationPDF *string
	OrderPDF       *string
	AgreementPDF   *string
	EffectiveDate  *time.Time
}

// ApplyTransition атомарно переводит документ из ожидаемого статуса в новый.
// Guard по статусу реализует оптимистическую блокировку: если статус уже
// сдвинулся, возвращается ErrStatusConflict.
func (r *DocumentRepository) ApplyTransition(ctx context.Context, id uuid.UUID, expected, next models.DocumentStatus, update DocumentUpdate) (*models.WorkflowDocument, error) {
	query := `
		UPDATE documents SET
			status = $3,
			resolution = COALESCE($4, resolution),
			review_outcome = COALESCE($5, review_outcome),
			review_note = COALESCE($6, review_note),
			application_pdf = COALESCE($7, application_pdf),
			order_pdf = COALESCE($8, order_pdf),
			agreement_pdf = COALESCE($9, agreement_pdf),
			effective_date = COALESCE($10, effective_date),
			updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING *
	`

	var row documentRow
	err := r.db.QueryRowxContext(
		ctx,
		query,
		id,
		expected,
		next,
		update.Resolution,
		update.ReviewOutcome,
		update.ReviewNote,
		update.ApplicationPDF,
		update.OrderPDF,
		update.AgreementPDF,
		update.EffectiveDate,
	).StructScan(&row)

	if errors.Is(err, sql.ErrNoRows) {
		// Либо документа нет, либо статус уже изменился.
		var exists bool
		if checkErr := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1)`, id); checkErr != nil {
			return nil, fmt.Errorf("document repository: apply transition %w", checkErr)
		}
		if !exists {
			return nil, ErrDocumentNotFound
		}
		return nil, ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("document repository: apply transition %w", err)
	}

	return row.toModel()
}

// Delete удаляет документ; вызывающая сторона проверяет, что статус draft.
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID, expected models.DocumentStatus) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1 AND status = $2`, id, expected)
	if err != nil {
		return fmt.Errorf("document repository: delete %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("document repository: delete %w", err)
	}
	if affected == 0 {
		var exists bool
		if checkErr := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1)`, id); checkErr != nil {
			return fmt.Errorf("document repository: delete %w", checkErr)
		}
		if !exists {
			return ErrDocumentNotFound
		}
		return ErrStatusConflict
	}
	return nil
}

func marshalValues(doc *models.WorkflowDocument) ([]byte, []byte, error) {
	var oldValues, newValues []byte
	var err error

	if doc.OldValues != nil {
		if err = doc.OldValues.Validate(); err != nil {
			return nil, nil, fmt.Errorf("document repository: %w", err)
		}
		if oldValues, err = json.Marshal(doc.OldValues); err != nil {
			return nil, nil, fmt.Errorf("document repository: old_values %w", err)
		}
	}
	if doc.NewValues != nil {
		if err = doc.NewValues.Validate(); err != nil {
			return nil, nil, fmt.Errorf("document repository: %w", err)
		}
		if newValues, err = json.Marshal(doc.NewValues); err != nil {
			return nil, nil, fmt.Errorf("document repository: new_values %w", err)
		}
	}

	return oldValues, newValues, nil
}
