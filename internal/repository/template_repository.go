package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
)

// ErrTemplateNotFound возвращается, когда шаблон пункта не найден.
var ErrTemplateNotFound = errors.New("clause template not found")

// TemplateRepository читает двуязычные шаблоны пунктов договора.
type TemplateRepository struct {
	db *sqlx.DB
}

// NewTemplateRepository создаёт экземпляр репозитория.
func NewTemplateRepository(db *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// GetBySection возвращает шаблон по номеру пункта (например "4.1").
func (r *TemplateRepository) GetBySection(ctx context.Context, sectionNumber string) (*models.ClauseTemplate, error) {
	var template models.ClauseTemplate
	if err := r.db.GetContext(ctx, &template, `SELECT * FROM clause_templates WHERE section_number = $1`, sectionNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("template repository: get by section %w", err)
	}
	return &template, nil
}

// List возвращает все шаблоны, упорядоченные по номеру пункта.
func (r *TemplateRepository) List(ctx context.Context) ([]models.ClauseTemplate, error) {
	var templates []models.ClauseTemplate
	if err := r.db.SelectContext(ctx, &templates, `SELECT * FROM clause_templates ORDER BY section_number`); err != nil {
		return nil, fmt.Errorf("template repository: list %w", err)
	}
	return templates, nil
}
