package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли операторов кадрового модуля.
const (
	RoleHRManager = "hr_manager"
	RoleReviewer  = "reviewer"
	RoleAdmin     = "admin"
)

// User оператор системы (сотрудник отдела кадров или проверяющий).
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
