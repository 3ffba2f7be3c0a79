package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Errores comunes
var (
	ErrNotFound = errors.New("record not found")
)

// Repositories colección de repositorios
type Repositories struct {
	Project  *ProjectRepository
	Expense  *ExpenseRepository
	Payment  *PaymentRepository
	Worker   *WorkerRepository
	Evidence *EvidenceRepository
}

// NewRepositories crea la colección de repositorios
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Project:  NewProjectRepository(db),
		Expense:  NewExpenseRepository(db),
		Payment:  NewPaymentRepository(db),
		Worker:   NewWorkerRepository(db),
		Evidence: NewEvidenceRepository(db),
	}
}
