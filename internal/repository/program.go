package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/types"
	"gorm.io/gorm/clause"
)

// ProgramUpdate holds the fields of a program to change. Nil fields
// are left untouched.
type ProgramUpdate struct {
	Name        *string
	Description *string
	Budget      *types.Money
	Deadline    *types.Date
	IsActive    *types.IntBool
}

func (u ProgramUpdate) apply(p *models.GrantProgram) {
	if u.Name != nil {
		p.Name = *u.Name
	}

	if u.Description != nil {
		p.Description = *u.Description
	}

	if u.Budget != nil {
		p.Budget = *u.Budget
	}

	if u.Deadline != nil {
		p.Deadline = *u.Deadline
	}

	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
}

// CreateProgram persists a new program. Nothing is allocated for a new program.
func (r *Repository) CreateProgram(ctx context.Context, p *models.GrantProgram) error {
	p.Allocated = types.Money{}
	return create(ctx, r.db, p)
}

// Program returns the program with the ID.
func (r *Repository) Program(ctx context.Context, id uuid.UUID) (models.GrantProgram, bool, error) {
	return first[models.GrantProgram](ctx, r.db, "id = ?", id)
}

// Programs lists all programs, newest first.
func (r *Repository) Programs(ctx context.Context) ([]models.GrantProgram, error) {
	programs := []models.GrantProgram{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&programs).Error
	return programs, err
}

// SaveProgram writes all fields of an existing program.
func (r *Repository) SaveProgram(ctx context.Context, p *models.GrantProgram) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

// UpdateProgram changes the fields set in update.
//
// If there is no program with the ID, the error wraps models.ErrResourceNotFound.
func (r *Repository) UpdateProgram(ctx context.Context, id uuid.UUID, update ProgramUpdate) (program models.GrantProgram, err error) {
	err = r.Transaction(ctx, func(tx *Repository) error {
		var found bool
		program, found, err = tx.Program(ctx, id)
		if err != nil {
			return err
		}

		if !found {
			return fmt.Errorf("%w grant program with this ID", models.ErrResourceNotFound)
		}

		update.apply(&program)
		return tx.SaveProgram(ctx, &program)
	})

	return program, err
}

// ProgramBudgets returns the budgets of all programs.
func (r *Repository) ProgramBudgets(ctx context.Context) ([]types.Money, error) {
	budgets := []types.Money{}
	err := r.db.WithContext(ctx).Model(&models.GrantProgram{}).Pluck("budget", &budgets).Error
	return budgets, err
}
