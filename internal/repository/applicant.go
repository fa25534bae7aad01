package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/ttacon/libphonenumber"
)

// ApplicantFilter restricts the applicants that are listed.
type ApplicantFilter struct {
	// Email matches the email address exactly. If it contains a "*",
	// it is used as a glob pattern instead, e.g. "*@example.com".
	Email string
}

// CreateApplicant persists a new applicant. The phone number is stored
// in international format.
func (r *Repository) CreateApplicant(ctx context.Context, a *models.Applicant) error {
	if a.Phone != nil && strings.TrimSpace(*a.Phone) != "" {
		phone, err := r.normalizePhone(*a.Phone)
		if err != nil {
			return err
		}
		a.Phone = &phone
	}

	return create(ctx, r.db, a)
}

func (r *Repository) normalizePhone(phone string) (string, error) {
	number, err := libphonenumber.Parse(phone, r.phoneRegion)
	if err != nil || !libphonenumber.IsPossibleNumber(number) {
		return "", models.NewValidationError("phone", "phone is not a valid phone number")
	}

	return libphonenumber.Format(number, libphonenumber.INTERNATIONAL), nil
}

// Applicant returns the applicant with the ID.
func (r *Repository) Applicant(ctx context.Context, id uuid.UUID) (models.Applicant, bool, error) {
	return first[models.Applicant](ctx, r.db, "id = ?", id)
}

// ApplicantByEmail returns the applicant with the email address.
func (r *Repository) ApplicantByEmail(ctx context.Context, email string) (models.Applicant, bool, error) {
	return first[models.Applicant](ctx, r.db, "email = ?", strings.TrimSpace(email))
}

// Applicants lists applicants, newest first.
func (r *Repository) Applicants(ctx context.Context, filter ApplicantFilter) ([]models.Applicant, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")

	pattern := strings.TrimSpace(filter.Email)
	if pattern != "" && !strings.Contains(pattern, glob.GLOB) {
		query = query.Where("email = ?", pattern)
	}

	applicants := []models.Applicant{}
	err := query.Find(&applicants).Error
	if err != nil {
		return nil, err
	}

	if !strings.Contains(pattern, glob.GLOB) {
		return applicants, nil
	}

	matches := make([]models.Applicant, 0, len(applicants))
	for _, a := range applicants {
		if glob.Glob(pattern, a.Email) {
			matches = append(matches, a)
		}
	}

	return matches, nil
}
