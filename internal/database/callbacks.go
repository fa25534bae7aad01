package database

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/grantdesk/backend/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var plural = regexp.MustCompile("ies$")

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("grantdesk:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("grantdesk:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("grantdesk:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("grantdesk:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("grantdesk:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("grantdesk:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete and row callbacks
	err = db.Callback().Delete().After("*").Register("grantdesk:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	return db.Callback().Row().After("*").Register("grantdesk:after_row_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = plural.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError
	isPostgres := errors.As(db.Error, &pgErr)
	message := db.Error.Error()

	switch {
	case strings.Contains(message, "UNIQUE constraint failed: applicants.email"),
		isPostgres && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == "idx_applicants_email":
		db.Error = models.Wrap(models.ErrEmailNotUnique, models.FieldError{
			Field:   "email",
			Message: models.ErrEmailNotUnique.Error(),
		})

	case strings.Contains(message, "FOREIGN KEY constraint failed"),
		isPostgres && pgErr.Code == pgForeignKeyViolation:
		db.Error = models.Wrap(models.ErrReferenceMissing)
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" ||
		reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) ||
		errors.As(db.Error, &pgErr) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = models.ErrGeneral
	}
}
