package database

import (
	"errors"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps database errors that escape the repositories to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.ErrUserNotFound
	case m.classifier.IsDuplicateKeyError(err):
		return errs.ErrConstraintViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated), errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.ErrConstraintViolation
	default:
		return errs.NewPersistenceError(operation, err)
	}
}
