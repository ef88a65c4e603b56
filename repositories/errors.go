package repositories

import (
	"errors"

	"github.com/alerta-golpe/api-go/apperrors"
	"gorm.io/gorm"
)

// translateError maps gorm errors onto apperrors kinds. notFound is the message
// used for missing rows and for foreign keys pointing at missing rows.
func translateError(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound(notFound)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.ForeignKeyViolation(notFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Conflict("Registro já existe")
	default:
		return apperrors.Internal("database error", err)
	}
}

func requireAffected(result *gorm.DB, notFound string) error {
	if result.Error != nil {
		return translateError(result.Error, notFound)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(notFound)
	}
	return nil
}
