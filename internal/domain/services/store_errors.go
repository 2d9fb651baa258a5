package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"room-manager/internal/error/code"
)

// lookupError turns a failed single-row lookup into a coded error.
func lookupError(err error, notFound int) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return code.New(notFound, "")
	}
	return dbError(err)
}

// dbError wraps a storage error unless it already carries a code.
func dbError(err error) error {
	if err == nil {
		return nil
	}
	var ce *code.Error
	if errors.As(err, &ce) {
		return err
	}
	return code.Wrap(code.ErrDatabase, err)
}

// requireRef checks that a referenced row exists and reports a
// ForeignKeyViolation naming the field otherwise.
func requireRef(ctx context.Context, db *gorm.DB, model interface{}, field, id string) error {
	if id == "" {
		return code.Newf(code.ErrValidation, "%s is required", field)
	}
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return dbError(err)
	}
	if count == 0 {
		return code.Newf(code.ErrForeignKeyViolation, "%s %s does not exist", field, id)
	}
	return nil
}
