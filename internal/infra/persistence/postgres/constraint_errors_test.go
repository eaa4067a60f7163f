package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	t.Parallel()

	unique := errors.New(`ERROR: duplicate key value violates unique constraint "shop_declarants_pkey" (SQLSTATE 23505)`)
	foreign := errors.New(`ERROR: insert or update on table "price_reports" violates foreign key constraint (SQLSTATE 23503)`)
	notNull := errors.New(`ERROR: null value in column "name" of relation "shops" violates not-null constraint (SQLSTATE 23502)`)
	check := errors.New(`ERROR: new row violates check constraint "price_positive" (SQLSTATE 23514)`)

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(fmt.Errorf("wrapped: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, isUniqueConstraintViolation(foreign))

	assert.True(t, isForeignKeyConstraintViolation(foreign))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(check))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(unique))
}
