package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

func TestUser_IsAdmin(t *testing.T) {
	companyID := "c1"
	assert.True(t, (&entity.User{}).IsAdmin())
	assert.False(t, (&entity.User{CompanyID: &companyID}).IsAdmin())
}

func TestUser_IsDeleted(t *testing.T) {
	now := time.Now()
	assert.False(t, (&entity.User{}).IsDeleted())
	assert.True(t, (&entity.User{DeletedAt: &now}).IsDeleted())
	assert.True(t, (&entity.Company{DeletedAt: &now}).IsDeleted())
}
