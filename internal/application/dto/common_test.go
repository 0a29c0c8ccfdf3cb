package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

func TestPages(t *testing.T) {
	assert.Equal(t, 3, dto.Pages(23, 10))
	assert.Equal(t, 2, dto.Pages(20, 10))
	assert.Equal(t, 0, dto.Pages(0, 10))
	assert.Equal(t, 1, dto.Pages(1, 100))
	assert.Equal(t, 0, dto.Pages(5, 0))
}
