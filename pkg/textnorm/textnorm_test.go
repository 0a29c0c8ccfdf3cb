package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/backoffice-api/pkg/textnorm"
)

func TestLower(t *testing.T) {
	assert.Equal(t, "comercial ñandú ltda", textnorm.Lower("  Comercial ÑANDÚ Ltda "))
	assert.Equal(t, "admin@acme.cl", textnorm.Email("Admin@ACME.cl"))
}
