package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/pkg/rut"
)

func TestValidate(t *testing.T) {
	valid := []string{"76.086.428-5", "76086428-5", "760864285", "11.111.111-1", "10.000.013-K", "10000013-k", "10000004-0"}
	for _, v := range valid {
		assert.NoError(t, rut.Validate(v), v)
	}

	invalid := []string{"76.086.428-4", "", "1", "abc", "1k000013-k", "123-4"}
	for _, v := range invalid {
		assert.Error(t, rut.Validate(v), v)
	}
}

func TestComputeVerificationDigit(t *testing.T) {
	dv, err := rut.ComputeVerificationDigit("12345678")
	require.NoError(t, err)
	assert.Equal(t, byte('5'), dv)

	dv, err = rut.ComputeVerificationDigit("10000013")
	require.NoError(t, err)
	assert.Equal(t, byte('k'), dv)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "76086428-5", rut.Normalize("76.086.428-5"))
	assert.Equal(t, "10000013-k", rut.Normalize("10.000.013-K"))
	assert.Equal(t, "no es rut", rut.Normalize("  NO ES RUT "))
}
