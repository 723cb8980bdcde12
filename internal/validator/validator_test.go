package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsilveira/roteiros-api/internal/validator"
)

type sample struct {
	Destino    string `json:"destino" validate:"required"`
	DataInicio string `json:"dataInicio" validate:"required"`
	Notas      string `json:"notas"`
}

func TestValidate_OK(t *testing.T) {
	err := validator.Validate(sample{Destino: "Paris", DataInicio: "2026-06-10"})

	assert.NoError(t, err)
}

func TestMessage_UsesJSONFieldNames(t *testing.T) {
	err := validator.Validate(sample{})
	require.Error(t, err)

	msg := validator.Message(err)

	// The message must name the wire fields, not the Go struct fields.
	assert.Contains(t, msg, "destino é obrigatório")
	assert.Contains(t, msg, "dataInicio é obrigatório")
	assert.NotContains(t, msg, "Destino")
}

func TestMessage_NonValidatorError(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, "boom", validator.Message(err))
}
