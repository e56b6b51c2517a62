package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Email  string `json:"email" validate:"notblank"`
	Method string `json:"formaPagamento" validate:"required,oneof=PIX BOLETO"`
	Note   string `json:"note" validate:"max=5"`
	Secret string `json:"secret" validate:"maxbytes=4"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(testRequest{Email: "a@b.c", Method: "PIX", Note: "ok"})
	assert.Empty(t, errs)
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	errs := ValidateStruct(testRequest{Email: "   ", Method: "CASH", Note: "too long"})

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}

	assert.Equal(t, "email is required", byField["email"])
	assert.Equal(t, "formaPagamento must be one of: PIX BOLETO", byField["formaPagamento"])
	assert.Equal(t, "note must be at most 5 characters", byField["note"])
}

func TestValidateStruct_MaxBytesCountsBytes(t *testing.T) {
	base := testRequest{Email: "a@b.c", Method: "PIX"}

	base.Secret = "abcd"
	assert.Empty(t, ValidateStruct(base))

	// three runes, six bytes
	base.Secret = "ééé"
	errs := ValidateStruct(base)
	require.Len(t, errs, 1)
	assert.Equal(t, "secret", errs[0].Field)
	assert.Equal(t, "secret must be at most 4 bytes", errs[0].Message)
}
