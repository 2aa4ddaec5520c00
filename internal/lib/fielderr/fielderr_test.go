package fielderr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Kind  string `json:"kind" validate:"oneof=a b"`
	Count int    `json:"count" validate:"gte=1"`
	Note  string `json:"-" validate:"required"`
}

func TestCheck_NamesFieldsByJSONTag(t *testing.T) {
	v := NewValidator()

	err := Check(v, sample{Email: "not-an-email", Kind: "c"})
	require.Error(t, err)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, "field email must be a valid email", errs["email"])
	assert.Equal(t, "field kind must be one of: a b", errs["kind"])
	assert.Equal(t, "field count must be at least 1", errs["count"])
	assert.Equal(t, "field Note is a required field", errs["Note"])
}

func TestCheck_Valid(t *testing.T) {
	v := NewValidator()
	err := Check(v, sample{Email: "a@b.io", Kind: "a", Count: 2, Note: "x"})
	assert.NoError(t, err)
}

func TestErrors_AddKeepsFirstMessage(t *testing.T) {
	errs := Errors{}
	errs.Add("code", "first")
	errs.Add("code", "second")
	assert.Equal(t, "first", errs["code"])
}

func TestErrors_ErrorIsSortedByField(t *testing.T) {
	errs := Errors{}
	errs.Required("startDate")
	errs.Required("code")

	assert.Equal(t, "field code is a required field, field startDate is a required field", errs.Error())
}

func TestErrors_ErrNilWhenEmpty(t *testing.T) {
	assert.NoError(t, Errors{}.Err())

	errs := Errors{}
	errs.Required("code")
	assert.Error(t, errs.Err())
}
