package validation

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"min=3"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"pwd"`
}

type patch struct {
	Title *string `json:"title" validate:"omitnil,title"`
	Count int     `json:"count" validate:"min=2"`
}

func ptr(s string) *string { return &s }

func TestStruct_Valid(t *testing.T) {
	err := Struct(signup{Name: "Alice", Email: "alice@x.com", Password: "pass1"})
	assert.NoError(t, err)
}

func TestStruct_CollectsAllViolations(t *testing.T) {
	err := Struct(signup{Name: "Al", Email: "nope", Password: "123"})
	require.Error(t, err)

	var vs Violations
	require.True(t, errors.As(err, &vs))
	require.Len(t, vs, 3)

	assert.Equal(t, Violation{Field: "name", Tag: "min", Message: "name must be at least 3 characters long"}, vs[0])
	assert.Equal(t, Violation{Field: "email", Tag: "email", Message: "email must be a valid email"}, vs[1])
	assert.Equal(t, Violation{Field: "password", Tag: "pwd", Message: "password must be at least 5 characters long"}, vs[2])
	assert.Contains(t, err.Error(), "validation failed")
}

func TestStruct_OmitNilPointer(t *testing.T) {
	assert.NoError(t, Struct(patch{Count: 2}))
	assert.NoError(t, Struct(patch{Title: ptr("Shop"), Count: 2}))

	err := Struct(patch{Title: ptr(""), Count: 2})
	var vs Violations
	require.True(t, errors.As(err, &vs))
	assert.Equal(t, "title must be at least 3 characters long", vs[0].Message)
}

func TestStruct_NumericMin(t *testing.T) {
	err := Struct(patch{Count: 1})
	var vs Violations
	require.True(t, errors.As(err, &vs))
	assert.Equal(t, "count must be at least 2", vs[0].Message)
}

func TestStruct_MaxBytes(t *testing.T) {
	type secret struct {
		Password string `json:"password" validate:"maxbytes=4"`
	}

	assert.NoError(t, Struct(secret{Password: "abcd"}))
	assert.NoError(t, Struct(secret{Password: "éé"}))

	err := Struct(secret{Password: "ééé"})
	var vs Violations
	require.True(t, errors.As(err, &vs))
	assert.Equal(t, Violation{Field: "password", Tag: "maxbytes", Message: "password must be at most 4 bytes long"}, vs[0])
}

func TestToDetails(t *testing.T) {
	assert.Nil(t, ToDetails(nil))

	var target struct {
		Name string `json:"name"`
	}
	synErr := json.Unmarshal([]byte(`{"name":`), &target)
	assert.Equal(t, "payload", ToDetails(synErr)[0].Field)

	typeErr := json.Unmarshal([]byte(`{"name": 5}`), &target)
	d := ToDetails(typeErr)
	require.Len(t, d, 1)
	assert.Equal(t, "name", d[0].Field)

	assert.Equal(t, "request body is required", ToDetails(io.EOF)[0].Message)
	assert.Equal(t, "invalid payload", ToDetails(errors.New("boom"))[0].Message)

	vs := Violations{{Field: "title", Tag: "title", Message: "m"}}
	assert.Equal(t, vs, ToDetails(vs))
}
