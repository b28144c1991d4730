package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"name" validate:"required,max=5"`
	Category string   `json:"category" validate:"oneof=tops bottoms"`
	Tags     []string `json:"tags" validate:"max=2,dive,max=3"`
}

func TestStructValid(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(sample{Name: "tee", Category: "tops", Tags: []string{"a"}}))
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Struct(sample{Name: "", Category: "hats", Tags: []string{"a", "b", "c"}})
	require.Error(t, err)

	var fieldErrs Errors
	require.True(t, errors.As(err, &fieldErrs))
	require.Len(t, fieldErrs, 3)
	require.Equal(t, "name", fieldErrs[0].Field)
	require.Equal(t, "required", fieldErrs[0].Tag)
	require.Equal(t, "category must be one of [tops bottoms]", fieldErrs[1].Message)
	require.Equal(t, "tags", fieldErrs[2].Field)
	require.Contains(t, err.Error(), "name is required")
}
