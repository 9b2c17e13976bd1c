package server

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValidator(t *testing.T) {
	var v *formValidator
	require.NotPanics(t, func() { v = newFormValidator() })

	assert.NoError(t, v.Validate(&ideaForm{Idea: " a fox "}))

	for _, blank := range []string{"", " ", "\t\n"} {
		err := v.Validate(&ideaForm{Idea: blank})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "idea", verrs[0].Field())
		assert.Equal(t, "notblank", verrs[0].Tag())
	}

	errs, ok := fieldErrors(v.Validate(&promptForm{}))
	require.True(t, ok)
	assert.Equal(t, map[string]string{"prompt": "This field is required."}, errs)
}
