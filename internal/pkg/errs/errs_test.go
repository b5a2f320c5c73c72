package errs_test

import (
	"errors"
	"testing"

	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("receiver name")

		assert.Equal(t, "receiver name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: receiver name", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("field missing from form payload")
		err := errs.NewValueIsRequiredErrorWithCause("sender contact", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: sender contact (cause: field missing from form payload)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("parcel type")

		assert.Equal(t, "value is invalid: parcel type", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unknown enum value")
		err := errs.NewValueIsInvalidErrorWithCause("parcel type", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: parcel type (cause: unknown enum value)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", -2, 0, 1000)

		assert.Equal(t, -2, err.Value)
		assert.Equal(t, "value is invalid: -2 is weight, min value is 0, max value is 1000", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("tariff rejected value")
		err := errs.NewValueIsOutOfRangeErrorWithCause("weight", -2, 0, 1000, cause)

		assert.Contains(t, err.Error(), "(cause: tariff rejected value)")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitizes newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("title", "line\nbreak", 0, 10)

		assert.Contains(t, err.Error(), "line break")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("serviceCenterId", "dhanmondi")

		assert.Equal(t, "serviceCenterId", err.ParamName)
		assert.Equal(t, "dhanmondi", err.ID)
		assert.Equal(t, "object not found: dhanmondi", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("directory not loaded")
		err := errs.NewObjectNotFoundErrorWithCause("regionId", "dhaka", cause)

		assert.Equal(t,
			"object not found: param is: regionId, ID is: dhaka (cause: directory not loaded)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("order version")

		assert.Equal(t, "version is invalid: order version", err.Error())
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("version must be positive")
		err := errs.NewVersionIsInvalidErrorWithCause("order version", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: order version (cause: version must be positive)", err.Error())
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}
