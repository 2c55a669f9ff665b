package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("menu item", "big mac")

		assert.Equal(t, "menu item", err.ParamName)
		assert.Equal(t, "big mac", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: big mac", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("sessionId", "abc-123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: sessionId, ID is: abc-123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("quantity")
	assert.Equal(t, "value is invalid: quantity", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("not a number"))
	assert.Equal(t, "value is invalid: quantity (cause: not a number)", withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 10)

		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10, err.Max)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 1, max value is 10", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("policy check failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", 12, 1, 10, cause)
		assert.Equal(t,
			"value is invalid: 12 is quantity, min value is 1, max value is 10 (cause: policy check failed)",
			err.Error())
	})

	t.Run("sanitizes newlines in the value", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("session id")
	assert.Equal(t, "value is required: session id", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("session id", errors.New("no contexts"))
	assert.Equal(t, "value is required: session id (cause: no contexts)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("version", errors.New("invalid semver"))
	assert.Equal(t, "version is invalid: version (cause: invalid semver)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	withoutCause := errs.NewVersionIsInvalidErrorWithCause("version")
	require.NoError(t, withoutCause.Cause)
	assert.Equal(t, "version is invalid: version", withoutCause.Error())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}
