package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt(""))
	assert.NoError(t, validatePositiveInt("3"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("-2"))
	assert.Error(t, validatePositiveInt("two"))
}

func TestParsePositiveInt_FallsBackOnBlank(t *testing.T) {
	assert.Equal(t, 4, parsePositiveInt("4", 1))
	assert.Equal(t, 1, parsePositiveInt("", 1))
	assert.Equal(t, 1, parsePositiveInt("0", 1))
}

func TestValidateFloatHelpers(t *testing.T) {
	assert.NoError(t, validatePositiveFloat("2.5"))
	assert.Error(t, validatePositiveFloat("0"))
	assert.NoError(t, validateNonNegativeFloat("0"))
	assert.Error(t, validateNonNegativeFloat("-1"))
}
