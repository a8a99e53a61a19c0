package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 93666.67, RoundWithTwoDecimalPlace(93666.666666))
	assert.Equal(t, -9500.0, RoundWithTwoDecimalPlace(-9499.999999))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)
	assert.Regexp(t, "^[A-Za-z0-9]+$", id)
}
