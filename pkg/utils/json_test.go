package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePrettyJSON(&buf, map[string]int{"units_sold": 25}))

	assert.Equal(t, "{\n  \"units_sold\": 25\n}\n", buf.String())
}
