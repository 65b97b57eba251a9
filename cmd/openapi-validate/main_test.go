package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const operationYAML = `
parameters:
  - name: petId
    in: path
    required: true
    schema:
      type: string
`

func TestRun(t *testing.T) {
	opPath := writeFile(t, "operation.yaml", operationYAML)

	t.Run("valid request exits zero", func(t *testing.T) {
		reqPath := writeFile(t, "request.json", `{"params":{"petId":"42"}}`)
		code, err := run([]string{"--operation", opPath, "-q", reqPath})
		require.NoError(t, err)
		assert.Equal(t, 0, code)
	})

	t.Run("invalid request exits two", func(t *testing.T) {
		reqPath := writeFile(t, "request.json", `{}`)
		code, err := run([]string{"--operation", opPath, "-q", reqPath})
		require.NoError(t, err)
		assert.Equal(t, 2, code)
	})

	t.Run("missing operation flag is a usage error", func(t *testing.T) {
		reqPath := writeFile(t, "request.json", `{}`)
		code, err := run([]string{reqPath})
		assert.Error(t, err)
		assert.Equal(t, 1, code)
	})

	t.Run("unreadable request file is an input error", func(t *testing.T) {
		code, err := run([]string{"--operation", opPath, "nope.json"})
		assert.Error(t, err)
		assert.Equal(t, 1, code)
	})
}
