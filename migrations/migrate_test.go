//go:build unit

package migrations_test

import (
	"testing"

	"hotel-backoffice/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	names, err := migrations.Names()
	require.NoError(t, err)

	require.NotEmpty(t, names)
	assert.Equal(t, "001_initial_schema.sql", names[0])
	assert.IsNonDecreasing(t, names)
}
