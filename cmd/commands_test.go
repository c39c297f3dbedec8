package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userregistry/internal/models"
)

func TestExportWriter(t *testing.T) {
	write, name, err := exportWriter("csv")
	require.NoError(t, err)
	assert.Equal(t, "registered_users.csv", name)

	var buf bytes.Buffer
	require.NoError(t, write(&buf, []models.Registration{}))
	assert.Contains(t, buf.String(), "Full Name")

	_, name, err = exportWriter("pdf")
	require.NoError(t, err)
	assert.Equal(t, "registered_users.pdf", name)

	_, _, err = exportWriter("xlsx")
	assert.EqualError(t, err, `unknown export format "xlsx"`)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"serve", "export", "submit", "seed"} {
		assert.True(t, names[name], name)
	}
}
