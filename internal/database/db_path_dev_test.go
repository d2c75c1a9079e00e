//go:build !prod

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevelopment_DevBuild(t *testing.T) {
	assert.True(t, IsDevelopment())
	assert.Equal(t, "ragsettings.db", GetDefaultDBPath())
}
