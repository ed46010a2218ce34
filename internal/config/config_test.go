package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extproc/domain/extension"
	"extproc/internal/errors"
)

func TestLoad_DefaultsToFormsHeaders(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, extension.DefaultColumnConfig(), cfg.Columns)
	assert.Equal(t, "./extensions_output", cfg.Output.Dir)
	assert.True(t, cfg.Adjust.ToSunday)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("EXT_EMAIL_COLUMN", "Student Email")
	t.Setenv("EXT_OUTPUT_DIR", "/tmp/out")
	t.Setenv("EXT_ADJUST_TO_SUNDAY", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Student Email", cfg.Columns.Email)
	assert.Equal(t, extension.DefaultColumnConfig().Name, cfg.Columns.Name)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.False(t, cfg.Adjust.ToSunday)
}

func TestLoad_BadBoolFallsBackToDefault(t *testing.T) {
	t.Setenv("EXT_ADJUST_TO_SUNDAY", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Adjust.ToSunday)
}

func TestValidateConfig_RejectsEmptyColumnName(t *testing.T) {
	cfg := &Config{
		Columns: extension.ColumnConfig{Email: "", Name: "Name", Assignment: "A", Date: "D"},
		Output:  OutputConfig{Dir: "out"},
	}

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
