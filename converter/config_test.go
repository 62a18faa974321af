package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := (Config{}).applyDefaults()

	assert.False(t, cfg.FencedCodeBlocks)
	assert.Equal(t, ErrorPolicyLog, cfg.ErrorPolicy)
	assert.Equal(t, SeverityInfo, cfg.DiagnosticLevel)
	assert.Equal(t, 0, cfg.MaxDepth)
	assert.Nil(t, cfg.Sink)
}

func TestValidateValid(t *testing.T) {
	cfg := Config{
		FencedCodeBlocks: true,
		ErrorPolicy:      ErrorPolicyRaise,
		DiagnosticLevel:  SeverityDebug,
		MaxDepth:         128,
	}

	require.NoError(t, cfg.Validate())
}

func TestValidateInvalid(t *testing.T) {
	cfg := (Config{}).applyDefaults()
	cfg.ErrorPolicy = ErrorPolicy("ignore")
	require.EqualError(t, cfg.Validate(), `invalid errorPolicy "ignore"`)

	cfg = (Config{}).applyDefaults()
	cfg.DiagnosticLevel = Severity("fatal")
	require.Error(t, cfg.Validate())

	cfg = (Config{}).applyDefaults()
	cfg.MaxDepth = -1
	require.Error(t, cfg.Validate())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{ErrorPolicy: "ignore"})
	require.Error(t, err)
}
