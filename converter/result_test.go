package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(Result{
		Markdown: "x\r\n",
		Warnings: []Warning{{Type: WarningUnknownTag, Tag: "span", Message: "unknown start tag: span"}},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"markdown":"x\r\n","warnings":[{"type":"unknown_tag","tag":"span","message":"unknown start tag: span"}]}`, string(data))
}
