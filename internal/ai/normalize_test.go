package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePayloadStripsFence(t *testing.T) {
	fenced := "```json\n{\"analysis\":{}}\n```"
	assert.Equal(t, `{"analysis":{}}`, NormalizePayload(fenced))
}

func TestNormalizePayloadFencedEqualsUnfenced(t *testing.T) {
	payload := `{"safety":["Stay hydrated."]}`
	require.Equal(t, NormalizePayload(payload), NormalizePayload("```json\n"+payload+"\n```"))
}

func TestNormalizePayloadTrimsWhitespace(t *testing.T) {
	assert.Equal(t, `{"a":1}`, NormalizePayload("  \n{\"a\":1}\n\t"))
}

func TestNormalizePayloadLeavesNonJSONAlone(t *testing.T) {
	// Normalization is textual only; JSON validity is the parser's job.
	assert.Equal(t, "not json at all", NormalizePayload("not json at all"))
}

func TestNormalizePayloadStripsNestedFences(t *testing.T) {
	nested := "```json\n```json\n{\"a\":1}\n```\n```"
	assert.Equal(t, `{"a":1}`, NormalizePayload(nested))
}

func TestNormalizePayloadIdempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"analysis\":{\"overall\":\"solid run\"}}\n```",
		"```json\n```json\n{\"a\":1}\n```\n```",
		"```json\n  ```json\n{\"a\":1}\n```  \n```",
		`{"analysis":{}}`,
		"",
		"   spaced   ",
		"```json\n{}",
		"{}\n```",
	}
	for _, in := range inputs {
		once := NormalizePayload(in)
		assert.Equal(t, once, NormalizePayload(once), "input %q", in)
	}
}
