package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamLabelsCoverAllCodes(t *testing.T) {
	codes := []string{"ux-ui-design", "full-stack-development", "digital-marketing", "creative-video-design"}

	assert.Len(t, StreamLabels, len(codes))
	for _, code := range codes {
		label, ok := StreamLabels[code]
		assert.True(t, ok, "missing label for %s", code)
		assert.NotEmpty(t, label)
	}
}

func TestStreamLabelsAreDistinct(t *testing.T) {
	seen := make(map[string]string)
	for code, label := range StreamLabels {
		prev, dup := seen[label]
		assert.False(t, dup, "label %q maps from both %s and %s", label, prev, code)
		seen[label] = code
	}
}

func TestValidStream(t *testing.T) {
	assert.True(t, ValidStream("ux-ui-design"))
	assert.False(t, ValidStream("UX/UI Design")) // labels are not codes
	assert.False(t, ValidStream("basket-weaving"))
	assert.False(t, ValidStream(""))
}
