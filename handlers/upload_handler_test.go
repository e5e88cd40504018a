package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadFolderForRole(t *testing.T) {
	assert.Equal(t, "intern_bridge_company_logos", uploadFolderForRole("company"))
	assert.Equal(t, "intern_bridge_institute_logos", uploadFolderForRole("institute"))
	assert.Equal(t, "intern_bridge_profiles", uploadFolderForRole("student"))
	assert.Equal(t, "intern_bridge_profiles", uploadFolderForRole("admin"))
	assert.Equal(t, "intern_bridge_profiles", uploadFolderForRole(""))
}
