package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCertificateNumber(t *testing.T) {
	issued := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "IB-TRN-2026-4F09AC", NewCertificateNumber("training_completion", issued, "4f09ac"))
	assert.Equal(t, "IB-INT-2026-ABCDEF", NewCertificateNumber("internship_completion", issued, "abcdef"))
}

func TestNewCertificateNumberDefaultsToTraining(t *testing.T) {
	issued := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "IB-TRN-2025-000000", NewCertificateNumber("unknown_type", issued, "000000"))
}
