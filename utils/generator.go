package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/internbridge/intern_bridge/models"
	"gorm.io/gorm"
)

const certSuffixLength = 6
const certSuffixBytes = "ABCDEF0123456789"

// NewCertificateNumber builds a number like IB-TRN-2026-4F09AC.
// Uniqueness is the caller's concern; see GenerateUniqueCertificateNumber.
func NewCertificateNumber(certificateType string, issuedAt time.Time, suffix string) string {
	kind := "TRN"
	if certificateType == "internship_completion" {
		kind = "INT"
	}
	return fmt.Sprintf("IB-%s-%d-%s", kind, issuedAt.Year(), strings.ToUpper(suffix))
}

func GenerateUniqueCertificateNumber(tx *gorm.DB, certificateType string) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, certSuffixLength)
		for i := range b {
			b[i] = certSuffixBytes[seededRand.Intn(len(certSuffixBytes))]
		}
		number := NewCertificateNumber(certificateType, time.Now(), string(b))

		var cert models.Certificate
		err := tx.Where("certificate_number = ?", number).First(&cert).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return number, nil
			}
			return "", err
		}
	}
}
