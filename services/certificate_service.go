package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/internbridge/intern_bridge/configs"
	"github.com/internbridge/intern_bridge/database"
	"github.com/internbridge/intern_bridge/models"
	"github.com/internbridge/intern_bridge/notifications"
	"github.com/internbridge/intern_bridge/utils"
)

// IssueTrainingCertificate records a training_completion certificate for a
// completed enrollment. The certificate row is written even when PDF
// rendering or the upload fails, so the completion fact never depends on
// Chrome being available; such rows simply have no download URL.
func IssueTrainingCertificate(enrollment models.Enrollment) {
	var existing models.Certificate
	if err := database.DB.Where("enrollment_id = ?", enrollment.ID).First(&existing).Error; err == nil {
		return
	}

	var student models.User
	if err := database.DB.Where("id = ?", enrollment.StudentID).First(&student).Error; err != nil {
		log.Printf("🔥 Certificate issue: student %s not found: %v", enrollment.StudentID, err)
		return
	}

	number, err := utils.GenerateUniqueCertificateNumber(database.DB, "training_completion")
	if err != nil {
		log.Printf("🔥 Failed to generate certificate number: %v", err)
		return
	}

	courseTitle := fmt.Sprintf("%s Training Programme", models.StreamLabels[enrollment.Stream])
	downloadURL := renderAndUpload(student.FullName, courseTitle, number, student.ID)

	certificate := models.Certificate{
		StudentID:         student.ID,
		EnrollmentID:      &enrollment.ID,
		CertificateType:   "training_completion",
		CertificateNumber: number,
		IssuedAt:          time.Now(),
		DownloadURL:       downloadURL,
	}
	if err := database.DB.Create(&certificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for student %s: %v", student.ID, err)
		return
	}

	log.Printf("✅ Issued certificate %s for student %s.", number, student.ID)
	go notifications.SendEmail(student.FullName, student.Email, "Your Certificate is Ready", fmt.Sprintf("<h1>Congratulations!</h1><p>Your certificate for <strong>%s</strong> has been issued. Certificate number: %s.</p>", courseTitle, number))
}

// IssueInternshipCertificate records an internship_completion certificate
// for a completed application.
func IssueInternshipCertificate(application models.InternshipApplication) {
	var existing models.Certificate
	if err := database.DB.Where("internship_application_id = ?", application.ID).First(&existing).Error; err == nil {
		return
	}

	var student models.User
	if err := database.DB.Where("id = ?", application.StudentID).First(&student).Error; err != nil {
		log.Printf("🔥 Certificate issue: student %s not found: %v", application.StudentID, err)
		return
	}

	number, err := utils.GenerateUniqueCertificateNumber(database.DB, "internship_completion")
	if err != nil {
		log.Printf("🔥 Failed to generate certificate number: %v", err)
		return
	}

	title := application.Internship.Title
	if title == "" {
		var internship models.Internship
		if err := database.DB.Where("id = ?", application.InternshipID).First(&internship).Error; err == nil {
			title = internship.Title
		}
	}

	courseTitle := fmt.Sprintf("Internship: %s", title)
	downloadURL := renderAndUpload(student.FullName, courseTitle, number, student.ID)

	certificate := models.Certificate{
		StudentID:               student.ID,
		InternshipApplicationID: &application.ID,
		CertificateType:         "internship_completion",
		CertificateNumber:       number,
		IssuedAt:                time.Now(),
		DownloadURL:             downloadURL,
	}
	if err := database.DB.Create(&certificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for student %s: %v", student.ID, err)
		return
	}

	log.Printf("✅ Issued certificate %s for student %s.", number, student.ID)
	go notifications.SendEmail(student.FullName, student.Email, "Your Certificate is Ready", fmt.Sprintf("<h1>Congratulations!</h1><p>Your certificate for <strong>%s</strong> has been issued. Certificate number: %s.</p>", courseTitle, number))
}

func renderAndUpload(studentName, courseTitle, certificateNumber string, studentID uuid.UUID) *string {
	htmlData, err := generateCertificateHTML(studentName, courseTitle, certificateNumber)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return nil
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return nil
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, studentID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return nil
	}

	return &uploadURL
}

func generateCertificateHTML(studentName, courseTitle, certificateNumber string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName       string
		CourseTitle       string
		CertificateNumber string
		IssueDate         string
	}{
		StudentName:       studentName,
		CourseTitle:       courseTitle,
		CertificateNumber: certificateNumber,
		IssueDate:         time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, studentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", studentID, uuid.New().String()),
		Folder:       "intern_bridge_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
