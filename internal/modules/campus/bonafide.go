package campus

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"campusos/internal/modules/fare"
)

const (
	CertificateValidUntil     = "2026-06-30"
	CertificateVerifiedVia    = "DigiLocker + ABC (Academic Bank of Credits)"
	CertificateVerificationID = "DL-2026-STU-48291"
	CertificateMessage        = "Digital bonafide certificate generated successfully!"
)

// DefaultStudent is the signed-in demo student.
var DefaultStudent = Student{
	Name:         "Saksham Yason",
	College:      "Indian Institute of Technology, Lucknow",
	EnrollmentNo: "2023BCS1042",
	Course:       "B.Tech Computer Science",
	Year:         "3rd Year",
}

// NewCertificate fills a bonafide certificate for s from a priced concession.
// Class and category are echoed as the student requested them.
func NewCertificate(s Student, class, category string, r fare.ConcessionResult) Certificate {
	return Certificate{
		StudentName:    s.Name,
		College:        s.College,
		EnrollmentNo:   s.EnrollmentNo,
		Course:         s.Course,
		Year:           s.Year,
		FromStation:    r.FromStation,
		ToStation:      r.ToStation,
		TravelClass:    class,
		ConcessionType: category,
		ConcessionFare: r.ConcessionFare,
		ValidUntil:     CertificateValidUntil,
		VerifiedVia:    CertificateVerifiedVia,
		VerificationID: CertificateVerificationID,
	}
}

// RenderPDF lays the certificate out on a single A4 page.
func RenderPDF(c Certificate) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bonafide Certificate", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BONAFIDE CERTIFICATE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, c.College)
	pdf.Ln(10)

	lines := []string{
		fmt.Sprintf("Student        : %s", c.StudentName),
		fmt.Sprintf("Enrollment No  : %s", c.EnrollmentNo),
		fmt.Sprintf("Course         : %s (%s)", c.Course, c.Year),
		fmt.Sprintf("Journey        : %s -> %s", c.FromStation, c.ToStation),
		fmt.Sprintf("Class          : %s", c.TravelClass),
		fmt.Sprintf("Concession     : %s", c.ConcessionType),
		fmt.Sprintf("Concession Fare: Rs. %d", c.ConcessionFare),
		fmt.Sprintf("Valid Until    : %s", c.ValidUntil),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Verified via %s. Verification ID %s. Show this certificate at the booking counter.",
		c.VerifiedVia, c.VerificationID), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("BONAFIDE_%s.pdf", c.EnrollmentNo), nil
}
