package staff

// certValidityThreshold is the fixed date every certification expiry is
// compared against. Expiry tokens must be in sortable YYYY-MM-DD form
// for the string comparison to be meaningful.
const certValidityThreshold = "2023-01-01"

// DefaultCertificationExpiry is used when a record is constructed
// without an explicit expiry token.
const DefaultCertificationExpiry = "2025-12-31"

// Certifiable is the capability to hold an expiry-dated credential.
// Volunteers do not carry it.
type Certifiable interface {
	// VerifyCertification reports whether the expiry token sorts
	// strictly after the validity threshold.
	VerifyCertification() bool

	// CertificationDetails returns the credential description with the
	// literal expiry token, even when the certification has expired.
	CertificationDetails() string
}

func certificationValid(expiry string) bool {
	return expiry > certValidityThreshold
}
