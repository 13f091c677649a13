package iam

// IAMUser is a read-only snapshot of one user and its MFA device count.
type IAMUser struct {
	Name           string
	MFADeviceCount int
}

// HasMFA reports whether at least one MFA device is attached.
func (u IAMUser) HasMFA() bool {
	return u.MFADeviceCount > 0
}
