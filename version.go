package feedvalidator

// Version is the library version.
const Version = "0.1.0"

// SpecMode identifies the severity policy a validator applies.
type SpecMode string

// Supported severity policies.
const (
	// ModeBalanced yields errors for required and conditional-required
	// fields and warnings for recommended fields.
	ModeBalanced SpecMode = "balanced"
)

// String returns the mode string.
func (m SpecMode) String() string {
	return string(m)
}

// IsValid reports whether the mode is a supported severity policy.
func (m SpecMode) IsValid() bool {
	return m == ModeBalanced
}
