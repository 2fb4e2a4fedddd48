package objval

import "fmt"

// Provider represents an object storage provider.
type Provider int

const (
	// ProviderNone means not using a provider e.g. the in-memory test client.
	ProviderNone Provider = iota

	// ProviderAWS is the AWS cloud provider.
	ProviderAWS
)

// String returns a human readable representation of the storage provider.
func (p Provider) String() string {
	switch p {
	case ProviderNone:
		return ""
	case ProviderAWS:
		return "AWS"
	}

	panic(fmt.Sprintf("unknown provider %d", p))
}

// ToScheme converts Provider to a scheme (e.g. s3://).
func (p Provider) ToScheme() string {
	switch p {
	case ProviderNone:
		return "file://"
	case ProviderAWS:
		return "s3://"
	default:
		panic(fmt.Sprintf("unknown provider %d", p))
	}
}
