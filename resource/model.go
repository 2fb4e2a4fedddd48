package resource

import (
	"errors"
	"fmt"
	"regexp"
)

// ObjectKeyPattern restricts object keys to the character set the resource schema allows, path separators are
// permitted between segments but not at either end.
const ObjectKeyPattern = `^[a-zA-Z0-9!_.*'()-]+(/[a-zA-Z0-9!_.*'()-]+)*$`

var objectKeyRegex = regexp.MustCompile(ObjectKeyPattern)

// Model is the typed state of a single managed object, field names/JSON tags match the property names from the
// resource schema.
type Model struct {
	BucketName string `json:"BucketName,omitempty"`
	ObjectKey  string `json:"ObjectKey,omitempty"`

	// ObjectContents is a pointer so that a zero byte object is distinguishable from an absent property.
	ObjectContents *string `json:"ObjectContents,omitempty"`

	Tags []Tag `json:"Tags,omitempty"`

	// ObjectArn is the read-only primary identifier, always derived from the bucket/key pair and never accepted as
	// desired state.
	ObjectArn string `json:"ObjectArn,omitempty"`
}

// Tag is a single key/value pair attached to the object, the supplied order is preserved end-to-end.
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// Validate returns an error if the desired state is structurally invalid, run up-front so that bad requests fail
// before anything is sent to the service.
func (m *Model) Validate() error {
	if m.BucketName == "" {
		return errors.New("'BucketName' is a required property")
	}

	if m.ObjectKey == "" {
		return errors.New("'ObjectKey' is a required property")
	}

	if !objectKeyRegex.MatchString(m.ObjectKey) {
		return fmt.Errorf("'ObjectKey' must match pattern %s", ObjectKeyPattern)
	}

	if m.ObjectContents == nil {
		return errors.New("'ObjectContents' is a required property")
	}

	return m.validateTags()
}

// validateTags ensures tag pairs are complete and keys unique, S3 rejects duplicate keys server-side with an error
// which doesn't name the offending key so the check is made here where it can be reported clearly.
func (m *Model) validateTags() error {
	seen := make(map[string]struct{}, len(m.Tags))

	for _, tag := range m.Tags {
		if tag.Key == "" {
			return errors.New("tag keys must be non-empty")
		}

		if tag.Value == "" {
			return fmt.Errorf("tag '%s' must have a non-empty value", tag.Key)
		}

		if _, ok := seen[tag.Key]; ok {
			return fmt.Errorf("duplicate tag key '%s'", tag.Key)
		}

		seen[tag.Key] = struct{}{}
	}

	return nil
}

// Location returns the bucket/key pair identifying the object, falling back to parsing the primary identifier when
// the individual properties are absent; read/delete requests may carry either form.
func (m *Model) Location() (string, string, error) {
	if m.BucketName != "" && m.ObjectKey != "" {
		return m.BucketName, m.ObjectKey, nil
	}

	if m.ObjectArn != "" {
		return ParseArn(m.ObjectArn)
	}

	return "", "", errors.New("'BucketName' and 'ObjectKey', or 'ObjectArn' must be provided")
}
