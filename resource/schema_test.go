package resource

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aws-cloudformation/awscommunity-s3-object/testutil"
)

func TestSchema(t *testing.T) {
	var document map[string]any

	testutil.UnmarshalJSON(t, Schema(), &document)

	require.Equal(t, TypeName, document["typeName"])
	require.Equal(t, []any{"/properties/ObjectArn"}, document["primaryIdentifier"])
	require.Equal(t, []any{"/properties/ObjectArn"}, document["readOnlyProperties"])
	require.ElementsMatch(t, []any{"BucketName", "ObjectKey", "ObjectContents"}, document["required"])
}

func TestSchemaMatchesRegistryDocument(t *testing.T) {
	// The registry tooling reads the document at the repository root, the embedded copy must not drift from it
	document, err := os.ReadFile("../awscommunity-s3-object.json")
	require.NoError(t, err)
	require.JSONEq(t, string(document), string(Schema()))
}

func TestSchemaObjectKeyPattern(t *testing.T) {
	var document struct {
		Properties struct {
			ObjectKey struct {
				Pattern string `json:"pattern"`
			} `json:"ObjectKey"`
		} `json:"properties"`
	}

	testutil.UnmarshalJSON(t, Schema(), &document)

	// The pattern enforced in code and the pattern published to the registry must be the same string
	require.Equal(t, ObjectKeyPattern, document.Properties.ObjectKey.Pattern)
}
