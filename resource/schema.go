package resource

import (
	_ "embed"
)

// TypeName is the registered name of the resource type.
const TypeName = "AwsCommunity::S3::Object"

//go:embed awscommunity-s3-object.json
var schema []byte

// Schema returns the resource provider schema document which describes the model to the registry.
func Schema() []byte {
	return schema
}
