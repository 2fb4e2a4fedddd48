package cfn

// Action is the lifecycle operation the service is asking the handlers to perform.
type Action string

const (
	// ActionCreate provisions the resource described by the desired state.
	ActionCreate Action = "CREATE"

	// ActionRead returns the live state of an existing resource.
	ActionRead Action = "READ"

	// ActionUpdate mutates an existing resource to match the desired state.
	ActionUpdate Action = "UPDATE"

	// ActionDelete removes an existing resource.
	ActionDelete Action = "DELETE"

	// ActionList returns a single page of the existing resources of this type.
	ActionList Action = "LIST"
)
