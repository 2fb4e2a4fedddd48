package cfn

import (
	"encoding/json"
	"fmt"
)

// Credentials are the temporary credentials vended by the service for a single handler invocation.
type Credentials struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	SessionToken    string `json:"sessionToken"`
}

// RequestData is the caller supplied portion of the invocation envelope.
type RequestData struct {
	LogicalResourceID          string            `json:"logicalResourceId"`
	ResourceProperties         json.RawMessage   `json:"resourceProperties"`
	PreviousResourceProperties json.RawMessage   `json:"previousResourceProperties"`
	TypeConfiguration          json.RawMessage   `json:"typeConfiguration"`
	CallerCredentials          *Credentials      `json:"callerCredentials"`
	ProviderCredentials        *Credentials      `json:"providerCredentials"`
	ProviderLogGroupName       string            `json:"providerLogGroupName"`
	StackTags                  map[string]string `json:"stackTags"`
	PreviousStackTags          map[string]string `json:"previousStackTags"`
	SystemTags                 map[string]string `json:"systemTags"`
}

// Event is the raw invocation envelope delivered by the service.
type Event struct {
	Action              Action         `json:"action"`
	AWSAccountID        string         `json:"awsAccountId"`
	BearerToken         string         `json:"bearerToken"`
	Region              string         `json:"region"`
	ResourceType        string         `json:"resourceType"`
	ResourceTypeVersion string         `json:"resourceTypeVersion"`
	CallbackContext     map[string]any `json:"callbackContext"`
	RequestData         RequestData    `json:"requestData"`
	StackID             string         `json:"stackId"`
	NextToken           string         `json:"nextToken"`
}

// Request is the decoded view of a single invocation handed to the lifecycle handlers.
type Request struct {
	// Action is the lifecycle operation being performed.
	Action Action

	// AWSAccountID is the account the resource lives in.
	AWSAccountID string

	// Region is the region the operation targets.
	Region string

	// LogicalResourceID is the name of the resource in the callers template.
	LogicalResourceID string

	// StackID is the ARN of the stack driving the operation, empty when invoked outside a stack.
	StackID string

	// BearerToken correlates all the invocations belonging to one logical operation.
	BearerToken string

	// CallbackContext is the state returned by the previous invocation, <nil> on the first invocation.
	CallbackContext map[string]any

	// StackTags are the tags applied to the stack, handlers merge them into the resources own tags.
	StackTags map[string]string

	// PreviousStackTags are the stack tags prior to the operation, populated for updates.
	PreviousStackTags map[string]string

	// SystemTags are the 'aws:' prefixed tags supplied by the service.
	SystemTags map[string]string

	// NextToken resumes a paginated list operation.
	NextToken string

	// Credentials used to access the downstream service on behalf of the caller.
	Credentials *Credentials

	properties         json.RawMessage
	previousProperties json.RawMessage
}

// NewRequest returns the handler facing view of the given envelope.
func NewRequest(event *Event) *Request {
	credentials := event.RequestData.CallerCredentials
	if credentials == nil {
		credentials = event.RequestData.ProviderCredentials
	}

	return &Request{
		Action:             event.Action,
		AWSAccountID:       event.AWSAccountID,
		Region:             event.Region,
		LogicalResourceID:  event.RequestData.LogicalResourceID,
		StackID:            event.StackID,
		BearerToken:        event.BearerToken,
		CallbackContext:    event.CallbackContext,
		StackTags:          event.RequestData.StackTags,
		PreviousStackTags:  event.RequestData.PreviousStackTags,
		SystemTags:         event.RequestData.SystemTags,
		NextToken:          event.NextToken,
		Credentials:        credentials,
		properties:         event.RequestData.ResourceProperties,
		previousProperties: event.RequestData.PreviousResourceProperties,
	}
}

// Bind unmarshals the desired resource state into the given model, binding no properties is not an error, handlers
// perform their own semantic validation.
func (r *Request) Bind(model any) error {
	if len(r.properties) == 0 {
		return nil
	}

	if err := jsonAPI.Unmarshal(r.properties, model); err != nil {
		return fmt.Errorf("failed to unmarshal resource properties: %w", err)
	}

	return nil
}

// BindPrevious unmarshals the resource state prior to the operation into the given model.
func (r *Request) BindPrevious(model any) error {
	if len(r.previousProperties) == 0 {
		return nil
	}

	if err := jsonAPI.Unmarshal(r.previousProperties, model); err != nil {
		return fmt.Errorf("failed to unmarshal previous resource properties: %w", err)
	}

	return nil
}

// HasPrevious returns a boolean indicating whether the envelope carried a previous resource state.
func (r *Request) HasPrevious() bool {
	return len(r.previousProperties) != 0
}
