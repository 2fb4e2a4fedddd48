package cfn

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// jsonAPI is the codec used for the service wire format, a drop-in for the standard library which decodes the
// invocation envelope noticeably faster.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeEvent decodes a raw invocation envelope.
func DecodeEvent(data []byte) (*Event, error) {
	var event Event

	if err := jsonAPI.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// EncodeProgress encodes the given progress event in the service wire format.
func EncodeProgress(progress ProgressEvent) ([]byte, error) {
	data, err := jsonAPI.Marshal(progress)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal progress event: %w", err)
	}

	return data, nil
}
