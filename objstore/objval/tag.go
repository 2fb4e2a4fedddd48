package objval

// Tag is a single user supplied key/value pair attached to an object.
//
// NOTE: Tags are modeled as an ordered list rather than a map, the order they were supplied in is significant to the
// caller and must survive a round trip through the service.
type Tag struct {
	Key   string
	Value string
}
