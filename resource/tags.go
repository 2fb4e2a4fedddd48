package resource

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/aws-cloudformation/awscommunity-s3-object/objstore/objval"
)

// MergeTags merges stack level tags with the model tags into the single ordered tag set applied to the object.
//
// Stack tags are ordered by key (the envelope carries them as a map), model tags keep their supplied order and win on
// key collision.
func MergeTags(stackTags map[string]string, modelTags []Tag) []objval.Tag {
	merged := make([]objval.Tag, 0, len(stackTags)+len(modelTags))

	keys := maps.Keys(stackTags)
	slices.Sort(keys)

	for _, key := range keys {
		collision := slices.ContainsFunc(modelTags, func(tag Tag) bool { return tag.Key == key })
		if !collision {
			merged = append(merged, objval.Tag{Key: key, Value: stackTags[key]})
		}
	}

	for _, tag := range modelTags {
		merged = append(merged, objval.Tag{Key: tag.Key, Value: tag.Value})
	}

	if len(merged) == 0 {
		return nil
	}

	return merged
}

// modelTags converts tags read back from the service into the model representation, empty passes through as absent.
func modelTags(tags []objval.Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}

	converted := make([]Tag, 0, len(tags))

	for _, tag := range tags {
		converted = append(converted, Tag{Key: tag.Key, Value: tag.Value})
	}

	return converted
}
