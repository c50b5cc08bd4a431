package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTag rejects the empty string as a variant tag.
	ErrEmptyTag = errors.New("fault: empty tag")
	// ErrDuplicateTag rejects a tag listed twice in one schema.
	ErrDuplicateTag = errors.New("fault: duplicate tag")
	// ErrEmptySchema rejects a schema with no variants.
	ErrEmptySchema = errors.New("fault: schema has no variants")
)

// Schema is a closed set of variant tags. The set is fixed at construction;
// a dispatcher built over a schema must cover exactly this set.
type Schema struct {
	tags []Tag
	set  map[Tag]struct{}
}

// NewSchema builds the closed tag set of a pipeline or stage. It fails on an
// empty tag list, an empty tag, or a duplicate.
func NewSchema(tags ...Tag) (Schema, error) {
	if len(tags) == 0 {
		return Schema{}, ErrEmptySchema
	}

	s := Schema{
		tags: make([]Tag, 0, len(tags)),
		set:  make(map[Tag]struct{}, len(tags)),
	}
	for _, tag := range tags {
		if tag == "" {
			return Schema{}, ErrEmptyTag
		}
		if _, dup := s.set[tag]; dup {
			return Schema{}, fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
		}
		s.tags = append(s.tags, tag)
		s.set[tag] = struct{}{}
	}
	return s, nil
}

// MustSchema is NewSchema for wiring code; it panics on an invalid tag set.
func MustSchema(tags ...Tag) Schema {
	s, err := NewSchema(tags...)
	if err != nil {
		panic(err)
	}
	return s
}

// Compose unions schemas into one, keeping first-seen order and dropping
// duplicates. This is how a caller's error set absorbs the sets of every
// stage it chains.
func Compose(schemas ...Schema) Schema {
	merged := Schema{set: make(map[Tag]struct{})}
	for _, s := range schemas {
		for _, tag := range s.tags {
			if _, seen := merged.set[tag]; seen {
				continue
			}
			merged.tags = append(merged.tags, tag)
			merged.set[tag] = struct{}{}
		}
	}
	return merged
}

// Contains reports whether tag belongs to the closed set.
func (s Schema) Contains(tag Tag) bool {
	_, ok := s.set[tag]
	return ok
}

// Tags returns the tags in declaration order. The slice is a copy; mutating
// it does not affect the schema.
func (s Schema) Tags() []Tag {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// Len returns the number of variants in the closed set.
func (s Schema) Len() int {
	return len(s.tags)
}
