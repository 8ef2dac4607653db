// Package persona manages trained writing personas: building a profile
// from raw writing samples, storing profiles, and round-tripping them
// through portable backup records.
package persona

import (
	"errors"
	"time"

	"github.com/apresai/repost/internal/analysis"
)

var (
	// ErrNameReserved is returned when a save targets a built-in name.
	ErrNameReserved = errors.New("persona name is reserved")
	// ErrNotFound is returned when a persona lookup misses.
	ErrNotFound = errors.New("persona not found")
)

// ContentType says what kind of writing a persona was trained on.
type ContentType string

const (
	ContentPosts ContentType = "posts"
	ContentBlogs ContentType = "blogs"
	ContentMixed ContentType = "mixed"
)

// Profile is a named writing persona: the raw training text, the style
// metrics derived from it, and optional hand-authored metadata.
type Profile struct {
	Name            string                `json:"name"`
	RawTrainingText string                `json:"raw_training_text"`
	Metrics         analysis.StyleMetrics `json:"metrics"`

	Description  string   `json:"description,omitempty"`
	DomainTags   []string `json:"domain_tags,omitempty"`
	Instructions string   `json:"instructions,omitempty"`

	ContentType ContentType `json:"content_type"`
	BuiltIn     bool        `json:"built_in"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Metadata is the optional authored portion of a profile, merged in at
// build time.
type Metadata struct {
	Description  string
	DomainTags   []string
	Instructions string
}
