// Package video defines the uniform entity produced by every feed and its flat transport codec.
package video

import "github.com/samber/mo"

// Kind is the two-variant provider discriminator that selects the stream resolution branch.
type Kind int

const (
	// KindDirect resolves through the service's own stream API with a derived authorization credential.
	KindDirect Kind = iota
	// KindPlatform resolves through the third-party video platform using account id and policy key.
	KindPlatform
)

// platformType is the feed's type discriminator value marking third-party platform items.
const platformType = "B"

// Video represents one playable or placeholder item normalized from any feed shape.
// Every field is optional; presence depends on which feed produced the entity.
// An entity is immutable once constructed, except for score back-filling and codec round-trips.
type Video struct {
	// VideoID is the provider-specific identifier for the media asset.
	// Required for any entity expected to resolve to a stream; dummy entities lack it.
	VideoID mo.Option[string]
	// Thumb is the thumbnail image URL.
	Thumb mo.Option[string]
	// Title is the display title. May contain feed color markup.
	Title mo.Option[string]
	// Live flags the item as a live stream ("true").
	Live mo.Option[string]
	// Time is a human-readable or raw timestamp string.
	Time mo.Option[string]
	// MatchID identifies the underlying sporting event, used to cross-reference scores.
	MatchID mo.Option[string]
	// Score is the last-resolved score string for the match, if attached.
	Score mo.Option[string]
	// Desc is a free-text description.
	Desc mo.Option[string]
	// Dummy marks a placeholder entity with no playable video.
	Dummy mo.Option[string]
	// LivestreamVideo is reserved for live-stream-only items.
	LivestreamVideo mo.Option[string]
	// LinkID is the feed-internal identifier used for menu navigation, distinct from VideoID.
	LinkID mo.Option[string]
	// AccountID is the third-party platform account identifier.
	AccountID mo.Option[string]
	// PolicyKey is the third-party platform credential scoping source access.
	PolicyKey mo.Option[string]
	// Type is the provider discriminator ("B" selects the platform branch).
	Type mo.Option[string]
	// PCode is a provider code attached to live platform items.
	PCode mo.Option[string]
}

// Kind reports the resolution branch for the entity.
// The discriminator is fixed at construction time; everything but an explicit "B" uses the direct API.
func (v *Video) Kind() Kind {
	if v.Type.OrElse("") == platformType {
		return KindPlatform
	}
	return KindDirect
}

// IsLive reports whether the entity represents a live stream.
func (v *Video) IsLive() bool {
	return isTruthy(v.Live)
}

// IsDummy reports whether the entity is a non-playable placeholder.
func (v *Video) IsDummy() bool {
	return isTruthy(v.Dummy)
}

// String returns the title, or the video identifier for untitled entities.
func (v *Video) String() string {
	if title, ok := v.Title.Get(); ok {
		return title
	}
	return v.VideoID.OrElse("")
}

func isTruthy(o mo.Option[string]) bool {
	switch o.OrElse("") {
	case "", "false", "False", "0":
		return false
	default:
		return true
	}
}
