package video

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/leaguecast-cli/leaguecast/util"
	"github.com/samber/mo"
)

// fieldBinding associates a stable wire name with one entity field.
// The wire names are the de facto transport contract and must not change.
type fieldBinding struct {
	name  string
	field func(v *Video) *mo.Option[string]
}

var fieldBindings = []fieldBinding{
	{"video_id", func(v *Video) *mo.Option[string] { return &v.VideoID }},
	{"thumb", func(v *Video) *mo.Option[string] { return &v.Thumb }},
	{"title", func(v *Video) *mo.Option[string] { return &v.Title }},
	{"live", func(v *Video) *mo.Option[string] { return &v.Live }},
	{"time", func(v *Video) *mo.Option[string] { return &v.Time }},
	{"match_id", func(v *Video) *mo.Option[string] { return &v.MatchID }},
	{"score", func(v *Video) *mo.Option[string] { return &v.Score }},
	{"desc", func(v *Video) *mo.Option[string] { return &v.Desc }},
	{"dummy", func(v *Video) *mo.Option[string] { return &v.Dummy }},
	{"livestream_video", func(v *Video) *mo.Option[string] { return &v.LivestreamVideo }},
	{"link_id", func(v *Video) *mo.Option[string] { return &v.LinkID }},
	{"account_id", func(v *Video) *mo.Option[string] { return &v.AccountID }},
	{"policy_key", func(v *Video) *mo.Option[string] { return &v.PolicyKey }},
	{"type", func(v *Video) *mo.Option[string] { return &v.Type }},
	{"p_code", func(v *Video) *mo.Option[string] { return &v.PCode }},
}

// bindingIndex maps wire names back to their field bindings for decoding.
var bindingIndex = func() map[string]fieldBinding {
	index := make(map[string]fieldBinding, len(fieldBindings))
	for _, b := range fieldBindings {
		index[b.name] = b
	}
	return index
}()

// Encode serializes the entity into a flat ampersand-joined key=value string
// suitable for crossing a navigation boundary without a shared session.
//
// Every field is transliterated to pure ASCII first; non-ASCII runes are
// dropped, so values only round-trip on their ASCII-reducible form. The
// thumbnail URL is percent-encoded as a whole value since it may itself
// contain '&' or '='. Absent fields are emitted with an empty value.
func (v *Video) Encode() string {
	pairs := make([]string, 0, len(fieldBindings))
	for _, b := range fieldBindings {
		var value string
		if raw, ok := b.field(v).Get(); ok {
			value = util.EnsureASCII(raw)
			if b.name == "thumb" {
				value = url.QueryEscape(value)
			}
		}
		pairs = append(pairs, b.name+"="+value)
	}
	return strings.Join(pairs, "&")
}

// decodeValue percent-decodes a transport value leniently. Only the thumb is
// percent-encoded on the way out, so a literal '%' in any other field is not
// a valid escape; it stays literal, with just the plus-for-space substitution
// applied, so such values still survive the round trip.
func decodeValue(raw string) string {
	if value, err := url.QueryUnescape(raw); err == nil {
		return value
	}
	return strings.ReplaceAll(raw, "+", " ")
}

// Decode reconstructs an entity from its flat transport string.
// Each value is percent-decoded and assigned to the matching field;
// empty values decode to absent fields. Unknown keys are ignored.
func Decode(encoded string) (*Video, error) {
	v := &Video{}
	for _, pair := range strings.Split(encoded, "&") {
		if pair == "" {
			continue
		}

		name, raw, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("decode video: malformed pair %q", pair)
		}

		value := decodeValue(raw)
		if value == "" {
			continue
		}

		if b, ok := bindingIndex[name]; ok {
			*b.field(v) = mo.Some(value)
		}
	}
	return v, nil
}
