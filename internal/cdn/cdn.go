// Package cdn builds image URLs for roster entities on the game CDN.
package cdn

import (
	"regexp"
	"strings"
)

// BaseURL is the CDN root.
const BaseURL = "https://cdn.worldofmiscrits.com"

// DefaultImageKind is the image variant used when none is given.
const DefaultImageKind = "back"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Sanitize converts an entity name to its CDN file stem: apostrophes are
// removed, whitespace runs become underscores and the result is lowercased.
func Sanitize(name string) string {
	name = strings.ReplaceAll(name, "'", "")
	name = whitespaceRun.ReplaceAllString(name, "_")
	return strings.ToLower(name)
}

// AvatarURL returns the avatar image for the entity's first-evolution name,
// or "" for an empty name.
func AvatarURL(name string) string {
	if name == "" {
		return ""
	}
	return BaseURL + "/avatars/" + Sanitize(name) + "_avatar.png"
}

// ImageURL returns the kind variant ("back", "front", ...) of the entity's
// image, or "" for an empty name. An empty kind means DefaultImageKind.
func ImageURL(name, kind string) string {
	if name == "" {
		return ""
	}
	if kind == "" {
		kind = DefaultImageKind
	}
	return BaseURL + "/miscrits/" + Sanitize(name) + "_" + kind + ".png"
}
