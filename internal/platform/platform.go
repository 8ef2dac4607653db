// Package platform holds the static publishing rules for each target
// platform: display format, markdown-link support, and the guideline
// strings rendered verbatim into prompts.
package platform

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknown is returned when a platform id is not recognized.
var ErrUnknown = errors.New("unknown platform")

// Spec is the read-only configuration for one publishing destination.
type Spec struct {
	ID            string
	DisplayName   string
	DisplayFormat string
	MarkdownLinks bool
	Guidelines    []string
}

var specs = map[string]Spec{
	"linkedin": {
		ID:            "linkedin",
		DisplayName:   "LinkedIn",
		DisplayFormat: "professional post",
		MarkdownLinks: false,
		Guidelines: []string{
			"Keep the post under 3000 characters",
			"Open with a strong hook in the first two lines",
			"Use short paragraphs with whitespace between them",
			"Professional tone, but conversational rather than corporate",
			"Close with a question or discussion prompt",
			"Use at most 3-5 relevant hashtags at the end",
		},
	},
	"twitter": {
		ID:            "twitter",
		DisplayName:   "Twitter/X",
		DisplayFormat: "thread",
		MarkdownLinks: false,
		Guidelines: []string{
			"Write a thread of 3-8 tweets, each under 280 characters",
			"Number the tweets (1/, 2/, ...)",
			"The first tweet must stand alone as a hook",
			"One idea per tweet",
			"Use at most 1-2 hashtags across the whole thread",
		},
	},
	"discord": {
		ID:            "discord",
		DisplayName:   "Discord",
		DisplayFormat: "community message",
		MarkdownLinks: true,
		Guidelines: []string{
			"Keep it under 2000 characters",
			"Casual, community-friendly tone",
			"Use Discord markdown (bold, italics, code blocks) where it helps",
			"No hashtags",
		},
	},
	"instagram": {
		ID:            "instagram",
		DisplayName:   "Instagram",
		DisplayFormat: "caption",
		MarkdownLinks: false,
		Guidelines: []string{
			"Caption under 2200 characters",
			"First 125 characters must work as a standalone preview",
			"Line breaks between thoughts for readability",
			"Close with 5-10 hashtags in a separate block",
			"Mention that links belong in the bio, do not paste raw URLs mid-caption",
		},
	},
	"facebook": {
		ID:            "facebook",
		DisplayName:   "Facebook",
		DisplayFormat: "post",
		MarkdownLinks: false,
		Guidelines: []string{
			"Aim for 1-3 short paragraphs",
			"Warm, story-driven tone",
			"Ask a question to invite comments",
			"Use at most 2 hashtags",
		},
	},
	"medium": {
		ID:            "medium",
		DisplayName:   "Medium",
		DisplayFormat: "article",
		MarkdownLinks: true,
		Guidelines: []string{
			"Full article structure: title, subtitle, section headings",
			"Aim for a 4-7 minute read",
			"Use markdown formatting throughout",
			"Include a short personal takeaway or opinion section",
			"No hashtag spam; Medium uses tags instead",
		},
	},
	"devto": {
		ID:            "devto",
		DisplayName:   "Dev.to",
		DisplayFormat: "article",
		MarkdownLinks: true,
		Guidelines: []string{
			"Developer-focused article with markdown formatting",
			"Use code blocks for any code or commands",
			"Practical, hands-on angle over think-piece framing",
			"Suggest up to 4 lowercase tags at the end",
		},
	},
	"hashnode": {
		ID:            "hashnode",
		DisplayName:   "Hashnode",
		DisplayFormat: "article",
		MarkdownLinks: true,
		Guidelines: []string{
			"Technical blog article with markdown formatting",
			"Start with a short TL;DR block",
			"Use section headings every few paragraphs",
			"Include code examples where relevant",
		},
	},
	"reddit": {
		ID:            "reddit",
		DisplayName:   "Reddit",
		DisplayFormat: "text post",
		MarkdownLinks: true,
		Guidelines: []string{
			"Write for a skeptical audience: substance first, zero marketing speak",
			"Use reddit markdown; bullet lists work well",
			"No hashtags, no engagement bait",
			"A TL;DR at the top or bottom is appreciated",
		},
	},
	"youtube": {
		ID:            "youtube",
		DisplayName:   "YouTube",
		DisplayFormat: "video description",
		MarkdownLinks: false,
		Guidelines: []string{
			"First 150 characters must summarize the video for search previews",
			"Include timestamp placeholders for main sections",
			"Plain text only, no markdown",
			"Up to 3 hashtags on the final line",
		},
	},
	"tiktok": {
		ID:            "tiktok",
		DisplayName:   "TikTok",
		DisplayFormat: "caption",
		MarkdownLinks: false,
		Guidelines: []string{
			"Caption under 2200 characters, but shorter is better",
			"Punchy, high-energy phrasing",
			"3-5 hashtags mixing broad and niche",
			"No links; mention link-in-bio if needed",
		},
	},
}

// Lookup returns the spec for a platform id.
func Lookup(id string) (Spec, error) {
	spec, ok := specs[id]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknown, id)
	}
	return spec, nil
}

// IDs returns all known platform ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(specs))
	for id := range specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
