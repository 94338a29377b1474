// images.go
//
// Things for extracting image references from text and resolving the target
// image for edits.

package main

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// patterns for image references embedded in free text
const (
	// base64-encoded image data with a declared media type
	inlineDataRegexp = `(?i)data:image/[a-z0-9.+-]+;base64,[^\s"'<>]+`

	// URLs on Replicate's own delivery domain
	deliveryURLRegexp = `(?i)https?://replicate\.delivery/[^\s"'<>]+`

	// generic URLs ending in a known image file extension
	genericImageURLRegexp = `(?i)https?://[^\s"'<>]+\.(?:jpg|jpeg|png|gif|webp|bmp|svg)`
)

var (
	reInlineData      = regexp.MustCompile(inlineDataRegexp)
	reDeliveryURL     = regexp.MustCompile(deliveryURLRegexp)
	reGenericImageURL = regexp.MustCompile(genericImageURLRegexp)
)

// extract image references from given text
//
// The scan order is fixed: inline data URIs first, then replicate.delivery
// URLs, then generic image URLs, each group in order of appearance.
// Duplicates keep their first occurrence, so a delivery URL that also ends in
// an image extension is attributed to the delivery pattern.
func extractImageReferences(text string) []string {
	if text == "" {
		return nil
	}

	refs := []string{}
	refs = append(refs, reInlineData.FindAllString(text, -1)...)
	refs = append(refs, reDeliveryURL.FindAllString(text, -1)...)
	refs = append(refs, reGenericImageURL.FindAllString(text, -1)...)

	return lo.Uniq(refs)
}

// resolve the single image reference to edit
//
// Precedence: the explicit URL, then the last image mentioned in the
// conversation context (the image most likely being discussed), then the last
// entry of the comma-separated fallback list. Returns nil when no source
// yields a reference; the caller treats that as a normal empty outcome, not
// an error. The resolved string is not validated here.
func resolveTargetImage(
	explicitURL string,
	conversationContext string,
	environmentFallback string,
) *string {
	if explicitURL != "" {
		return ptr(explicitURL)
	}

	if conversationContext != "" {
		if refs := extractImageReferences(conversationContext); len(refs) > 0 {
			return ptr(refs[len(refs)-1]) // most recent mention wins
		}
	}

	if environmentFallback != "" {
		entries := lo.FilterMap(
			strings.Split(environmentFallback, ","),
			func(entry string, _ int) (string, bool) {
				trimmed := strings.TrimSpace(entry)
				return trimmed, trimmed != ""
			},
		)
		if len(entries) > 0 {
			return ptr(entries[len(entries)-1]) // last entry is the most recent by convention
		}
	}

	return nil
}
