package realty

import (
	"regexp"
)

var photoSizePattern = regexp.MustCompile(`-w\d+_h\d+`)

// upgradePhotoURL swaps the CDN's thumbnail size suffix for a full-size one.
func upgradePhotoURL(href string) string {
	if href == "" {
		return href
	}
	return photoSizePattern.ReplaceAllString(href, "-w2048_h1536")
}
