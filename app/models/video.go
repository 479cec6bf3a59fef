package models

import "regexp"

// youtubeIDPattern accepts the URL shapes users paste: youtu.be/<id>,
// watch?v=<id>, embed/<id>, v/<id>, and &v=<id> query tails.
var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

// youtubeIDLength is the validity signal: real video ids are 11 characters.
const youtubeIDLength = 11

// YouTubeID extracts the embeddable video id from a raw URL. An unparseable
// URL yields ok=false and the block renders as "no video".
func YouTubeID(url string) (id string, ok bool) {
	if url == "" {
		return "", false
	}
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil || len(match[1]) != youtubeIDLength {
		return "", false
	}
	return match[1], true
}

// EmbedURL returns the iframe src for a video block, or ok=false when the
// block holds no playable video.
func (b *ContentBlock) EmbedURL() (string, bool) {
	if b.Kind != BlockVideo {
		return "", false
	}
	id, ok := YouTubeID(b.VideoURL)
	if !ok {
		return "", false
	}
	return "https://www.youtube.com/embed/" + id, true
}
