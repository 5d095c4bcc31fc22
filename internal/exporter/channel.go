package exporter

import "regexp"

var archiveURLPattern = regexp.MustCompile(`^https://[^/]+/archives/([A-Z0-9]+)`)

// ExtractChannelID accepts either a bare channel ID or a Slack archive URL
// and returns the channel ID.
func ExtractChannelID(input string) string {
	if m := archiveURLPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return input
}
