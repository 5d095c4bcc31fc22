package exporter

import (
	"fmt"
	"time"
)

// OutputFilename returns the explicitly requested file name, or a generated
// `<channelID>-<YYYYMMDD>-<HHMMSS>.json` name based on now.
func OutputFilename(channelID, specified string, now time.Time) string {
	if specified != "" {
		return specified
	}
	return fmt.Sprintf("%s-%s.json", channelID, now.Format("20060102-150405"))
}
