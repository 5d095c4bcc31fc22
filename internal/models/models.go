package models

// ThreadReply is a single reply inside a thread. Threads are exactly one
// level deep, so a reply never carries replies of its own.
type ThreadReply struct {
	Timestamp    string `json:"timestamp"`
	ReadableTime string `json:"readable_time"`
	User         string `json:"user"`
	Text         string `json:"text"`
}

// Message is one top-level channel message together with its thread replies.
type Message struct {
	Timestamp     string        `json:"timestamp"`
	ReadableTime  string        `json:"readable_time"`
	User          string        `json:"user"`
	Text          string        `json:"text"`
	ThreadReplies []ThreadReply `json:"thread_replies"`
}

// UserInfo holds the resolved identity of a message author.
type UserInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Export is the complete self-contained export document written to disk.
// Field order here defines the on-disk key order.
type Export struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Users     map[string]UserInfo `json:"users"`
	Chat      []Message           `json:"chat"`
}
