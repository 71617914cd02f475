package constants

// NSQ topics and channels
const (
	TopicCallEvents  = "call_events"
	ChannelCallAudit = "audit"
)
