package constvars

const (
	ChatSenderUser = "user"
	ChatSenderShop = "shop"
)

const (
	// ChatListKeyFormat is the Redis list holding the ordered message log of a path.
	ChatListKeyFormat = "chat:%s"
	// ChatEventsChannelFormat is the pub/sub channel notified on every append.
	ChatEventsChannelFormat = "chat:%s:events"
	// ChatWelcomeGuardKeyFormat marks that the greeting was already seeded.
	ChatWelcomeGuardKeyFormat = "chat:%s:welcome"
)
