package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingSessionIDKey   = "session_id"
	LoggingRoleKey        = "role"
	LoggingMessageIDKey   = "message_id"
	LoggingChatPathKey    = "chat_path"
	LoggingQueueKey       = "queue"
	LoggingOwnerIDKey     = "owner_id"
)
