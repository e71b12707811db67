package constvars

// Validation messages for request structs, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"url":      "must be a valid URL",
	"oneof":    "must be one of [%s]",
}

// Tags whose message needs the tag parameter substituted in.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidLoginIdentifier        = "please enter a valid email or phone number"
	ErrClientInvalidCredentials            = "login failed, please check your credentials"
	ErrClientEmailDomainNotAllowed         = "only institutional email addresses are allowed to sign in"
	ErrClientChatUnavailable               = "chat is temporarily unavailable, please try again"
	ErrClientPatientNotFound               = "patient profile not found"
	ErrClientInvalidImageFormat            = "image must be a jpeg or png within the size limit"
	ErrClientTooManyMessages               = "you are sending messages too quickly"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevCannotMarshalJSON  = "cannot marshal JSON"
	ErrDevValidationFailed   = "validation failed"
	ErrDevCreateHTTPRequest  = "failed to create HTTP request"
	ErrDevSendHTTPRequest    = "failed to send HTTP request"
	ErrDevDecodeResponse     = "failed to decode %s response"
	ErrDevUpstreamStatus     = "%s responded with unexpected status"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	// Authentication
	ErrDevAuthSigningMethod          = "unexpected signing method"
	ErrDevAuthTokenInvalid           = "invalid token"
	ErrDevAuthTokenExpired           = "token expired"
	ErrDevAuthTokenMissing           = "token missing"
	ErrDevAuthInvalidSession         = "invalid session"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevAuthClaimMissing           = "token claim missing: %s"
	ErrDevAuthLoginIdentifier        = "login identifier is neither email nor phone number"
	ErrDevAuthEmailDomainNotAllowed  = "federated email outside the allowed domain"
	ErrDevAuthProviderSignOut        = "failed to sign out identity provider session"

	// Redis
	ErrDevRedisSet           = "failed to set redis key"
	ErrDevRedisGet           = "failed to get redis key"
	ErrDevRedisDelete        = "failed to delete redis key"
	ErrDevRedisPushToList    = "failed to push to redis list"
	ErrDevRedisRangeList     = "failed to range redis list"
	ErrDevRedisCountList     = "failed to count redis list"
	ErrDevRedisPublish       = "failed to publish redis event"
	ErrDevRedisSubscribe     = "failed to subscribe redis channel"
	ErrDevRedisStoreSession  = "failed to store session in redis"

	// Mongo
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"

	// Queue
	ErrDevQueueDeclare = "failed to declare queue"
	ErrDevQueuePublish = "failed to publish queue message"
	ErrDevQueueConsume = "failed to start queue consumer"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to presign object URL in bucket %s"

	// Chat
	ErrDevChatAppendMessage   = "failed to append chat message"
	ErrDevChatSnapshot        = "failed to read chat snapshot"
	ErrDevChatNotActivated    = "chat session not activated"

	// Upstream services
	ErrDevImageServiceFetch   = "failed to fetch avatar from image service"
	ErrDevProfileServiceFetch = "failed to fetch patient profile from profile service"
)
