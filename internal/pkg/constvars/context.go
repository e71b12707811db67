package constvars

type ContextKey string

const ContextRequestIDKey ContextKey = "request_id"
