package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccess   = "successfully login"
	LogoutSuccess  = "successfully logout"
	SessionRestore = "session restored"

	ChatMessageSent   = "message sent"
	ChatMessagesListed = "get messages successfully"

	PatientProfileGetSuccess = "get patient profile successfully"
	AvatarUploadSuccess      = "avatar uploaded successfully"
	AvatarGetSuccess         = "get avatar successfully"
	NavigationGetSuccess     = "get navigation successfully"
	ArchiveListSuccess       = "get archived messages successfully"
)
