package constvars

// Claim keys in the upstream auth service token. Role and name use the
// WS-* URI-keyed claim convention of the issuing service.
const (
	ClaimRole      = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	ClaimName      = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	ClaimProfileID = "profileId"
	ClaimUserID    = "userId"
)
