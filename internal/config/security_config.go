package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	"Health": SecurityPublic,

	// Businesses
	"ListBusinesses": SecurityAccess,
	"CreateBusiness": SecurityAccess,
	"JoinBusiness":   SecurityAccess,
	"GetBusiness":    SecurityAccess,
	"UpdateBusiness": SecurityAccess,
	"DeleteBusiness": SecurityAccess,
	"RotateJoinCode": SecurityAccess,
	"ListMembers":    SecurityAccess,
	"RemoveMember":   SecurityAccess,

	// Books
	"CreateBook": SecurityAccess,
	"GetBook":    SecurityAccess,
	"UpdateBook": SecurityAccess,
	"DeleteBook": SecurityAccess,

	// Transactions
	"CreateTransaction": SecurityAccess,
	"UpdateTransaction": SecurityAccess,
	"DeleteTransaction": SecurityAccess,
}

// GetSecurityLevel returns the security level for a route name.
// Unknown routes require an access token.
func GetSecurityLevel(route string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[route]; ok {
		return level
	}
	return SecurityAccess
}
