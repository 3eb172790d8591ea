package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyMemberID  = "member_id"
	ContextKeyRole      = "role"
	ContextKeyRequestID = "request_id"

	// Roles carried in access tokens
	RoleMember       = "member"
	RoleFrontDesk    = "front_desk"
	RoleTrainer      = "trainer"
	RoleNutritionist = "nutritionist"
	RoleAdmin        = "admin"

	// Database table names
	TablePlans              = "membership_plans"
	TableMembers            = "members"
	TableMembershipRecords  = "membership_records"
	TablePlanChangeRequests = "plan_change_requests"
	TableCancellations      = "cancellation_records"
	TableMembershipEvents   = "membership_events"
	TableRedeemedReceipts   = "redeemed_receipts"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
)
