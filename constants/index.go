package constants

const (
	ROLE_ADMIN    = "admin"
	ROLE_CUSTOMER = "customer"
)

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_INPUT                = "Invalid input"
	ERROR_CREATE               = "Create failed"
	ERROR_EDIT                 = "Update failed"
	ERROR_DELETE               = "Delete failed"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to parse request data"
	NOT_FOUND_RECORDS          = "Record not found"
	NOT_ADMIN                  = "Admin access required"
	NOT_LOGGED_IN              = "Unauthenticated"
	DATA_INPUT_IS_NOT_NUMBER   = "Id param must be a number"
	CAN_NOT_HASH_PASSWORD      = "Cannot hash password"
	MISSING_LOGIN_INPUT        = "Email and password are required"
	INVALID_EMAIL              = "Invalid email or password"
	INVALID_PASSWORD           = "Invalid email or password"
)

// Trạng thái đơn hàng
const (
	ORDER_PENDING   = "pending"
	ORDER_PAID      = "paid"
	ORDER_SHIPPED   = "shipped"
	ORDER_COMPLETED = "completed"
	ORDER_CANCELLED = "cancelled"
)

const (
	PAYMENT_UNPAID   = "unpaid"
	PAYMENT_PAID     = "paid"
	PAYMENT_REFUNDED = "refunded"
)

const (
	PRODUCT_ACTIVE   = "active"
	PRODUCT_INACTIVE = "inactive"
)
