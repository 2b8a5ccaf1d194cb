package response

const (
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"

	MessageSuccess       = "Success"
	MessageUnauthorized  = "Unauthorized"
	MessageInternalError = "Something went wrong"
	MessageBadRequest    = "Bad request"

	CodeSuccess      = 0
	CodeInternal     = 500
	CodeUnauthorized = 401
	CodeBadRequest   = 400
)
