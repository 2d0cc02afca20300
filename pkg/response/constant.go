package response

const (
	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Error codes carried in Resp.ErrorCode. Zero means success.
const (
	CodeOK            = 0
	CodeBadRequest    = 40000
	CodeNotFound      = 40400
	CodeInternalError = 50000
)
