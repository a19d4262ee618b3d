package errors

// ErrorCode is the machine readable code carried in every error response
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Registry
	ErrorCode_FILE_NOT_FOUND       ErrorCode = 2000
	ErrorCode_TRANSCRIPT_NOT_FOUND ErrorCode = 2001
	ErrorCode_CONFIDENCE_NOT_FOUND ErrorCode = 2002
	ErrorCode_INVALID_CONFIDENCE   ErrorCode = 2003

	// Database
	ErrorCode_DB_INTEGRITY_VIOLATION ErrorCode = 3000
	ErrorCode_DB_QUERY_FAILED        ErrorCode = 3001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:            "UNSPECIFIED",
	ErrorCode_HTTP_OK:                "HTTP_OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_FILE_NOT_FOUND:         "FILE_NOT_FOUND",
	ErrorCode_TRANSCRIPT_NOT_FOUND:   "TRANSCRIPT_NOT_FOUND",
	ErrorCode_CONFIDENCE_NOT_FOUND:   "CONFIDENCE_NOT_FOUND",
	ErrorCode_INVALID_CONFIDENCE:     "INVALID_CONFIDENCE",
	ErrorCode_DB_INTEGRITY_VIOLATION: "DB_INTEGRITY_VIOLATION",
	ErrorCode_DB_QUERY_FAILED:        "DB_QUERY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
