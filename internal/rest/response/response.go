package response

// DateTimeFormat is the timestamp layout used by every response payload
const DateTimeFormat = "2006-01-02 15:04:05"
