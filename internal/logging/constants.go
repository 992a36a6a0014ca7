package logging

// Field names shared by every component so log lines can be filtered the same
// way whether they come from the engine, a store or the webhook.
const (
	FieldUser      = "user"
	FieldOperation = "operation"
	FieldRule      = "rule"
	FieldMonth     = "month"
	FieldStore     = "store"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldCount     = "count"
	FieldAmount    = "amount"
	FieldKind      = "kind"
	FieldFile      = "file_path"
	FieldRemote    = "remote_addr"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldPort      = "port"
)
