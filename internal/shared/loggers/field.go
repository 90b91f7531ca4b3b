package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID         = "run_id"
	FieldEventLogPath  = "event_log_path"
	FieldEventCount    = "event_count"
	FieldIntervalCount = "interval_count"
	FieldQuery         = "query"
	FieldStoreDriver   = "store_driver"
	FieldJobID         = "job_id"
	FieldPartitionID   = "partition_id"
)
