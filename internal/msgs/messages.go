package msgs

const (
	MsgOperationFailed = "operation failed"
)
