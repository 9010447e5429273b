package apierrors

const (
	MsgFailListObras           = "errorListObras"
	MsgInvalidObraID           = "invalidObraID"
	MsgInvalidTaskID           = "invalidTaskID"
	MsgInvalidObraPayload      = "invalidObraPayload"
	MsgInvalidTaskPayload      = "invalidTaskPayload"
	MsgInvalidSelectionPayload = "invalidSelectionPayload"
	MsgObraNotFound            = "obraNotFound"
	MsgTaskNotFound            = "taskNotFound"
	MsgFailGetObra             = "failGetObra"
	MsgFailCreateObra          = "failCreateObra"
	MsgFailDeleteObra          = "failDeleteObra"
	MsgFailCycleStatus         = "failCycleStatus"
	MsgFailListTasks           = "failListTasks"
	MsgFailCreateTask          = "failCreateTask"
	MsgFailUpdateTask          = "failUpdateTask"
	MsgFailBoard               = "failBoard"
	MsgFailSelection           = "failSelection"
	MsgEndpointNotFound        = "endpointNotFound"
)
