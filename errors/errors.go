package errors

import "fmt"

var (
	ErrNotAuthenticated     = fmt.Errorf("not authenticated")
	ErrTransportUnavailable = fmt.Errorf("transport unavailable")
	ErrUnknownRoom          = fmt.Errorf("room is not in the local list")
	ErrEmptyMessage         = fmt.Errorf("message needs content or an attachment")
	ErrInvalidRoomName      = fmt.Errorf("room name is empty")
	ErrStaleFetch           = fmt.Errorf("selection changed while history was in flight")
	ErrUnknownEvent         = fmt.Errorf("unknown stream event")
	ErrStreamClosed         = fmt.Errorf("stream connection is closed")
	ErrWorkerPanic          = fmt.Errorf("worker panic")
)
