package renderer

import "fmt"

// TransportError wraps a network-level failure reaching the rendering
// service.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is a non-2xx reply from the rendering service. Message
// carries the service-provided description verbatim.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("rendering service replied with status %d", e.Status)
}
