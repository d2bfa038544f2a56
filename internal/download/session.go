package download

import (
	"net/http"
)

// session is the connection pool shared by all tasks of one batch. It is
// opened when the batch starts and closed when the batch ends.
type session struct {
	client    *http.Client
	transport *http.Transport
}

func openSession() *session {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &session{
		client:    &http.Client{Transport: transport},
		transport: transport,
	}
}

// Close releases the idle connections held by the session
func (s *session) Close() {
	s.transport.CloseIdleConnections()
}
