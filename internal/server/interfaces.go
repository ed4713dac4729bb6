package server

// Server runs every configured transport until the process is told to stop.
type Server interface {
	RunServer()
	Shutdown()
}

// transport is one listener owned by the server: HTTP or gRPC.
type transport interface {
	Server
	name() string
	address() string
}
