package store

import "context"

// Memory is the in-process backend handle. It holds no connection; it exists
// so the server treats both backends through the same lifecycle.
type Memory struct{}

// NewMemory returns an in-process store handle.
func NewMemory() *Memory {
	return &Memory{}
}

// Ping always succeeds.
func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op.
func (m *Memory) Close(ctx context.Context) error {
	return nil
}
