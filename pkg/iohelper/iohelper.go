// Package iohelper provides small helpers for HTTP response handling.
package iohelper

import "io"

// DrainAndClose reads any remaining data from r (bounded to 64KB) and
// closes it if it is a ReadCloser, so the connection can be reused for
// keep-alive. Always returns nil to allow use in defer.
func DrainAndClose(r io.Reader) error {
	if r == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 64*1024))
	if rc, ok := r.(io.ReadCloser); ok {
		rc.Close()
	}
	return nil
}
