package ui

import "pipechat/gateway"

// roundCompleteMsg signals that one chat round has run to completion and the
// history can be re-read.
type roundCompleteMsg struct{}

// connectCompleteMsg carries the outcome of a gateway connect.
type connectCompleteMsg struct {
	Result gateway.ConnectResult
	Err    error
}

// resourceReadMsg carries the content of one resource read.
type resourceReadMsg struct {
	URI     string
	Content string
	Err     error
}
