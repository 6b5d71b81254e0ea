package tui

import (
	"github.com/dronhome/TP-final/lib"
)

// screen flow
type step int

const (
	stepPick step = iota
	stepPreview
	stepSubmitting
	stepResult
)

// messages
type submitProgMsg struct {
	consumed int64
	total    int64
}

type submitDoneMsg struct {
	status  lib.UploadStatus
	summary string
}
