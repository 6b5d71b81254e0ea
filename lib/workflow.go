package lib

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/cloudwego/hertz/cmd/hz/util/logs"
	"github.com/dronhome/TP-final/meta"
)

// Workflow drives the select -> preview -> submit cycle against the
// translator service. Single owner, single writer: all mutations come
// through the named transitions below.
type Workflow struct {
	client   *Client
	fps      string
	seconds  string
	progress ProgressCallback

	selected   *SelectedFile
	preview    *PreviewHandle
	status     UploadStatus
	lastResult SubmitResult

	// Advisory flag for the UI: true strictly between submit start and
	// its resolution. Atomic because the render loop may read it while a
	// submission runs on another goroutine.
	inFlight atomic.Bool

	closeOnce sync.Once

	// Replaceable in tests to observe the preview lifecycle.
	newPreview func(*SelectedFile) (*PreviewHandle, error)
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*Workflow)

// WithSampling overrides the video fps/seconds form values.
func WithSampling(fps, seconds string) WorkflowOption {
	return func(w *Workflow) {
		w.fps = fps
		w.seconds = seconds
	}
}

// WithProgress installs an upload progress callback.
func WithProgress(cb ProgressCallback) WorkflowOption {
	return func(w *Workflow) {
		w.progress = cb
	}
}

// NewWorkflow New Workflow bound to a client.
func NewWorkflow(client *Client, opts ...WorkflowOption) *Workflow {
	w := &Workflow{
		client:     client,
		fps:        meta.DefaultFps,
		seconds:    meta.DefaultSeconds,
		status:     IdleStatus(),
		newPreview: NewPreviewHandle,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Select takes the first candidate path, makes it the selected file and
// rebuilds the preview. An empty candidate list changes nothing. Any prior
// success/error feedback is cleared.
func (w *Workflow) Select(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	file, err := NewSelectedFile(paths[0])
	if err != nil {
		return err
	}
	w.selected = file
	w.status = IdleStatus()
	w.lastResult = nil
	w.setPreview(file)
	return nil
}

// Clear drops the selection, releases the preview and resets the status.
func (w *Workflow) Clear() {
	w.selected = nil
	w.status = IdleStatus()
	w.lastResult = nil
	w.setPreview(nil)
}

// setPreview releases any live preview before binding the next one. Called
// with nil it just releases.
func (w *Workflow) setPreview(file *SelectedFile) {
	w.preview.Release()
	w.preview = nil
	if file == nil {
		return
	}
	handle, err := w.newPreview(file)
	if err != nil {
		// The workflow stays usable without a preview.
		logs.Warnf("preview unavailable for %s: %v\n", file.Name, err)
		return
	}
	w.preview = handle
}

// Submit classifies the selected file, performs a single upload attempt and
// reduces the outcome to an UploadStatus. No retry; cancellation only
// through ctx.
func (w *Workflow) Submit(ctx context.Context) UploadStatus {
	if w.selected == nil {
		w.status = ErrorStatus("no file selected")
		return w.status
	}

	w.inFlight.Store(true)
	w.status = IdleStatus()
	w.lastResult = nil
	defer w.inFlight.Store(false)

	file := w.selected
	switch {
	case file.IsVideo():
		result, err := w.client.SubmitVideo(ctx, file, w.fps, w.seconds, w.progress)
		if err != nil {
			w.status = w.reduceError(err)
		} else {
			w.lastResult = result
			w.status = SuccessStatus("Video uploaded successfully!")
		}
	case file.IsImage():
		result, err := w.client.SubmitImage(ctx, file, w.progress)
		if err != nil {
			w.status = w.reduceError(err)
		} else {
			w.lastResult = result
			w.status = SuccessStatus("Image uploaded successfully!")
		}
	default:
		w.status = ErrorStatus("unsupported file type")
	}
	return w.status
}

// reduceError folds any submission failure into user-facing feedback:
// server answers keep their structured detail, transport failures name the
// configured endpoint, everything else gets the generic wrapper.
func (w *Workflow) reduceError(err error) UploadStatus {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return ErrorStatus(srvErr.Error())
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ErrorStatus(fmt.Sprintf("Cannot reach the server at %s. Is the translator service running?", w.client.Domain))
	}
	return ErrorStatus(fmt.Sprintf("Failed to upload file: %v", err))
}

// Close releases the preview resource. Safe to call more than once.
func (w *Workflow) Close() {
	w.closeOnce.Do(func() {
		w.setPreview(nil)
	})
}

func (w *Workflow) Selected() *SelectedFile { return w.selected }
func (w *Workflow) Preview() *PreviewHandle { return w.preview }
func (w *Workflow) Status() UploadStatus    { return w.status }
func (w *Workflow) Result() SubmitResult    { return w.lastResult }
func (w *Workflow) InFlight() bool          { return w.inFlight.Load() }
func (w *Workflow) BaseURL() string         { return w.client.Domain }
