package lib

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/cloudwego/hertz/cmd/hz/util/logs"
	"github.com/dronhome/TP-final/meta"
)

// Client talks to the NAO pose translator service.
type Client struct {
	Domain string

	hc *http.Client
}

// NewClient New Client. No timeout override: the platform default applies.
func NewClient(domain string) *Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{},
	}
	return &Client{
		Domain: domain,
		hc:     &http.Client{Transport: tr},
	}
}

// formField is a scalar multipart field. Ordered, unlike a map.
type formField struct {
	name  string
	value string
}

// SubmitImage posts the file as multipart field "image" and returns the
// parsed pose result. A non-2xx answer comes back as *ServerError.
func (c *Client) SubmitImage(ctx context.Context, file *SelectedFile, cb ProgressCallback) (*ImageResult, error) {
	serverUrl := fmt.Sprintf("%s/%s/%s", c.Domain, meta.APIPrefix, meta.RouteFromImage)
	body, statusCode, err := c.postFile(ctx, serverUrl, meta.FieldImage, file, nil, cb)
	if err != nil {
		return nil, err
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, parseServerError(body, statusCode)
	}

	var result ImageResult
	if err := json.Unmarshal(body, &result); err != nil {
		// Success stands even when the body is not readable JSON.
		logs.Debugf("image response body not parseable: %v\n", err)
	}
	return &result, nil
}

// SubmitVideo posts the file as multipart field "video" together with the
// fps and seconds sampling controls.
func (c *Client) SubmitVideo(ctx context.Context, file *SelectedFile, fps, seconds string, cb ProgressCallback) (*VideoResult, error) {
	serverUrl := fmt.Sprintf("%s/%s/%s", c.Domain, meta.APIPrefix, meta.RouteFromVideo)
	fields := []formField{
		{meta.FieldFps, fps},
		{meta.FieldSeconds, seconds},
	}
	body, statusCode, err := c.postFile(ctx, serverUrl, meta.FieldVideo, file, fields, cb)
	if err != nil {
		return nil, err
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, parseServerError(body, statusCode)
	}

	var result VideoResult
	if err := json.Unmarshal(body, &result); err != nil {
		logs.Debugf("video response body not parseable: %v\n", err)
	}
	return &result, nil
}

// Ping checks whether the translator answers at all. Any HTTP status counts
// as reachable; only a transport failure does not.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, meta.HTTPGet, c.Domain, nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// postFile streams a single multipart POST: the file under fieldName plus
// any scalar fields, in order. Returns the response body and status code;
// err is non-nil only when the request never produced an HTTP response.
func (c *Client) postFile(ctx context.Context, url string, fieldName string, file *SelectedFile, fields []formField, cb ProgressCallback) ([]byte, int, error) {
	src, err := os.Open(file.Path)
	if err != nil {
		return nil, -1, WithStep("open file", err)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer src.Close()
		part, werr := mw.CreateFormFile(fieldName, file.Name)
		if werr == nil {
			_, werr = io.Copy(part, newCountingReader(src, file.Size, cb))
		}
		for _, f := range fields {
			if werr != nil {
				break
			}
			werr = mw.WriteField(f.name, f.value)
		}
		if cerr := mw.Close(); werr == nil {
			werr = cerr
		}
		pw.CloseWithError(werr)
	}()

	req, err := http.NewRequestWithContext(ctx, meta.HTTPPost, url, pr)
	if err != nil {
		return nil, -1, err
	}
	req.Header.Set(meta.HeaderContentType, mw.FormDataContentType())

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, -1, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, -1, err
	}
	return body, resp.StatusCode, nil
}

// parseServerError pulls the structured error fields out of a non-2xx body.
// A parse failure is logged, not fatal: it only means the details stay
// empty and the status text carries the message.
func parseServerError(responseBody []byte, statusCode int) *ServerError {
	var parsed struct {
		Detail     string `json:"detail,omitempty"`
		Error      string `json:"error,omitempty"`
		Message    string `json:"message,omitempty"`
		FrameIndex *int   `json:"frame_index_in_valid_list,omitempty"`
	}
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		logs.Debugf("error response body not parseable: %v\n", err)
		return &ServerError{StatusCode: statusCode}
	}
	return &ServerError{
		StatusCode: statusCode,
		Detail:     parsed.Detail,
		Reason:     parsed.Error,
		Message:    parsed.Message,
		FrameIndex: parsed.FrameIndex,
	}
}
