package lib

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedFixture(t *testing.T, name string, content []byte) *SelectedFile {
	t.Helper()
	file, err := NewSelectedFile(writeTempFile(t, name, content))
	require.NoError(t, err)
	return file
}

func TestSubmitImageReturnsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(rw, `{"error": "image file is required (multipart/form-data, field 'image')"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.SubmitImage(context.Background(), selectedFixture(t, "a.png", []byte("x")), nil)

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusBadRequest, srvErr.StatusCode)
	assert.Contains(t, srvErr.Error(), "400")
	assert.Contains(t, srvErr.Error(), "image file is required")
}

func TestServerErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(rw, "<html>nginx 502</html>") // not JSON
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.SubmitImage(context.Background(), selectedFixture(t, "a.png", []byte("x")), nil)

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "502: Bad Gateway", srvErr.Error())
}

func TestServerErrorFieldPrecedenceOrder(t *testing.T) {
	idx := 2
	e := &ServerError{
		StatusCode: 500,
		Detail:     "detail-part",
		Reason:     "error-part",
		Message:    "message-part",
		FrameIndex: &idx,
	}
	assert.Equal(t, "500: detail-part; error-part; message-part; Frame index: 2", e.Error())
}

func TestSubmitImageToleratesNonJSONSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		fmt.Fprint(rw, "OK") // not JSON, still a success
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	result, err := c.SubmitImage(context.Background(), selectedFixture(t, "a.png", []byte("x")), nil)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.NaoAngles)
}

func TestSubmitVideoCustomSampling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "5", r.FormValue("fps"))
		assert.Equal(t, "10", r.FormValue("seconds"))
		fmt.Fprint(rw, `{"valid_frames": 1}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	result, err := c.SubmitVideo(context.Background(), selectedFixture(t, "clip.mp4", []byte("x")), "5", "10", nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.ValidFrames)
}

func TestProgressCallbackSeesWholeFile(t *testing.T) {
	content := make([]byte, 64*1024)
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fmt.Fprint(rw, `{}`)
	}))
	defer srv.Close()

	var last, total int64
	c := NewClient(srv.URL)
	_, err := c.SubmitImage(context.Background(), selectedFixture(t, "big.png", content), func(consumed, t int64) {
		last, total = consumed, t
	})

	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), last)
	assert.Equal(t, int64(len(content)), total)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusNotFound) // any answer counts
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL).Ping(context.Background()))

	err := NewClient("http://127.0.0.1:1").Ping(context.Background())
	require.Error(t, err)

	var opErr *ServerError
	assert.False(t, errors.As(err, &opErr), "transport failures are not server errors")
}
