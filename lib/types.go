package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// SelectedFile is the file the user picked for submission. Nothing about it
// is validated at selection time; whether the translator accepts it is
// discovered at submit.
type SelectedFile struct {
	Path      string
	Name      string
	Size      int64
	MediaType string
}

// NewSelectedFile stats the path and resolves its declared media type.
func NewSelectedFile(path string) (*SelectedFile, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, WithStep("select file", err)
	}
	if st.IsDir() {
		return nil, WithStep("select file", fmt.Errorf("directories cannot be submitted: %s", path))
	}
	return &SelectedFile{
		Path:      path,
		Name:      filepath.Base(path),
		Size:      st.Size(),
		MediaType: DetectMediaType(path),
	}, nil
}

func (f *SelectedFile) IsImage() bool { return IsImageType(f.MediaType) }
func (f *SelectedFile) IsVideo() bool { return IsVideoType(f.MediaType) }

// StatusKind tags an UploadStatus value.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusSuccess
	StatusError
)

// UploadStatus is the single user-facing feedback value of the workflow.
// Exactly one is live at a time; it is replaced wholesale on every
// transition.
type UploadStatus struct {
	Kind    StatusKind
	Message string
}

func IdleStatus() UploadStatus {
	return UploadStatus{Kind: StatusIdle}
}

func SuccessStatus(msg string) UploadStatus {
	return UploadStatus{Kind: StatusSuccess, Message: msg}
}

func ErrorStatus(msg string) UploadStatus {
	return UploadStatus{Kind: StatusError, Message: msg}
}

func (s UploadStatus) IsIdle() bool    { return s.Kind == StatusIdle }
func (s UploadStatus) IsSuccess() bool { return s.Kind == StatusSuccess }
func (s UploadStatus) IsError() bool   { return s.Kind == StatusError }

// SubmitResult is the parsed success payload of a submission, used only for
// display. Parsing is best-effort; a result may be empty.
type SubmitResult interface {
	Summary() string
}

// ImageResult mirrors the translator's /arms/from_image success body.
type ImageResult struct {
	FileLocationHost      string             `json:"file_location_host,omitempty"`
	FileLocationContainer string             `json:"file_location_pose_container,omitempty"`
	NaoAngles             []float64          `json:"nao_angles,omitempty"`
	JointValues           map[string]float64 `json:"joint_values,omitempty"`
	NaoResponse           interface{}        `json:"nao_response,omitempty"`
}

// Summary renders a short markdown report of the pose sent to the robot.
func (r *ImageResult) Summary() string {
	var b strings.Builder
	b.WriteString("## Pose sent to NAO\n\n")
	if len(r.JointValues) > 0 {
		keys := make([]string, 0, len(r.JointValues))
		for k := range r.JointValues {
			keys = append(keys, k)
		}
		// stable order for rendering
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("- **%s**: %.3f rad\n", k, r.JointValues[k]))
		}
	} else if len(r.NaoAngles) > 0 {
		b.WriteString(fmt.Sprintf("- %d joint angles applied\n", len(r.NaoAngles)))
	}
	if r.FileLocationHost != "" {
		b.WriteString(fmt.Sprintf("\nStored as `%s`\n", r.FileLocationHost))
	}
	return b.String()
}

// VideoResult mirrors the translator's /arms/from_video success summary.
type VideoResult struct {
	UploadId      string `json:"upload_id,omitempty"`
	OutputDir     string `json:"output_dir,omitempty"`
	TotalFrames   int    `json:"total_frames,omitempty"`
	ValidFrames   int    `json:"valid_frames,omitempty"`
	InvalidFrames int    `json:"invalid_frames,omitempty"`
	NaoResults    []struct {
		FrameValidIndex int         `json:"frame_valid_index"`
		NaoResponse     interface{} `json:"nao_response,omitempty"`
	} `json:"nao_results,omitempty"`
}

// Summary renders a short markdown report of the processed video.
func (r *VideoResult) Summary() string {
	var b strings.Builder
	b.WriteString("## Video processed\n\n")
	b.WriteString(fmt.Sprintf("- frames sampled: %d\n", r.TotalFrames))
	b.WriteString(fmt.Sprintf("- poses sent to NAO: %d\n", r.ValidFrames))
	if r.InvalidFrames > 0 {
		b.WriteString(fmt.Sprintf("- frames without a complete pose: %d\n", r.InvalidFrames))
	}
	if r.UploadId != "" {
		b.WriteString(fmt.Sprintf("\nUpload id `%s`\n", r.UploadId))
	}
	return b.String()
}

// FormatSize renders a byte count for humans.
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
