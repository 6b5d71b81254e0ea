package meta

const (
	CmdSubmit = "submit"
	CmdPing   = "ping"
)

const (
	Name        = "naoarms"
	Description = "Upload an image or video and make the NAO robot mimic the pose"
)

const (
	// DefaultDomain is where the translator service listens in the
	// default compose setup.
	DefaultDomain = "http://localhost:7000"

	// APIPrefix is fixed; the translator is always mounted under /api.
	APIPrefix = "api"

	RouteFromImage = "arms/from_image"
	RouteFromVideo = "arms/from_video"
)

const (
	FieldImage   = "image"
	FieldVideo   = "video"
	FieldFps     = "fps"
	FieldSeconds = "seconds"

	// Video sampling defaults: one frame per second, whole video.
	DefaultFps     = "1"
	DefaultSeconds = "-1"
)

const (
	LoadError   = 1
	ServerError = 2
	HttpError   = 3
)

const (
	HTTPPost          = "POST"
	HTTPGet           = "GET"
	HeaderContentType = "Content-Type"
	EnvBaseURL        = "NAO_BASE_URL"
)
