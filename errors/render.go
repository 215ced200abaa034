package errors

const (
	FormatUnsupportedErrorCode = 400_001
)

var FormatUnsupportedError = new(FormatUnsupportedErrorCode, "FormatUnsupported", "render format %q is unsupported")
