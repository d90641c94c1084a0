package boldwords

// Default markup inserted around bold spans.
const (
	DefaultOpenTag  = "<b>"
	DefaultCloseTag = "</b>"
)

// Options configures BoldWords.
//
// OpenTag and CloseTag are inserted verbatim before and after every merged span.
type Options struct {
	OpenTag  string
	CloseTag string
}

// Option represents a functional option for configuring BoldWords.
type Option func(*Options)

// WithTags replaces the markup inserted around bold spans.
func WithTags(openTag, closeTag string) Option {
	return func(o *Options) {
		o.OpenTag = openTag
		o.CloseTag = closeTag
	}
}

// DefaultOptions returns Options using <b> and </b>.
func DefaultOptions() Options {
	return Options{
		OpenTag:  DefaultOpenTag,
		CloseTag: DefaultCloseTag,
	}
}

// span is a half-open byte range [start, end) of s.
type span struct {
	start int
	end   int
}
