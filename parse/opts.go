package parse

type parseOpts struct {
	comments bool
	context  string
}

type ParseOption func(*parseOpts)

// ParseComments controls whether comment nodes are kept. The default is
// true.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParseFragment parses the input as a fragment in the context of an
// element with the given local name, such as "body" or "tr".
func ParseFragment(context string) ParseOption {
	return func(o *parseOpts) { o.context = context }
}
