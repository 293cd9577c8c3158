package parse

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth limits how deeply groups may nest. Zero means no limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
