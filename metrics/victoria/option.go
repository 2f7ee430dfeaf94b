package victoria

type Option func(writer *writer)

// WithPrefix sets prefix of metric names (default "distrib").
func WithPrefix(prefix string) Option {
	return func(writer *writer) {
		writer.prefix = prefix
	}
}
