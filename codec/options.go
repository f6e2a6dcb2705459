package codec

type options struct {
	compression CompressionType
}

// Option configures binary block encoding.
type Option func(*options)

// WithCompression selects the body compression. The default is CompressionNone.
func WithCompression(c CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{compression: CompressionNone}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
