package options

// DefaultOptions is the engine configuration applied before caller options.
var DefaultOptions = EngineOptions{
	MaxSuggestions: 3,
	PlainText:      false,
}

type EngineOptions struct {
	MaxSuggestions int  // Per-word suggestion cap used when the caller passes none
	PlainText      bool // Treat input as plain text, never decode chords
}

type Options interface {
	Apply(options *EngineOptions)
}

type FuncConfig struct {
	ops func(options *EngineOptions)
}

func (w FuncConfig) Apply(conf *EngineOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *EngineOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithMaxSuggestions(maxSuggestions int) Options {
	return NewFuncOption(func(options *EngineOptions) {
		options.MaxSuggestions = maxSuggestions
	})
}

// WithPlainText disables chord decoding for callers that guarantee their
// input never carries chord keys.
func WithPlainText() Options {
	return NewFuncOption(func(options *EngineOptions) {
		options.PlainText = true
	})
}
