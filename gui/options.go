package gui

// Option configures a UI widget.
type Option func(*options)

type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
//	var OptGlow = gui.NewOptKey("glow", false)
//	ctx.Button("OK", gui.WithOpt(OptGlow, true))
//	glow := gui.ApplyAndGet(opts, OptGlow)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to build custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// Built-in option keys.
var (
	OptID          = NewOptKey("id", "")
	OptDisabled    = NewOptKey("disabled", false)
	OptWidth       = NewOptKey[float32]("width", 0)
	OptHeight      = NewOptKey[float32]("height", 0)
	OptFormat      = NewOptKey("format", "")
	OptStep        = NewOptKey[float32]("step", 0)
	OptDefaultOpen = NewOptKey("defaultOpen", false)
	OptOverlay     = NewOptKey("overlay", "")
	OptScaleMin    = NewOptKey[float32]("scaleMin", 0)
	OptScaleMax    = NewOptKey[float32]("scaleMax", 0)
)

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithFormat sets the printf format for displayed values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep snaps slider values to multiples of step.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// DefaultOpen makes a collapsing header start expanded.
func DefaultOpen() Option { return WithOpt(OptDefaultOpen, true) }

// WithOverlay draws text over a plot.
func WithOverlay(text string) Option { return WithOpt(OptOverlay, text) }

// WithScale fixes the value range of a plot instead of fitting the data.
func WithScale(minVal, maxVal float32) Option {
	return func(o *options) {
		WithOpt(OptScaleMin, minVal)(o)
		WithOpt(OptScaleMax, maxVal)(o)
	}
}
