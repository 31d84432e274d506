// Package errors provides the typed error taxonomy for react-vite-boilerplate
// and its user-facing formatting.
package errors

import (
	"errors"
	"strconv"
	"time"
)

// Kind is the category of a BoilerplateError. The zero value is KindUnknown.
type Kind int

const (
	// KindUnknown is the default, catch-all kind.
	KindUnknown Kind = iota
	// KindValidation is bad input.
	KindValidation
	// KindNetwork is missing connectivity before install.
	KindNetwork
	// KindFilesystem is a permission or path issue.
	KindFilesystem
	// KindPackageManager is a package manager probe or install failure.
	KindPackageManager
	// KindTemplate is a template copy or substitution failure.
	KindTemplate
)

// String returns the category name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindNetwork:
		return "Network"
	case KindFilesystem:
		return "Filesystem"
	case KindPackageManager:
		return "PackageManager"
	case KindTemplate:
		return "Template"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindNetwork:
		return ErrNetwork
	case KindFilesystem:
		return ErrFilesystem
	case KindPackageManager:
		return ErrPackageManager
	case KindTemplate:
		return ErrTemplate
	default:
		return ErrUnknown
	}
}

// Context is structured data attached to an error at raise time.
// It is a plain value; copies never alias.
type Context struct {
	ProjectName string
	Path        string
	Manager     string
	Command     string
	Step        string
	ExitCode    int
}

// IsZero reports whether no field is set.
func (c Context) IsZero() bool {
	return c == Context{}
}

// Pairs returns the non-empty fields as alternating key/value pairs, in a
// fixed order, suitable for structured logging.
func (c Context) Pairs() []interface{} {
	var kv []interface{}
	add := func(k, v string) {
		if v != "" {
			kv = append(kv, k, v)
		}
	}
	add("project", c.ProjectName)
	add("path", c.Path)
	add("manager", c.Manager)
	add("command", c.Command)
	add("step", c.Step)
	if c.ExitCode != 0 {
		kv = append(kv, "exit_code", strconv.Itoa(c.ExitCode))
	}
	return kv
}

// BoilerplateError is an immutable, categorized error.
type BoilerplateError struct {
	message   string
	kind      Kind
	context   Context
	timestamp time.Time
	cause     error
}

// Option configures a BoilerplateError at construction.
type Option func(*BoilerplateError)

// WithCause records the underlying error.
func WithCause(err error) Option {
	return func(e *BoilerplateError) { e.cause = err }
}

// WithProjectName records the project name.
func WithProjectName(name string) Option {
	return func(e *BoilerplateError) { e.context.ProjectName = name }
}

// WithPath records the filesystem path involved.
func WithPath(path string) Option {
	return func(e *BoilerplateError) { e.context.Path = path }
}

// WithManager records the package manager involved.
func WithManager(name string) Option {
	return func(e *BoilerplateError) { e.context.Manager = name }
}

// WithCommand records the external command involved.
func WithCommand(cmd string) Option {
	return func(e *BoilerplateError) { e.context.Command = cmd }
}

// WithStep records the scaffolding step that failed.
func WithStep(step string) Option {
	return func(e *BoilerplateError) { e.context.Step = step }
}

// WithExitCode records the exit code of a failed process.
func WithExitCode(code int) Option {
	return func(e *BoilerplateError) { e.context.ExitCode = code }
}

// New creates a BoilerplateError of the given kind.
func New(kind Kind, message string, opts ...Option) *BoilerplateError {
	e := &BoilerplateError{
		message:   message,
		kind:      kind,
		timestamp: time.Now(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validation creates a KindValidation error.
func Validation(message string, opts ...Option) *BoilerplateError {
	return New(KindValidation, message, opts...)
}

// Network creates a KindNetwork error.
func Network(message string, opts ...Option) *BoilerplateError {
	return New(KindNetwork, message, opts...)
}

// Filesystem creates a KindFilesystem error.
func Filesystem(message string, opts ...Option) *BoilerplateError {
	return New(KindFilesystem, message, opts...)
}

// PackageManager creates a KindPackageManager error.
func PackageManager(message string, opts ...Option) *BoilerplateError {
	return New(KindPackageManager, message, opts...)
}

// Template creates a KindTemplate error.
func Template(message string, opts ...Option) *BoilerplateError {
	return New(KindTemplate, message, opts...)
}

// Message returns the free-form message.
func (e *BoilerplateError) Message() string { return e.message }

// Kind returns the error category.
func (e *BoilerplateError) Kind() Kind { return e.kind }

// Context returns a copy of the structured context.
func (e *BoilerplateError) Context() Context { return e.context }

// Timestamp returns when the error was created.
func (e *BoilerplateError) Timestamp() time.Time { return e.timestamp }

// Error implements the error interface.
func (e *BoilerplateError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the underlying cause.
func (e *BoilerplateError) Unwrap() error {
	return e.cause
}

// Is matches the sentinel error of e's kind.
func (e *BoilerplateError) Is(target error) bool {
	return target == e.kind.sentinel()
}

// As returns the first BoilerplateError in err's chain.
func As(err error) (*BoilerplateError, bool) {
	var be *BoilerplateError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// KindOf returns the kind of the first BoilerplateError in err's chain,
// falling back to sentinel matching and then KindUnknown.
func KindOf(err error) Kind {
	if be, ok := As(err); ok {
		return be.kind
	}
	for _, k := range []Kind{KindValidation, KindNetwork, KindFilesystem, KindPackageManager, KindTemplate} {
		if errors.Is(err, k.sentinel()) {
			return k
		}
	}
	return KindUnknown
}
