package module

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidParams is wrapped by ValidationError.
var ErrInvalidParams = errors.New("invalid function parameters")

// Field describes one input of the invocation form.
type Field struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// ValidationError lists the parameter positions that failed validation.
type ValidationError struct {
	Issues map[int]string
}

func (e *ValidationError) Error() string {
	idx := make([]int, 0, len(e.Issues))
	for i := range e.Issues {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	parts := make([]string, 0, len(idx))
	for _, i := range idx {
		parts = append(parts, "arg_"+strconv.Itoa(i)+": "+e.Issues[i])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidParams, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidParams }

// FormState carries the transient flags of a form.
type FormState struct {
	Validating bool
	Submitting bool
}

// Submission is what a successful submit produces. Nothing is executed.
type Submission struct {
	Params    []string `json:"params"`
	Connected bool     `json:"connected"`
	IsValid   bool     `json:"isValid"`
}

// Form is the invocation form of a single Move function.
type Form struct {
	fn         Function
	connection ConnectionState
	logger     *zap.Logger
}

// NewForm builds a form for fn. connection may be nil, which means never connected.
func NewForm(fn Function, connection ConnectionState, logger *zap.Logger) *Form {
	return &Form{
		fn:         fn,
		connection: connection,
		logger:     logger.Named("module_form"),
	}
}

// Function returns the function the form invokes.
func (f *Form) Function() Function { return f.fn }

// Fields returns one field per declared parameter, in order.
func (f *Form) Fields() []Field {
	fields := make([]Field, 0, len(f.fn.Details.Parameters))
	for i, param := range f.fn.Details.Parameters {
		name := "arg_" + strconv.Itoa(i)
		fields = append(fields, Field{
			ID:          fmt.Sprintf("%s_%s_%s_param_%d", f.fn.PackageID, f.fn.Module, f.fn.Name, i),
			Name:        name,
			Label:       name,
			Placeholder: placeholder(param),
		})
	}
	return fields
}

// Validate checks that every declared parameter has a non-blank value.
// It returns the trimmed bindings, one per parameter.
func (f *Form) Validate(params []string) ([]string, error) {
	n := len(f.fn.Details.Parameters)
	bound := make([]string, n)
	issues := make(map[int]string)
	for i := 0; i < n; i++ {
		if i < len(params) {
			bound[i] = strings.TrimSpace(params[i])
		}
		if bound[i] == "" {
			issues[i] = "required"
		}
	}
	if len(issues) > 0 {
		return bound, &ValidationError{Issues: issues}
	}
	return bound, nil
}

// Connected reports the wallet connection state.
func (f *Form) Connected(ctx context.Context) bool {
	return f.connection != nil && f.connection.Connected(ctx)
}

// ExecuteDisabled reports whether the execute action must be disabled.
func (f *Form) ExecuteDisabled(ctx context.Context, state FormState, params []string) bool {
	if state.Validating || state.Submitting {
		return true
	}
	if _, err := f.Validate(params); err != nil {
		return true
	}
	return !f.Connected(ctx)
}

// Submit validates params and records the submission.
func (f *Form) Submit(ctx context.Context, params []string) (Submission, error) {
	bound, err := f.Validate(params)
	if err != nil {
		return Submission{Params: bound, Connected: f.Connected(ctx)}, err
	}
	sub := Submission{
		Params:    bound,
		Connected: f.Connected(ctx),
		IsValid:   true,
	}
	f.logger.Info("function submitted",
		zap.String("package", string(f.fn.PackageID)),
		zap.String("module", f.fn.Module),
		zap.String("function", f.fn.Name),
		zap.Strings("params", sub.Params),
		zap.Bool("connected", sub.Connected),
	)
	return sub, nil
}

func placeholder(param json.RawMessage) string {
	if len(param) == 0 {
		return "null"
	}
	var v any
	if err := json.Unmarshal(param, &v); err != nil {
		return string(param)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return string(param)
	}
	return string(out)
}
