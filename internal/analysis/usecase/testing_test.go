package usecase

import (
	"context"

	"insight-srv/pkg/log"
	"insight-srv/pkg/openai"
)

// nopLogger discards all log output in tests.
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

var _ log.Logger = nopLogger{}

// fakeLLM returns canned completions and records the inputs it saw.
type fakeLLM struct {
	replies []string
	err     error
	inputs  []openai.CompletionInput
}

func (f *fakeLLM) Complete(ctx context.Context, input openai.CompletionInput) (string, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return "", f.err
	}
	reply := ""
	if len(f.replies) > 0 {
		reply = f.replies[0]
		f.replies = f.replies[1:]
	}
	return reply, nil
}

var _ openai.IOpenAI = (*fakeLLM)(nil)

// newTestUseCase builds an implUseCase with only the dependencies the
// pure pipeline steps need. llm may be nil.
func newTestUseCase(llm openai.IOpenAI) *implUseCase {
	return &implUseCase{
		llm: llm,
		l:   nopLogger{},
		cfg: DefaultConfig(),
	}
}
