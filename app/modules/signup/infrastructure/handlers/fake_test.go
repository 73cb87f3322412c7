package signuphandlers

import (
	"context"

	signupdomain "github.com/edenhub/eden-web/app/modules/signup/domain"
	"github.com/edenhub/eden-web/app/types"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	trace []string

	MyRunsFunc func(ctx context.Context, userID string) (*signupdomain.MyRuns, error)
	SignUpFunc func(ctx context.Context, runID string, signupType types.SignupType) error
	CancelFunc func(ctx context.Context, runID string) error
}

func (f *FakeService) Trace() []string {
	return f.trace
}

func (f *FakeService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeService) MyRuns(ctx context.Context, userID string) (*signupdomain.MyRuns, error) {
	f.record("MyRuns")
	if f.MyRunsFunc != nil {
		return f.MyRunsFunc(ctx, userID)
	}
	return &signupdomain.MyRuns{}, nil
}

func (f *FakeService) SignUp(ctx context.Context, runID string, signupType types.SignupType) error {
	f.record("SignUp")
	if f.SignUpFunc != nil {
		return f.SignUpFunc(ctx, runID, signupType)
	}
	return nil
}

func (f *FakeService) Cancel(ctx context.Context, runID string) error {
	f.record("Cancel")
	if f.CancelFunc != nil {
		return f.CancelFunc(ctx, runID)
	}
	return nil
}
