package gate

import "context"

// Prompt is everything the external UI step needs to open: the temporary
// storage id of the state token, the page to route to, and the redirect that
// marks completion.
type Prompt struct {
	StateID     string
	TargetPage  string
	RedirectURL string
}

// Presenter drives the host application's embedded web view. Present blocks
// until the step finishes and returns the correlation id carried by the
// finish redirect; an empty id means the step closed without a result.
// Dismiss tears the view down; the orchestrator calls it exactly once per
// presentation.
type Presenter interface {
	Present(ctx context.Context, prompt Prompt) (resultID string, err error)
	Dismiss(ctx context.Context)
}

// CameraPermission is consulted before the camera-based age-estimation flow.
// The result is advisory only and never blocks the flow.
type CameraPermission interface {
	CheckCameraPermission(ctx context.Context) bool
}

// GrantedCamera is the default CameraPermission: hosts that never prompt
// report granted and let the embedded UI deal with denial.
type GrantedCamera struct{}

func (GrantedCamera) CheckCameraPermission(context.Context) bool { return true }

// NoPresenter is the default Presenter for headless hosts: every interactive
// step closes immediately without a result.
type NoPresenter struct{}

func (NoPresenter) Present(context.Context, Prompt) (string, error) { return "", nil }

func (NoPresenter) Dismiss(context.Context) {}
