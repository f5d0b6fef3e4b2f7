package app

import (
	"context"
	"errors"
	"sync"

	"github.com/quasarbright/clanker-translate/internal/domain"
)

// pipeline is the translate operation the API fronts.
type pipeline interface {
	Translate(ctx context.Context, req domain.TranslationRequest) (domain.TranslationResponse, error)
}

// TranslateAPI is the Wails-bound surface for the translation pipeline. It
// enforces single-flight: starting a new translation cancels the one still in
// flight, and the superseded call reports cancelled so the frontend suppresses
// it instead of showing an error.
type TranslateAPI struct {
	svc pipeline

	mu      sync.Mutex
	current *flight
}

type flight struct {
	cancel context.CancelFunc
}

func NewTranslateAPI(svc pipeline) *TranslateAPI { return &TranslateAPI{svc: svc} }

type TranslateRequest struct {
	APIKey       string `json:"apiKey"`
	Model        string `json:"model"`
	SourceText   string `json:"sourceText"`
	FromLanguage string `json:"fromLanguage"`
	ToLanguage   string `json:"toLanguage"`
	Context      string `json:"context,omitempty"`
}

type APIError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type TranslateResult struct {
	Response  *domain.TranslationResponse `json:"response,omitempty"`
	Error     *APIError                   `json:"error,omitempty"`
	Cancelled bool                        `json:"cancelled,omitempty"`
}

func (a *TranslateAPI) Translate(req TranslateRequest) TranslateResult {
	ctx, cancel := context.WithCancel(context.Background())
	f := &flight{cancel: cancel}

	a.mu.Lock()
	if a.current != nil {
		a.current.cancel()
	}
	a.current = f
	a.mu.Unlock()

	// Release this flight's slot only if it has not been superseded.
	defer func() {
		cancel()
		a.mu.Lock()
		if a.current == f {
			a.current = nil
		}
		a.mu.Unlock()
	}()

	resp, err := a.svc.Translate(ctx, domain.TranslationRequest{
		APIKey:       req.APIKey,
		Model:        req.Model,
		SourceText:   req.SourceText,
		FromLanguage: req.FromLanguage,
		ToLanguage:   req.ToLanguage,
		Context:      req.Context,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return TranslateResult{Cancelled: true}
		}
		return TranslateResult{Error: toAPIError(err)}
	}
	return TranslateResult{Response: &resp}
}

// Cancel aborts the in-flight translation, if any.
func (a *TranslateAPI) Cancel() {
	a.mu.Lock()
	if a.current != nil {
		a.current.cancel()
		a.current = nil
	}
	a.mu.Unlock()
}

// toAPIError maps kinds to fixed non-technical sentences. The raw message is
// only shown for unknown errors; status codes and credentials never leave the
// backend.
func toAPIError(err error) *APIError {
	var cerr *domain.ClassifiedError
	if !errors.As(err, &cerr) {
		return &APIError{Kind: string(domain.ErrUnknown), Message: "Something went wrong. Please try again."}
	}
	msg := ""
	switch cerr.Kind {
	case domain.ErrAuth:
		msg = "The gateway rejected your API key. Check it in settings."
	case domain.ErrRateLimit:
		msg = "You are being rate limited. Wait a moment and try again."
	case domain.ErrNetwork:
		msg = "Could not reach the translation gateway. Check your connection."
	case domain.ErrInvalidResponse:
		msg = "The model returned an unusable response. Please try again."
	default:
		msg = cerr.Message
		if msg == "" {
			msg = "Something went wrong. Please try again."
		}
	}
	return &APIError{Kind: string(cerr.Kind), Message: msg}
}
