// Package contactform is the client side of the contact pipeline: it holds
// the form values, validates them with the same rules the server applies and
// drives the idle/sending/success/error lifecycle around a single POST.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strings"
	"sync"
	"time"

	"agroflow-backend/pkg/i18n"
	"agroflow-backend/pkg/validation"
)

type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
	StateSuccess State = "success"
	StateError   State = "error"
)

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

var (
	// ErrInvalid is returned by Submit when local validation fails.
	ErrInvalid = errors.New("contactform: form has invalid fields")
	// ErrBusy is returned by Submit while a previous submission is in flight.
	ErrBusy = errors.New("contactform: submission already in progress")
)

// Values are the user-editable form fields.
type Values struct {
	Name    string `json:"name" validate:"trimmed_min=2"`
	Email   string `json:"email" validate:"required,contact_email"`
	Message string `json:"message" validate:"trimmed_min=10"`
}

// Feedback is the banner shown after a submission.
type Feedback struct {
	Success bool
	Message string
}

type payload struct {
	Values
	Language string `json:"language"`
}

type serverResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

// Form is safe for concurrent use.
type Form struct {
	endpoint  string
	client    *http.Client
	lang      i18n.Language
	validator *validation.Validator

	mu       sync.Mutex
	values   Values
	errors   validation.FieldErrors
	state    State
	feedback *Feedback
}

type Option func(*Form)

// WithHTTPClient replaces the default client (15 s timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) { f.client = c }
}

// New creates a form that posts to <baseURL>/api/contact.
func New(baseURL string, lang i18n.Language, opts ...Option) (*Form, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	if !lang.Supported() {
		lang = i18n.Fallback
	}

	f := &Form{
		endpoint:  strings.TrimRight(baseURL, "/") + "/api/contact",
		client:    &http.Client{Timeout: 15 * time.Second},
		lang:      lang,
		validator: v,
		errors:    validation.FieldErrors{},
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// UpdateField sets a value and clears that field's error. Editing after a
// successful submission starts a new one.
func (f *Form) UpdateField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldMessage:
		f.values.Message = value
	default:
		return fmt.Errorf("contactform: unknown field %q", field)
	}

	delete(f.errors, string(field))
	if f.state == StateSuccess {
		f.state = StateIdle
		f.feedback = nil
	}
	return nil
}

// Validate checks the current values and records the field errors. An empty
// result means the form is valid.
func (f *Form) Validate() validation.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form) validateLocked() validation.FieldErrors {
	errs := validation.FieldErrors{}
	if err := f.validator.Validate(f.values, f.lang); err != nil {
		if !errors.As(err, &errs) {
			errs = validation.FieldErrors{"form": err.Error()}
		}
	}
	f.errors = errs
	return maps.Clone(errs)
}

// Submit validates and posts the form once. Invalid forms return ErrInvalid
// without any network call. The returned feedback is also kept on the form.
func (f *Form) Submit(ctx context.Context) (Feedback, error) {
	f.mu.Lock()
	if f.state == StateSending {
		f.mu.Unlock()
		return Feedback{}, ErrBusy
	}
	if errs := f.validateLocked(); len(errs) > 0 {
		f.mu.Unlock()
		return Feedback{}, ErrInvalid
	}
	f.state = StateSending
	f.feedback = nil
	body := payload{Values: f.values, Language: f.lang.String()}
	f.mu.Unlock()

	resp, err := f.post(ctx, body)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil || !resp.Success {
		msg := i18n.Translate(i18n.KeyClientError, f.lang)
		if err == nil && resp.Error != "" {
			msg = resp.Error
		}
		if resp != nil && len(resp.Fields) > 0 {
			f.errors = validation.FieldErrors(resp.Fields)
		}
		f.state = StateError
		f.feedback = &Feedback{Success: false, Message: msg}
		return *f.feedback, err
	}

	f.values = Values{}
	f.errors = validation.FieldErrors{}
	f.state = StateSuccess
	f.feedback = &Feedback{Success: true, Message: i18n.Translate(i18n.KeyClientSuccess, f.lang)}
	return *f.feedback, nil
}

// post sends one request. A non-2xx status with a decodable body is not an
// error: the body carries the message to show.
func (f *Form) post(ctx context.Context, body payload) (*serverResponse, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("contactform: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("contactform: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", f.lang.String())

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contactform: post: %w", err)
	}
	defer res.Body.Close()

	var out serverResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("contactform: decode %d response: %w", res.StatusCode, err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		out.Success = false
	}
	return &out, nil
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) Errors() validation.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errors)
}

// Feedback returns the last submission banner, if any.
func (f *Form) Feedback() (Feedback, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.feedback == nil {
		return Feedback{}, false
	}
	return *f.feedback, true
}

// Language returns the active form language.
func (f *Form) Language() i18n.Language {
	return f.lang
}

// SubmitLabel is the button text for the current state.
func (f *Form) SubmitLabel(idle string) string {
	if f.State() == StateSending {
		return i18n.Translate(i18n.KeyClientSending, f.lang)
	}
	return idle
}
