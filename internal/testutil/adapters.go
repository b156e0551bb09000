package testutil

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"sync"

	"github.com/alumnet/backend/internal/pkg/payment"
)

// ErrFake is returned by fakes configured to fail
var ErrFake = errors.New("fake adapter failure")

// Storage is an upload sink that records uploads and returns predictable URLs
type Storage struct {
	mu      sync.Mutex
	Fail    bool
	Uploads []string // "<folder>/<filename>"
}

// SaveFile records the upload
func (s *Storage) SaveFile(_ context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return "", ErrFake
	}
	key := folder + "/" + fh.Filename
	s.Uploads = append(s.Uploads, key)
	return "https://cdn.example.com/" + key, nil
}

// Email records approval notices
type Email struct {
	mu   sync.Mutex
	Fail bool
	Sent []string // recipient addresses
}

// SendApprovalEmail records the recipient
func (e *Email) SendApprovalEmail(ctx context.Context, toEmail, _ string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("approval email sent without a deadline")
	}
	if e.Fail {
		return ErrFake
	}
	e.Sent = append(e.Sent, toEmail)
	return nil
}

// SentCount returns how many notices went out
func (e *Email) SentCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.Sent)
}

// Gateway is a scripted payment gateway
type Gateway struct {
	mu            sync.Mutex
	AuthURL       string
	InitErr       error
	VerifyResults map[string]*payment.VerifyResult
	VerifyErr     error
	Initialized   []payment.InitializeRequest
	Verified      []string
}

// NewGateway creates a gateway that approves nothing until told otherwise
func NewGateway() *Gateway {
	return &Gateway{
		AuthURL:       "https://checkout.example.com/pay",
		VerifyResults: make(map[string]*payment.VerifyResult),
	}
}

// Initialize records the request
func (g *Gateway) Initialize(_ context.Context, req payment.InitializeRequest) (*payment.InitializeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Initialized = append(g.Initialized, req)
	if g.InitErr != nil {
		return nil, g.InitErr
	}
	return &payment.InitializeResult{AuthorizationURL: g.AuthURL, Reference: req.Reference}, nil
}

// Verify returns the scripted result for reference
func (g *Gateway) Verify(_ context.Context, reference string) (*payment.VerifyResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Verified = append(g.Verified, reference)
	if g.VerifyErr != nil {
		return nil, g.VerifyErr
	}
	if res, ok := g.VerifyResults[reference]; ok {
		return res, nil
	}
	return &payment.VerifyResult{Status: "abandoned", Reference: reference}, nil
}

// InitializeCalls returns how many initialize calls were made
func (g *Gateway) InitializeCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Initialized)
}

// FileHeader builds a real *multipart.FileHeader for the given content
func FileHeader(field, filename, contentType string, content []byte) (*multipart.FileHeader, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		return nil, err
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, errors.New("no file part")
	}
	return files[0], nil
}
