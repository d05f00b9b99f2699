package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"vsl-server/internal/languages"
	"vsl-server/internal/observability"
	"vsl-server/internal/structured"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func testProfile() BusinessProfile {
	return BusinessProfile{
		Offer:    "Sales coaching program for B2B founders",
		Avatar:   "Founders of 5-20 person software companies",
		Problems: "Prospects ghost after the pricing call",
		Desires:  "Close deals without discounting",
		Tone:     ToneDirect,
		Language: "pl",
	}
}

func newTestGenerator(t *testing.T, backend structured.Backend) *Generator {
	t.Helper()
	directory, err := languages.Load("en")
	if err != nil {
		t.Fatalf("failed to load languages: %v", err)
	}
	logger := observability.NewLogger()
	g := New(structured.New(backend, logger), directory, logger)
	g.now = func() time.Time { return fixedNow }
	return g
}

// text returns a readable filler of exactly n characters.
func text(prefix string, n int) string {
	s := prefix + " " + strings.Repeat("lorem ipsum ", n/12+1)
	return s[:n]
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func titlesJSON(n int) string {
	titles := make([]string, n)
	for i := range titles {
		titles[i] = fmt.Sprintf("Free Lesson: The %d-Step Script to Stop Prospects Ghosting", i+1)
	}
	return mustJSON(map[string]any{"titles": titles})
}

func sectionsFor(variant string) scriptSections {
	return scriptSections{
		Hook:             text("hook "+variant, 80),
		ProblemAgitation: text("problem "+variant, 200),
		AuthorityStory:   text("authority "+variant, 200),
		SolutionReveal:   text("lesson "+variant, 400),
		SocialProof:      text("proof "+variant, 150),
		Offer:            text("offer "+variant, 150),
		CallToAction:     text("cta "+variant, 80),
	}
}

func scriptJSON(variant string) string {
	return mustJSON(scriptOutput{VSLScript: sectionsFor(variant)})
}

func videoScriptsJSON(n int) string {
	scripts := make([]videoScript, n)
	for i := range scripts {
		scripts[i] = videoScript{
			Title:    fmt.Sprintf("Angle %d", i+1),
			Script:   text(fmt.Sprintf("video %d", i+1), 300),
			Duration: "30-45 seconds",
		}
	}
	return mustJSON(videoScriptsOutput{VideoScripts: scripts})
}

func adCopyJSON() string {
	return mustJSON(adCopyOutput{AdCopyA: text("copy A", 300), AdCopyB: text("copy B", 300)})
}

func headlinesJSON(a, b string) string {
	return mustJSON(headlinesOutput{HeadlineA: a, HeadlineB: b})
}

// backendResponses maps an operation to the raw output or error it returns.
type backendResponses map[string]struct {
	raw string
	err error
}

func validResponses() backendResponses {
	return backendResponses{
		"vsl_titles":           {raw: titlesJSON(6)},
		"vsl_script_variant_a": {raw: scriptJSON("A")},
		"vsl_script_variant_b": {raw: scriptJSON("B")},
		"ads_video":            {raw: videoScriptsJSON(4)},
		"ads_copy":             {raw: adCopyJSON()},
		"ads_headlines":        {raw: headlinesJSON("Free Lesson: 3-Step Script", "Handle Price Objections Today")},
	}
}

func (r backendResponses) with(op, raw string, err error) backendResponses {
	r[op] = struct {
		raw string
		err error
	}{raw: raw, err: err}
	return r
}

// recorder captures requests sent to the backend, keyed by operation.
type recorder struct {
	mu       sync.Mutex
	requests map[string]structured.Request
}

func (r *recorder) get(op string) structured.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[op]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func expectBackend(backend *MockBackend, responses backendResponses) *recorder {
	rec := &recorder{requests: make(map[string]structured.Request)}
	backend.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req structured.Request) (string, error) {
			rec.mu.Lock()
			rec.requests[req.Operation] = req
			rec.mu.Unlock()
			resp, ok := responses[req.Operation]
			if !ok {
				return "", fmt.Errorf("unexpected operation %q", req.Operation)
			}
			return resp.raw, resp.err
		}).AnyTimes()
	return rec
}
