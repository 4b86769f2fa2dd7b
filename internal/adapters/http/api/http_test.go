package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/okian/talkscore/internal/adapters/http/api"
	service "github.com/okian/talkscore/internal/app"
	"github.com/okian/talkscore/internal/domain/model"
	"github.com/okian/talkscore/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// mockDependencies records calls and returns canned results.
type mockDependencies struct {
	scoreErr   error
	historyErr error
	clearErr   error
	panicOn    string

	lastText   string
	lastOpts   model.Options
	lastLimit  int
	cleared    bool
	history    []model.ScoreResult
	statsValue map[string]interface{}
}

func (m *mockDependencies) Score(_ context.Context, transcript string, opts model.Options) (model.ScoreResult, error) {
	if m.panicOn == "score" {
		panic("scorer exploded")
	}
	m.lastText, m.lastOpts = transcript, opts
	if m.scoreErr != nil {
		return model.ScoreResult{}, m.scoreErr
	}
	return model.ScoreResult{ID: "r1", OverallScore: 77, TranscriptText: transcript}, nil
}

func (m *mockDependencies) History(_ context.Context, limit int) ([]model.ScoreResult, error) {
	m.lastLimit = limit
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	if limit > 0 && limit < len(m.history) {
		return m.history[:limit], nil
	}
	return m.history, nil
}

func (m *mockDependencies) ClearHistory(context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	return nil
}

func (m *mockDependencies) GetStats() map[string]interface{} {
	return m.statsValue
}

func newMux(deps api.Dependencies, opts ...api.Option) http.Handler {
	server := api.NewServer(deps, opts...)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return server.Handler(mux)
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}

func TestServer_Routes(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := &mockDependencies{statsValue: map[string]interface{}{"started": true}}
		h := newMux(deps)

		Convey("Then health should report ok", func() {
			w := do(h, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"status":"ok"`)
		})

		Convey("Then metrics should be exposed in Prometheus format", func() {
			do(h, http.MethodGet, "/healthz", "")
			w := do(h, http.MethodGet, "/metrics", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "talkscore_scoring_http_requests_total")
		})

		Convey("Then stats should return the provider's map", func() {
			w := do(h, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"started":true`)
		})

		Convey("Then wrong methods should be not found", func() {
			So(do(h, http.MethodGet, "/score", "").Code, ShouldEqual, http.StatusNotFound)
			So(do(h, http.MethodPost, "/history", "{}").Code, ShouldEqual, http.StatusNotFound)
			So(do(h, http.MethodPost, "/history/download", "{}").Code, ShouldEqual, http.StatusNotFound)
			So(do(h, http.MethodPost, "/stats", "{}").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestScoreHandler(t *testing.T) {
	Convey("Given the score endpoint", t, func() {
		deps := &mockDependencies{}
		h := newMux(deps)

		Convey("When posting a valid request", func() {
			w := do(h, http.MethodPost, "/score",
				`{"transcript_text":"hello there","options":{"run_nlp":true,"transcript_duration_seconds":35,"user_id":"u"}}`)

			Convey("Then the result should be returned and options forwarded", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var res model.ScoreResult
				So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
				So(res.ID, ShouldEqual, "r1")
				So(deps.lastText, ShouldEqual, "hello there")
				So(deps.lastOpts.RunNLP, ShouldBeTrue)
				So(deps.lastOpts.Duration(), ShouldEqual, 35)
			})
		})

		Convey("When the body is not JSON", func() {
			w := do(h, http.MethodPost, "/score", `{not json`)

			Convey("Then it should be a bad request", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w)["code"], ShouldEqual, "bad_request")
			})
		})

		Convey("When the transcript is not a string", func() {
			w := do(h, http.MethodPost, "/score", `{"transcript_text":42}`)

			Convey("Then it should be a bad request", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the service rejects the input", func() {
			deps.scoreErr = fmt.Errorf("%w: transcript must contain at least 10 words, got 3", service.ErrInvalidInput)
			w := do(h, http.MethodPost, "/score", `{"transcript_text":"too short here"}`)

			Convey("Then it should be a 400 with the reason", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decodeError(w)
				So(body["code"], ShouldEqual, "invalid_input")
				So(body["message"], ShouldContainSubstring, "at least 10 words")
			})
		})

		Convey("When the service fails internally", func() {
			deps.scoreErr = fmt.Errorf("%w: save history: disk on fire", service.ErrInternal)
			w := do(h, http.MethodPost, "/score", `{"transcript_text":"a perfectly fine transcript"}`)

			Convey("Then it should be a 500 without internal detail", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				body := decodeError(w)
				So(body["code"], ShouldEqual, "internal_error")
				So(body["message"], ShouldNotContainSubstring, "disk")
			})
		})

		Convey("When the scorer panics", func() {
			deps.panicOn = "score"
			w := do(h, http.MethodPost, "/score", `{"transcript_text":"boom"}`)

			Convey("Then the recover middleware should answer 500", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(decodeError(w)["code"], ShouldEqual, "internal_error")
			})
		})
	})

	Convey("Given a small body limit", t, func() {
		h := newMux(&mockDependencies{}, api.WithMaxBodyBytes(32))

		w := do(h, http.MethodPost, "/score", `{"transcript_text":"`+strings.Repeat("word ", 50)+`"}`)

		So(w.Code, ShouldEqual, http.StatusRequestEntityTooLarge)
		So(decodeError(w)["code"], ShouldEqual, "payload_too_large")
	})

	Convey("Given a rate limit of one request", t, func() {
		h := newMux(&mockDependencies{}, api.WithRateLimit(0.001, 1))

		first := do(h, http.MethodPost, "/score", `{"transcript_text":"x"}`)
		second := do(h, http.MethodPost, "/score", `{"transcript_text":"x"}`)

		So(first.Code, ShouldEqual, http.StatusOK)
		So(second.Code, ShouldEqual, http.StatusTooManyRequests)
		So(second.Header().Get("Retry-After"), ShouldEqual, "1")
		So(decodeError(second)["code"], ShouldEqual, "rate_limited")
	})
}

func TestHistoryHandler(t *testing.T) {
	Convey("Given the history endpoint", t, func() {
		deps := &mockDependencies{}
		for i := 0; i < 30; i++ {
			deps.history = append(deps.history, model.ScoreResult{ID: fmt.Sprintf("r%d", i)})
		}
		h := newMux(deps, api.WithHistoryLimits(20, 50))

		Convey("When no limit is given", func() {
			w := do(h, http.MethodGet, "/history", "")

			Convey("Then the default limit of 20 should apply", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastLimit, ShouldEqual, 20)
				var out []model.ScoreResult
				So(json.Unmarshal(w.Body.Bytes(), &out), ShouldBeNil)
				So(out, ShouldHaveLength, 20)
			})
		})

		Convey("When a limit is given", func() {
			w := do(h, http.MethodGet, "/history?limit=5", "")

			Convey("Then it should be forwarded", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastLimit, ShouldEqual, 5)
			})
		})

		Convey("When the limit is invalid", func() {
			So(do(h, http.MethodGet, "/history?limit=abc", "").Code, ShouldEqual, http.StatusBadRequest)
			So(do(h, http.MethodGet, "/history?limit=0", "").Code, ShouldEqual, http.StatusBadRequest)
			So(do(h, http.MethodGet, "/history?limit=-3", "").Code, ShouldEqual, http.StatusBadRequest)

			w := do(h, http.MethodGet, "/history?limit=51", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeError(w)["code"], ShouldEqual, "limit_exceeded")
		})

		Convey("When the store fails", func() {
			deps.historyErr = errors.New("store offline")
			w := do(h, http.MethodGet, "/history", "")

			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("When deleting the history", func() {
			w := do(h, http.MethodDelete, "/history", "")

			Convey("Then it should be cleared", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.cleared, ShouldBeTrue)
				So(w.Body.String(), ShouldContainSubstring, `"status":"cleared"`)
			})
		})

		Convey("When clearing fails", func() {
			deps.clearErr = errors.New("locked")
			So(do(h, http.MethodDelete, "/history", "").Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestDownloadHandler(t *testing.T) {
	Convey("Given the download endpoint with a fixed clock", t, func() {
		deps := &mockDependencies{history: []model.ScoreResult{{ID: "a"}, {ID: "b"}}}
		clock := func() time.Time { return time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC) }
		h := newMux(deps, api.WithClock(clock))

		Convey("When downloading", func() {
			w := do(h, http.MethodGet, "/history/download", "")

			Convey("Then the full history should be an attachment", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastLimit, ShouldEqual, 0)
				So(w.Header().Get("Content-Disposition"), ShouldEqual,
					`attachment; filename="transcript-history-2024-03-09.json"`)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "application/json")

				var out []model.ScoreResult
				So(json.Unmarshal(w.Body.Bytes(), &out), ShouldBeNil)
				So(out, ShouldHaveLength, 2)
			})
		})

		Convey("When the store fails", func() {
			deps.historyErr = errors.New("store offline")
			So(do(h, http.MethodGet, "/history/download", "").Code, ShouldEqual, http.StatusInternalServerError)
		})
	})

	Convey("Given a non-UTC time", t, func() {
		ist := time.FixedZone("IST", 19800)
		So(api.DownloadFilename(time.Date(2024, 3, 10, 2, 0, 0, 0, ist)), ShouldEqual, "transcript-history-2024-03-09.json")
	})
}

func TestCORS(t *testing.T) {
	Convey("Given an allow-list of origins", t, func() {
		h := newMux(&mockDependencies{}, api.WithCORSOrigins([]string{"https://app.example"}))

		Convey("When an allowed origin sends a preflight", func() {
			req := httptest.NewRequest(http.MethodOptions, "/score", nil)
			req.Header.Set("Origin", "https://app.example")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			Convey("Then the origin should be echoed", func() {
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://app.example")
			})
		})

		Convey("When another origin calls", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("Origin", "https://evil.example")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			Convey("Then no allow header should be set", func() {
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
			})
		})
	})
}
