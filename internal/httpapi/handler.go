// Package httpapi serves formalization over a fasthttp JSON API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/core/rules"
	"github.com/baditaflorin/formalized/internal/ports"
	"github.com/baditaflorin/formalized/internal/session"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// DefaultRequestTimeout bounds one formalization request.
const DefaultRequestTimeout = 60 * time.Second

// Request represents a formalization request
type Request struct {
	Text     string `json:"text"`
	Strategy string `json:"strategy,omitempty"`
}

// Response represents a formalization response
type Response struct {
	Output         string `json:"output"`
	Strategy       string `json:"strategy"`
	ProcessingTime string `json:"processing_time"`
	RequestID      string `json:"request_id"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Handler routes API requests. Requests do not share state.
type Handler struct {
	strategies      map[string]ports.Formalizer
	defaultStrategy string
	ruleSet         rules.RuleSet
	logger          ports.Logger
	timeout         time.Duration
}

// NewHandler creates a handler. defaultStrategy must be one of strategies.
func NewHandler(logger ports.Logger, ruleSet rules.RuleSet, defaultStrategy string, strategies ...ports.Formalizer) (*Handler, error) {
	h := &Handler{
		strategies:      make(map[string]ports.Formalizer, len(strategies)),
		defaultStrategy: defaultStrategy,
		ruleSet:         ruleSet,
		logger:          logger,
		timeout:         DefaultRequestTimeout,
	}
	for _, s := range strategies {
		h.strategies[s.Name()] = s
	}
	if _, ok := h.strategies[defaultStrategy]; !ok {
		return nil, errors.New("default strategy " + defaultStrategy + " is not registered")
	}
	return h, nil
}

// SetTimeout changes the per-request timeout.
func (h *Handler) SetTimeout(d time.Duration) {
	h.timeout = d
}

// Handle is the fasthttp request handler
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	requestID := uuid.NewString()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "FormalizedServer")
	ctx.Response.Header.Set("X-Request-ID", requestID)

	switch string(ctx.Path()) {
	case "/health":
		h.handleHealth(ctx)
	case "/rules":
		h.handleRules(ctx, requestID)
	case "/formalize":
		h.handleFormalize(ctx, requestID)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		h.writeJSONError(ctx, "Not found", requestID)
	}

	h.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (h *Handler) strategyNames() []string {
	names := make([]string, 0, len(h.strategies))
	for name := range h.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, map[string]interface{}{
		"status":     "ok",
		"time":       time.Now().Format(time.RFC3339),
		"strategies": h.strategyNames(),
	})
}

func (h *Handler) handleRules(ctx *fasthttp.RequestCtx, requestID string) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		h.writeJSONError(ctx, "Method not allowed", requestID)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, map[string]interface{}{
		"separator": rules.DefaultSeparator,
		"rules":     h.ruleSet.Describe(),
	})
}

func (h *Handler) handleFormalize(ctx *fasthttp.RequestCtx, requestID string) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		h.writeJSONError(ctx, "Method not allowed", requestID)
		return
	}

	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "Invalid request: "+err.Error(), requestID)
		return
	}

	name := req.Strategy
	if name == "" {
		name = h.defaultStrategy
	}
	strategy, ok := h.strategies[name]
	if !ok {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "Unknown strategy: "+name, requestID)
		return
	}

	c, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	start := time.Now()
	out, err := strategy.Formalize(c, req.Text)
	if err != nil {
		ctx.SetStatusCode(statusFor(err))
		if !errors.Is(err, domain.ErrEmptyInput) {
			h.logger.Error("Error formalizing text", "request_id", requestID, "strategy", name, "error", err)
		}
		h.writeJSONError(ctx, session.MessageFor(err), requestID)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, Response{
		Output:         out,
		Strategy:       name,
		ProcessingTime: time.Since(start).String(),
		RequestID:      requestID,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return fasthttp.StatusBadRequest
	case errors.Is(err, domain.ErrServiceUnavailable):
		return fasthttp.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return fasthttp.StatusGatewayTimeout
	default:
		return fasthttp.StatusInternalServerError
	}
}

// writeJSONResponse writes a JSON response to the context
func (h *Handler) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (h *Handler) writeJSONError(ctx *fasthttp.RequestCtx, message, requestID string) {
	h.writeJSONResponse(ctx, ErrorResponse{Error: message, RequestID: requestID})
}
