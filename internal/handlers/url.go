package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/phylsix/tinyurl/internal/events"
	"github.com/phylsix/tinyurl/internal/messaging"
	"github.com/phylsix/tinyurl/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler exposes the two core operations over HTTP: allocate a code for
// a URL, and resolve a code back to its URL.
type URLHandler struct {
	allocator      *shortener.Allocator
	resolver       *shortener.Resolver
	baseURL        string
	publishCreated messaging.Publish[events.MappingCreatedEvent]
	logger         *zap.Logger
}

// NewURLHandler creates a URL handler.
func NewURLHandler(
	allocator *shortener.Allocator,
	resolver *shortener.Resolver,
	baseURL string,
	publishCreated messaging.Publish[events.MappingCreatedEvent],
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		allocator:      allocator,
		resolver:       resolver,
		baseURL:        baseURL,
		publishCreated: publishCreated,
		logger:         logger,
	}
}

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata attached by the middleware.
type RequestMeta struct {
	RequestID string
	ClientIP  string
	UserAgent string
}

// ContextWithRequestMeta adds request metadata to the context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from the context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

func (h *URLHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	m, err := h.allocator.Allocate(ctx, req.Body.URL)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrEmptyURL):
			return nil, huma.Error400BadRequest("url must not be empty")
		case errors.Is(err, shortener.ErrNoFreeCode):
			h.logger.Error("short code allocation exhausted", zap.Error(err))

			return nil, huma.Error500InternalServerError("could not allocate a short code")
		default:
			h.logger.Error("failed to save mapping", zap.Error(err))

			return nil, huma.Error500InternalServerError("failed to save url")
		}
	}

	meta := RequestMetaFromContext(ctx)

	event := &events.MappingCreatedEvent{
		Code:      string(m.Code),
		TargetURL: m.TargetURL,
		CreatedAt: m.CreatedAt,
		RequestID: meta.RequestID,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
	}

	// the mapping is durable at this point; a lost event is logged, not fatal
	if err := h.publishCreated(event); err != nil {
		h.logger.Error("failed to publish mapping created event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	shortURL := fmt.Sprintf("%s/%s", h.baseURL, m.Code)

	resp := &ShortenResponse{}
	resp.Headers.Location = shortURL
	resp.Body.Code = string(m.Code)
	resp.Body.ShortURL = shortURL
	resp.Body.URL = m.TargetURL

	return resp, nil
}

func (h *URLHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	m, err := h.resolver.Resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		h.logger.Error("failed to resolve code",
			zap.String("code", req.Code),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to get url")
	}

	resp := &RedirectResponse{
		Status: http.StatusPermanentRedirect,
	}
	resp.Headers.Location = m.TargetURL

	return resp, nil
}
