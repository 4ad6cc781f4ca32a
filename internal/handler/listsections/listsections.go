package listsections

import (
	"context"

	"github.com/ladlehq/ladle/internal/catalog"
)

type Request struct {
	// Refresh drops all section state and rebuilds from scratch.
	Refresh bool `json:"refresh"`

	// LoadMoreKey, when set, pages one section instead of listing all.
	LoadMoreKey string `json:"loadMoreKey"`
}

type Response struct {
	Sections []*catalog.Section `json:"sections"`
}

func NewHandler(sections *catalog.Sections) *Handler {
	return &Handler{sections: sections}
}

type Handler struct {
	sections *catalog.Sections
}

// ListSections serves the catalog shelves: the curated fill is returned
// after remote augmentation settles, with sections that failed remotely
// keeping their curated-only contents.
func (h *Handler) ListSections(ctx context.Context, req *Request) (*Response, error) {
	if req.LoadMoreKey != "" {
		if _, err := h.sections.LoadMore(ctx, req.LoadMoreKey); err != nil {
			return nil, err
		}
		return &Response{Sections: h.sections.Ordered()}, nil
	}

	if req.Refresh {
		h.sections.Reset()
	}
	h.sections.LoadLocal()
	return &Response{Sections: h.sections.Augment(ctx)}, nil
}
