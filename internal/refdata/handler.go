package refdata

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
)

// Binder binds and validates a create request body into a new record.
// It writes its own 400 response and returns ok=false on failure.
type Binder[T any] func(c *gin.Context) (*T, bool)

// MutatorBinder binds and validates an update or patch request body into a
// Mutator. It writes its own 400 response and returns ok=false on failure.
type MutatorBinder[T any] func(c *gin.Context) (Mutator[T], bool)

// Handler is the generic REST handler for one reference resource. The
// resource module supplies the DTO binding; everything else — filter
// parsing, paging, status mapping — is shared.
type Handler[T any, P Entity[T]] struct {
	svc    *Service[T, P]
	desc   *Descriptor[T]
	limits pkg.PageLimits

	bindCreate Binder[T]
	bindUpdate MutatorBinder[T]
	bindPatch  MutatorBinder[T]
}

// NewHandler creates a Handler wired to the given service and binders.
func NewHandler[T any, P Entity[T]](
	svc *Service[T, P],
	desc *Descriptor[T],
	limits pkg.PageLimits,
	bindCreate Binder[T],
	bindUpdate MutatorBinder[T],
	bindPatch MutatorBinder[T],
) *Handler[T, P] {
	return &Handler[T, P]{
		svc:        svc,
		desc:       desc,
		limits:     limits,
		bindCreate: bindCreate,
		bindUpdate: bindUpdate,
		bindPatch:  bindPatch,
	}
}

// Register mounts the resource's CRUD routes on the given group.
func (h *Handler[T, P]) Register(g *gin.RouterGroup) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Patch)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST /<resources>.
func (h *Handler[T, P]) Create(c *gin.Context) {
	entity, ok := h.bindCreate(c)
	if !ok {
		return
	}

	if err := h.svc.Create(c.Request.Context(), entity); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, entity)
}

// Get handles GET /<resources>/:id.
func (h *Handler[T, P]) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	entity, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, entity)
}

// List handles GET /<resources>. Query parameters map 1:1 to the
// descriptor's filter fields, plus pageNumber, pageSize, and sort.
func (h *Handler[T, P]) List(c *gin.Context) {
	spec, err := h.desc.ParseFilterSpec(c.Request.URL.Query())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	req := pkg.ParsePageRequest(c, h.limits)

	page, err := h.svc.List(c.Request.Context(), spec, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, domain.NewPage(page))
}

// Update handles PUT /<resources>/:id.
func (h *Handler[T, P]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	apply, ok := h.bindUpdate(c)
	if !ok {
		return
	}

	entity, err := h.svc.Update(c.Request.Context(), id, apply)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, entity)
}

// Patch handles PATCH /<resources>/:id. A patch with no fields set changes
// nothing and still reports success.
func (h *Handler[T, P]) Patch(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	apply, ok := h.bindPatch(c)
	if !ok {
		return
	}

	entity, err := h.svc.Update(c.Request.Context(), id, apply)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, entity)
}

// Delete handles DELETE /<resources>/:id (soft delete).
func (h *Handler[T, P]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, gin.H{"deleted": true})
}

// parseID extracts the :id path parameter. A malformed id is a validation
// error, not a not-found: the request never names an existing record.
func (h *Handler[T, P]) parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		pkg.Error(c, domain.Validation("id must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
