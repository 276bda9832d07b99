// Package server exposes the catalog over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"pokebrowse/internal/catalog"
	"pokebrowse/internal/domain"
)

// Catalog is the read side of the collection store
type Catalog interface {
	List(ctx context.Context, p catalog.ListParams) (catalog.ListResult, error)
	Get(ctx context.Context, id int) (domain.Pokemon, error)
}

// Options configures the router
type Options struct {
	Collection  string
	PerPage     int
	CORSOrigins []string
}

// listResponse is the body of GET /api/<collection>
type listResponse struct {
	Data          []domain.Pokemon `json:"data"`
	Page          int              `json:"page"`
	PerPage       int              `json:"per_page"`
	TotalItems    int              `json:"total_items"`
	TotalPages    int              `json:"total_pages"`
	SortingColumn string           `json:"sorting_column"`
	SortingOrder  string           `json:"sorting_order"`
}

// NewRouter builds the gin engine serving store under /api/<collection>
func NewRouter(store Catalog, opts Options) *gin.Engine {
	if opts.Collection == "" {
		opts.Collection = "pokemons"
	}
	if opts.PerPage < 1 {
		opts.PerPage = catalog.DefaultPerPage
	}

	r := gin.New()
	r.Use(RequestID(), Logger(), gin.Recovery(), CORS(opts.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	h := &handlers{store: store, perPage: opts.PerPage}

	api := r.Group("/api")
	{
		api.GET("/health", h.health)

		collection := api.Group("/" + strings.Trim(opts.Collection, "/"))
		collection.GET("", h.list)
		collection.GET("/:id", h.get)
	}

	return r
}

type handlers struct {
	store   Catalog
	perPage int
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) list(c *gin.Context) {
	res, err := h.store.List(c.Request.Context(), h.listParams(c))
	if err != nil {
		log.Printf("[HTTP] request_id=%s list failed: %v", GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list collection"})
		return
	}

	if res.Items == nil {
		res.Items = []domain.Pokemon{}
	}
	c.JSON(http.StatusOK, listResponse{
		Data:          res.Items,
		Page:          res.Page,
		PerPage:       res.PerPage,
		TotalItems:    res.TotalItems,
		TotalPages:    res.TotalPages,
		SortingColumn: string(res.Sort),
		SortingOrder:  string(res.Order),
	})
}

func (h *handlers) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	p, err := h.store.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		log.Printf("[HTTP] request_id=%s get %d failed: %v", GetRequestID(c), id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load record"})
	default:
		c.JSON(http.StatusOK, p)
	}
}

// listParams reads the query string. Missing or malformed numbers fall back
// to their defaults; unknown sort settings are resolved by the store.
func (h *handlers) listParams(c *gin.Context) catalog.ListParams {
	p := catalog.ListParams{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", h.perPage),
		Search:  c.Query("search"),
		Sort:    domain.SortColumn(c.DefaultQuery("sort", string(domain.SortByName))),
		Order:   domain.SortOrder(c.DefaultQuery("order", string(domain.OrderAscending))),
	}

	for _, field := range domain.RangeFields {
		p.SetRange(field, catalog.Bounds{
			Min: queryOptionalInt(c, domain.ParamName(field, domain.BoundMin)),
			Max: queryOptionalInt(c, domain.ParamName(field, domain.BoundMax)),
		})
	}
	return p
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if v := queryOptionalInt(c, name); v != nil {
		return *v
	}
	return fallback
}

// queryOptionalInt returns nil for an absent, empty or non-integer parameter
func queryOptionalInt(c *gin.Context, name string) *int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
