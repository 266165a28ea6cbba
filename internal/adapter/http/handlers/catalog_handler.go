package handlers

import (
	"net/http"
	"strconv"
	"strings"

	response "window_quotation/internal/adapter/http/dto/response"
	"window_quotation/internal/domain/catalog"
	"window_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errUnknownArchetype  = pkg.NewDomainErrorSimple("ARCHETYPE_NOT_FOUND", "Window archetype not found", http.StatusNotFound)
	errInvalidPanelCount = pkg.NewDomainErrorSimple("INVALID_PANEL_COUNT", "Invalid panel count", http.StatusBadRequest)
)

// CatalogHandler serves the read-only archetype and pattern catalog.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListArchetypes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromArchetypes(catalog.Archetypes()))
}

// ListPatterns returns the patterns of one archetype. Without ?panels it
// lists every supported panel count.
func (h *CatalogHandler) ListPatterns(c *gin.Context) {
	archetype, ok := catalog.LookupArchetype(c.Param("archetype"))
	if !ok {
		c.JSON(errUnknownArchetype.HTTPStatus, errUnknownArchetype.ToHTTPError())
		return
	}

	raw := strings.TrimSpace(c.Query("panels"))
	if raw == "" {
		out := map[int][]response.PatternResponse{}
		for _, n := range catalog.PanelCounts(archetype) {
			out[n] = response.FromPatterns(archetype, n)
		}
		c.JSON(http.StatusOK, out)
		return
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		c.JSON(errInvalidPanelCount.HTTPStatus, errInvalidPanelCount.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPatterns(archetype, n))
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
