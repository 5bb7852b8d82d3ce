package rest

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	straatnamen "github.com/goudatijdmachine/straatnamen-api"
	"github.com/goudatijdmachine/straatnamen-api/internal/domain"
	"github.com/goudatijdmachine/straatnamen-api/internal/usecase"
)

const (
	defaultSearchLimit = 2000
	defaultPhotoLimit  = 25
)

type Handler struct {
	street *usecase.StreetUsecase
	photo  *usecase.PhotoUsecase
	cache  *usecase.CacheUsecase
}

func NewHandler(
	street *usecase.StreetUsecase,
	photo *usecase.PhotoUsecase,
	cache *usecase.CacheUsecase,
) *Handler {
	return &Handler{
		street: street,
		photo:  photo,
		cache:  cache,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/straatnamen", h.handleSearchStreets)
	e.GET("/straatnamen/:identifier", h.handleGetStreet)
	e.GET("/straatnamen/:identifier/afbeeldingen", h.handleGetPhotos)
	e.POST("/clear_cache", h.handleClearCache)
}

func (h *Handler) handleSearchStreets(c echo.Context) error {
	accept := c.Request().Header.Get("Accept")
	_, wantGeoJSON := c.QueryParams()["geojson"]

	if strings.Contains(accept, "application/geo+json") || wantGeoJSON {
		return h.searchStreetsGeoJSON(c)
	}
	if accept == "" || strings.Contains(accept, "application/json") ||
		strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*") {
		return h.searchStreetsJSON(c)
	}
	return NotAcceptable(c, "unsupported accept header")
}

func (h *Handler) searchStreetsJSON(c echo.Context) error {
	ctx := c.Request().Context()

	filter, err := parseFilter(c)
	if err != nil {
		return BadRequest(c, err.Error(), "INVALID_PARAMETER")
	}

	result, err := h.street.Search(ctx, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFound(c, "no streets found")
		}
		return InternalError(c, err)
	}

	return OK(c, result)
}

func (h *Handler) searchStreetsGeoJSON(c echo.Context) error {
	ctx := c.Request().Context()

	filter, err := parseFilter(c)
	if err != nil {
		return BadRequest(c, err.Error(), "INVALID_PARAMETER")
	}

	fc, err := h.street.SearchGeoJSON(ctx, filter)
	if err != nil {
		return InternalError(c, err)
	}

	return GeoJSON(c, fc)
}

func (h *Handler) handleGetStreet(c echo.Context) error {
	ctx := c.Request().Context()

	identifier, err := decodeIdentifier(c.Param("identifier"))
	if err != nil {
		return BadRequest(c, "missing or invalid identifier", "INVALID_IDENTIFIER")
	}

	street, err := h.street.Get(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFound(c, "street not found")
		}
		return InternalError(c, err)
	}

	return OK(c, street)
}

func (h *Handler) handleGetPhotos(c echo.Context) error {
	ctx := c.Request().Context()

	identifier, err := decodeIdentifier(c.Param("identifier"))
	if err != nil {
		return BadRequest(c, "missing or invalid identifier", "INVALID_IDENTIFIER")
	}

	limit, err := intQueryParam(c, "limit", defaultPhotoLimit)
	if err != nil {
		return BadRequest(c, "invalid limit parameter", "INVALID_PARAMETER")
	}
	offset, err := intQueryParam(c, "offset", 0)
	if err != nil {
		return BadRequest(c, "invalid offset parameter", "INVALID_PARAMETER")
	}

	page, err := h.photo.List(ctx, identifier, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFound(c, "street not found")
		}
		return InternalError(c, err)
	}

	return OK(c, page)
}

func (h *Handler) handleClearCache(c echo.Context) error {
	ctx := c.Request().Context()

	cleared, err := h.cache.Clear(ctx)
	if err != nil {
		return InternalError(c, err)
	}

	return OK(c, echo.Map{"clearedCount": cleared})
}

func parseFilter(c echo.Context) (straatnamen.Filter, error) {
	limit, err := intQueryParam(c, "limit", defaultSearchLimit)
	if err != nil {
		return straatnamen.Filter{}, errors.New("invalid limit parameter")
	}
	offset, err := intQueryParam(c, "offset", 0)
	if err != nil {
		return straatnamen.Filter{}, errors.New("invalid offset parameter")
	}
	if limit < 0 || offset < 0 {
		return straatnamen.Filter{}, errors.New("limit and offset must be non-negative")
	}

	streetType := straatnamen.StreetType(c.QueryParam("type"))
	if streetType == "" {
		streetType = straatnamen.TypeAll
	}
	if !streetType.Valid() {
		return straatnamen.Filter{}, errors.New("invalid type parameter")
	}

	lat, err := floatQueryParam(c, "lat")
	if err != nil {
		return straatnamen.Filter{}, errors.New("invalid lat parameter")
	}
	lon, err := floatQueryParam(c, "lon")
	if err != nil {
		return straatnamen.Filter{}, errors.New("invalid lon parameter")
	}

	return straatnamen.Filter{
		Query:  c.QueryParam("q"),
		Limit:  limit,
		Offset: offset,
		Type:   streetType,
		Lat:    lat,
		Lon:    lon,
	}, nil
}

func decodeIdentifier(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("missing identifier")
	}
	identifier, err := url.QueryUnescape(raw)
	if err != nil {
		return "", errors.Wrap(err, "invalid identifier encoding")
	}
	if !straatnamen.IsArkIdentifier(identifier) {
		return "", errors.New("identifier outside the ark namespace")
	}
	return identifier, nil
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func floatQueryParam(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
