package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// OK wraps a successful JSON response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// GeoJSON writes the payload with the geo+json content type.
func GeoJSON(c echo.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return InternalError(c, err)
	}
	return c.Blob(http.StatusOK, "application/geo+json", body)
}

func BadRequest(c echo.Context, msg string, code string) error {
	fmt.Println("Bad request:", msg)
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg, Code: code})
}

func NotFound(c echo.Context, msg string) error {
	fmt.Println("Not found:", msg)
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg, Code: "NOT_FOUND"})
}

func NotAcceptable(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotAcceptable, errorResponse{Error: msg, Code: "NOT_ACCEPTABLE"})
}

func InternalError(c echo.Context, err error) error {
	fmt.Println("Internal error:", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "unexpected error", Code: "INTERNAL_ERROR"})
}
