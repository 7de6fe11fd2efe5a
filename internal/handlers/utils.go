package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const queryDateLayout = "2006-01-02"

// parseUserID reads the :userId path parameter
func parseUserID(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID %q", c.Param("userId"))
	}
	return userID, nil
}

// getIntQueryParam returns the named query parameter, or defaultValue when
// it is absent or not an integer
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getDateQueryParam parses a YYYY-MM-DD query parameter. Absent parameters
// return defaultValue.
func getDateQueryParam(c echo.Context, key string, defaultValue time.Time) (time.Time, error) {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := time.Parse(queryDateLayout, valueStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be formatted as YYYY-MM-DD", key)
	}
	return value, nil
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
