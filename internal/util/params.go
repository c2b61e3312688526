package util

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParamError reports a query or path parameter that could not be parsed.
type ParamError struct {
	Name  string
	Value string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s", e.Value, e.Name)
}

// OptionalStringQuery returns nil when the parameter is absent or empty.
func OptionalStringQuery(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}

// OptionalIntQuery parses an integer query parameter as a float64. It returns
// nil when the parameter is absent or empty.
func OptionalIntQuery(c *fiber.Ctx, key string) (*float64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, &ParamError{Name: key, Value: v}
	}
	f := float64(n)
	return &f, nil
}

func IDParam(c *fiber.Ctx) (int64, error) {
	v := c.Params("id")
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &ParamError{Name: "id", Value: v}
	}
	return id, nil
}
