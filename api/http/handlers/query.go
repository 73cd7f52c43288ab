package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// queryString returns the first non-empty query value among keys, or def.
func queryString(c *fiber.Ctx, def string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return def
}

// queryInt parses a positive integer, falling back to def when the value is
// missing or invalid.
func queryInt(c *fiber.Ctx, key string, def int) int {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			return n
		}
	}
	return def
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func orDefaultInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
