package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/poster-atlas/site/filter"
)

// getQueryParam gets a parameter from either query string or form data
func getQueryParam(ctx *fiber.Ctx, key string) string {
	// Try query parameter first (for GET requests)
	if value := ctx.Query(key); value != "" {
		return value
	}
	// Fall back to form value (for POST requests)
	return ctx.FormValue(key)
}

// filterStateFromQuery reads every filter control from the request. Filter
// controls never send a page, so a changed filter lands on page 1.
func filterStateFromQuery(ctx *fiber.Ctx) filter.State {
	return filter.State{
		Query:   getQueryParam(ctx, "q"),
		Company: strings.TrimSpace(getQueryParam(ctx, "company")),
		Element: getQueryParam(ctx, "element"),
		Train:   ctx.QueryBool("train"),
		Seaside: ctx.QueryBool("seaside"),
		Sports:  ctx.QueryBool("sports"),
		Page:    ctx.QueryInt("page", 1),
	}
}

// uidParam returns the unescaped :uid route parameter. Card links escape the
// UID, and fiber hands path parameters back as sent.
func uidParam(ctx *fiber.Ctx) (string, error) {
	uid, err := url.PathUnescape(ctx.Params("uid"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid poster UID")
	}
	return uid, nil
}

func isHTMX(ctx *fiber.Ctx) bool {
	return ctx.Get("HX-Request") == "true"
}
