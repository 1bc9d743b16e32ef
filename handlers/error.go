package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/poster-atlas/site/ui"
)

// CustomErrorHandler renders errors as an error page, or as an inline
// message when the request came from htmx.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		zap.S().Errorf("[handlers] %s %s: %v", ctx.Method(), ctx.Path(), err)
	}

	ctx.Status(code)
	if isHTMX(ctx) {
		return render(ctx, ui.ValidationError(err.Error()))
	}
	return render(ctx, ui.ErrorPage(code, err.Error()))
}
