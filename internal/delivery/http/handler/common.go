package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/transit-backoffice/internal/pkg/errors"
	"github.com/transit-backoffice/internal/pkg/utils"
	"github.com/transit-backoffice/internal/pkg/validator"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// parseBody decodes and validates a JSON request body.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return errors.ErrInvalidRequest
	}
	if err := validator.Validate(dst); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}
	return nil
}

// parseListQuery decodes the shared admin list parameters.
func parseListQuery(c *fiber.Ctx) (dto.ListQuery, error) {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return q, errors.ErrInvalidRequest
	}
	if err := validator.Validate(q); err != nil {
		return q, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}
	return q, nil
}

// listMeta builds pagination metadata with the defaults applied, so
// the response reports the page actually served.
func listMeta(q dto.ListQuery, total int) *utils.Meta {
	p := q.ToListParams()
	return &utils.Meta{
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}
}
