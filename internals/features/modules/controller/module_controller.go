package controller

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"finakihub_backend/internals/constants"
	"finakihub_backend/internals/features/modules/catalog"
	helper "finakihub_backend/internals/helpers"
)

const msgInvalidTier = "Nivel no válido"

type ModuleController struct{}

func NewModuleController() *ModuleController {
	return &ModuleController{}
}

// GET /api/modules/:tier
func (mc *ModuleController) GetByTier(c *fiber.Ctx) error {
	mods, ok := catalog.ModulesForTier(c.Params("tier"))
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, msgInvalidTier)
	}
	return c.JSON(mods)
}

// GET /api/modules/primary, kept for old clients.
func (mc *ModuleController) GetPrimaryDeprecated(c *fiber.Ctx) error {
	log.WithField("reqid", c.Locals("reqid")).
		Warn("Endpoint /modules/primary está obsoleto, usar /modules/primaria")
	c.Set("Deprecation", "true")
	c.Set(fiber.HeaderLink, `</api/modules/primaria>; rel="successor-version"`)

	mods, _ := catalog.ModulesForTier(constants.TierPrimaria)
	return c.JSON(mods)
}
