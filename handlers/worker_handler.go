package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/deepak4044/service_marketplace/database"
	"github.com/deepak4044/service_marketplace/middleware"
	"github.com/deepak4044/service_marketplace/models"
	"github.com/deepak4044/service_marketplace/services"
)

type WorkerRequest struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          *string `json:"phone"`
	CompanyAddress *string `json:"company_address"`
}

func AddWorker(c *fiber.Ctx) error {
	providerID := middleware.UserID(c)

	var req WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Name and Email are required.")
	}

	worker := models.Worker{
		ProviderID:     providerID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		CompanyAddress: req.CompanyAddress,
	}
	if err := database.DB.Create(&worker).Error; err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  true,
		"message": "Worker added successfully.",
		"data":    worker,
	})
}

func GetMyWorkers(c *fiber.Ctx) error {
	providerID := middleware.UserID(c)

	var workers []models.Worker
	if err := database.DB.
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&workers).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Workers fetched successfully.",
		"data":    workers,
	})
}

func UpdateWorker(c *fiber.Ctx) error {
	providerID := middleware.UserID(c)
	workerID, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return badRequest(c, "Worker ID is required")
	}

	var req WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Name and Email are required.")
	}

	var worker models.Worker
	if err := database.DB.Where("id = ? AND provider_id = ?", workerID, providerID).First(&worker).Error; err != nil {
		return fail(c, &services.Error{Status: fiber.StatusNotFound, Message: "Worker not found or unauthorized access."})
	}

	worker.Name = req.Name
	worker.Email = req.Email
	worker.Phone = req.Phone
	worker.CompanyAddress = req.CompanyAddress
	if err := database.DB.Save(&worker).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Worker updated successfully.",
		"data":    worker,
	})
}

func DeleteWorker(c *fiber.Ctx) error {
	providerID := middleware.UserID(c)
	workerID, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return badRequest(c, "Worker ID is required")
	}

	result := database.DB.Where("id = ? AND provider_id = ?", workerID, providerID).Delete(&models.Worker{})
	if result.Error != nil {
		return fail(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return fail(c, &services.Error{Status: fiber.StatusNotFound, Message: "Worker not found or unauthorized access."})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Worker deleted successfully.",
	})
}
