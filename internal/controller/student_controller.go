package controller

import (
	"student-notes-be/internal/dto"
	"student-notes-be/internal/pkg/logger"
	"student-notes-be/internal/pkg/serverutils"
	"student-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStudentController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type studentController struct {
	studentService service.IStudentService
	log            logger.ILogger
}

func NewStudentController(studentService service.IStudentService, log logger.ILogger) IStudentController {
	return &studentController{
		studentService: studentService,
		log:            log,
	}
}

func (c *studentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/students")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *studentController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.studentService.GetAll(ctx.Context())
	if err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "student", err)
	}

	return ctx.JSON(res)
}

func (c *studentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "student", err)
	}

	res, err := c.studentService.Create(ctx.Context(), &req)
	if err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "student", err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *studentController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid student id"))
	}

	var req dto.UpdateStudentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "student", err)
	}

	res, err := c.studentService.Update(ctx.Context(), int64(id), &req)
	if err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "student", err)
	}

	return ctx.JSON(res)
}

func (c *studentController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid student id"))
	}

	if err := c.studentService.Delete(ctx.Context(), int64(id)); err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "student", err)
	}

	return ctx.JSON(dto.DeleteStudentResponse{Message: "student deleted"})
}
