package controller

import (
	"student-notes-be/internal/dto"
	"student-notes-be/internal/pkg/logger"
	"student-notes-be/internal/pkg/serverutils"
	"student-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	GetAllByStudent(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	log         logger.ILogger
}

func NewNoteController(noteService service.INoteService, log logger.ILogger) INoteController {
	return &noteController{
		noteService: noteService,
		log:         log,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/students/:studentId/notes")
	h.Get("", c.GetAllByStudent)
	h.Post("", c.Create)
	h.Put(":noteId", c.Update)
	h.Delete(":noteId", c.Delete)
}

func (c *noteController) GetAllByStudent(ctx *fiber.Ctx) error {
	studentId, err := ctx.ParamsInt("studentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid student id"))
	}

	res, err := c.noteService.GetAllByStudent(ctx.Context(), int64(studentId))
	if err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "note", err)
	}

	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	studentId, err := ctx.ParamsInt("studentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid student id"))
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "note", err)
	}

	res, err := c.noteService.Create(ctx.Context(), int64(studentId), &req)
	if err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "note", err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	studentId, err := ctx.ParamsInt("studentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid student id"))
	}

	noteId, err := ctx.ParamsInt("noteId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid note id"))
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "note", err)
	}

	res, err := c.noteService.Update(ctx.Context(), int64(studentId), int64(noteId), &req)
	if err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "note", err)
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	studentId, err := ctx.ParamsInt("studentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid student id"))
	}

	noteId, err := ctx.ParamsInt("noteId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid note id"))
	}

	if err := c.noteService.Delete(ctx.Context(), int64(studentId), int64(noteId)); err != nil {
		return serverutils.HandleServiceError(ctx, c.log, "note", err)
	}

	return ctx.JSON(dto.DeleteNoteResponse{Message: "note deleted"})
}
