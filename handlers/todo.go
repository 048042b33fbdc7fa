package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todoapi/models"
)

// lookupTodo resolves the :id param to a record. A missing record and an
// unparseable id both come back nil, so every item handler answers a miss
// with the same bad-request body before touching anything.
func (h *Handler) lookupTodo(c *fiber.Ctx) (*models.Todo, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, nil
	}
	return h.Todos.Get(c.Context(), int64(id))
}

// @Summary List all todos.
// @Description fetch every todo on the list.
// @Tags todos
// @Produce json
// @Success 200 {object} []models.TodoRepresentation
// @Router /todo/ [get]
func HandleAllTodos(h *Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		todos, err := h.Todos.List(c.Context())
		if err != nil {
			return h.storageError(c, "list todos", err)
		}
		return c.Status(fiber.StatusOK).JSON(models.SerializeTodos(todos))
	}
}

// @Summary Create a todo.
// @Description create a single todo from the request body.
// @Tags todos
// @Accept json
// @Param todo body models.TodoInput true "Todo to create"
// @Produce json
// @Success 201 {object} models.TodoRepresentation
// @Failure 400 {object} models.ValidationErrors
// @Router /todo/ [post]
func HandleCreateTodo(h *Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := new(models.TodoInput)
		if err := c.BodyParser(in); err != nil {
			return resMessage(c, fiber.StatusBadRequest, "request body malformed")
		}

		var todo models.Todo
		if errs := models.DeserializeTodo(*in, &todo, false); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		if err := h.Todos.Insert(c.Context(), &todo); err != nil {
			return h.storageError(c, "insert todo", err)
		}
		return c.Status(fiber.StatusCreated).JSON(models.SerializeTodo(&todo))
	}
}

// @Summary Get a single todo.
// @Description fetch one todo by its id.
// @Tags todos
// @Param id path int true "Todo ID"
// @Produce json
// @Success 200 {object} models.TodoRepresentation
// @Router /todo/:id [get]
func HandleGetOneTodo(h *Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		todo, err := h.lookupTodo(c)
		if err != nil {
			return h.storageError(c, "get todo", err)
		}
		if todo == nil {
			return resMessage(c, fiber.StatusBadRequest, todoMissingMessage)
		}
		return c.Status(fiber.StatusOK).JSON(models.SerializeTodo(todo))
	}
}

// @Summary Update a todo.
// @Description partially update one todo; only supplied fields change.
// @Tags todos
// @Accept json
// @Param id path int true "Todo ID"
// @Param todo body models.TodoInput true "Fields to update"
// @Produce json
// @Success 200 {object} models.TodoRepresentation
// @Failure 400 {object} models.ValidationErrors
// @Router /todo/:id [put]
func HandleUpdateTodo(h *Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		todo, err := h.lookupTodo(c)
		if err != nil {
			return h.storageError(c, "get todo", err)
		}
		if todo == nil {
			return resMessage(c, fiber.StatusBadRequest, todoMissingMessage)
		}

		in := new(models.TodoInput)
		if err := c.BodyParser(in); err != nil {
			return resMessage(c, fiber.StatusBadRequest, "request body malformed")
		}

		if errs := models.DeserializeTodo(*in, todo, true); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		if err := h.Todos.Update(c.Context(), todo); err != nil {
			return h.storageError(c, "update todo", err)
		}
		return c.Status(fiber.StatusOK).JSON(models.SerializeTodo(todo))
	}
}

// @Summary Delete a todo.
// @Description remove one todo permanently.
// @Tags todos
// @Param id path int true "Todo ID"
// @Produce json
// @Success 200 "Object deleted!"
// @Router /todo/:id [delete]
func HandleDeleteTodo(h *Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		todo, err := h.lookupTodo(c)
		if err != nil {
			return h.storageError(c, "get todo", err)
		}
		if todo == nil {
			return resMessage(c, fiber.StatusBadRequest, todoMissingMessage)
		}

		deleted, err := h.Todos.Delete(c.Context(), todo.ID)
		if err != nil {
			return h.storageError(c, "delete todo", err)
		}
		// a concurrent delete can win the race between lookup and delete
		if !deleted {
			return resMessage(c, fiber.StatusBadRequest, todoMissingMessage)
		}
		return resMessage(c, fiber.StatusOK, todoDeletedMessage)
	}
}
