package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"todoapi/storage"
)

// Message bodies fixed by the API contract.
const (
	todoMissingMessage = "Object with todo id does not exists"
	todoDeletedMessage = "Object deleted!"
)

type Handler struct {
	Todos    storage.TodoStore
	Contacts storage.ContactStore
	L        *logrus.Logger
}

func NewHandler(todos storage.TodoStore, contacts storage.ContactStore, l *logrus.Logger) *Handler {
	return &Handler{
		Todos:    todos,
		Contacts: contacts,
		L:        l,
	}
}

// resMessage writes the single-message bodies of the API, keyed by "res".
func resMessage(c *fiber.Ctx, httpStatus int, message string) error {
	return c.Status(httpStatus).JSON(fiber.Map{"res": message})
}

// storageError answers for backend failures the contract leaves unmodeled.
func (h *Handler) storageError(c *fiber.Ctx, op string, err error) error {
	h.L.Errorf("[storage] %s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage backend failure"})
}
