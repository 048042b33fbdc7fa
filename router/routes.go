package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"todoapi/config"
	"todoapi/handlers"
	"todoapi/storage"
)

// Create a new instance of the logger.
var l = logrus.New()

// SetupRoutes wires the mongo-backed stores into the route table.
func SetupRoutes(app *fiber.App) {
	todoStore := storage.NewMongoTodoStore(config.GetEnvWithDefault("TODO_COLLECTION", "todos"))
	contactStore := storage.NewMongoContactStore(config.GetEnvWithDefault("CONTACT_COLLECTION", "contacts"))

	Register(app, handlers.NewHandler(todoStore, contactStore, l))
}

// Register binds a handler to the route table. Split from SetupRoutes so the
// tests can mount the same routes over an in-memory store.
func Register(app *fiber.App, h *handlers.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Hello, World!",
		})
	})

	app.Get("/health", handlers.HandleHealthCheck)

	todos := app.Group("/todo")
	todos.Get("/", handlers.HandleAllTodos(h))
	todos.Post("/", handlers.HandleCreateTodo(h))

	// registered before /:id so "contact" is never read as a todo id
	contacts := todos.Group("/contact")
	contacts.Get("/", handlers.HandleAllContacts(h))
	contacts.Post("/", handlers.HandleCreateContact(h))

	todos.Get("/:id", handlers.HandleGetOneTodo(h))
	todos.Put("/:id", handlers.HandleUpdateTodo(h))
	todos.Delete("/:id", handlers.HandleDeleteTodo(h))
}
