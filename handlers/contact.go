package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todoapi/models"
)

// @Summary List all contacts.
// @Description fetch every contact in the address book.
// @Tags contacts
// @Produce json
// @Success 200 {object} []models.ContactRepresentation
// @Router /todo/contact/ [get]
func HandleAllContacts(h *Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contacts, err := h.Contacts.List(c.Context())
		if err != nil {
			return h.storageError(c, "list contacts", err)
		}
		return c.Status(fiber.StatusOK).JSON(models.SerializeContacts(contacts))
	}
}

// @Summary Create a contact.
// @Description create a single contact; phone number and email must be unused.
// @Tags contacts
// @Accept json
// @Param contact body models.ContactInput true "Contact to create"
// @Produce json
// @Success 201 {object} models.ContactRepresentation
// @Failure 400 {object} models.ValidationErrors
// @Router /todo/contact/ [post]
func HandleCreateContact(h *Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := new(models.ContactInput)
		if err := c.BodyParser(in); err != nil {
			return resMessage(c, fiber.StatusBadRequest, "request body malformed")
		}

		var contact models.Contact
		if errs := models.DeserializeContact(*in, &contact); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		// unique validators run against the store before the insert
		errs := models.ValidationErrors{}
		if used, err := h.Contacts.PhoneInUse(c.Context(), contact.PhoneNumber); err != nil {
			return h.storageError(c, "check phone number", err)
		} else if used {
			errs.Add("phone_number", "Phone number already entered")
		}
		if used, err := h.Contacts.EmailInUse(c.Context(), contact.Email); err != nil {
			return h.storageError(c, "check email", err)
		} else if used {
			errs.Add("email", "Email is already used")
		}
		if len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		if err := h.Contacts.Insert(c.Context(), &contact); err != nil {
			return h.storageError(c, "insert contact", err)
		}
		return c.Status(fiber.StatusCreated).JSON(models.SerializeContact(&contact))
	}
}
