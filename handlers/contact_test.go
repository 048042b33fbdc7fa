package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreateAndList(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/todo/contact/", fiber.Map{
		"name": "Ada", "phone_number": "555-0100", "email": "ada@example.com",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"name":"Ada","phone_number":"555-0100","email":"ada@example.com"}`, string(body))

	resp, body = doRequest(t, app, http.MethodGet, "/todo/contact/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"name":"Ada","phone_number":"555-0100","email":"ada@example.com"}]`, string(body))
}

func TestContactDuplicatePhoneAndEmail(t *testing.T) {
	app, _ := newTestApp(t)

	doRequest(t, app, http.MethodPost, "/todo/contact/", fiber.Map{
		"name": "Ada", "phone_number": "555-0100", "email": "ada@example.com",
	})

	resp, body := doRequest(t, app, http.MethodPost, "/todo/contact/", fiber.Map{
		"name": "Grace", "phone_number": "555-0100", "email": "ada@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errs map[string][]string
	require.NoError(t, json.Unmarshal(body, &errs))
	assert.Equal(t, []string{"Phone number already entered"}, errs["phone_number"])
	assert.Equal(t, []string{"Email is already used"}, errs["email"])
}

func TestContactValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/todo/contact/", fiber.Map{
		"name": "Ada", "phone_number": "555-0100", "email": "nope",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errs map[string][]string
	require.NoError(t, json.Unmarshal(body, &errs))
	assert.Equal(t, []string{"Enter a valid email address."}, errs["email"])
}

func TestContactRouteNotShadowedByTodoId(t *testing.T) {
	app, _ := newTestApp(t)

	// /todo/contact/ must hit the contact handler, not the item lookup
	resp, body := doRequest(t, app, http.MethodGet, "/todo/contact/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}
