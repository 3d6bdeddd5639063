package item

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func makeAppWithItemHandler() *fiber.App {
	seed := []Item{
		{ID: 1, Name: "Round Widget", Description: "A widget that is round", Price: decimal.RequireFromString("2.99")},
		{ID: 2, Name: "Collar", Description: "A basic collar", Price: decimal.RequireFromString("1.99")},
	}
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(seed))).RegisterProtectedRoutes(app)
	return app
}

func TestItemRoutes(t *testing.T) {
	app := makeAppWithItemHandler()

	req := httptest.NewRequest("GET", "/api/item", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for list, got %d", res.StatusCode)
	}
	var items []Item
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	req2 := httptest.NewRequest("GET", "/api/item/1", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for get by id, got %d", res2.StatusCode)
	}
	var it Item
	if err := json.NewDecoder(res2.Body).Decode(&it); err != nil {
		t.Fatalf("decode item response: %v", err)
	}
	if it.Name != "Round Widget" {
		t.Fatalf("unexpected item %+v", it)
	}
	if !it.Price.Equal(decimal.RequireFromString("2.99")) {
		t.Fatalf("unexpected price %s", it.Price)
	}

	req3 := httptest.NewRequest("GET", "/api/item/name/Collar", nil)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for get by name, got %d", res3.StatusCode)
	}

	req4 := httptest.NewRequest("GET", "/api/item/99", nil)
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", res4.StatusCode)
	}

	req5 := httptest.NewRequest("GET", "/api/item/name/Missing", nil)
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown name, got %d", res5.StatusCode)
	}
}
