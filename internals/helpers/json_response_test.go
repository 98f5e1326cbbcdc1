// file: internals/helpers/json_response_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOn(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging_Defaults(t *testing.T) {
	p := resolveOn(t, "/x", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePaging_PerPageAndLimitAlias(t *testing.T) {
	p := resolveOn(t, "/x?page=3&per_page=10", 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)

	// alias lama ?limit= tetap jalan
	p = resolveOn(t, "/x?limit=15", 20, 100)
	assert.Equal(t, 15, p.PerPage)

	// per_page menang atas limit kalau dua-duanya ada
	p = resolveOn(t, "/x?per_page=5&limit=50", 20, 100)
	assert.Equal(t, 5, p.PerPage)
}

func TestResolvePaging_ClampAndInvalid(t *testing.T) {
	p := resolveOn(t, "/x?per_page=500", 20, 100)
	assert.Equal(t, 100, p.PerPage)

	p = resolveOn(t, "/x?page=-2&per_page=abc", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, int64(45), pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}
