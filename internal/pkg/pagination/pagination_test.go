package pagination

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Slice(items, &Params{Page: 2, Limit: 2, Offset: 2})
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	page, meta = Slice(items, &Params{Page: 3, Limit: 2, Offset: 4})
	assert.Equal(t, []int{5}, page)
	assert.False(t, meta.HasNext)

	page, _ = Slice(items, &Params{Page: 9, Limit: 2, Offset: 16})
	assert.Empty(t, page)

	page, meta = Slice(items, nil)
	assert.Equal(t, items, page)
	assert.Nil(t, meta)
}

func TestGetParams(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		p := GetParams(c)
		if p == nil {
			return c.SendString("all")
		}
		return c.JSON(p)
	})

	cases := map[string]string{
		"/":                   "all",
		"/?page=2&limit=10":   `{"page":2,"limit":10}`,
		"/?page=0&limit=1000": `{"page":1,"limit":100}`,
		"/?limit=abc":         `{"page":1,"limit":20}`,
	}
	for target, want := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, want, string(body), target)
	}
}
